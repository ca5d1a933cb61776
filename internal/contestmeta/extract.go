package contestmeta

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

// excerptLimit bounds how much of a document extraction will look at, so a
// stray multi-megabyte file costs no more than a small one.
const excerptLimit = 2000

const frontMatterDelimiter = "---"

// Provenance records where metadata values came from.
type Provenance int

const (
	// ProvenanceProvided marks caller-supplied defaults (or nothing at all).
	ProvenanceProvided Provenance = iota
	// ProvenanceExtracted marks values recognized in a document.
	ProvenanceExtracted
)

func (p Provenance) String() string {
	if p == ProvenanceExtracted {
		return "extracted"
	}
	return "provided"
}

// Metadata is a partially-resolved contest identity. Kind is only meaningful
// when KindSet is true; empty Key and Name mean absent.
type Metadata struct {
	Kind       uint16
	KindSet    bool
	Key        string
	Name       string
	Provenance Provenance
}

// Empty reports whether no field is present.
func (m Metadata) Empty() bool {
	return !m.KindSet && m.Key == "" && m.Name == ""
}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Extract pulls contest metadata out of a text blob. Only the first 2,000
// characters are examined. Lines inside a --- front-matter block are
// preferred; without a well-formed block the whole excerpt is scanned.
// Recognized keys (case-insensitive) are ContestKind, ContestKey, and
// ContestName; malformed values are dropped, never fatal.
func Extract(text string) Metadata {
	if runes := []rune(text); len(runes) > excerptLimit {
		text = string(runes[:excerptLimit])
	}
	lines := strings.Split(text, "\n")
	if block, ok := frontMatter(lines); ok {
		lines = block
	}

	var meta Metadata
	found := false
	for _, line := range lines {
		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}
		switch key {
		case "contestkind":
			kind, err := strconv.ParseUint(value, 10, 16)
			if err != nil {
				continue
			}
			meta.Kind = uint16(kind)
			meta.KindSet = true
			found = true
		case "contestkey":
			if !keyPattern.MatchString(value) {
				continue
			}
			meta.Key = value
			found = true
		case "contestname":
			if value == "" {
				continue
			}
			meta.Name = value
			found = true
		}
	}
	if found {
		meta.Provenance = ProvenanceExtracted
	}
	return meta
}

// ExtractFile reads a document and extracts metadata from it. Read failures
// and undecodable bytes degrade to empty provided metadata, matching the
// rest of the package's never-fatal posture.
func ExtractFile(path string) Metadata {
	if strings.TrimSpace(path) == "" {
		return Metadata{}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}
	}
	return Extract(strings.ToValidUTF8(string(raw), ""))
}

// frontMatter returns the lines between the first pair of --- delimiter
// lines. The block is only taken when the closing delimiter exists.
func frontMatter(lines []string) ([]string, bool) {
	open := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != frontMatterDelimiter {
			continue
		}
		if open < 0 {
			open = i
			continue
		}
		return lines[open+1 : i], true
	}
	return nil, false
}

// splitKeyValue parses one "key: value" or "key=value" line. The colon form
// wins when both separators appear.
func splitKeyValue(line string) (key, value string, ok bool) {
	if strings.TrimSpace(line) == "" {
		return "", "", false
	}
	var k, v string
	if before, after, found := strings.Cut(line, ":"); found {
		k, v = before, after
	} else if before, after, found := strings.Cut(line, "="); found {
		k, v = before, after
	} else {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(k)), strings.TrimSpace(v), true
}

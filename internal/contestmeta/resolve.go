package contestmeta

import "strings"

// UserDefinedMultiKind is the contest kind the external program treats as
// "user-defined multi". It is the safe fallback when nothing else resolves a
// kind: file creation must not block on an unidentified contest.
const UserDefinedMultiKind = 14

// fallbackKey names files for contests whose name yields no usable token.
const fallbackKey = "custom"

// Identity is a fully resolved contest identity, ready for the codec and for
// building file names.
type Identity struct {
	Kind uint16
	Key  string
	Name string
}

// Resolve merges metadata layers field by field, later layers winning where
// they have a value, then fills the remaining gaps: an unresolved kind
// becomes UserDefinedMultiKind and a missing key is derived from the name.
func Resolve(base Metadata, overlays ...Metadata) Identity {
	merged := base
	for _, layer := range overlays {
		if layer.KindSet {
			merged.Kind = layer.Kind
			merged.KindSet = true
		}
		if layer.Key != "" {
			merged.Key = layer.Key
		}
		if layer.Name != "" {
			merged.Name = layer.Name
		}
	}

	id := Identity{Kind: merged.Kind, Key: merged.Key, Name: merged.Name}
	if !merged.KindSet {
		id.Kind = UserDefinedMultiKind
	}
	if id.Key == "" {
		id.Key = DeriveKey(merged.Name)
	}
	return id
}

// DeriveKey turns a display name into a file-name key: lowercased with
// everything outside [a-z0-9_-] removed. Names that leave nothing usable
// yield "custom".
func DeriveKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fallbackKey
	}
	return b.String()
}

package cp932

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/japanese"
)

// ErrUnencodable marks a rune with no CP932 representation.
var ErrUnencodable = errors.New("rune not representable in CP932")

// Encode converts s to CP932 bytes without any width handling.
func Encode(s string) ([]byte, error) {
	out, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnencodable, s)
	}
	return out, nil
}

// EncodeFixed converts s to CP932 and lays it out in a field of exactly width
// bytes, NUL-terminated and NUL-padded. Content longer than width-1 bytes is
// truncated on a code-unit boundary; a rune is never split across the cut.
func EncodeFixed(s string, width int) ([]byte, error) {
	if width < 1 {
		return nil, fmt.Errorf("field width %d too small", width)
	}
	enc, err := Encode(s)
	if err != nil {
		return nil, err
	}
	if len(enc) > width-1 {
		enc, err = encodeBounded(s, width-1)
		if err != nil {
			return nil, err
		}
	}
	out := make([]byte, width)
	copy(out, enc)
	return out, nil
}

// EncodeTerminated converts s to CP932 followed by a single NUL byte, the
// layout used for the trailer's variable-length path field.
func EncodeTerminated(s string) ([]byte, error) {
	enc, err := Encode(s)
	if err != nil {
		return nil, err
	}
	return append(enc, 0), nil
}

// Decode converts CP932 bytes back to a string, stopping at the first NUL.
func Decode(b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode CP932: %w", err)
	}
	return string(out), nil
}

// Truncate returns the longest prefix of s whose CP932 encoding fits in max
// bytes. Exposed so the truncation rule itself is testable.
func Truncate(s string, max int) (string, error) {
	enc, err := encodeBounded(s, max)
	if err != nil {
		return "", err
	}
	return Decode(enc)
}

// encodeBounded encodes rune by rune and stops before the first rune that
// would not fit. Shift_JIS is stateless, so per-rune encoding concatenates to
// the same bytes as encoding the whole string.
func encodeBounded(s string, max int) ([]byte, error) {
	var out []byte
	for _, r := range s {
		unit, err := Encode(string(r))
		if err != nil {
			return nil, err
		}
		if len(out)+len(unit) > max {
			break
		}
		out = append(out, unit...)
	}
	return out, nil
}

package cp932_test

import (
	"bytes"
	"errors"
	"testing"

	"ctestwin/internal/cp932"
)

func TestEncodeFixedASCII(t *testing.T) {
	out, err := cp932.EncodeFixed("JA1ABC", 20)
	if err != nil {
		t.Fatalf("EncodeFixed: %v", err)
	}
	if len(out) != 20 {
		t.Fatalf("expected 20 bytes, got %d", len(out))
	}
	if !bytes.Equal(out[:7], []byte("JA1ABC\x00")) {
		t.Fatalf("unexpected field prefix: %q", out[:7])
	}
	for i := 6; i < 20; i++ {
		if out[i] != 0 {
			t.Fatalf("expected NUL padding at byte %d, got %#x", i, out[i])
		}
	}
}

func TestEncodeFixedDoubleByte(t *testing.T) {
	// Each of the five characters encodes to two bytes in CP932.
	out, err := cp932.EncodeFixed("オール東北", 20)
	if err != nil {
		t.Fatalf("EncodeFixed: %v", err)
	}
	got, err := cp932.Decode(out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "オール東北" {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestEncodeFixedTruncatesOnUnitBoundary(t *testing.T) {
	// "オール東北" is 10 CP932 bytes. A 10-byte field holds 9 content bytes,
	// so the fifth character must be dropped whole, never split.
	out, err := cp932.EncodeFixed("オール東北", 10)
	if err != nil {
		t.Fatalf("EncodeFixed: %v", err)
	}
	if len(out) != 10 {
		t.Fatalf("expected 10 bytes, got %d", len(out))
	}
	if out[8] != 0 || out[9] != 0 {
		t.Fatalf("expected trailing NULs after truncation, got %v", out[8:])
	}
	got, err := cp932.Decode(out)
	if err != nil {
		t.Fatalf("Decode after truncation: %v", err)
	}
	if got != "オール東" {
		t.Fatalf("expected truncation to drop one character, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"abcdef", 4, "abcd"},
		{"abcdef", 6, "abcdef"},
		{"オール", 5, "オー"},
		{"オール", 0, ""},
		{"", 10, ""},
	}
	for _, tc := range cases {
		got, err := cp932.Truncate(tc.in, tc.max)
		if err != nil {
			t.Fatalf("Truncate(%q, %d): %v", tc.in, tc.max, err)
		}
		if got != tc.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestEncodeUnencodableRune(t *testing.T) {
	if _, err := cp932.EncodeFixed("op\U0001F363", 20); !errors.Is(err, cp932.ErrUnencodable) {
		t.Fatalf("expected ErrUnencodable, got %v", err)
	}
	if _, err := cp932.EncodeTerminated("\U0001F363"); !errors.Is(err, cp932.ErrUnencodable) {
		t.Fatalf("expected ErrUnencodable from EncodeTerminated, got %v", err)
	}
}

func TestEncodeTerminated(t *testing.T) {
	out, err := cp932.EncodeTerminated("C:\\logs\\tohoku.md")
	if err != nil {
		t.Fatalf("EncodeTerminated: %v", err)
	}
	if out[len(out)-1] != 0 {
		t.Fatal("expected trailing NUL")
	}
	got, err := cp932.Decode(out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "C:\\logs\\tohoku.md" {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestDecodeStopsAtNUL(t *testing.T) {
	got, err := cp932.Decode([]byte{'a', 'b', 0, 'c', 'd'})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "ab" {
		t.Fatalf("expected decode to stop at NUL, got %q", got)
	}
}

package lg8_test

import (
	"bytes"
	"errors"
	"testing"

	"ctestwin/internal/catalog"
	"ctestwin/internal/lg8"
)

func mustBand(t *testing.T, label string) catalog.Band {
	t.Helper()
	b, ok := catalog.BandByLabel(label)
	if !ok {
		t.Fatalf("band %q not in catalog", label)
	}
	return b
}

func mustMode(t *testing.T, label string) catalog.Mode {
	t.Helper()
	m, ok := catalog.ModeByLabel(label)
	if !ok {
		t.Fatalf("mode %q not in catalog", label)
	}
	return m
}

func TestEncodeEmptyContainerLayout(t *testing.T) {
	data, err := lg8.Encode(lg8.Inputs{
		Band:        mustBand(t, "7MHz"),
		Mode:        mustMode(t, "SSB"),
		ContestKind: 1,
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if data[0] != 0 || data[1] != 0 {
		t.Fatalf("expected zero QSO count header, got % x", data[:2])
	}
	if got, want := len(data), lg8.MinContainerSize(); got != want {
		t.Fatalf("container size %d, want %d (no multi path)", got, want)
	}

	// ModeCurrent, Is001Style, DupePolicy, FreqCurrent, ContestKind, TwiceMinusOne.
	want := []byte{2, 0, 0, 0, 0, 0, 2, 0, 1, 0, 0, 0}
	if !bytes.Equal(data[2:14], want) {
		t.Fatalf("settings words mismatch:\ngot  % x\nwant % x", data[2:14], want)
	}
}

func TestRoundTrip(t *testing.T) {
	in := lg8.Inputs{
		Band:          mustBand(t, "7MHz"),
		Mode:          mustMode(t, "SSB"),
		ContestKind:   1,
		Is001Style:    true,
		DupePolicy:    2,
		TwiceMinusOne: true,
		ClubOps:       []string{"JA1ABC", "JH7XYZ 佐藤"},
		MultiPath:     "C:\\ctestwin\\tohoku.md",
	}
	data, err := lg8.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	sum, err := lg8.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sum.QSOCount != 0 {
		t.Fatalf("QSO count %d, want 0", sum.QSOCount)
	}
	if sum.BandLabel != "7MHz" || sum.ModeLabel != "SSB" {
		t.Fatalf("band/mode mismatch: %q/%q", sum.BandLabel, sum.ModeLabel)
	}
	if sum.ContestKind != 1 || sum.DupePolicy != 2 {
		t.Fatalf("kind/dupe mismatch: %d/%d", sum.ContestKind, sum.DupePolicy)
	}
	if !sum.Is001Style || !sum.TwiceMinusOne {
		t.Fatalf("flag mismatch: %+v", sum)
	}
	if len(sum.ClubOps) != 2 || sum.ClubOps[0] != "JA1ABC" || sum.ClubOps[1] != "JH7XYZ 佐藤" {
		t.Fatalf("club ops mismatch: %q", sum.ClubOps)
	}
	if sum.MultiPath != "C:\\ctestwin\\tohoku.md" {
		t.Fatalf("multi path mismatch: %q", sum.MultiPath)
	}
	if sum.TrailerOffset != lg8.HeaderSize {
		t.Fatalf("trailer offset %d, want %d", sum.TrailerOffset, lg8.HeaderSize)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	in := lg8.Inputs{
		Band:      mustBand(t, "144MHz"),
		Mode:      mustMode(t, "FT8"),
		ClubOps:   []string{"JA1ABC"},
		MultiPath: "multi.md",
	}
	first, err := lg8.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	second, err := lg8.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("encoding the same inputs twice produced different bytes")
	}
}

func TestPointTableIndexParity(t *testing.T) {
	bands := catalog.Bands()
	phone := make([]uint16, len(bands))
	cw := make([]uint16, len(bands))
	for i := range bands {
		phone[i] = uint16(i + 1)
		cw[i] = uint16(100 + i)
	}

	data, err := lg8.Encode(lg8.Inputs{
		Band:       mustBand(t, "1.9MHz"),
		Mode:       mustMode(t, "CW"),
		PointPhone: phone,
		PointCW:    cw,
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	sum, err := lg8.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	for _, b := range bands {
		if sum.PointPhone[b.Code] != uint16(b.Code+1) {
			t.Fatalf("band %s: phone point %d, want %d", b.Label, sum.PointPhone[b.Code], b.Code+1)
		}
		if sum.PointCW[b.Code] != uint16(100+b.Code) {
			t.Fatalf("band %s: cw point %d, want %d", b.Label, sum.PointCW[b.Code], 100+b.Code)
		}
	}
}

func TestEncodePointTableSizeMismatch(t *testing.T) {
	_, err := lg8.Encode(lg8.Inputs{
		Band:       mustBand(t, "7MHz"),
		Mode:       mustMode(t, "CW"),
		PointPhone: []uint16{1, 2, 3},
	})
	if !errors.Is(err, lg8.ErrPointTableSize) {
		t.Fatalf("expected ErrPointTableSize, got %v", err)
	}
}

func TestEncodeTruncatesOverlongClubName(t *testing.T) {
	// Ten double-byte characters encode to 20 bytes, one past the 19 content
	// bytes a 20-byte field holds. Must truncate cleanly, not fail.
	long := "オール東北コンテスト"
	data, err := lg8.Encode(lg8.Inputs{
		Band:    mustBand(t, "7MHz"),
		Mode:    mustMode(t, "SSB"),
		ClubOps: []string{long},
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	sum, err := lg8.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(sum.ClubOps) != 1 {
		t.Fatalf("expected one club op, got %q", sum.ClubOps)
	}
	if sum.ClubOps[0] != "オール東北コンテス" {
		t.Fatalf("expected one trailing character dropped, got %q", sum.ClubOps[0])
	}
}

func TestEncodeRosterOverflowIgnored(t *testing.T) {
	ops := make([]string, lg8.ClubOpSlots+5)
	for i := range ops {
		ops[i] = "OP"
	}
	data, err := lg8.Encode(lg8.Inputs{Band: mustBand(t, "7MHz"), Mode: mustMode(t, "CW"), ClubOps: ops})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	sum, err := lg8.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(sum.ClubOps) != lg8.ClubOpSlots {
		t.Fatalf("expected roster capped at %d, got %d", lg8.ClubOpSlots, len(sum.ClubOps))
	}
}

func TestEncodeUnencodableAborts(t *testing.T) {
	data, err := lg8.Encode(lg8.Inputs{
		Band:    mustBand(t, "7MHz"),
		Mode:    mustMode(t, "SSB"),
		ClubOps: []string{"op\U0001F363"},
	})
	if err == nil {
		t.Fatal("expected error for unencodable rune")
	}
	if data != nil {
		t.Fatal("no bytes may be returned on encode failure")
	}
}

func TestDecodeTooShortEveryLength(t *testing.T) {
	min := lg8.MinContainerSize()
	for length := 0; length < min; length++ {
		_, err := lg8.Decode(make([]byte, length))
		if !errors.Is(err, lg8.ErrTooShort) {
			t.Fatalf("length %d: expected ErrTooShort, got %v", length, err)
		}
	}
}

func TestDecodeUnknownCodes(t *testing.T) {
	base, err := lg8.Encode(lg8.Inputs{Band: mustBand(t, "7MHz"), Mode: mustMode(t, "SSB")})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	corrupt := append([]byte(nil), base...)
	corrupt[2+6] = 99 // FreqCurrent low byte
	var bandErr *lg8.UnknownBandCodeError
	if _, err := lg8.Decode(corrupt); !errors.As(err, &bandErr) || bandErr.Code != 99 {
		t.Fatalf("expected UnknownBandCodeError(99), got %v", err)
	}

	corrupt = append([]byte(nil), base...)
	corrupt[2] = 200 // ModeCurrent low byte
	var modeErr *lg8.UnknownModeCodeError
	if _, err := lg8.Decode(corrupt); !errors.As(err, &modeErr) || modeErr.Code != 200 {
		t.Fatalf("expected UnknownModeCodeError(200), got %v", err)
	}
}

func TestDecodeSkipsQSORecords(t *testing.T) {
	trailer, err := lg8.Encode(lg8.Inputs{Band: mustBand(t, "430MHz"), Mode: mustMode(t, "FM"), ContestKind: 4})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Rebuild the same container with two fake QSO records between header
	// and trailer.
	records := make([]byte, 2*lg8.QSORecordSize)
	data := []byte{2, 0}
	data = append(data, records...)
	data = append(data, trailer[lg8.HeaderSize:]...)

	sum, err := lg8.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sum.QSOCount != 2 {
		t.Fatalf("QSO count %d, want 2", sum.QSOCount)
	}
	if sum.BandLabel != "430MHz" || sum.ModeLabel != "FM" || sum.ContestKind != 4 {
		t.Fatalf("summary mismatch: %+v", sum)
	}
	if want := lg8.HeaderSize + 2*lg8.QSORecordSize; sum.TrailerOffset != want {
		t.Fatalf("trailer offset %d, want %d", sum.TrailerOffset, want)
	}
}

func TestDecodeRecordBearingFileTooShort(t *testing.T) {
	// Claims one record but holds none beyond the trailer.
	trailer, err := lg8.Encode(lg8.Inputs{Band: mustBand(t, "7MHz"), Mode: mustMode(t, "CW")})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data := append([]byte{1, 0}, trailer[lg8.HeaderSize:]...)
	if _, err := lg8.Decode(data); !errors.Is(err, lg8.ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
}

func TestFileName(t *testing.T) {
	if got := lg8.FileName("2026", "allja", "7MHz"); got != "2026_allja_7MHz.lg8" {
		t.Fatalf("unexpected file name: %q", got)
	}
}

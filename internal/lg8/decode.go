package lg8

import (
	"encoding/binary"
	"fmt"

	"ctestwin/internal/catalog"
	"ctestwin/internal/cp932"
)

// Decode reads a container back into a Summary. Files holding QSO records are
// accepted; their records are skipped, not parsed. Band and mode codes absent
// from the catalog surface as typed errors rather than defaults, since they
// mean the file is foreign or corrupt.
func Decode(b []byte) (Summary, error) {
	if len(b) < MinContainerSize() {
		return Summary{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrTooShort, len(b), MinContainerSize())
	}

	qso := binary.LittleEndian.Uint16(b[:HeaderSize])
	offset := HeaderSize + int(qso)*QSORecordSize
	if len(b) < offset+TrailerFixedSize() {
		return Summary{}, fmt.Errorf("%w: trailer at %d does not fit in %d bytes", ErrTooShort, offset, len(b))
	}
	trailer := b[offset:]

	words := make([]uint16, settingsWords)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(trailer[i*2:])
	}
	modeCode, is001, dupe, bandCode, kind, twice := words[0], words[1], words[2], words[3], words[4], words[5]

	mode, ok := catalog.ModeByCode(modeCode)
	if !ok {
		return Summary{}, &UnknownModeCodeError{Code: modeCode}
	}
	band, ok := catalog.BandByCode(bandCode)
	if !ok {
		return Summary{}, &UnknownBandCodeError{Code: bandCode}
	}

	pos := settingsWords * 2
	phone := readWords(trailer, pos, BandCount())
	pos += BandCount() * 2
	cw := readWords(trailer, pos, BandCount())
	pos += BandCount() * 2

	clubs := make([]string, 0, ClubOpSlots)
	for slot := 0; slot < ClubOpSlots; slot++ {
		name, err := cp932.Decode(trailer[pos : pos+ClubOpWidth])
		if err != nil {
			return Summary{}, fmt.Errorf("club operator %d: %w", slot+1, err)
		}
		clubs = append(clubs, name)
		pos += ClubOpWidth
	}
	for len(clubs) > 0 && clubs[len(clubs)-1] == "" {
		clubs = clubs[:len(clubs)-1]
	}

	var multiPath string
	if rest := trailer[pos:]; len(rest) > 0 {
		path, err := cp932.Decode(rest)
		if err != nil {
			return Summary{}, fmt.Errorf("multi path: %w", err)
		}
		multiPath = path
	}

	return Summary{
		QSOCount:      qso,
		BandLabel:     band.Label,
		ModeLabel:     mode.Label,
		ContestKind:   kind,
		Is001Style:    is001 != 0,
		DupePolicy:    dupe,
		TwiceMinusOne: twice != 0,
		PointPhone:    phone,
		PointCW:       cw,
		ClubOps:       clubs,
		MultiPath:     multiPath,
		TrailerOffset: offset,
	}, nil
}

func readWords(b []byte, pos, n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[pos+i*2:])
	}
	return out
}

package lg8

import (
	"errors"
	"fmt"

	"ctestwin/internal/catalog"
)

const (
	// HeaderSize is the width of the container header: the 2-byte QSO count.
	// The trailer of a freshly created container starts here.
	HeaderSize = 2

	// QSORecordSize is the width of one QSO record. Containers created by
	// this package hold none, but Decode skips over them in foreign files.
	QSORecordSize = 170

	// ClubOpSlots and ClubOpWidth shape the club operator roster: thirty
	// fixed 20-byte CP932 fields.
	ClubOpSlots = 30
	ClubOpWidth = 20

	// settingsWords counts the leading uint16 fields of the trailer.
	settingsWords = 6
)

// ErrTooShort marks decode input smaller than the smallest valid container.
var ErrTooShort = errors.New("container too short")

// ErrPointTableSize marks an encode point table whose length does not match
// the band catalog.
var ErrPointTableSize = errors.New("point table length does not match band catalog")

// UnknownBandCodeError reports a decoded band code absent from the catalog:
// either a corrupt file or a catalog mismatch, and never silently defaulted.
type UnknownBandCodeError struct {
	Code uint16
}

func (e *UnknownBandCodeError) Error() string {
	return fmt.Sprintf("unknown band code %d", e.Code)
}

// UnknownModeCodeError reports a decoded mode code absent from the catalog.
type UnknownModeCodeError struct {
	Code uint16
}

func (e *UnknownModeCodeError) Error() string {
	return fmt.Sprintf("unknown mode code %d", e.Code)
}

// Inputs is the settings snapshot Encode serializes. Nil point tables encode
// as zero-filled; non-nil tables must have exactly one entry per band in
// catalog order. Club operator names beyond the roster capacity are ignored.
type Inputs struct {
	Band          catalog.Band
	Mode          catalog.Mode
	ContestKind   uint16
	Is001Style    bool
	DupePolicy    uint16
	TwiceMinusOne bool
	PointPhone    []uint16
	PointCW       []uint16
	ClubOps       []string
	MultiPath     string
}

// Summary is the decoded view of a container.
type Summary struct {
	QSOCount      uint16
	BandLabel     string
	ModeLabel     string
	ContestKind   uint16
	Is001Style    bool
	DupePolicy    uint16
	TwiceMinusOne bool
	PointPhone    []uint16
	PointCW       []uint16
	ClubOps       []string
	MultiPath     string
	TrailerOffset int
}

// BandCount returns the number of per-band table slots, always read from the
// catalog so the layout cannot drift from it.
func BandCount() int {
	return len(catalog.Bands())
}

// TrailerFixedSize returns the byte size of the trailer without the optional
// trailing path field.
func TrailerFixedSize() int {
	return settingsWords*2 + 2*BandCount()*2 + ClubOpSlots*ClubOpWidth
}

// MinContainerSize is the smallest byte length Decode accepts.
func MinContainerSize() int {
	return HeaderSize + TrailerFixedSize()
}

func boolWord(v bool) uint16 {
	if v {
		return 1
	}
	return 0
}

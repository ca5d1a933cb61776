package lg8

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"ctestwin/internal/cp932"
)

// Encode serializes a settings snapshot into the bytes of an empty container.
// The output is fully determined by the inputs; encoding the same snapshot
// twice yields identical bytes. Overlong strings are truncated by the CP932
// layer, so the only encode failures are mismatched point tables and runes
// the legacy codepage cannot represent. On error no bytes are returned, so a
// caller can never write a partial file.
func Encode(in Inputs) ([]byte, error) {
	phone, err := pointTable(in.PointPhone)
	if err != nil {
		return nil, fmt.Errorf("phone point table: %w", err)
	}
	cw, err := pointTable(in.PointCW)
	if err != nil {
		return nil, fmt.Errorf("cw point table: %w", err)
	}

	buf := new(bytes.Buffer)
	putWord(buf, 0) // QSO count: containers are always created empty

	for _, word := range []uint16{
		in.Mode.Code,
		boolWord(in.Is001Style),
		in.DupePolicy,
		in.Band.Code,
		in.ContestKind,
		boolWord(in.TwiceMinusOne),
	} {
		putWord(buf, word)
	}

	for _, p := range phone {
		putWord(buf, p)
	}
	for _, p := range cw {
		putWord(buf, p)
	}

	for slot := 0; slot < ClubOpSlots; slot++ {
		var name string
		if slot < len(in.ClubOps) {
			name = in.ClubOps[slot]
		}
		field, err := cp932.EncodeFixed(name, ClubOpWidth)
		if err != nil {
			return nil, fmt.Errorf("club operator %d: %w", slot+1, err)
		}
		buf.Write(field)
	}

	if in.MultiPath != "" {
		path, err := cp932.EncodeTerminated(in.MultiPath)
		if err != nil {
			return nil, fmt.Errorf("multi path: %w", err)
		}
		buf.Write(path)
	}

	return buf.Bytes(), nil
}

// pointTable validates a caller-supplied table against the catalog, or
// produces a zero-filled one.
func pointTable(values []uint16) ([]uint16, error) {
	n := BandCount()
	if values == nil {
		return make([]uint16, n), nil
	}
	if len(values) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPointTableSize, len(values), n)
	}
	return values, nil
}

func putWord(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

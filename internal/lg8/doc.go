// Package lg8 encodes and decodes the binary log container consumed by the
// external logging program.
//
// A container is a 2-byte little-endian QSO count followed by zero or more
// 170-byte QSO records and a settings trailer. This package only ever writes
// containers with zero records; the trailer is the payload. Its layout, in
// order: six little-endian uint16 words (current mode, 001-style flag, dupe
// policy, current band, contest kind, twice-minus-one flag), a 23-element
// phone point table, a 23-element CW point table, thirty 20-byte CP932 club
// operator name fields, and an optional NUL-terminated CP932 path to a
// user-defined multiplier definition.
//
// Both point tables are indexed by band code in catalog order; the layout and
// the catalog must never disagree, so all per-band sizes here derive from
// len(catalog.Bands()).
//
// Encode and Decode are pure transforms over byte slices. Identical inputs
// produce identical bytes, and the package holds no state between calls; the
// caller owns all file I/O.
package lg8

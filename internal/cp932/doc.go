// Package cp932 encodes and decodes the fixed-width legacy strings the
// external logging program stores in its binary files.
//
// The program is a Windows application that reads and writes code page 932
// (Microsoft's Shift_JIS variant). golang.org/x/text's ShiftJIS encoding
// implements that repertoire, so this package is a thin layer over it that
// adds the two rules the file format actually depends on: every fixed-width
// field ends in at least one NUL byte, and truncation may only happen on a
// code-unit boundary. Splitting a double-byte unit would desynchronize the
// consumer's parser for the rest of the field, which is worse than losing a
// character.
//
// Runes with no CP932 representation fail the encode outright. Silent
// substitution would write a file the consumer accepts but the operator never
// intended, so the caller is told instead.
package cp932

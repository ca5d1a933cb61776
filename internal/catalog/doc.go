// Package catalog holds the fixed band, mode, and contest tables shared by
// every component that talks to the external logging program.
//
// The tables mirror the program's own enumerations exactly: a band's Code is
// both its wire value in the .lg8 trailer and its slot in every per-band
// array, including the [UrCnum] projection in Ctestwin.ini. The tables are
// package-level constants in all but name; nothing mutates them after
// initialization, so they are safe to share across goroutines.
//
// Components that size per-band arrays must derive the length from
// len(Bands()) rather than hard-coding 23, so the codec and any settings
// projection can never disagree on the table.
package catalog

// Package contestmeta resolves a contest identity — kind number, file-name
// key, and display name — from user-defined contest description files.
//
// Extraction is deliberately forgiving: it examines at most the first 2,000
// characters of a document, prefers a --- front-matter block but falls back
// to scanning the whole excerpt, and drops malformed values instead of
// failing. A half-recognized description must never block file creation; an
// unresolved contest kind falls back to the user-defined-multi kind instead.
package contestmeta

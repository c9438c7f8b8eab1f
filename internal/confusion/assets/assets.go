// Package assets embeds the default packed confusion-graph file: the
// handful of single-byte confusion groups (cp850/cp858, the KOI8 family,
// windows-1251/ibm866, and the niche-Latin group used by the "demote
// niche Latin" legacy helper) that ship with the library.
package assets

import _ "embed"

//go:embed confusion.bin
var Confusion []byte

// Package assets embeds the default packed bigram model file shipped with
// the library. The real training pipeline that produces a full,
// corpus-scale models.bin is out of scope (spec.md §1) — this is a small,
// hand-built fixture covering a representative handful of
// (language, encoding) pairs, enough to exercise stage 8 (bigram scoring)
// and tier 3 of language fill end to end without requiring a multi-
// megabyte corpus-trained artifact to live in this repository.
package assets

import _ "embed"

//go:embed models.bin
var Models []byte

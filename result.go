package chardetect

// Result is a single encoding guess: the canonical registry name (or ""
// for "no opinion"), a confidence in [0,1], and an optional ISO 639-1
// language tag ("" when no language could be inferred).
type Result struct {
	Encoding   string
	Confidence float64
	Language   string
}

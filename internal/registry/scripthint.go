package registry

// ScriptHint names a regional script family a caller can pass to
// DetectWithHint to run that family's heuristic ahead of the full
// pipeline, which still runs in every case. Mirrors the teacher's
// AutoDetectScript, minus the script families (ChineseSimplified/
// Traditional, Korean via Hangul-specific heuristics, Unicode) that
// either have no dedicated heuristic in the source or are already fully
// covered by the CJK gate and bigram scoring.
type ScriptHint int

const (
	NoHint ScriptHint = iota
	Arabic
	Baltic
	CentralEuropean
	Cyrillic
	Greek
	Hebrew
	Japanese
	Turkish
	WesternEuropean
)

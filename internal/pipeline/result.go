package pipeline

// Result is the pipeline's internal outcome type. The root package
// converts this 1:1 into the public chardetect.Result; it is duplicated
// here (rather than imported) because internal/pipeline must not import
// the module root, which in turn imports internal/pipeline.
type Result struct {
	Encoding   string
	Confidence float64
	Language   string
}

// Candidate is a single (encoding, score) pair in the working set that
// narrows as it passes through stages 3-7. Scores are only comparable
// within the same stage; each stage that rescores replaces, it never
// averages with a prior stage's score.
type Candidate struct {
	Encoding string
	Score    float64
	Language string // set once bigram scoring (stage 8) identifies one
}

// Ranking ties are always broken by encoding name (sortCandidates) to
// keep stage 9/10 deterministic, matching the specification's "total and
// deterministic" requirement for tie-breaking (§9).

package pipeline

// confidenceFloor is the score a surviving candidate must clear to be
// reported on its own merits rather than yielding to the universal
// fallback (§9/§12 of the specification's confidence-threshold decision).
const confidenceFloor = 0.5

// binaryFallback is returned the instant the binary gate trips (§4.2):
// detection halts immediately, with no encoding identified.
var binaryFallback = Result{Encoding: "", Confidence: 0.95}

// universalFallback is returned for any non-empty, non-binary input that
// never produces a confident candidate, and for an empty buffer (§4.11).
var universalFallback = Result{Encoding: "windows-1252", Confidence: 0.10}

// fallback implements stage 11: pick the best-ranked candidate if it
// clears the confidence floor, otherwise the universal low-confidence
// default.
func fallback(ranked []Candidate) (Result, bool) {
	if len(ranked) == 0 || ranked[0].Score < confidenceFloor {
		return universalFallback, false
	}
	top := ranked[0]
	return Result{Encoding: top.Encoding, Confidence: top.Score, Language: top.Language}, true
}

package pipeline

import "github.com/asquebay/chardetect/internal/models"

// bigramScoring implements stage 8 (§4.8): score every single-byte
// candidate against the bigram model store's best-matching language
// variant for that encoding, replacing whatever structural score the
// candidate carried. Multi-byte candidates already carry their §4.7
// structural/diversity score and are left untouched — the bigram store
// only ever holds single-byte tables (§6.4).
//
// A candidate with no loaded model keeps its prior score rather than
// being dropped: an empty or partial Store (§9) must never shrink the
// candidate set, only fail to improve its ranking.
func bigramScoring(store *models.Store, buf []byte, candidates []Candidate) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	for i, c := range out {
		if cjkCandidates[c.Encoding] {
			continue
		}
		score, lang, ok := store.ScoreBest(buf, c.Encoding)
		if !ok {
			continue
		}
		out[i].Score = score
		out[i].Language = lang
	}
	return out
}

// asciiCleanScore is what a 7-bit-clean buffer scores "ascii" once it
// survives to ranking. It has no bigram model of its own (§6.4's table
// only covers the encodings that actually disagree on high bytes), so
// without this it would always lose to whichever superset encoding's
// bigram model happens to fit the same English text best — the teacher's
// own regional heuristics call this out directly ("nonANSICount == 0:
// could be plain ASCII") rather than leaving it to statistical scoring.
const asciiCleanScore = 0.92

// preferCleanASCII implements the plain-ASCII special case: when the
// whole buffer is 7-bit clean, "ascii" is the correct call by
// construction, not merely a statistically likely one.
func preferCleanASCII(ctx *Context, candidates []Candidate) []Candidate {
	if ctx.nonASCII() != 0 {
		return candidates
	}
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	for i, c := range out {
		if c.Encoding == "ascii" {
			out[i].Score = asciiCleanScore
		}
	}
	return out
}

package pipeline

import (
	"math"

	"github.com/asquebay/chardetect/internal/confusion"
	"github.com/asquebay/chardetect/internal/models"
)

// nicheLatinCharacteristicBytes lists, per encoding, the byte values that
// only appear when that encoding's extra Latin letters (beyond
// windows-1252) are actually in use. The specification names the helper
// ("demote niche Latin" — §4.9) but leaves its exact byte set
// implementation-defined, the same way it leaves the confidence
// threshold open (see SPEC_FULL.md Open Question Decisions); these
// values are each encoding's set of bytes with no windows-1252
// equivalent letter at all.
var nicheLatinCharacteristicBytes = map[string][]byte{
	"iso-8859-10":  {0xA1, 0xA2, 0xA9, 0xAA, 0xB1, 0xB2, 0xB9, 0xBA}, // Ą Ē Đ Š ą ē đ š
	"iso-8859-14":  {0xA4, 0xA6, 0xA8, 0xAB, 0xB0, 0xB4, 0xB8, 0xBB}, // Welsh/Gaelic-only letters
	"windows-1254": {0xDE, 0xFE}, // Ş/ş (Thorn/thorn under windows-1252)
}

// koi8tCharacteristicBytes are the byte positions assigned to
// Tajik-specific Cyrillic letters in KOI8-T (Қ қ Ғ ғ Ҳ ҳ Ҷ ҷ Ӯ ӯ Ӣ ӣ),
// where KOI8-R has box-drawing characters instead.
var koi8tCharacteristicBytes = []byte{0x80, 0x81, 0x83, 0x8A, 0x8C, 0x8D, 0x8E, 0x90, 0xA1, 0xA2, 0xA5, 0xB5}

func countAny(buf []byte, values []byte) int {
	want := map[byte]bool{}
	for _, v := range values {
		want[v] = true
	}
	n := 0
	for _, b := range buf {
		if want[b] {
			n++
		}
	}
	return n
}

// demoteNicheLatin implements the first legacy helper: drop a niche Latin
// candidate unless its characteristic bytes actually appear in buf.
func demoteNicheLatin(buf []byte, candidates []Candidate) []Candidate {
	out := candidates[:0:0]
	for _, c := range candidates {
		chars, niche := nicheLatinCharacteristicBytes[c.Encoding]
		if niche && countAny(buf, chars) == 0 {
			continue
		}
		out = append(out, c)
	}
	return out
}

// promoteKOI8T implements the second legacy helper: if KOI8-T's
// Tajik-specific bytes appear in buf and both koi8-r and koi8-t survive
// as candidates, give koi8-t a small score bump so it outranks koi8-r.
func promoteKOI8T(buf []byte, candidates []Candidate) []Candidate {
	if countAny(buf, koi8tCharacteristicBytes) == 0 {
		return candidates
	}
	hasR, hasT := false, false
	for _, c := range candidates {
		switch c.Encoding {
		case "koi8-r":
			hasR = true
		case "koi8-t":
			hasT = true
		}
	}
	if !hasR || !hasT {
		return candidates
	}
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	for i, c := range out {
		if c.Encoding == "koi8-t" {
			out[i].Score += 0.05
		}
	}
	return out
}

// resolveConfusion implements stage 9 (§4.9): if the top two ranked
// candidates share a confusion group, re-rank between just those two
// using the hybrid strategy — distinguishing-bigram rescore and category
// voting both run; when they agree that pick is the verdict, and on
// disagreement (or an undecided vote) the bigram rescore's pick wins,
// since it's the only one of the two that actually looks at the input's
// statistics rather than a single vote. Either way the rescore's pick
// ends up first, even when it reverses the bigram-stage order.
func resolveConfusion(graph *confusion.Graph, store *models.Store, buf []byte, ranked []Candidate) []Candidate {
	if len(ranked) < 2 {
		return ranked
	}
	a, b := ranked[0], ranked[1]
	groupIdx, same := graph.SameGroup(a.Encoding, b.Encoding)
	if !same {
		return ranked
	}
	_ = groupIdx
	dbs := graph.DistinguishingBytes(a.Encoding, b.Encoding)
	if len(dbs) == 0 {
		return ranked
	}

	bigramWinner := distinguishingBigramWinner(store, buf, dbs, a, b)
	voteWinner := categoryVoteWinner(buf, dbs, a, b)

	winner := bigramWinner
	if voteWinner != "" && voteWinner == bigramWinner {
		winner = voteWinner
	}

	out := make([]Candidate, len(ranked))
	copy(out, ranked)
	if winner == b.Encoding {
		out[0], out[1] = ranked[1], ranked[0]
	}
	return out
}

func distinguishingBigramWinner(store *models.Store, buf []byte, dbs []confusion.DistinguishingByte, a, b Candidate) string {
	distBytes := map[byte]bool{}
	for _, d := range dbs {
		distBytes[d.Value] = true
	}
	scoreA := restrictedBigramScore(store, buf, distBytes, a)
	scoreB := restrictedBigramScore(store, buf, distBytes, b)
	if scoreB > scoreA {
		return b.Encoding
	}
	return a.Encoding
}

func restrictedBigramScore(store *models.Store, buf []byte, distBytes map[byte]bool, c Candidate) float64 {
	model, ok := store.Model(c.Language, c.Encoding)
	if !ok {
		langs := store.Languages(c.Encoding)
		if len(langs) == 0 {
			return 0
		}
		model, ok = store.Model(langs[0], c.Encoding)
		if !ok {
			return 0
		}
	}
	var dot, sumSq float64
	for i := 0; i+1 < len(buf); i++ {
		if !distBytes[buf[i]] && !distBytes[buf[i+1]] {
			continue
		}
		pair := uint16(buf[i])<<8 | uint16(buf[i+1])
		dot += float64(model.Table[pair])
		sumSq++
	}
	if sumSq == 0 || model.Norm == 0 {
		return 0
	}
	return dot / (math.Sqrt(sumSq) * model.Norm)
}

func categoryVoteWinner(buf []byte, dbs []confusion.DistinguishingByte, a, b Candidate) string {
	present := map[byte]bool{}
	for _, byteVal := range buf {
		present[byteVal] = true
	}
	votesA, votesB := 0, 0
	for _, d := range dbs {
		if !present[d.Value] {
			continue
		}
		switch {
		case d.CatA.Rank() > d.CatB.Rank():
			votesA++
		case d.CatB.Rank() > d.CatA.Rank():
			votesB++
		}
	}
	switch {
	case votesA > votesB:
		return a.Encoding
	case votesB > votesA:
		return b.Encoding
	default:
		return ""
	}
}

package pipeline

// cjkCandidates is the fixed set of multi-byte encodings the CJK gate and
// structural scoring apply to (§4.6): the CJK supersets that would
// otherwise lexically accept almost any byte sequence, wrongly beating
// single-byte encodings with no multi-byte structure at all.
var cjkCandidates = map[string]bool{
	"gb18030": true, "gb2312": true,
	"cp932": true, "shift_jis": true,
	"big5":   true,
	"euc-jp": true,
	"euc-kr": true, "cp949": true,
}

// seqValidator returns the length and validity of the multi-byte
// sequence starting at buf[i], where buf[i] is known to be >= 0x80.
// These lead/trail-byte rules are the standard structural shape of each
// encoding family — not full codepoint validation (that's what the
// validity filter's actual decode pass is for), just "does this look
// like a well-formed multi-byte unit".
type seqValidator func(buf []byte, i int) (length int, ok bool)

var seqValidators = map[string]seqValidator{
	"gb18030":   validateGB18030,
	"gb2312":    validateGB18030,
	"cp932":     validateShiftJIS,
	"shift_jis": validateShiftJIS,
	"big5":      validateBig5,
	"euc-jp":    validateEUCJP,
	"euc-kr":    validateEUCKR,
	"cp949":     validateEUCKR,
}

func inRange(b, lo, hi byte) bool { return b >= lo && b <= hi }

func validateGB18030(buf []byte, i int) (int, bool) {
	lead := buf[i]
	if !inRange(lead, 0x81, 0xFE) || i+1 >= len(buf) {
		return 0, false
	}
	second := buf[i+1]
	if inRange(second, 0x30, 0x39) {
		// 4-byte extension: lead(81-FE) 30-39 81-FE 30-39
		if i+3 >= len(buf) {
			return 0, false
		}
		third, fourth := buf[i+2], buf[i+3]
		if inRange(third, 0x81, 0xFE) && inRange(fourth, 0x30, 0x39) {
			return 4, true
		}
		return 0, false
	}
	// The GB18030 standard also permits ASCII-range trail bytes
	// (0x40-0x7E), but restricting to the high range here cuts off the
	// single biggest source of false-positive structural matches against
	// dense-high-byte single-byte encodings (EBCDIC, Baltic DOS code
	// pages): a stray space or punctuation byte right after a high lead
	// byte would otherwise "validate" as a two-byte GB18030 unit purely
	// by coincidence. Real GB18030 text overwhelmingly uses the
	// high-range trail bytes anyway, so this costs little real recall.
	if inRange(second, 0x80, 0xFE) {
		return 2, true
	}
	return 0, false
}

func validateShiftJIS(buf []byte, i int) (int, bool) {
	lead := buf[i]
	if !(inRange(lead, 0x81, 0x9F) || inRange(lead, 0xE0, 0xFC)) || i+1 >= len(buf) {
		return 0, false
	}
	trail := buf[i+1]
	if inRange(trail, 0x40, 0x7E) || inRange(trail, 0x80, 0xFC) {
		return 2, true
	}
	return 0, false
}

func validateBig5(buf []byte, i int) (int, bool) {
	lead := buf[i]
	if !inRange(lead, 0x81, 0xFE) || i+1 >= len(buf) {
		return 0, false
	}
	trail := buf[i+1]
	if inRange(trail, 0x40, 0x7E) || inRange(trail, 0xA1, 0xFE) {
		return 2, true
	}
	return 0, false
}

func validateEUCJP(buf []byte, i int) (int, bool) {
	lead := buf[i]
	if lead == 0x8F && i+2 < len(buf) { // JIS X 0212, 3 bytes
		if inRange(buf[i+1], 0xA1, 0xFE) && inRange(buf[i+2], 0xA1, 0xFE) {
			return 3, true
		}
		return 0, false
	}
	if lead == 0x8E && i+1 < len(buf) { // half-width katakana, 2 bytes
		if inRange(buf[i+1], 0xA1, 0xDF) {
			return 2, true
		}
		return 0, false
	}
	if inRange(lead, 0xA1, 0xFE) && i+1 < len(buf) {
		if inRange(buf[i+1], 0xA1, 0xFE) {
			return 2, true
		}
	}
	return 0, false
}

func validateEUCKR(buf []byte, i int) (int, bool) {
	lead := buf[i]
	if !inRange(lead, 0xA1, 0xFE) || i+1 >= len(buf) {
		return 0, false
	}
	if inRange(buf[i+1], 0xA1, 0xFE) {
		return 2, true
	}
	return 0, false
}

// analyzeMultiByte performs the single memoised pass over ctx.buf that
// feeds both the CJK gate (stage 6) and structural scoring (stage 7),
// keyed by (buffer length, encoding) in ctx.analysisCache as specified.
func analyzeMultiByte(ctx *Context, encoding string) analysis {
	if a, ok := ctx.getAnalysis(encoding); ok {
		return a
	}
	validator := seqValidators[encoding]
	buf := ctx.buf

	var validBytes, totalNonASCII, sequences int
	leadBytes := map[byte]bool{}

	i := 0
	for i < len(buf) {
		b := buf[i]
		if b < 0x80 {
			i++
			continue
		}
		totalNonASCII++
		if validator != nil {
			if n, ok := validator(buf, i); ok {
				validBytes += n
				sequences++
				leadBytes[b] = true
				i += n
				continue
			}
		}
		i++
	}

	var score float64
	if totalNonASCII > 0 {
		score = float64(validBytes) / float64(totalNonASCII)
	}

	a := analysis{structuralScore: score, validMBPairs: sequences, totalMBBytes: totalNonASCII}
	ctx.putAnalysis(encoding, a)
	// lead-byte diversity is cheap to recompute from the same pass but
	// isn't part of the cached analysis struct (it's only consumed once,
	// by stage 7); stash it where stage 7 can find it without re-scanning.
	ctx.mbScores["__diversity__:"+encoding] = leadByteDiversity(leadBytes)
	return a
}

func leadByteDiversity(leadBytes map[byte]bool) float64 {
	const expectedDistinctLeadBytes = 32.0 // a generous, encoding-agnostic denominator
	d := float64(len(leadBytes)) / expectedDistinctLeadBytes
	if d > 1 {
		d = 1
	}
	return d
}

// cjkGate implements stage 6: drop any CJK candidate whose structural
// fraction falls below 5%. Also ensures ctx.nonASCIICount is populated,
// per §4.6.
func cjkGate(ctx *Context, candidates []Candidate) []Candidate {
	ctx.nonASCII() // force computation if not already done

	out := candidates[:0:0]
	for _, c := range candidates {
		if !cjkCandidates[c.Encoding] {
			out = append(out, c)
			continue
		}
		a := analyzeMultiByte(ctx, c.Encoding)
		ctx.mbScores[c.Encoding] = a.structuralScore
		if a.structuralScore < 0.05 {
			continue // dropped: no multi-byte structural evidence
		}
		out = append(out, c)
	}
	return out
}

// structuralScoring implements stage 7: combine the cached structural
// score with byte-coverage (the same ratio, reused rather than
// recomputed) and lead-byte diversity into each surviving multi-byte
// candidate's score. Weights (0.7 structural/coverage, 0.3 diversity)
// are this implementation's choice — the specification leaves the exact
// combiner unspecified, only that all three signals come from one
// memoised pass (§4.7); see DESIGN.md.
func structuralScoring(ctx *Context, candidates []Candidate) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	for i, c := range out {
		if !cjkCandidates[c.Encoding] {
			continue
		}
		structScore := ctx.mbScores[c.Encoding]
		diversity := ctx.mbScores["__diversity__:"+c.Encoding]
		out[i].Score = 0.7*structScore + 0.3*diversity
	}
	return out
}

package pipeline

// analysisKey identifies a memoised structural-analysis result. The
// buffer itself is implicitly part of the key because a Context is
// constructed fresh for exactly one buffer and discarded at return
// (§3/§5) — length is carried anyway as a defensive discriminator in
// case a future caller ever reuses a Context across slices of the same
// backing array.
type analysisKey struct {
	length   int
	encoding string
}

// analysis is the memoised result of a single structural pass over the
// buffer for one multi-byte encoding: the fraction of bytes inside valid
// multi-byte sequences, how many byte pairs validated, and how many
// total multi-byte-eligible (non-ASCII) bytes were examined.
type analysis struct {
	structuralScore float64
	validMBPairs    int
	totalMBBytes    int
}

// Context is per-invocation scratch state, constructed fresh at the top
// of each Run and discarded at return. It is never shared across calls
// or goroutines (§5).
type Context struct {
	buf []byte

	analysisCache map[analysisKey]analysis
	nonASCIICount int // -1 = not yet computed
	mbScores      map[string]float64

	Trace Trace
}

// NewContext builds scratch state for a single detection call over buf.
func NewContext(buf []byte) *Context {
	return &Context{
		buf:           buf,
		analysisCache: make(map[analysisKey]analysis),
		nonASCIICount: -1,
		mbScores:      make(map[string]float64),
	}
}

func (c *Context) nonASCII() int {
	if c.nonASCIICount >= 0 {
		return c.nonASCIICount
	}
	n := 0
	for _, b := range c.buf {
		if b > 0x7F {
			n++
		}
	}
	c.nonASCIICount = n
	return n
}

func (c *Context) getAnalysis(encoding string) (analysis, bool) {
	a, ok := c.analysisCache[analysisKey{length: len(c.buf), encoding: encoding}]
	return a, ok
}

func (c *Context) putAnalysis(encoding string, a analysis) {
	c.analysisCache[analysisKey{length: len(c.buf), encoding: encoding}] = a
}

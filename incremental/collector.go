// Package incremental provides a buffering front-end over chardetect
// for callers that receive input in chunks. It is explicitly not a
// streaming detector — spec.md's non-goals rule that out — it just
// defers full-buffer detection until the caller says the input is
// complete.
package incremental

import (
	"bytes"

	chardetect "github.com/asquebay/chardetect"
)

// Collector accumulates chunks into a growable buffer and runs the full
// detection pipeline once on Close. It is not goroutine-safe: like
// internal/pipeline.Context, a Collector belongs to exactly one caller.
type Collector struct {
	era chardetect.Era
	buf bytes.Buffer
}

// NewCollector creates a Collector that will detect against era once closed.
func NewCollector(era chardetect.Era) *Collector {
	return &Collector{era: era}
}

// Feed appends chunk to the accumulated buffer. It never fails and never
// triggers detection itself.
func (c *Collector) Feed(chunk []byte) {
	c.buf.Write(chunk)
}

// Close runs detection over everything fed so far and returns the result.
// Calling Close again after Reset starts a fresh accumulation.
func (c *Collector) Close() (chardetect.Result, error) {
	return chardetect.Detect(c.buf.Bytes(), c.era)
}

// Reset discards the accumulated buffer so the Collector can be reused
// for a new input.
func (c *Collector) Reset() {
	c.buf.Reset()
}

package pipeline

import "github.com/asquebay/chardetect/internal/bytesets"

// controlBytes is the "common control bytes excluding TAB/LF/CR" set from
// §4.2: 0x00..0x08, 0x0B, 0x0E..0x1F, minus ESC (0x1B). ESC is left out
// because the binary gate runs before the escape probe, and the
// ISO-2022 designators the probe looks for all begin with ESC; counting
// it would declare every short ISO-2022 text binary. Grounded on the
// teacher's isBinary, generalized from a bare NUL scan to a control-byte
// range and expressed as a bytesets.Set rather than a switch, since the
// binary gate needs only a Count over the buffer.
var controlBytes = bytesets.New(
	bytesets.Range{Lo: 0x00, Hi: 0x08},
	bytesets.Range{Lo: 0x0B, Hi: 0x0B},
	bytesets.Range{Lo: 0x0E, Hi: 0x1A},
	bytesets.Range{Lo: 0x1C, Hi: 0x1F},
)

// binaryGateThreshold is the fraction of control bytes above which a
// buffer is declared binary (§4.2).
const binaryGateThreshold = 0.01

// isBinary implements stage 1. It never short-circuits on an empty
// buffer; the empty-buffer case is fully owned by the BOM stage and the
// fallback stage (§4.1, §4.11), so this function is only ever called with
// a non-empty buffer.
func isBinary(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	count := controlBytes.Count(buf)
	return float64(count)/float64(len(buf)) > binaryGateThreshold
}

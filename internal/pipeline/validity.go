package pipeline

import "github.com/asquebay/chardetect/internal/registry"

// validityFilter implements stage 4 (§4.5): drop any candidate that
// cannot decode buf at all. Multi-byte candidates get the cheap
// structural pre-check first — a candidate with zero valid multi-byte
// sequences anywhere in the buffer is rejected without paying for a
// full x/text decode attempt, since the CJK gate would drop it a moment
// later anyway.
func validityFilter(ctx *Context, candidates []Candidate) []Candidate {
	out := candidates[:0:0]
	for _, c := range candidates {
		if cjkCandidates[c.Encoding] {
			a := analyzeMultiByte(ctx, c.Encoding)
			if a.validMBPairs == 0 {
				continue
			}
		}
		if decodable(ctx.buf, c.Encoding) {
			out = append(out, c)
		}
	}
	return out
}

// decodable reports whether buf is a structurally valid byte stream for
// the named encoding, per its registered decoder strategy.
func decodable(buf []byte, encodingName string) bool {
	info, ok := registry.Lookup(encodingName)
	if !ok {
		return false
	}
	if registry.IsManual(info.Decoder) {
		return registry.ManualValidate(info.Decoder, buf)
	}
	enc, ok := registry.XText(info.Decoder)
	if !ok {
		return false
	}
	if _, err := enc.NewDecoder().Bytes(buf); err != nil {
		return false
	}
	return true
}

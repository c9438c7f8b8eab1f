package pipeline

import "bytes"

// bomEntry is one row of the BOM table. Longer prefixes are listed first
// so a 4-byte UTF-32 mark is never mistaken for the 2-byte UTF-16 mark
// that is one of its own prefixes (FF FE 00 00 starts with FF FE).
type bomEntry struct {
	prefix   []byte
	encoding string
}

var bomTable = []bomEntry{
	{prefix: []byte{0xEF, 0xBB, 0xBF}, encoding: "utf-8-sig"},
	{prefix: []byte{0x00, 0x00, 0xFE, 0xFF}, encoding: "utf-32-be"},
	{prefix: []byte{0xFF, 0xFE, 0x00, 0x00}, encoding: "utf-32-le"},
	{prefix: []byte{0xFE, 0xFF}, encoding: "utf-16-be"},
	{prefix: []byte{0xFF, 0xFE}, encoding: "utf-16-le"},
}

// sniffBOM implements stage 0. An empty buffer defers to the fallback
// stage's empty-buffer rule (§4.1, §4.11); any other input either matches
// a BOM exactly or the stage has nothing to say.
func sniffBOM(buf []byte) (Result, bool) {
	if len(buf) == 0 {
		return Result{}, false
	}
	// Check 4-byte entries before 2-byte entries: bomTable is already in
	// that order, but the loop is careful to require the full prefix match
	// regardless of entry order.
	for _, entry := range bomTable {
		if bytes.HasPrefix(buf, entry.prefix) {
			return Result{Encoding: entry.encoding, Confidence: 1.0}, true
		}
	}
	return Result{}, false
}

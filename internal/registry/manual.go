package registry

// ManualValidate checks whether buf is decodable under a DecoderID that has
// no golang.org/x/text backing. It mirrors the handful of one-off
// encodings x/text doesn't ship: plain ASCII, UTF-32 (either byte order),
// KOI8-T, and the escape-sequence family once the escape probe (stage 2)
// has already failed to match them deterministically.
func ManualValidate(id DecoderID, buf []byte) bool {
	switch id {
	case decASCII:
		for _, b := range buf {
			if b > 0x7F {
				return false
			}
		}
		return true
	case decUTF32BE:
		return validUTF32(buf, true)
	case decUTF32LE:
		return validUTF32(buf, false)
	case "koi8-t":
		// Single-byte codepage: every byte maps to some codepoint, so any
		// buffer is structurally decodable.
		return true
	case decManualNone:
		// Escape-sequence encodings only reach here when stage 2 (the
		// deterministic escape probe) failed to match them; without a
		// recognised designator sequence they are not decodable as this
		// encoding.
		return false
	default:
		return false
	}
}

func validUTF32(buf []byte, bigEndian bool) bool {
	if len(buf)%4 != 0 {
		return false
	}
	for i := 0; i < len(buf); i += 4 {
		var cp uint32
		if bigEndian {
			cp = uint32(buf[i])<<24 | uint32(buf[i+1])<<16 | uint32(buf[i+2])<<8 | uint32(buf[i+3])
		} else {
			cp = uint32(buf[i+3])<<24 | uint32(buf[i+2])<<16 | uint32(buf[i+1])<<8 | uint32(buf[i])
		}
		if cp > 0x10FFFF {
			return false
		}
		if cp >= 0xD800 && cp <= 0xDFFF {
			return false // surrogate halves are illegal in UTF-32
		}
	}
	return true
}

// DecodeUTF32 decodes buf as UTF-32 into a string, used by callers that
// need the language-fill tier's UTF-8 re-encode step (§4.12) for a UTF-32
// source. Assumes validUTF32 has already been checked.
func DecodeUTF32(buf []byte, bigEndian bool) string {
	runes := make([]rune, 0, len(buf)/4)
	for i := 0; i+4 <= len(buf); i += 4 {
		var cp uint32
		if bigEndian {
			cp = uint32(buf[i])<<24 | uint32(buf[i+1])<<16 | uint32(buf[i+2])<<8 | uint32(buf[i+3])
		} else {
			cp = uint32(buf[i+3])<<24 | uint32(buf[i+2])<<16 | uint32(buf[i+1])<<8 | uint32(buf[i])
		}
		runes = append(runes, rune(cp))
	}
	return string(runes)
}

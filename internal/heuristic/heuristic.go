// Package heuristic ports the teacher's per-script regional heuristics
// (detector/detector.go's automaticDetectionForWesternEuropean,
// Cyrillic, Arabic, Baltic, CentralEuropean, Greek, Hebrew, Turkish —
// themselves a port of KDE/Kate's KEncodingDetector), generalized to
// return canonical registry encoding names. Each runs on the input before
// the pipeline does, and its guess becomes a flat score boost applied
// after bigram scoring rather than a standalone top-level verdict (§10 of
// the specification's supplemented features).
package heuristic

import "github.com/asquebay/chardetect/internal/registry"

// Detect runs the heuristic for hint against sample and reports the
// guessed encoding, if any. sample is expected to already be known
// non-binary, non-empty, non-BOM, non-escape-sequence text — the
// earlier pipeline stages own those cases.
func Detect(hint registry.ScriptHint, sample []byte) (string, bool) {
	var enc string
	switch hint {
	case registry.Arabic:
		enc = arabic(sample)
	case registry.Baltic:
		enc = baltic(sample)
	case registry.CentralEuropean:
		enc = centralEuropean(sample)
	case registry.Cyrillic:
		enc = cyrillic(sample)
	case registry.Greek:
		enc = greek(sample)
	case registry.Hebrew:
		enc = hebrew(sample)
	case registry.Japanese:
		enc = japanese(sample)
	case registry.Turkish:
		enc = turkish(sample)
	case registry.WesternEuropean:
		enc = westernEuropean(sample)
	default:
		return "", false
	}
	if enc == "" {
		return "", false
	}
	return enc, true
}

// westernEuropean ports automaticDetectionForWesternEuropean verbatim in
// logic, renamed to this module's canonical encoding spellings
// (cp1252 -> windows-1252).
func westernEuropean(ptr []byte) string {
	size := len(ptr)
	if size == 0 {
		return ""
	}
	nonANSICount := 0
	for i := 0; i < size-1; i++ {
		if ptr[i] > 0x79 {
			nonANSICount++
			if ptr[i] > 0xc1 && ptr[i] < 0xf0 && ptr[i+1] > 0x7f && ptr[i+1] < 0xc0 {
				return "utf-8"
			}
			if ptr[i] >= 0x78 && ptr[i] <= 0x9F {
				return "windows-1252"
			}
		}
	}
	if nonANSICount > 0 {
		return "iso-8859-15"
	}
	return ""
}

// cyrillic ports automaticDetectionForCyrillic verbatim in logic.
func cyrillic(ptr []byte) string {
	size := len(ptr)
	var utf8Mark, koiScore, cp1251Score int
	var koiSt, cp1251St int
	var cp1251SmallRange, koiSmallRange, ibm866SmallRange int

	limit := size
	if limit > 1000 {
		limit = 1000
	}

	for i := 1; i < limit; i++ {
		p := ptr[i]
		switch {
		case p > 0xdf:
			cp1251SmallRange++
			if p == 0xee {
				cp1251Score++
			} else if p == 0xf2 && ptr[i-1] == 0xf1 {
				cp1251St++
			}
		case p > 0xbf:
			koiSmallRange++
			if p == 0xd0 || p == 0xd1 {
				utf8Mark++
			}
			if p == 0xcf {
				koiScore++
			} else if p == 0xd4 && ptr[i-1] == 0xd3 {
				koiSt++
			}
		case p > 0x9f && p < 0xb0:
			ibm866SmallRange++
		}
	}

	if cp1251SmallRange+koiSmallRange+ibm866SmallRange < 8 {
		return ""
	}
	if 3*utf8Mark > cp1251SmallRange+koiSmallRange+ibm866SmallRange {
		return "utf-8"
	}
	if ibm866SmallRange > cp1251SmallRange+koiSmallRange {
		return "ibm866"
	}

	if cp1251St == 0 && koiSt > 1 {
		koiScore += 10
	} else if koiSt == 0 && cp1251St > 1 {
		cp1251Score += 10
	}

	if cp1251Score > koiScore {
		return "windows-1251"
	}
	return "koi8-u"
}

// japanese replaces the teacher's call into an unvendored guess_ja
// dependency (referenced in detector.go but never checked into that
// repo) with a structural lead-byte heuristic choosing between EUC-JP and
// CP932, in the same spirit as the other ported functions: a fast,
// approximate signal, not the final word — the CJK gate and structural
// scoring settle anything this gets wrong.
func japanese(ptr []byte) string {
	var eucHits, sjisHits, asciiHigh int
	for i := 0; i+1 < len(ptr); i++ {
		b := ptr[i]
		switch {
		case b >= 0xA1 && b <= 0xFE && ptr[i+1] >= 0xA1 && ptr[i+1] <= 0xFE:
			eucHits++
		case (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC):
			if n := ptr[i+1]; (n >= 0x40 && n <= 0x7E) || (n >= 0x80 && n <= 0xFC) {
				sjisHits++
			}
		case b > 0x7F:
			asciiHigh++
		}
	}
	switch {
	case eucHits == 0 && sjisHits == 0:
		return ""
	case eucHits >= sjisHits:
		return "euc-jp"
	default:
		return "cp932"
	}
}

func arabic(ptr []byte) string {
	for _, p := range ptr {
		if (p >= 0x80 && p <= 0x9F) || p == 0xA1 || p == 0xA2 || p == 0xA3 ||
			(p >= 0xA5 && p <= 0xAB) || (p >= 0xAE && p <= 0xBA) || p == 0xBC ||
			p == 0xBD || p == 0xBE || p == 0xC0 || (p >= 0xDB && p <= 0xDF) || p >= 0xF3 {
			return "windows-1256"
		}
	}
	return "iso-8859-6"
}

func baltic(ptr []byte) string {
	for _, p := range ptr {
		if p >= 0x80 && p <= 0x9E {
			return "windows-1257"
		}
		if p == 0xA1 || p == 0xA5 {
			return "iso-8859-13"
		}
	}
	return "iso-8859-13"
}

func centralEuropean(ptr []byte) string {
	charset := ""
	for i, p := range ptr {
		if p >= 0x80 && p <= 0x9F {
			if p == 0x81 || p == 0x83 || p == 0x90 || p == 0x98 {
				return "ibm852"
			}
			if i+1 > len(ptr) {
				return "windows-1250"
			}
			charset = "windows-1250"
			continue
		}
		if p == 0xA5 || p == 0xAE || p == 0xBE || p == 0xC3 || p == 0xD0 || p == 0xE3 || p == 0xF0 {
			if i+1 > len(ptr) {
				return "iso-8859-2"
			}
			if charset == "" {
				charset = "iso-8859-2"
			}
			continue
		}
	}
	if charset == "" {
		return "iso-8859-3"
	}
	return charset
}

func greek(ptr []byte) string {
	for _, p := range ptr {
		if p == 0x80 || (p >= 0x82 && p <= 0x87) || p == 0x89 || p == 0x8B ||
			(p >= 0x91 && p <= 0x97) || p == 0x99 || p == 0x9B || p == 0xA4 || p == 0xA5 || p == 0xAE {
			return "windows-1253"
		}
	}
	return "iso-8859-7"
}

func hebrew(ptr []byte) string {
	for _, p := range ptr {
		if p == 0x80 || (p >= 0x82 && p <= 0x89) || p == 0x8B || (p >= 0x91 && p <= 0x99) ||
			p == 0x9B || p == 0xA1 || (p >= 0xBF && p <= 0xC9) || (p >= 0xCB && p <= 0xD8) {
			return "windows-1255"
		}
		if p == 0xDF {
			return "iso-8859-8-i"
		}
	}
	return "iso-8859-8-i"
}

func turkish(ptr []byte) string {
	for _, p := range ptr {
		if p == 0x80 || (p >= 0x82 && p <= 0x8C) || (p >= 0x91 && p <= 0x9C) || p == 0x9F {
			return "windows-1254"
		}
	}
	return "iso-8859-9"
}

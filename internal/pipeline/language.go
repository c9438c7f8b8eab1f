package pipeline

import (
	"github.com/asquebay/chardetect/internal/models"
	"github.com/asquebay/chardetect/internal/registry"
)

// resolveLanguage implements the three-tier language fill (§4.12).
// recorded is whatever language, if any, bigram scoring (stage 8)
// already attributed to encodingName — tier 2.
func resolveLanguage(store *models.Store, encodingName string, buf []byte, recorded string) string {
	if info, ok := registry.Lookup(encodingName); ok {
		if lang, single := info.SingleLanguage(); single {
			return lang
		}
	}
	if recorded != "" {
		return recorded
	}
	return scoreAgainstUTF8Models(store, encodingName, buf)
}

// scoreAgainstUTF8Models is tier 3: re-encode buf to UTF-8 (short-circuit
// if it already is UTF-8) and pick whichever of the store's UTF-8
// language models scores best.
func scoreAgainstUTF8Models(store *models.Store, encodingName string, buf []byte) string {
	utf8Buf := buf
	if encodingName != "utf-8" {
		decoded, ok := decodeToUTF8(encodingName, buf)
		if !ok {
			return ""
		}
		utf8Buf = decoded
	}

	langs := store.Languages("utf-8")
	best, bestScore := "", -1.0
	for _, lang := range langs {
		score, ok := store.ScoreAgainst(utf8Buf, lang, "utf-8")
		if ok && score > bestScore {
			bestScore = score
			best = lang
		}
	}
	return best
}

// decodeToUTF8 converts buf from encodingName into UTF-8 bytes, for
// feeding tier 3's UTF-8-only bigram models. KOI8-T has no x/text
// decoder and no hand-rolled one either (§4.12 does not require perfect
// fidelity here, only a best-effort re-encode for scoring purposes), so
// its bytes are passed through unchanged.
func decodeToUTF8(encodingName string, buf []byte) ([]byte, bool) {
	info, ok := registry.Lookup(encodingName)
	if !ok {
		return nil, false
	}
	if registry.IsManual(info.Decoder) {
		switch info.Decoder {
		case "utf-32-be":
			return []byte(registry.DecodeUTF32(buf, true)), true
		case "utf-32-le":
			return []byte(registry.DecodeUTF32(buf, false)), true
		default:
			return buf, true
		}
	}
	enc, ok := registry.XText(info.Decoder)
	if !ok {
		return nil, false
	}
	decoded, err := enc.NewDecoder().Bytes(buf)
	if err != nil {
		return nil, false
	}
	return decoded, true
}

// Package registry holds the frozen, process-wide table of known
// encodings: their aliases, era, multi-byte-ness, decoder binding and
// registered languages. It is the "Encoding Registry" of the detection
// pipeline's data model.
//
// The registry is built exactly once, lazily, behind a sync.RWMutex with
// double-checked initialization — the same idiom
// bodrovis-lokalise-glossary-guard-core/pkg/checks/registry.go uses for its
// (there: mutable) check registry, adapted here for a table that is built
// once and never mutated again.
package registry

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DecoderID names the decoding strategy bound to an encoding. Most
// resolve to a golang.org/x/text/encoding.Encoding (see decoders.go);
// a handful of encodings x/text does not ship (plain ASCII, UTF-32,
// KOI8-T) are handled by small hand-rolled validators instead.
type DecoderID string

// Info is the immutable per-encoding record. Encoding name is unique
// across the registry.
type Info struct {
	Name      string    // canonical name, e.g. "windows-1252"
	Aliases   []string  // alternate names accepted as input, lowercase
	Era       Era       // modernity tier, used for filtering and tiebreak
	MultiByte bool      // true for CJK/Unicode transform encodings
	Decoder   DecoderID // decoding strategy identifier
	Languages []language.Tag
}

// SingleLanguage reports whether exactly one language is registered,
// and returns its ISO 639-1 tag if so. Tier 1 of language fill (§4.12)
// uses this.
func (i Info) SingleLanguage() (string, bool) {
	if len(i.Languages) != 1 {
		return "", false
	}
	base, conf := i.Languages[0].Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}

var (
	mu      sync.RWMutex
	built   bool
	byName  map[string]Info
	byAlias map[string]string // lowercase alias -> canonical name
	ordered []Info            // registration order, used for deterministic iteration
)

// All returns every registered Info in a fixed, deterministic order
// (registration order, not sorted — callers that need a filtered,
// ordered candidate list should use ByEra).
func All() []Info {
	ensureBuilt()
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Info, len(ordered))
	copy(out, ordered)
	return out
}

// ByEra returns the ordered candidate list for a requested era (stage 3:
// candidate filter). AllEras returns every encoding except the
// BOM-exclusive UTF transforms, which the BOM stage already special-cases
// and which should never be reached by heuristic/bigram scoring.
func ByEra(want Era) []Info {
	ensureBuilt()
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Info, 0, len(ordered))
	for _, info := range ordered {
		if isBOMOnly(info.Name) {
			continue
		}
		if info.Era.Matches(want) {
			out = append(out, info)
		}
	}
	return out
}

// Lookup resolves a canonical name or alias (case-insensitive) to its Info.
func Lookup(name string) (Info, bool) {
	ensureBuilt()
	key := strings.ToLower(strings.TrimSpace(name))
	mu.RLock()
	defer mu.RUnlock()
	if info, ok := byName[key]; ok {
		return info, true
	}
	if canon, ok := byAlias[key]; ok {
		return byName[canon], true
	}
	return Info{}, false
}

// Exists reports whether name is a known canonical encoding name (exact,
// case-sensitive match on the canonical spelling) — used by invariant
// checks that a returned encoding is either "" or registered.
func Exists(name string) bool {
	if name == "" {
		return true
	}
	ensureBuilt()
	mu.RLock()
	defer mu.RUnlock()
	_, ok := byName[name]
	return ok
}

func isBOMOnly(name string) bool {
	switch name {
	case "utf-8-sig", "utf-16-be", "utf-16-le", "utf-32-be", "utf-32-le":
		return true
	default:
		return false
	}
}

func ensureBuilt() {
	mu.RLock()
	if built {
		mu.RUnlock()
		return
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if built {
		// Lost the race to another initializer; its table is equivalent
		// (build() is pure), so just discard ours.
		return
	}
	byName, byAlias, ordered = build()
	built = true
}

func build() (map[string]Info, map[string]string, []Info) {
	infos := staticTable()
	names := make(map[string]Info, len(infos))
	aliases := make(map[string]string)
	for _, info := range infos {
		names[info.Name] = info
		aliases[strings.ToLower(info.Name)] = info.Name
		for _, a := range info.Aliases {
			aliases[strings.ToLower(a)] = info.Name
		}
	}
	ordered := make([]Info, len(infos))
	copy(ordered, infos)
	return names, aliases, ordered
}

func mustTag(s string) language.Tag {
	if s == "" {
		return language.Und
	}
	return language.MustParse(s)
}

func tags(codes ...string) []language.Tag {
	if len(codes) == 0 {
		return nil
	}
	out := make([]language.Tag, 0, len(codes))
	for _, c := range codes {
		out = append(out, mustTag(c))
	}
	return out
}

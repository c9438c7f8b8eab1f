// Package chardetect identifies the character encoding of an opaque
// byte buffer: given raw bytes, it returns the most likely encoding, an
// optional ISO 639-1 language tag, and a calibrated confidence, without
// decoding the text itself.
//
// Detection runs a fixed, ordered pipeline — BOM sniffing, a binary-data
// gate, escape-sequence probing, registry-driven candidate filtering,
// decodability and structural checks, bigram statistics, confusion-group
// resolution, an era-aware tiebreak, and a three-tier language fill —
// documented stage by stage in internal/pipeline. The three supporting
// data stores (the encoding registry, the bigram model store, and the
// confusion graph) are loaded once per process and shared across every
// call.
package chardetect

import (
	"github.com/asquebay/chardetect/internal/confusion"
	"github.com/asquebay/chardetect/internal/heuristic"
	"github.com/asquebay/chardetect/internal/models"
	"github.com/asquebay/chardetect/internal/pipeline"
	"github.com/asquebay/chardetect/internal/registry"
)

// Era re-exports the registry's modernity tiers so callers never need to
// import an internal package to pass one to Detect.
type Era = registry.Era

const (
	ModernWeb      = registry.ModernWeb
	LegacyISO      = registry.LegacyISO
	LegacyRegional = registry.LegacyRegional
	DOS            = registry.DOS
	LegacyMac      = registry.LegacyMac
	Mainframe      = registry.Mainframe
	AllEras        = registry.AllEras
)

// ScriptHint re-exports the registry's script-family hint type for
// DetectWithHint.
type ScriptHint = registry.ScriptHint

const (
	NoHint          = registry.NoHint
	Arabic          = registry.Arabic
	Baltic          = registry.Baltic
	CentralEuropean = registry.CentralEuropean
	Cyrillic        = registry.Cyrillic
	Greek           = registry.Greek
	Hebrew          = registry.Hebrew
	Japanese        = registry.Japanese
	Turkish         = registry.Turkish
	WesternEuropean = registry.WesternEuropean
)

func loadStores() (*models.Store, *confusion.Graph, error) {
	store, err := models.Default()
	if err != nil {
		return nil, nil, err
	}
	graph, err := confusion.Default()
	if err != nil {
		return nil, nil, err
	}
	return store, graph, nil
}

// Detect returns the single best encoding guess for b. era narrows the
// candidate set to a modernity tier; pass AllEras for the unrestricted
// default. The only error this returns is a failure to load the
// embedded bigram model store or confusion graph.
func Detect(b []byte, era Era) (Result, error) {
	store, graph, err := loadStores()
	if err != nil {
		return Result{}, err
	}
	r, _ := pipeline.Run(b, era, store, graph)
	return Result(r), nil
}

// DetectAll returns every surviving candidate encoding for b, ranked
// most-likely first, instead of collapsing to a single winner.
func DetectAll(b []byte, era Era) ([]Result, error) {
	store, graph, err := loadStores()
	if err != nil {
		return nil, err
	}
	results := pipeline.RunAll(b, era, store, graph)
	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = Result(r)
	}
	return out, nil
}

// DetectWithHint is Detect plus a script-family hint: the matching
// regional heuristic (internal/heuristic) runs first and its guess, if
// any, nudges candidate ranking toward that encoding. It never bypasses
// the rest of the pipeline and never changes Detect/DetectAll's
// contract. A hint whose guess is not among the surviving candidates
// changes nothing.
func DetectWithHint(b []byte, era Era, hint ScriptHint) (Result, error) {
	store, graph, err := loadStores()
	if err != nil {
		return Result{}, err
	}
	guess, _ := heuristic.Detect(hint, sampleFor(b))
	r, _ := pipeline.RunWithHint(b, era, store, graph, guess)
	return Result(r), nil
}

// maxHeuristicSample mirrors the teacher's maxBuffer: heuristics only
// ever need a bounded prefix of the input.
const maxHeuristicSample = 16 * 1024

func sampleFor(b []byte) []byte {
	if len(b) > maxHeuristicSample {
		return b[:maxHeuristicSample]
	}
	return b
}

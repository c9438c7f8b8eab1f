// Package pipeline implements the ordered detection pipeline: BOM sniff,
// binary gate, escape probe, candidate filter, validity filter, CJK
// gate, structural scoring, bigram scoring, confusion resolution, era
// tiebreak, fallback, and language fill. Each stage is a plain function
// in this package, all sharing the Context/Candidate working types
// (result.go, context.go); runStages calls them in a fixed order rather
// than going through an inheritance hierarchy.
package pipeline

import (
	"sort"

	"github.com/asquebay/chardetect/internal/confusion"
	"github.com/asquebay/chardetect/internal/models"
	"github.com/asquebay/chardetect/internal/registry"
)

// heuristicBoost is the flat score bump a script heuristic's guess
// receives once it survives to the ranking stage. It is added after
// bigram scoring (§10 supplemented feature: the heuristic is a signal,
// not a verdict — confusion resolution and the era tiebreak still get
// the final say).
const heuristicBoost = 0.1

// Run executes the full pipeline over buf for the requested era hint and
// returns the chosen result plus a diagnostic Trace of which stage
// produced it.
func Run(buf []byte, era registry.Era, store *models.Store, graph *confusion.Graph) (Result, Trace) {
	return RunWithHint(buf, era, store, graph, "")
}

// RunWithHint is Run plus an optional script-heuristic guess (already
// resolved by the caller via internal/heuristic) that nudges ranking
// toward that encoding without bypassing the rest of the pipeline.
func RunWithHint(buf []byte, era registry.Era, store *models.Store, graph *confusion.Graph, heuristicGuess string) (Result, Trace) {
	ranked, shortCircuit, trace := runStages(buf, era, store, graph, heuristicGuess)
	if shortCircuit != nil {
		return *shortCircuit, trace
	}

	result, confident := fallback(ranked)
	if !confident {
		return result, Trace{Source: SourceFallback}
	}
	result.Language = resolveLanguage(store, result.Encoding, buf, result.Language)
	return result, Trace{Source: SourceAutoDetected}
}

// RunAll is Run's DetectAll counterpart: it returns every surviving
// candidate as a Result, most likely first, instead of collapsing to a
// single winner. A short-circuiting stage (BOM, escape probe, binary
// gate, empty buffer) still yields exactly one Result, matching Run.
//
// Element 0 always equals what Run would have returned for the same
// input (detect_all(x)[0] == detect(x)): in particular, when nothing
// clears the confidence floor, RunAll collapses to the same single
// fallback Result as Run rather than exposing the unranked also-rans.
func RunAll(buf []byte, era registry.Era, store *models.Store, graph *confusion.Graph) []Result {
	ranked, shortCircuit, _ := runStages(buf, era, store, graph, "")
	if shortCircuit != nil {
		return []Result{*shortCircuit}
	}

	if result, confident := fallback(ranked); !confident {
		return []Result{result}
	}

	out := make([]Result, len(ranked))
	for i, c := range ranked {
		lang := resolveLanguage(store, c.Encoding, buf, c.Language)
		out[i] = Result{Encoding: c.Encoding, Confidence: c.Score, Language: lang}
	}
	return out
}

// runStages runs every stage through era tiebreak and returns either a
// short-circuit Result (BOM/escape/binary/empty) or a fully ranked
// candidate list for the caller to collapse (fallback) or expose in
// full (RunAll).
func runStages(buf []byte, era registry.Era, store *models.Store, graph *confusion.Graph, heuristicGuess string) ([]Candidate, *Result, Trace) {
	if r, ok := sniffBOM(buf); ok {
		return nil, &r, Trace{Source: SourceBOM}
	}
	if len(buf) == 0 {
		r := universalFallback
		return nil, &r, Trace{Source: SourceFallback}
	}
	if isBinary(buf) {
		r := binaryFallback
		return nil, &r, Trace{Source: SourceFallback}
	}
	if r, ok := escapeProbe(buf); ok {
		return nil, &r, Trace{Source: SourceEscape}
	}

	ctx := NewContext(buf)

	candidates := filterCandidates(era)
	candidates = validityFilter(ctx, candidates)
	candidates = cjkGate(ctx, candidates)
	candidates = structuralScoring(ctx, candidates)
	candidates = bigramScoring(store, buf, candidates)
	candidates = preferCleanASCII(ctx, candidates)
	candidates = applyHeuristicBoost(candidates, heuristicGuess)
	candidates = demoteNicheLatin(buf, candidates)
	candidates = promoteKOI8T(buf, candidates)

	ranked := sortCandidates(candidates)
	ranked = resolveConfusion(graph, store, buf, ranked)
	ranked = eraTiebreak(era, ranked)
	return ranked, nil, Trace{}
}

func applyHeuristicBoost(candidates []Candidate, guess string) []Candidate {
	if guess == "" {
		return candidates
	}
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	for i, c := range out {
		if c.Encoding == guess {
			out[i].Score = min1(c.Score + heuristicBoost)
		}
	}
	return out
}

func min1(x float64) float64 {
	if x > 1 {
		return 1
	}
	return x
}

// sortCandidates orders by descending score, breaking ties by encoding
// name so ranking is total and deterministic (§3's candidate working-set
// requirement).
func sortCandidates(candidates []Candidate) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		const epsilon = 1e-6
		if diff := out[i].Score - out[j].Score; diff > epsilon || diff < -epsilon {
			return out[i].Score > out[j].Score
		}
		return out[i].Encoding < out[j].Encoding
	})
	return out
}

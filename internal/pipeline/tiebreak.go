package pipeline

import "github.com/asquebay/chardetect/internal/registry"

// eraTiebreakMargin is the "within 10% of the leader" band from §4.10.
const eraTiebreakMargin = 0.9

// eraTiebreak implements stage 10. requestedEra is the era the caller
// asked to prefer. A caller that restricts to a single era already
// filtered every out-of-era candidate away back at stage 3, so this
// stage can only ever fire in the default, unrestricted case
// (requestedEra == AllEras): there, "the caller's requested era" is read
// as a standing preference for the most modern era (ModernWeb) rather
// than a membership test, since membership alone would make the rule
// vacuous for every call that doesn't narrow the era set — see
// DESIGN.md for the full reasoning.
func eraTiebreak(requestedEra registry.Era, ranked []Candidate) []Candidate {
	preferred := requestedEra
	if requestedEra == registry.AllEras {
		preferred = registry.ModernWeb
	}
	if len(ranked) < 2 {
		return ranked
	}

	leaderInfo, ok := registry.Lookup(ranked[0].Encoding)
	if ok && leaderInfo.Era == preferred {
		return ranked
	}

	leaderScore := ranked[0].Score
	for i := 1; i < len(ranked); i++ {
		info, ok := registry.Lookup(ranked[i].Encoding)
		if !ok || info.Era != preferred {
			continue
		}
		if ranked[i].Score < eraTiebreakMargin*leaderScore {
			// Candidates are sorted descending, so nothing further down
			// the list can satisfy the margin either.
			break
		}
		out := make([]Candidate, 0, len(ranked))
		out = append(out, ranked[i])
		out = append(out, ranked[:i]...)
		out = append(out, ranked[i+1:]...)
		return out
	}
	return ranked
}

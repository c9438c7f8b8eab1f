package pipeline

import "github.com/asquebay/chardetect/internal/registry"

// filterCandidates implements stage 3: query the registry for every
// encoding whose era is in the caller's requested set, in registration
// order. BOM-only UTF transforms are excluded by registry.ByEra itself,
// since stage 0 already owns them exclusively.
func filterCandidates(era registry.Era) []Candidate {
	infos := registry.ByEra(era)
	out := make([]Candidate, len(infos))
	for i, info := range infos {
		out[i] = Candidate{Encoding: info.Name, Score: 0}
	}
	return out
}

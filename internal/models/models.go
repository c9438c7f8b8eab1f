// Package models implements the Bigram Model Store: dense per-(language,
// encoding) byte-pair log-probability tables used by stage 8 (bigram
// scoring) and tier 3 of language fill (§4.12).
//
// The packed binary layout (§6 of the specification) is modelled on
// axiomhq/fsst's Table.WriteTo/ReadFrom — a small fixed header followed by
// a sequence of self-describing records — generalized from fsst's
// fixed-size symbol records to this format's length-prefixed
// (lang, encoding, table) records.
package models

import "math"

// TableSize is the number of entries in a dense bigram table: one slot per
// possible (byte_hi<<8)|byte_lo pair.
const TableSize = 1 << 16

// BigramModel is a single (language, encoding) bigram table. Table values
// are non-negative fixed-point normalised log-probabilities (the wire
// format stores them as u16), which keeps every cosine-style score in
// [0,1] without needing to clamp.
type BigramModel struct {
	Lang     string
	Encoding string
	Table    [TableSize]uint16
	Norm     float64 // precomputed L2 norm of Table, cached at build time
}

func (m *BigramModel) computeNorm() {
	var sumSq float64
	for _, v := range m.Table {
		f := float64(v)
		sumSq += f * f
	}
	m.Norm = math.Sqrt(sumSq)
}

// Store holds every loaded model plus two derived indices, matching the
// specification's data model: the full (lang, enc) -> table map, an index
// from encoding to its language variants, and a map of precomputed norms.
// All three are built exactly once in Build/ReadFrom and never mutated
// after that.
type Store struct {
	tables     map[key]*BigramModel
	byEncoding map[string][]string // encoding -> sorted list of languages
	norms      map[key]float64
}

type key struct {
	lang string
	enc  string
}

// Build constructs a Store from a slice of models (used by both the
// packed-file loader and tests that want an in-memory fixture without
// going through the wire format).
func Build(models []BigramModel) *Store {
	s := &Store{
		tables:     make(map[key]*BigramModel, len(models)),
		byEncoding: make(map[string][]string),
		norms:      make(map[key]float64, len(models)),
	}
	for i := range models {
		m := models[i]
		m.computeNorm()
		k := key{lang: m.Lang, enc: m.Encoding}
		stored := m
		s.tables[k] = &stored
		s.norms[k] = stored.Norm
		s.byEncoding[m.Encoding] = append(s.byEncoding[m.Encoding], m.Lang)
	}
	return s
}

// Empty returns a Store with no models — legal per the specification: the
// bigram stage simply has nothing to score against, so every single-byte
// candidate falls through to structural/heuristic evidence or the
// universal fallback.
func Empty() *Store { return Build(nil) }

// Languages returns the language variants registered for an encoding.
func (s *Store) Languages(encoding string) []string {
	return s.byEncoding[encoding]
}

// Model returns the table for (lang, encoding), if loaded.
func (s *Store) Model(lang, encoding string) (*BigramModel, bool) {
	m, ok := s.tables[key{lang: lang, enc: encoding}]
	return m, ok
}

// Len reports how many (lang, encoding) tables are loaded.
func (s *Store) Len() int { return len(s.tables) }

// ScoreBest scores buf against every language variant registered for
// encoding and returns the best cosine-like score and the language that
// produced it (stage 8). Returns ok=false if no model exists for the
// encoding or buf is too short to form a bigram.
func (s *Store) ScoreBest(buf []byte, encoding string) (score float64, lang string, ok bool) {
	if len(buf) < 2 {
		return 0, "", false
	}
	langs := s.byEncoding[encoding]
	if len(langs) == 0 {
		return 0, "", false
	}
	counts, inputNorm := bigramCounts(buf)
	if inputNorm == 0 {
		return 0, "", false
	}
	best := -1.0
	bestLang := ""
	for _, l := range langs {
		m := s.tables[key{lang: l, enc: encoding}]
		if m == nil || m.Norm == 0 {
			continue
		}
		dot := 0.0
		for pair, cnt := range counts {
			dot += float64(cnt) * float64(m.Table[pair])
		}
		cos := dot / (inputNorm * m.Norm)
		if cos > best {
			best = cos
			bestLang = l
		}
	}
	if best < 0 {
		return 0, "", false
	}
	return best, bestLang, true
}

// ScoreAgainst scores buf directly against one known (lang, encoding)
// model. Used by tier 3 of language fill (§4.12), which tries each of the
// UTF-8 language models in turn.
func (s *Store) ScoreAgainst(buf []byte, lang, encoding string) (float64, bool) {
	if len(buf) < 2 {
		return 0, false
	}
	m, ok := s.tables[key{lang: lang, enc: encoding}]
	if !ok || m.Norm == 0 {
		return 0, false
	}
	counts, inputNorm := bigramCounts(buf)
	if inputNorm == 0 {
		return 0, false
	}
	dot := 0.0
	for pair, cnt := range counts {
		dot += float64(cnt) * float64(m.Table[pair])
	}
	return dot / (inputNorm * m.Norm), true
}

func bigramCounts(buf []byte) (map[uint16]int, float64) {
	counts := make(map[uint16]int, len(buf))
	for i := 0; i+1 < len(buf); i++ {
		pair := uint16(buf[i])<<8 | uint16(buf[i+1])
		counts[pair]++
	}
	var sumSq float64
	for _, c := range counts {
		f := float64(c)
		sumSq += f * f
	}
	return counts, math.Sqrt(sumSq)
}

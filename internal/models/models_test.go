package models

import (
	"bytes"
	"testing"
)

func sampleModel(lang, enc string, boost [2]byte, weight uint16) BigramModel {
	m := BigramModel{Lang: lang, Encoding: enc}
	pair := uint16(boost[0])<<8 | uint16(boost[1])
	m.Table[pair] = weight
	return m
}

func TestBuilderRoundTrip(t *testing.T) {
	var b Builder
	b.Add(sampleModel("en", "windows-1252", [2]byte{'t', 'h'}, 1000))
	b.Add(sampleModel("de", "cp037", [2]byte{'c', 'h'}, 900))

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	store, err := ReadFrom(&buf)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 models, got %d", store.Len())
	}

	m, ok := store.Model("en", "windows-1252")
	if !ok {
		t.Fatalf("expected en/windows-1252 model")
	}
	if m.Norm == 0 {
		t.Fatalf("expected non-zero norm after round trip")
	}

	langs := store.Languages("cp037")
	if len(langs) != 1 || langs[0] != "de" {
		t.Fatalf("expected [de], got %v", langs)
	}
}

func TestReadFromRejectsBadVersion(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0x00, 0x00}
	if _, err := ReadFrom(bytes.NewReader(buf)); err != ErrBadVersion {
		t.Fatalf("expected ErrBadVersion, got %v", err)
	}
}

func TestScoreBestPrefersMatchingLanguage(t *testing.T) {
	var b Builder
	en := BigramModel{Lang: "en", Encoding: "windows-1252"}
	en.Table[uint16('t')<<8|uint16('h')] = 60000
	de := BigramModel{Lang: "de", Encoding: "windows-1252"}
	de.Table[uint16('s')<<8|uint16('c')] = 60000
	b.Add(en)
	b.Add(de)

	var wire bytes.Buffer
	if _, err := b.WriteTo(&wire); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	store, err := ReadFrom(&wire)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	score, lang, ok := store.ScoreBest([]byte("the there then"), "windows-1252")
	if !ok {
		t.Fatalf("expected a score")
	}
	if lang != "en" {
		t.Fatalf("expected en to win, got %q (score %f)", lang, score)
	}
	if score <= 0 || score > 1 {
		t.Fatalf("cosine-like score out of range: %f", score)
	}
}

func TestScoreBestShortInputSkipped(t *testing.T) {
	store := Empty()
	if _, _, ok := store.ScoreBest([]byte("a"), "windows-1252"); ok {
		t.Fatalf("single-byte input must skip bigram scoring")
	}
}

func TestEmptyStoreHasNoModels(t *testing.T) {
	store := Empty()
	if store.Len() != 0 {
		t.Fatalf("expected empty store")
	}
	if _, _, ok := store.ScoreBest([]byte("hello world"), "windows-1252"); ok {
		t.Fatalf("expected no score from an empty store")
	}
}

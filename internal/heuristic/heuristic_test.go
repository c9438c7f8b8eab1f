package heuristic

import (
	"testing"

	"github.com/asquebay/chardetect/internal/registry"
)

func TestWesternEuropeanDetectsCP1252(t *testing.T) {
	sample := []byte{0x41, 0x42, 0x80, 0x90, 0x43} // 0x80 falls in the cp1252 tell range
	enc, ok := Detect(registry.WesternEuropean, sample)
	if !ok || enc != "windows-1252" {
		t.Fatalf("got (%q, %v), want windows-1252", enc, ok)
	}
}

func TestCyrillicShortSampleIsInconclusive(t *testing.T) {
	_, ok := Detect(registry.Cyrillic, []byte{0xC0, 0xC1})
	if ok {
		t.Fatalf("expected short cyrillic sample to be inconclusive")
	}
}

func TestArabicFallsBackToISO88596(t *testing.T) {
	enc, ok := Detect(registry.Arabic, []byte("plain ascii, no telltale bytes"))
	if !ok || enc != "iso-8859-6" {
		t.Fatalf("got (%q, %v), want iso-8859-6", enc, ok)
	}
}

func TestUnknownHintReturnsFalse(t *testing.T) {
	_, ok := Detect(registry.NoHint, []byte("anything"))
	if ok {
		t.Fatalf("NoHint must never match")
	}
}

func TestJapanesePrefersEUCJPOnEUCStructure(t *testing.T) {
	sample := []byte{0xA4, 0xA2, 0xA4, 0xA4, 0xA4, 0xA6} // three valid EUC-JP pairs
	enc, ok := Detect(registry.Japanese, sample)
	if !ok || enc != "euc-jp" {
		t.Fatalf("got (%q, %v), want euc-jp", enc, ok)
	}
}

package chardetect

import (
	"strings"
	"testing"

	"github.com/asquebay/chardetect/internal/registry"
)

func TestUTF8SigBOM(t *testing.T) {
	b := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	r, err := Detect(b, AllEras)
	if err != nil {
		t.Fatal(err)
	}
	if r.Encoding != "utf-8-sig" || r.Confidence != 1.0 || r.Language != "" {
		t.Fatalf("got %+v", r)
	}
}

func TestUTF16LEBOM(t *testing.T) {
	b := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	r, err := Detect(b, AllEras)
	if err != nil {
		t.Fatal(err)
	}
	if r.Encoding != "utf-16-le" || r.Confidence != 1.0 {
		t.Fatalf("got %+v", r)
	}
}

func TestISO2022JPEscape(t *testing.T) {
	b := []byte{0x1B, 0x24, 0x42, 0x30, 0x6C, 0x1B, 0x28, 0x42}
	r, err := Detect(b, AllEras)
	if err != nil {
		t.Fatal(err)
	}
	if r.Encoding != "iso-2022-jp" || r.Confidence != 1.0 || r.Language != "ja" {
		t.Fatalf("got %+v", r)
	}
}

func TestUTF7Escape(t *testing.T) {
	b := []byte{0x2B, 0x5A, 0x67, 0x51, 0x2D}
	r, err := Detect(b, AllEras)
	if err != nil {
		t.Fatal(err)
	}
	if r.Encoding != "utf-7" || r.Confidence != 1.0 || r.Language != "" {
		t.Fatalf("got %+v", r)
	}
}

func TestBinaryGateHalts(t *testing.T) {
	buf := make([]byte, 1024)
	for i := range buf {
		if i%2 == 0 {
			buf[i] = 0xFF
		}
	}
	r, err := Detect(buf, AllEras)
	if err != nil {
		t.Fatal(err)
	}
	if r.Encoding != "" || r.Confidence != 0.95 || r.Language != "" {
		t.Fatalf("got %+v", r)
	}
}

func TestEmptyBufferFallback(t *testing.T) {
	r, err := Detect(nil, AllEras)
	if err != nil {
		t.Fatal(err)
	}
	if r.Encoding != "windows-1252" || r.Confidence != 0.10 || r.Language != "" {
		t.Fatalf("got %+v", r)
	}
}

func TestPlainASCIIPrintable(t *testing.T) {
	b := []byte(strings.Repeat("The quick brown fox jumps.", 3))
	r, err := Detect(b, AllEras)
	if err != nil {
		t.Fatal(err)
	}
	if r.Encoding != "ascii" && r.Encoding != "utf-8" {
		t.Fatalf("got %+v, want ascii or utf-8", r)
	}
	if r.Confidence < 0.5 {
		t.Fatalf("confidence %v below the acceptance floor", r.Confidence)
	}
}

// Universal property 4/7: the returned encoding is always either empty
// or a registered name, and the language, if any, is exactly two
// lowercase ASCII letters.
func TestResultShapeAcrossInputs(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("hello world"),
		{0xEF, 0xBB, 0xBF, 'x'},
		{0x1B, 0x24, 0x42, 0x30, 0x6C, 0x1B, 0x28, 0x42},
		bytesOf(0x00, 600),
	}
	for _, b := range inputs {
		r, err := Detect(b, AllEras)
		if err != nil {
			t.Fatalf("Detect(%v): %v", b, err)
		}
		if !registry.Exists(r.Encoding) {
			t.Errorf("encoding %q is not a registered name", r.Encoding)
		}
		if r.Language != "" {
			if len(r.Language) != 2 {
				t.Errorf("language %q is not two letters", r.Language)
			}
			for _, c := range r.Language {
				if c < 'a' || c > 'z' {
					t.Errorf("language %q is not lowercase ASCII", r.Language)
				}
			}
		}
	}
}

// Universal property 5: detect_all(x)[0] == detect(x).
func TestDetectAllAgreesWithDetectOnTopResult(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("hello world, this is a plain ASCII sentence."),
		{0xEF, 0xBB, 0xBF, 'x'},
	}
	for _, b := range inputs {
		single, err := Detect(b, AllEras)
		if err != nil {
			t.Fatalf("Detect: %v", err)
		}
		all, err := DetectAll(b, AllEras)
		if err != nil {
			t.Fatalf("DetectAll: %v", err)
		}
		if len(all) == 0 {
			t.Fatalf("DetectAll returned no results for %v", b)
		}
		if all[0] != single {
			t.Errorf("DetectAll()[0] = %+v, Detect() = %+v", all[0], single)
		}
	}
}

func TestDetectWithHintWesternEuropean(t *testing.T) {
	b := []byte{'B', 'o', 'n', 'j', 'o', 'u', 'r', 0x80, 'c', 'a'}
	r, err := DetectWithHint(b, AllEras, WesternEuropean)
	if err != nil {
		t.Fatal(err)
	}
	if r.Encoding == "" {
		t.Fatalf("expected a concrete encoding, got %+v", r)
	}
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

package confusion

import (
	"bytes"
	"testing"
)

func buildSample() *Graph {
	b := NewBuilder()
	b.AddGroup("cp850", "cp858")
	b.AddPair("cp850", "cp858", []DistinguishingByte{
		{Value: 0xD5, CatA: CategorySymbol, CatB: CategorySymbol},
	})
	return b.Build()
}

func TestSameGroup(t *testing.T) {
	g := buildSample()
	idx, ok := g.SameGroup("cp850", "cp858")
	if !ok || idx != 0 {
		t.Fatalf("expected cp850/cp858 in group 0, got idx=%d ok=%v", idx, ok)
	}
	if _, ok := g.SameGroup("cp850", "windows-1252"); ok {
		t.Fatalf("windows-1252 must not be grouped with cp850")
	}
}

func TestDistinguishingBytesOrderIndependence(t *testing.T) {
	g := buildSample()
	ab := g.DistinguishingBytes("cp850", "cp858")
	ba := g.DistinguishingBytes("cp858", "cp850")
	if len(ab) != 1 || len(ba) != 1 {
		t.Fatalf("expected 1 distinguishing byte each way, got %d/%d", len(ab), len(ba))
	}
	if ab[0].Value != ba[0].Value {
		t.Fatalf("distinguishing byte value must match regardless of argument order")
	}
	if ab[0].CatA != ba[0].CatB || ab[0].CatB != ba[0].CatA {
		t.Fatalf("categories must flip with argument order: ab=%+v ba=%+v", ab[0], ba[0])
	}
}

func TestWriteToReadFromRoundTrip(t *testing.T) {
	b := NewBuilder()
	b.AddGroup("koi8-r", "koi8-u", "koi8-t")
	b.AddPair("koi8-r", "koi8-u", []DistinguishingByte{{Value: 0xA4, CatA: CategoryLetter, CatB: CategoryLetter}})
	b.AddPair("koi8-u", "koi8-t", []DistinguishingByte{{Value: 0xF3, CatA: CategoryLetter, CatB: CategoryLetter}})

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	g, err := ReadFrom(&buf)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if len(g.Groups) != 1 || len(g.Groups[0].Encodings) != 3 {
		t.Fatalf("unexpected groups after round trip: %+v", g.Groups)
	}
	if dbs := g.DistinguishingBytes("koi8-r", "koi8-u"); len(dbs) != 1 || dbs[0].Value != 0xA4 {
		t.Fatalf("unexpected distinguishing bytes after round trip: %+v", dbs)
	}
}

func TestDefaultGraphLoads(t *testing.T) {
	g, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(g.Groups) == 0 {
		t.Fatalf("expected the embedded default graph to have groups")
	}
	if idx, ok := g.SameGroup("cp850", "cp858"); !ok || idx < 0 {
		t.Fatalf("expected cp850/cp858 to be grouped in the default graph")
	}
}

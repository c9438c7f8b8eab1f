package bytesets

import "testing"

func TestMatch(t *testing.T) {
	s := New(Range{0x00, 0x08}, Range{0x0B, 0x0B}, Range{0x0E, 0x1F})
	cases := map[byte]bool{
		0x00: true, 0x08: true, 0x09: false, 0x0A: false,
		0x0B: true, 0x0C: false, 0x0D: false, 0x0E: true,
		0x1F: true, 0x20: false, 0xFF: false,
	}
	for b, want := range cases {
		if got := s.Match(b); got != want {
			t.Errorf("Match(0x%02X) = %v, want %v", b, got, want)
		}
	}
}

func TestCoalesceAdjacent(t *testing.T) {
	s := New(Range{0x00, 0x01}, Range{0x02, 0x03})
	count := 0
	s.ForEach(func(b byte) { count++ })
	if count != 4 {
		t.Fatalf("expected adjacent ranges to coalesce into 4 bytes, got %d", count)
	}
}

func TestCount(t *testing.T) {
	s := Single(0xFF)
	n := s.Count([]byte{0xFF, 0x00, 0xFF, 0xFF})
	if n != 3 {
		t.Fatalf("Count = %d, want 3", n)
	}
}

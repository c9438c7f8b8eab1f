package incremental

import (
	"testing"

	chardetect "github.com/asquebay/chardetect"
)

func TestCollectorAccumulatesAcrossFeeds(t *testing.T) {
	c := NewCollector(chardetect.AllEras)
	c.Feed([]byte{0xEF, 0xBB})
	c.Feed([]byte{0xBF})
	c.Feed([]byte("hello"))

	result, err := c.Close()
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if result.Encoding != "utf-8-sig" {
		t.Fatalf("got %q, want utf-8-sig", result.Encoding)
	}
}

func TestCollectorResetStartsFresh(t *testing.T) {
	c := NewCollector(chardetect.AllEras)
	c.Feed([]byte{0xEF, 0xBB, 0xBF})
	c.Reset()
	c.Feed([]byte("plain ascii text"))

	result, err := c.Close()
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if result.Encoding == "utf-8-sig" {
		t.Fatalf("Reset should have discarded the earlier BOM bytes")
	}
}

// Package bytesets provides small, sorted-range byte predicates for the
// pipeline's binary gate and escape probe. The Set/Range shape is adapted
// from chronos-tachyon/go-peggy's byteset package (its Matcher interface
// with Match/ForEach/String), trimmed to the single concrete
// representation this module needs — a sorted, coalesced list of ranges —
// since nothing here needs peggy's dense-bitset or union/intersection
// combinators.
package bytesets

import "sort"

// Range is an inclusive byte range; Lo > Hi denotes the empty range.
type Range struct {
	Lo, Hi byte
}

// Set is an immutable, sorted, coalesced collection of byte ranges.
type Set struct {
	ranges []Range
}

// New builds a Set from the given ranges, sorting and merging
// overlapping or adjacent entries.
func New(ranges ...Range) Set {
	filtered := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Lo <= r.Hi {
			filtered = append(filtered, r)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Lo < filtered[j].Lo })

	merged := make([]Range, 0, len(filtered))
	for _, r := range filtered {
		if n := len(merged); n > 0 && int(merged[n-1].Hi)+1 >= int(r.Lo) {
			if r.Hi > merged[n-1].Hi {
				merged[n-1].Hi = r.Hi
			}
			continue
		}
		merged = append(merged, r)
	}
	return Set{ranges: merged}
}

// Single returns a Set containing exactly one byte.
func Single(b byte) Set { return New(Range{Lo: b, Hi: b}) }

// Match reports whether b falls in the set.
func (s Set) Match(b byte) bool {
	i := sort.Search(len(s.ranges), func(i int) bool { return s.ranges[i].Hi >= b })
	if i >= len(s.ranges) {
		return false
	}
	r := s.ranges[i]
	return r.Lo <= b && b <= r.Hi
}

// ForEach calls f once per byte in the set, in ascending order.
func (s Set) ForEach(f func(b byte)) {
	for _, r := range s.ranges {
		for v := int(r.Lo); v <= int(r.Hi); v++ {
			f(byte(v))
		}
	}
}

// Count counts how many bytes of buf fall in the set.
func (s Set) Count(buf []byte) int {
	n := 0
	for _, b := range buf {
		if s.Match(b) {
			n++
		}
	}
	return n
}

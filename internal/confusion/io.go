package confusion

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

// ErrTruncated is returned by ReadFrom when the stream ends mid-record.
var ErrTruncated = errors.New("confusion: truncated confusion section")

// Builder accumulates groups and pair data for serialization, mirroring
// models.Builder's role for the bigram section — both sections share the
// same packed-file family per §6.
type Builder struct {
	Groups []Group
	Pairs  map[pairKey][]DistinguishingByte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{Pairs: map[pairKey][]DistinguishingByte{}}
}

// AddGroup registers a confusion group and returns its index.
func (b *Builder) AddGroup(encodings ...string) int {
	b.Groups = append(b.Groups, Group{Encodings: encodings})
	return len(b.Groups) - 1
}

// AddPair registers the distinguishing-byte set for an ordered pair (a, b)
// within a group.
func (bld *Builder) AddPair(a, b string, dbs []DistinguishingByte) {
	key := makePairKey(a, b)
	if a > b {
		// store canonically in (a,b) sorted order; flip the recorded
		// categories to match
		flipped := make([]DistinguishingByte, len(dbs))
		for i, d := range dbs {
			flipped[i] = DistinguishingByte{Value: d.Value, CatA: d.CatB, CatB: d.CatA}
		}
		dbs = flipped
	}
	bld.Pairs[key] = dbs
}

// Build finalizes the builder into an immutable Graph.
func (b *Builder) Build() *Graph { return Build(b.Groups, b.Pairs) }

// WriteTo serializes the confusion section using the big-endian format
// from §6:
//
//	u16 num_groups
//	repeat num_groups:
//	  u8 group_size
//	  repeat group_size: u8 name_len; bytes enc_name
//	  u16 num_pairs
//	  repeat num_pairs:
//	    u8 enc1_idx; u8 enc2_idx
//	    u8 num_dist_bytes
//	    repeat num_dist_bytes: u8 byte_value; u8 enc1_category; u8 enc2_category
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64

	if err := write16(bw, &n, uint16(len(b.Groups))); err != nil {
		return n, err
	}

	for _, grp := range b.Groups {
		if len(grp.Encodings) > 0xFF {
			return n, errors.New("confusion: group too large for u8 size prefix")
		}
		if err := write8(bw, &n, byte(len(grp.Encodings))); err != nil {
			return n, err
		}
		nameIndex := make(map[string]int, len(grp.Encodings))
		for i, name := range grp.Encodings {
			nameIndex[name] = i
			if len(name) > 0xFF {
				return n, errors.New("confusion: encoding name too long for u8 length prefix")
			}
			if err := write8(bw, &n, byte(len(name))); err != nil {
				return n, err
			}
			if err := writeBytes(bw, &n, []byte(name)); err != nil {
				return n, err
			}
		}

		type pairRecord struct {
			i1, i2 int
			dbs    []DistinguishingByte
		}
		var records []pairRecord
		for key, dbs := range b.Pairs {
			i1, ok1 := nameIndex[key.a]
			i2, ok2 := nameIndex[key.b]
			if !ok1 || !ok2 {
				continue
			}
			records = append(records, pairRecord{i1: i1, i2: i2, dbs: dbs})
		}

		if err := write16(bw, &n, uint16(len(records))); err != nil {
			return n, err
		}
		for _, rec := range records {
			if err := write8(bw, &n, byte(rec.i1)); err != nil {
				return n, err
			}
			if err := write8(bw, &n, byte(rec.i2)); err != nil {
				return n, err
			}
			if len(rec.dbs) > 0xFF {
				return n, errors.New("confusion: too many distinguishing bytes for u8 count")
			}
			if err := write8(bw, &n, byte(len(rec.dbs))); err != nil {
				return n, err
			}
			for _, d := range rec.dbs {
				if err := write8(bw, &n, d.Value); err != nil {
					return n, err
				}
				if err := write8(bw, &n, byte(d.CatA)); err != nil {
					return n, err
				}
				if err := write8(bw, &n, byte(d.CatB)); err != nil {
					return n, err
				}
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return n, err
	}
	return n, nil
}

// ReadFrom deserializes a Graph from the packed confusion section format.
func ReadFrom(r io.Reader) (*Graph, error) {
	br := bufio.NewReader(r)

	numGroups, err := read16(br)
	if err != nil {
		return nil, err
	}

	var groups []Group
	pairs := map[pairKey][]DistinguishingByte{}

	for g := uint16(0); g < numGroups; g++ {
		groupSize, err := read8(br)
		if err != nil {
			return nil, err
		}
		names := make([]string, groupSize)
		for i := byte(0); i < groupSize; i++ {
			nameLen, err := read8(br)
			if err != nil {
				return nil, err
			}
			buf := make([]byte, nameLen)
			if _, err := io.ReadFull(br, buf); err != nil {
				return nil, ErrTruncated
			}
			names[i] = string(buf)
		}
		groups = append(groups, Group{Encodings: names})

		numPairs, err := read16(br)
		if err != nil {
			return nil, err
		}
		for p := uint16(0); p < numPairs; p++ {
			i1, err := read8(br)
			if err != nil {
				return nil, err
			}
			i2, err := read8(br)
			if err != nil {
				return nil, err
			}
			numDist, err := read8(br)
			if err != nil {
				return nil, err
			}
			dbs := make([]DistinguishingByte, numDist)
			for d := byte(0); d < numDist; d++ {
				value, err := read8(br)
				if err != nil {
					return nil, err
				}
				catA, err := read8(br)
				if err != nil {
					return nil, err
				}
				catB, err := read8(br)
				if err != nil {
					return nil, err
				}
				dbs[d] = DistinguishingByte{Value: value, CatA: Category(catA), CatB: Category(catB)}
			}
			if int(i1) >= len(names) || int(i2) >= len(names) {
				return nil, errors.New("confusion: pair index out of range")
			}
			a, b := names[i1], names[i2]
			key := makePairKey(a, b)
			if a > b {
				flipped := make([]DistinguishingByte, len(dbs))
				for i, d := range dbs {
					flipped[i] = DistinguishingByte{Value: d.Value, CatA: d.CatB, CatB: d.CatA}
				}
				dbs = flipped
			}
			pairs[key] = dbs
		}
	}

	return Build(groups, pairs), nil
}

func write8(w io.Writer, n *int64, b byte) error {
	nn, err := w.Write([]byte{b})
	*n += int64(nn)
	return err
}

func write16(w io.Writer, n *int64, v uint16) error {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, v)
	nn, err := w.Write(buf)
	*n += int64(nn)
	return err
}

func writeBytes(w io.Writer, n *int64, buf []byte) error {
	nn, err := w.Write(buf)
	*n += int64(nn)
	return err
}

func read8(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func read16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

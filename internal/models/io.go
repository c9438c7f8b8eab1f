package models

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

// Version is the only wire version this Store understands.
const Version uint16 = 1

// ErrBadVersion is returned by ReadFrom when the packed file's version
// field does not match Version.
var ErrBadVersion = errors.New("models: unsupported bigram section version")

// ErrTableSize is returned by ReadFrom when a record's table_bytes field
// does not match the expected dense-table size.
var ErrTableSize = errors.New("models: table size mismatch")

// Builder accumulates models for serialization via WriteTo. Unlike Store,
// a Builder is mutable and is only ever used by the (out-of-scope) training
// pipeline or by tests constructing a fixture.
type Builder struct {
	Models []BigramModel
}

// Add appends a model to the builder.
func (b *Builder) Add(m BigramModel) { b.Models = append(b.Models, m) }

// WriteTo serializes the builder's models using the big-endian packed
// format from §6 of the specification:
//
//	u16  version
//	u16  num_models
//	repeat num_models:
//	  u8   lang_len;  bytes lang
//	  u8   enc_len;   bytes enc_name
//	  u32  table_bytes
//	  bytes table      (65536 entries, fixed-point u16)
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64

	if err := writeAll(bw, &n, uint16ToBytes(Version)); err != nil {
		return n, err
	}
	if err := writeAll(bw, &n, uint16ToBytes(uint16(len(b.Models)))); err != nil {
		return n, err
	}

	for _, m := range b.Models {
		if len(m.Lang) > 0xFF || len(m.Encoding) > 0xFF {
			return n, errors.New("models: lang/encoding name too long for u8 length prefix")
		}
		if err := writeAll(bw, &n, []byte{byte(len(m.Lang))}); err != nil {
			return n, err
		}
		if err := writeAll(bw, &n, []byte(m.Lang)); err != nil {
			return n, err
		}
		if err := writeAll(bw, &n, []byte{byte(len(m.Encoding))}); err != nil {
			return n, err
		}
		if err := writeAll(bw, &n, []byte(m.Encoding)); err != nil {
			return n, err
		}
		tableBytes := uint32(TableSize * 2)
		if err := writeAll(bw, &n, uint32ToBytes(tableBytes)); err != nil {
			return n, err
		}
		buf := make([]byte, TableSize*2)
		for i, v := range m.Table {
			binary.BigEndian.PutUint16(buf[i*2:], v)
		}
		if err := writeAll(bw, &n, buf); err != nil {
			return n, err
		}
	}

	if err := bw.Flush(); err != nil {
		return n, err
	}
	return n, nil
}

// ReadFrom deserializes a new Store from the packed bigram section
// format, building it from scratch the way axiomhq/fsst's Table.ReadFrom
// rebuilds its table.
func ReadFrom(r io.Reader) (*Store, error) {
	br := bufio.NewReader(r)

	hdr := make([]byte, 4)
	if _, err := io.ReadFull(br, hdr); err != nil {
		return nil, err
	}
	version := binary.BigEndian.Uint16(hdr[0:2])
	if version != Version {
		return nil, ErrBadVersion
	}
	numModels := binary.BigEndian.Uint16(hdr[2:4])

	out := make([]BigramModel, 0, numModels)
	for i := uint16(0); i < numModels; i++ {
		var lenBuf [1]byte
		if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
			return nil, err
		}
		lang := make([]byte, lenBuf[0])
		if _, err := io.ReadFull(br, lang); err != nil {
			return nil, err
		}

		if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
			return nil, err
		}
		enc := make([]byte, lenBuf[0])
		if _, err := io.ReadFull(br, enc); err != nil {
			return nil, err
		}

		var sizeBuf [4]byte
		if _, err := io.ReadFull(br, sizeBuf[:]); err != nil {
			return nil, err
		}
		tableBytes := binary.BigEndian.Uint32(sizeBuf[:])
		if tableBytes != TableSize*2 {
			return nil, ErrTableSize
		}

		raw := make([]byte, tableBytes)
		if _, err := io.ReadFull(br, raw); err != nil {
			return nil, err
		}

		m := BigramModel{Lang: string(lang), Encoding: string(enc)}
		for j := 0; j < TableSize; j++ {
			m.Table[j] = binary.BigEndian.Uint16(raw[j*2:])
		}
		out = append(out, m)
	}

	return Build(out), nil
}

func writeAll(w io.Writer, n *int64, buf []byte) error {
	written, err := w.Write(buf)
	*n += int64(written)
	return err
}

func uint16ToBytes(v uint16) []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, v)
	return buf
}

func uint32ToBytes(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

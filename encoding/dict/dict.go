// Package dict implements PLAIN_DICTIONARY and RLE_DICTIONARY: values are
// stored as indices into a dictionary of distinct values that was itself
// written with the PLAIN encoding (typically as the page's own dictionary
// page, assembled by a collaborator outside this module and handed to
// SetDictionary here). The index stream is the RLE/bit-packed hybrid
// format with a single bit-width byte in place of the 4-byte length prefix
// levels use.
package dict

import (
	"fmt"

	"github.com/segmentio/parquet-decoding/encoding"
	"github.com/segmentio/parquet-decoding/encoding/rle"
	"github.com/segmentio/parquet-decoding/format"
)

// Decoder decodes PLAIN_DICTIONARY/RLE_DICTIONARY encoded values of type T
// by resolving each decoded index against a dictionary set with
// SetDictionary.
type Decoder[T any] struct {
	typ        format.Type
	enc        format.Encoding
	dictionary []T
	indices    *rle.Decoder
	indexBuf   []int32
}

// NewDecoder returns a dict Decoder for physical type typ, reporting enc
// (PlainDictionary or RLEDictionary) as its Encoding.
func NewDecoder[T any](enc format.Encoding, typ format.Type) *Decoder[T] {
	return &Decoder[T]{typ: typ, enc: enc, indices: rle.NewDecoder(0)}
}

// SetDictionary installs the dictionary that subsequent Decode calls
// resolve indices against. It must be called before SetData, and the
// dictionary must remain valid (and is not copied) for the life of the
// decoder.
func (d *Decoder[T]) SetDictionary(dictionary []T) {
	d.dictionary = dictionary
}

func (d *Decoder[T]) SetData(data []byte, numValues int) error {
	if len(data) < 1 {
		return encoding.Error(d.enc, d.typ, encoding.ErrNotEnoughBytes)
	}
	bitWidth := int(data[0])
	if bitWidth > 32 {
		return encoding.Errorf(d.enc, d.typ, "%w: bit width %d exceeds 32", encoding.ErrBadHeader, bitWidth)
	}
	d.indices.SetBitWidth(bitWidth)
	if err := d.indices.SetData(data[1:], numValues); err != nil {
		return encoding.Error(d.enc, d.typ, err)
	}
	if cap(d.indexBuf) == 0 {
		d.indexBuf = make([]int32, 0, 256)
	}
	return nil
}

func (d *Decoder[T]) Decode(out []T) (int, error) {
	if d.dictionary == nil {
		encoding.ProgrammerError("dict: Decode called before SetDictionary for %s %s", d.enc, d.typ)
	}
	if cap(d.indexBuf) < len(out) {
		d.indexBuf = make([]int32, len(out))
	}
	indexBuf := d.indexBuf[:len(out)]

	n, err := d.indices.Decode(indexBuf)
	if err != nil {
		return 0, encoding.Error(d.enc, d.typ, err)
	}
	for i := 0; i < n; i++ {
		idx := indexBuf[i]
		if idx < 0 || int(idx) >= len(d.dictionary) {
			return i, encoding.Errorf(d.enc, d.typ, "dictionary index %d out of range [0,%d)", idx, len(d.dictionary))
		}
		out[i] = d.dictionary[idx]
	}
	return n, nil
}

func (d *Decoder[T]) ValuesLeft() int           { return d.indices.ValuesLeft() }
func (d *Decoder[T]) Encoding() format.Encoding { return d.enc }
func (d *Decoder[T]) Type() format.Type         { return d.typ }
func (d *Decoder[T]) TotalBytes() (int, error)  { return encoding.UnsupportedTotalBytes(d.enc, d.typ) }

func (d *Decoder[T]) String() string {
	return fmt.Sprintf("dict.Decoder[%s %s]", d.enc, d.typ)
}

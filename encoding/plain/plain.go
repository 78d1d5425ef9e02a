// Package plain implements the PLAIN encoding: values are stored
// back-to-back with no compression or framing beyond what each physical
// type itself requires (a 4-byte length prefix for BYTE_ARRAY, none for
// everything else).
package plain

import (
	"encoding/binary"
	"math"

	"github.com/segmentio/parquet-decoding/encoding"
	"github.com/segmentio/parquet-decoding/format"
)

// fixedWidthDecoder decodes PLAIN values of a fixed byte width: INT32,
// INT64, FLOAT and DOUBLE all share this shape, differing only in width
// and how a window of raw bytes is reinterpreted as T.
type fixedWidthDecoder[T any] struct {
	typ       format.Type
	width     int
	data      []byte
	offset    int
	remaining int
	decode1   func([]byte) T
}

func newFixedWidthDecoder[T any](typ format.Type, width int, decode1 func([]byte) T) *fixedWidthDecoder[T] {
	return &fixedWidthDecoder[T]{typ: typ, width: width, decode1: decode1}
}

func (d *fixedWidthDecoder[T]) SetData(data []byte, numValues int) error {
	if len(data) < numValues*d.width {
		return encoding.Errorf(format.Plain, d.typ,
			"%w: need %d bytes for %d values, got %d", encoding.ErrNotEnoughBytes, numValues*d.width, numValues, len(data))
	}
	d.data = data
	d.offset = 0
	d.remaining = numValues
	return nil
}

func (d *fixedWidthDecoder[T]) Decode(out []T) (int, error) {
	n := len(out)
	if n > d.remaining {
		n = d.remaining
	}
	for i := 0; i < n; i++ {
		out[i] = d.decode1(d.data[d.offset : d.offset+d.width])
		d.offset += d.width
	}
	d.remaining -= n
	return n, nil
}

func (d *fixedWidthDecoder[T]) ValuesLeft() int           { return d.remaining }
func (d *fixedWidthDecoder[T]) Encoding() format.Encoding { return format.Plain }
func (d *fixedWidthDecoder[T]) Type() format.Type         { return d.typ }
func (d *fixedWidthDecoder[T]) TotalBytes() (int, error)  { return encoding.UnsupportedTotalBytes(format.Plain, d.typ) }

// NewInt32Decoder returns a PLAIN decoder for the INT32 physical type.
func NewInt32Decoder() encoding.Decoder[int32] {
	return newFixedWidthDecoder(format.Int32, 4, func(b []byte) int32 {
		return int32(binary.LittleEndian.Uint32(b))
	})
}

// NewInt64Decoder returns a PLAIN decoder for the INT64 physical type.
func NewInt64Decoder() encoding.Decoder[int64] {
	return newFixedWidthDecoder(format.Int64, 8, func(b []byte) int64 {
		return int64(binary.LittleEndian.Uint64(b))
	})
}

// NewFloatDecoder returns a PLAIN decoder for the FLOAT physical type.
func NewFloatDecoder() encoding.Decoder[float32] {
	return newFixedWidthDecoder(format.Float, 4, func(b []byte) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	})
}

// NewDoubleDecoder returns a PLAIN decoder for the DOUBLE physical type.
func NewDoubleDecoder() encoding.Decoder[float64] {
	return newFixedWidthDecoder(format.Double, 8, func(b []byte) float64 {
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	})
}

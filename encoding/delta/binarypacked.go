// Package delta implements the three DELTA_* encodings: DELTA_BINARY_PACKED
// for INT32/INT64, and DELTA_LENGTH_BYTE_ARRAY/DELTA_BYTE_ARRAY for
// BYTE_ARRAY, the latter two layered on top of a DELTA_BINARY_PACKED
// decoder of lengths.
package delta

import (
	"github.com/segmentio/parquet-decoding/encoding"
	"github.com/segmentio/parquet-decoding/encoding/bitutil"
	"github.com/segmentio/parquet-decoding/format"
)

// integer is the set of physical types DELTA_BINARY_PACKED can produce.
type integer interface {
	~int32 | ~int64
}

// BinaryPackedDecoder decodes DELTA_BINARY_PACKED: a header (block size,
// mini-block count, total value count, first value) followed by one or
// more blocks, each a min-delta plus one bit-packed mini-block per
// declared mini-block bit width. Deltas accumulate onto a running value
// seeded once from the header's first value; the header is read once by
// SetData and never replayed mid-stream.
type BinaryPackedDecoder[T integer] struct {
	typ format.Type

	reader *bitutil.BitReader

	blockSize     int
	numMiniBlocks int
	miniBlockSize int
	totalValues   int

	remaining    int // values left to produce
	current      T
	haveCurrent  bool // true once the seeded first value has been emitted
	firstValue   T

	// state for the block/mini-block currently being drained
	bitWidths       []byte
	miniBlockIndex  int // which mini-block within bitWidths we're reading
	miniBlockLeft   int // values left unread in the current mini-block
	minDelta        int64
}

// NewBinaryPackedDecoder returns a DELTA_BINARY_PACKED decoder producing
// values of physical type typ (Int32 or Int64).
func NewBinaryPackedDecoder[T integer](typ format.Type) *BinaryPackedDecoder[T] {
	return &BinaryPackedDecoder[T]{typ: typ, reader: bitutil.NewBitReader(nil)}
}

func (d *BinaryPackedDecoder[T]) err(cause error) error {
	return encoding.Error(format.DeltaBinaryPacked, d.typ, cause)
}

func (d *BinaryPackedDecoder[T]) SetData(data []byte, numValues int) error {
	d.reader.Reset(data)

	blockSize, err := d.reader.GetVlqInt()
	if err != nil {
		return d.err(err)
	}
	numMiniBlocks, err := d.reader.GetVlqInt()
	if err != nil {
		return d.err(err)
	}
	totalValues, err := d.reader.GetVlqInt()
	if err != nil {
		return d.err(err)
	}
	firstValue, err := d.reader.GetZigZagVlqInt()
	if err != nil {
		return d.err(err)
	}

	if numMiniBlocks == 0 || blockSize%numMiniBlocks != 0 {
		return encoding.Errorf(format.DeltaBinaryPacked, d.typ, "%w: %d mini blocks does not divide block size %d", encoding.ErrBadHeader, numMiniBlocks, blockSize)
	}
	miniBlockSize := int(blockSize) / int(numMiniBlocks)
	if miniBlockSize%8 != 0 {
		return encoding.Errorf(format.DeltaBinaryPacked, d.typ, "%w: mini block size %d is not a multiple of 8", encoding.ErrBadHeader, miniBlockSize)
	}

	d.blockSize = int(blockSize)
	d.numMiniBlocks = int(numMiniBlocks)
	d.miniBlockSize = miniBlockSize
	d.totalValues = int(totalValues)
	d.firstValue = T(firstValue)
	d.haveCurrent = false
	d.bitWidths = make([]byte, d.numMiniBlocks)
	d.miniBlockIndex = d.numMiniBlocks
	d.miniBlockLeft = 0

	// num_values is ignored: the header's own total_value_count is
	// authoritative, not whatever count the caller happens to pass in.
	d.remaining = d.totalValues
	return nil
}

func (d *BinaryPackedDecoder[T]) Decode(out []T) (int, error) {
	produced := 0

	if !d.haveCurrent && d.remaining > 0 && len(out) > 0 {
		d.current = d.firstValue
		d.haveCurrent = true
		out[produced] = d.current
		produced++
		d.remaining--
	}

	for produced < len(out) && d.remaining > 0 {
		if d.miniBlockLeft == 0 {
			if err := d.nextMiniBlock(); err != nil {
				return produced, err
			}
		}
		n := len(out) - produced
		if n > d.miniBlockLeft {
			n = d.miniBlockLeft
		}
		if n > d.remaining {
			n = d.remaining
		}
		bitWidth := uint(d.bitWidths[d.miniBlockIndex-1])
		for i := 0; i < n; i++ {
			delta, err := d.reader.GetValue(bitWidth)
			if err != nil {
				return produced, d.err(err)
			}
			d.current += T(d.minDelta + int64(delta))
			out[produced] = d.current
			produced++
		}
		d.miniBlockLeft -= n
		d.remaining -= n

		// The mini-block's remaining slots are padding written by the
		// encoder to fill out the fixed block/mini-block geometry; they
		// still occupy bits on the wire and must be skipped so that
		// ByteOffset (used by the layered length/byte-array decoders)
		// lands past this stream's last real byte, not mid mini-block.
		if d.remaining == 0 && d.miniBlockLeft > 0 {
			if err := d.reader.SkipBits(bitWidth * uint(d.miniBlockLeft)); err != nil {
				return produced, d.err(err)
			}
			d.miniBlockLeft = 0
		}
	}

	return produced, nil
}

// nextMiniBlock advances to the next mini-block, reading a fresh block
// header (min delta + bit widths) first if the previous block's
// mini-blocks are exhausted.
func (d *BinaryPackedDecoder[T]) nextMiniBlock() error {
	if d.miniBlockIndex >= d.numMiniBlocks {
		minDelta, err := d.reader.GetZigZagVlqInt()
		if err != nil {
			return d.err(err)
		}
		d.minDelta = minDelta
		d.reader.Align()
		for i := 0; i < d.numMiniBlocks; i++ {
			w, err := d.reader.GetValue(8)
			if err != nil {
				return d.err(err)
			}
			d.bitWidths[i] = byte(w)
		}
		d.miniBlockIndex = 0
	}
	d.miniBlockIndex++
	d.miniBlockLeft = d.miniBlockSize
	return nil
}

func (d *BinaryPackedDecoder[T]) ValuesLeft() int           { return d.remaining }
func (d *BinaryPackedDecoder[T]) Encoding() format.Encoding { return format.DeltaBinaryPacked }
func (d *BinaryPackedDecoder[T]) Type() format.Type         { return d.typ }
func (d *BinaryPackedDecoder[T]) TotalBytes() (int, error) {
	return encoding.UnsupportedTotalBytes(format.DeltaBinaryPacked, d.typ)
}

// ByteOffset reports the byte position in the page buffer where this
// decoder's reading has reached, rounded up to the next byte boundary.
// DELTA_LENGTH_BYTE_ARRAY and DELTA_BYTE_ARRAY use it to find where the
// length stream ends and the concatenated value bytes begin.
func (d *BinaryPackedDecoder[T]) ByteOffset() int {
	return d.reader.ByteOffset()
}

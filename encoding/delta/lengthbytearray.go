package delta

import (
	"github.com/segmentio/parquet-decoding/encoding"
	"github.com/segmentio/parquet-decoding/format"
)

// LengthByteArrayDecoder decodes DELTA_LENGTH_BYTE_ARRAY: a
// DELTA_BINARY_PACKED stream of value lengths, immediately followed (at
// the byte offset that inner stream's header and blocks end on) by the
// concatenation of the value bytes themselves, each length bytes long.
//
// Because it must know the total length stream before it can locate where
// the byte region begins, SetData eagerly drains every length; Decode then
// only has to slice the byte region, which it does without copying.
type LengthByteArrayDecoder struct {
	lengths []int32
	idx     int
	data    []byte // the concatenated value bytes region, already located
	offset  int
	remaining int
}

// NewLengthByteArrayDecoder returns a DELTA_LENGTH_BYTE_ARRAY decoder.
func NewLengthByteArrayDecoder() *LengthByteArrayDecoder {
	return new(LengthByteArrayDecoder)
}

func (d *LengthByteArrayDecoder) err(cause error) error {
	return encoding.Error(format.DeltaLengthByteArray, format.ByteArray, cause)
}

// SetData ignores numValues: the wrapped length stream's own header carries
// the authoritative count, exactly as DELTA_BINARY_PACKED ignores it.
func (d *LengthByteArrayDecoder) SetData(data []byte, numValues int) error {
	lengthDecoder := NewBinaryPackedDecoder[int32](format.Int32)
	if err := lengthDecoder.SetData(data, numValues); err != nil {
		return d.err(err)
	}

	numLengths := lengthDecoder.ValuesLeft()
	lengths := make([]int32, numLengths)
	n, err := lengthDecoder.Decode(lengths)
	if err != nil {
		return d.err(err)
	}
	if n != numLengths {
		return d.err(encoding.ErrNotEnoughBytes)
	}

	byteOffset := lengthDecoder.ByteOffset()
	if byteOffset > len(data) {
		return d.err(encoding.ErrNotEnoughBytes)
	}

	d.lengths = lengths
	d.idx = 0
	d.data = data[byteOffset:]
	d.offset = 0
	d.remaining = numLengths
	return nil
}

func (d *LengthByteArrayDecoder) Decode(out [][]byte) (int, error) {
	n := len(out)
	if n > d.remaining {
		n = d.remaining
	}
	for i := 0; i < n; i++ {
		length := int(d.lengths[d.idx])
		if length < 0 || d.offset+length > len(d.data) {
			return i, d.err(encoding.ErrNotEnoughBytes)
		}
		end := d.offset + length
		out[i] = d.data[d.offset:end:end]
		d.offset = end
		d.idx++
	}
	d.remaining -= n
	return n, nil
}

// ByteOffset reports how far this decoder's consumption of the
// concatenated byte region has reached, in bytes relative to the start of
// that region (not to the start of the buffer given to SetData).
func (d *LengthByteArrayDecoder) ByteOffset() int { return d.offset }

func (d *LengthByteArrayDecoder) ValuesLeft() int           { return d.remaining }
func (d *LengthByteArrayDecoder) Encoding() format.Encoding { return format.DeltaLengthByteArray }
func (d *LengthByteArrayDecoder) Type() format.Type         { return format.ByteArray }

// TotalBytes is unsupported: the lengths stream's own trailing padding
// makes its encoded size opaque without decoding the whole page, and the
// value-byte region has no framing of its own to report a span for.
func (d *LengthByteArrayDecoder) TotalBytes() (int, error) {
	return encoding.UnsupportedTotalBytes(format.DeltaLengthByteArray, format.ByteArray)
}

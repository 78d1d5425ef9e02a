package plain

import (
	"github.com/segmentio/parquet-decoding/encoding"
	"github.com/segmentio/parquet-decoding/format"
)

// BooleanDecoder decodes the PLAIN encoding of the BOOLEAN physical type:
// values are packed one bit per value, LSB first, with no length prefix.
// A page of n booleans occupies ceil(n/8) bytes.
type BooleanDecoder struct {
	data      []byte
	bitOffset int
	remaining int
}

// NewBooleanDecoder returns a PLAIN decoder for the BOOLEAN physical type.
func NewBooleanDecoder() encoding.Decoder[bool] {
	return new(BooleanDecoder)
}

func (d *BooleanDecoder) SetData(data []byte, numValues int) error {
	need := (numValues + 7) / 8
	if len(data) < need {
		return encoding.Errorf(format.Plain, format.Boolean,
			"%w: need %d bytes for %d values, got %d", encoding.ErrNotEnoughBytes, need, numValues, len(data))
	}
	d.data = data
	d.bitOffset = 0
	d.remaining = numValues
	return nil
}

func (d *BooleanDecoder) Decode(out []bool) (int, error) {
	n := len(out)
	if n > d.remaining {
		n = d.remaining
	}
	for i := 0; i < n; i++ {
		byteIndex := d.bitOffset >> 3
		bit := uint(d.bitOffset & 7)
		out[i] = (d.data[byteIndex]>>bit)&1 != 0
		d.bitOffset++
	}
	d.remaining -= n
	return n, nil
}

func (d *BooleanDecoder) ValuesLeft() int           { return d.remaining }
func (d *BooleanDecoder) Encoding() format.Encoding { return format.Plain }
func (d *BooleanDecoder) Type() format.Type         { return format.Boolean }
func (d *BooleanDecoder) TotalBytes() (int, error)  { return encoding.UnsupportedTotalBytes(format.Plain, format.Boolean) }

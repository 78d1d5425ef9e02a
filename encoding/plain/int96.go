package plain

import (
	"encoding/binary"

	"github.com/segmentio/parquet-decoding/deprecated"
	"github.com/segmentio/parquet-decoding/encoding"
	"github.com/segmentio/parquet-decoding/format"
)

// Int96Decoder decodes the PLAIN encoding of the deprecated INT96 physical
// type: three little-endian uint32 words back to back, twelve bytes per
// value.
type Int96Decoder struct {
	data      []byte
	offset    int
	remaining int
}

// NewInt96Decoder returns a PLAIN decoder for the INT96 physical type.
func NewInt96Decoder() encoding.Decoder[deprecated.Int96] {
	return new(Int96Decoder)
}

func (d *Int96Decoder) SetData(data []byte, numValues int) error {
	if len(data) < numValues*12 {
		return encoding.Errorf(format.Plain, format.Int96,
			"%w: need %d bytes for %d values, got %d", encoding.ErrNotEnoughBytes, numValues*12, numValues, len(data))
	}
	d.data = data
	d.offset = 0
	d.remaining = numValues
	return nil
}

func (d *Int96Decoder) Decode(out []deprecated.Int96) (int, error) {
	n := len(out)
	if n > d.remaining {
		n = d.remaining
	}
	for i := 0; i < n; i++ {
		b := d.data[d.offset : d.offset+12]
		out[i] = deprecated.Int96{
			binary.LittleEndian.Uint32(b[0:4]),
			binary.LittleEndian.Uint32(b[4:8]),
			binary.LittleEndian.Uint32(b[8:12]),
		}
		d.offset += 12
	}
	d.remaining -= n
	return n, nil
}

func (d *Int96Decoder) ValuesLeft() int           { return d.remaining }
func (d *Int96Decoder) Encoding() format.Encoding { return format.Plain }
func (d *Int96Decoder) Type() format.Type         { return format.Int96 }
func (d *Int96Decoder) TotalBytes() (int, error)  { return encoding.UnsupportedTotalBytes(format.Plain, format.Int96) }

package plain

import (
	"encoding/binary"

	"github.com/segmentio/parquet-decoding/encoding"
	"github.com/segmentio/parquet-decoding/format"
)

// ByteArrayDecoder decodes the PLAIN encoding of the BYTE_ARRAY physical
// type: each value is a 4-byte little-endian length prefix followed by
// that many bytes. Decoded values are views into the page buffer passed to
// SetData, not copies; callers that retain a decoded value past the life
// of that buffer must copy it themselves.
type ByteArrayDecoder struct {
	data      []byte
	offset    int
	remaining int
}

// NewByteArrayDecoder returns a PLAIN decoder for the BYTE_ARRAY physical
// type.
func NewByteArrayDecoder() encoding.Decoder[[]byte] {
	return new(ByteArrayDecoder)
}

func (d *ByteArrayDecoder) SetData(data []byte, numValues int) error {
	d.data = data
	d.offset = 0
	d.remaining = numValues
	return nil
}

func (d *ByteArrayDecoder) Decode(out [][]byte) (int, error) {
	n := len(out)
	if n > d.remaining {
		n = d.remaining
	}
	for i := 0; i < n; i++ {
		if len(d.data)-d.offset < 4 {
			return i, notEnoughBytes(format.Plain, format.ByteArray)
		}
		length := int(binary.LittleEndian.Uint32(d.data[d.offset : d.offset+4]))
		start := d.offset + 4
		end := start + length
		if length < 0 || end > len(d.data) {
			return i, notEnoughBytes(format.Plain, format.ByteArray)
		}
		out[i] = d.data[start:end:end]
		d.offset = end
	}
	d.remaining -= n
	return n, nil
}

func (d *ByteArrayDecoder) ValuesLeft() int           { return d.remaining }
func (d *ByteArrayDecoder) Encoding() format.Encoding { return format.Plain }
func (d *ByteArrayDecoder) Type() format.Type         { return format.ByteArray }
func (d *ByteArrayDecoder) TotalBytes() (int, error)  { return encoding.UnsupportedTotalBytes(format.Plain, format.ByteArray) }

func notEnoughBytes(e format.Encoding, t format.Type) error {
	return encoding.Error(e, t, encoding.ErrNotEnoughBytes)
}

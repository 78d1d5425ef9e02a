package plain

import (
	"github.com/google/uuid"

	"github.com/segmentio/parquet-decoding/encoding"
	"github.com/segmentio/parquet-decoding/format"
)

// FixedLenByteArrayDecoder decodes the PLAIN encoding of the
// FIXED_LEN_BYTE_ARRAY physical type: values are Length bytes each with no
// prefix, back to back. Decoded values are views into the page buffer
// passed to SetData, not copies.
type FixedLenByteArrayDecoder struct {
	length    int
	data      []byte
	offset    int
	remaining int
}

// NewFixedLenByteArrayDecoder returns a PLAIN decoder for the
// FIXED_LEN_BYTE_ARRAY physical type, where every value is length bytes
// long. length must match the column's type_length.
func NewFixedLenByteArrayDecoder(length int) encoding.Decoder[[]byte] {
	return &FixedLenByteArrayDecoder{length: length}
}

func (d *FixedLenByteArrayDecoder) SetData(data []byte, numValues int) error {
	need := numValues * d.length
	if len(data) < need {
		return encoding.Errorf(format.Plain, format.FixedLenByteArray,
			"%w: need %d bytes for %d values of length %d, got %d", encoding.ErrNotEnoughBytes, need, numValues, d.length, len(data))
	}
	d.data = data
	d.offset = 0
	d.remaining = numValues
	return nil
}

func (d *FixedLenByteArrayDecoder) Decode(out [][]byte) (int, error) {
	n := len(out)
	if n > d.remaining {
		n = d.remaining
	}
	for i := 0; i < n; i++ {
		end := d.offset + d.length
		out[i] = d.data[d.offset:end:end]
		d.offset = end
	}
	d.remaining -= n
	return n, nil
}

func (d *FixedLenByteArrayDecoder) ValuesLeft() int           { return d.remaining }
func (d *FixedLenByteArrayDecoder) Encoding() format.Encoding { return format.Plain }
func (d *FixedLenByteArrayDecoder) Type() format.Type         { return format.FixedLenByteArray }
func (d *FixedLenByteArrayDecoder) TotalBytes() (int, error) {
	return encoding.UnsupportedTotalBytes(format.Plain, format.FixedLenByteArray)
}

// UUID interprets a 16-byte FIXED_LEN_BYTE_ARRAY value as a UUID, the
// convention used for columns declared with the UUID logical type.
func UUID(value []byte) (uuid.UUID, error) {
	return uuid.FromBytes(value)
}

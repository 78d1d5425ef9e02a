package delta

import (
	"github.com/segmentio/parquet-decoding/encoding"
	"github.com/segmentio/parquet-decoding/format"
)

// ByteArrayDecoder decodes DELTA_BYTE_ARRAY: a DELTA_BINARY_PACKED stream
// of prefix lengths, followed by a DELTA_LENGTH_BYTE_ARRAY stream of
// suffixes. Each value is reconstructed as the first prefixLength bytes of
// the previous value followed by that value's suffix, so unlike every
// other decoder in this module it cannot return views into the input: the
// prefix and suffix rarely sit next to each other in the source buffer,
// and successive values still need their own copy since former values
// remain reachable to the caller. Buffers are obtained from pool when one
// is given, otherwise from the runtime allocator.
type ByteArrayDecoder struct {
	pool encoding.MemoryPool

	prefixLengths []int32
	idx           int
	suffixes      *LengthByteArrayDecoder
	suffixOne     [][]byte

	previousValue []byte
	remaining     int
}

// NewByteArrayDecoder returns a DELTA_BYTE_ARRAY decoder. pool may be nil,
// in which case value buffers come from the runtime allocator and are not
// tracked.
func NewByteArrayDecoder(pool encoding.MemoryPool) *ByteArrayDecoder {
	return &ByteArrayDecoder{pool: pool, suffixOne: make([][]byte, 1)}
}

func (d *ByteArrayDecoder) err(cause error) error {
	return encoding.Error(format.DeltaByteArray, format.ByteArray, cause)
}

// SetData ignores numValues: the prefix-length stream's own header carries
// the authoritative count, exactly as DELTA_BINARY_PACKED ignores it. The
// suffix decoder is handed the same (ignored) argument and derives its own
// authoritative count independently from its own header.
func (d *ByteArrayDecoder) SetData(data []byte, numValues int) error {
	prefixDecoder := NewBinaryPackedDecoder[int32](format.Int32)
	if err := prefixDecoder.SetData(data, numValues); err != nil {
		return d.err(err)
	}

	numPrefixes := prefixDecoder.ValuesLeft()
	prefixLengths := make([]int32, numPrefixes)
	n, err := prefixDecoder.Decode(prefixLengths)
	if err != nil {
		return d.err(err)
	}
	if n != numPrefixes {
		return d.err(encoding.ErrNotEnoughBytes)
	}

	byteOffset := prefixDecoder.ByteOffset()
	if byteOffset > len(data) {
		return d.err(encoding.ErrNotEnoughBytes)
	}

	suffixes := NewLengthByteArrayDecoder()
	if err := suffixes.SetData(data[byteOffset:], numValues); err != nil {
		return d.err(err)
	}

	d.prefixLengths = prefixLengths
	d.idx = 0
	d.suffixes = suffixes
	d.previousValue = nil
	d.remaining = numPrefixes
	return nil
}

func (d *ByteArrayDecoder) Decode(out [][]byte) (int, error) {
	n := len(out)
	if n > d.remaining {
		n = d.remaining
	}
	for i := 0; i < n; i++ {
		sn, err := d.suffixes.Decode(d.suffixOne)
		if err != nil {
			return i, d.err(err)
		}
		if sn != 1 {
			return i, d.err(encoding.ErrNotEnoughBytes)
		}
		suffix := d.suffixOne[0]

		prefixLen := int(d.prefixLengths[d.idx])
		if prefixLen < 0 || prefixLen > len(d.previousValue) {
			return i, d.err(encoding.ErrBadHeader)
		}

		total := prefixLen + len(suffix)
		var buf []byte
		if d.pool != nil {
			buf = d.pool.Allocate(total)
		} else {
			buf = make([]byte, total)
		}
		copy(buf, d.previousValue[:prefixLen])
		copy(buf[prefixLen:], suffix)

		out[i] = buf
		d.previousValue = buf
		d.idx++
	}
	d.remaining -= n
	return n, nil
}

func (d *ByteArrayDecoder) ValuesLeft() int           { return d.remaining }
func (d *ByteArrayDecoder) Encoding() format.Encoding { return format.DeltaByteArray }
func (d *ByteArrayDecoder) Type() format.Type         { return format.ByteArray }
func (d *ByteArrayDecoder) TotalBytes() (int, error) {
	return encoding.UnsupportedTotalBytes(format.DeltaByteArray, format.ByteArray)
}

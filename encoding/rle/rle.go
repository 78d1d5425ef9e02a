// Package rle implements the RLE/bit-packed hybrid encoding used both
// directly for definition and repetition levels (wrapped in a 4-byte
// length prefix, see LevelDecoder) and as the index stream underneath
// PLAIN_DICTIONARY/RLE_DICTIONARY (a single bit-width byte followed by raw
// hybrid data, see the dict package).
//
// The hybrid format is a sequence of runs, each starting with a
// byte-aligned VLQ header: a header whose low bit is 0 introduces an
// RLE run (a single value repeated N times, header>>1 = N, the value
// itself stored in ceil(bitWidth/8) bytes); a header whose low bit is 1
// introduces a bit-packed run (header>>1 groups of 8 values, each value
// bitWidth bits wide, LSB first, with no padding between values).
package rle

import (
	"github.com/segmentio/parquet-decoding/encoding"
	"github.com/segmentio/parquet-decoding/encoding/bitutil"
	"github.com/segmentio/parquet-decoding/format"
)

// Decoder decodes a raw RLE/bit-packed hybrid value stream (no length
// prefix) at a fixed bit width into int32 values. It is used directly for
// dictionary indices and as the engine LevelDecoder wraps for definition
// and repetition levels.
type Decoder struct {
	bitWidth  uint
	reader    *bitutil.BitReader
	remaining int // values left to produce overall, set by SetData

	runRemaining int // values left in the current run
	runIsRLE     bool
	rleValue     int32
}

// NewDecoder returns a Decoder reading values packed at bitWidth bits.
func NewDecoder(bitWidth int) *Decoder {
	return &Decoder{bitWidth: uint(bitWidth), reader: bitutil.NewBitReader(nil)}
}

// SetBitWidth changes the bit width used to interpret subsequent data.
// Callers that read a per-page bit-width byte (dictionary indices) call
// this after NewDecoder and before SetData.
func (d *Decoder) SetBitWidth(bitWidth int) {
	d.bitWidth = uint(bitWidth)
}

func (d *Decoder) SetData(data []byte, numValues int) error {
	d.reader.Reset(data)
	d.remaining = numValues
	d.runRemaining = 0
	return nil
}

func (d *Decoder) Decode(out []int32) (int, error) {
	produced := 0
	for produced < len(out) && d.remaining > 0 {
		if d.runRemaining == 0 {
			if err := d.nextRun(); err != nil {
				return produced, err
			}
		}
		n := len(out) - produced
		if n > d.runRemaining {
			n = d.runRemaining
		}
		if n > d.remaining {
			n = d.remaining
		}
		if d.runIsRLE {
			for i := 0; i < n; i++ {
				out[produced+i] = d.rleValue
			}
		} else {
			for i := 0; i < n; i++ {
				v, err := d.reader.GetValue(d.bitWidth)
				if err != nil {
					return produced, rleErr(err)
				}
				out[produced+i] = int32(v)
			}
		}
		produced += n
		d.runRemaining -= n
		d.remaining -= n
	}
	return produced, nil
}

func (d *Decoder) nextRun() error {
	header, err := d.reader.GetVlqInt()
	if err != nil {
		return rleErr(err)
	}
	if header&1 == 0 {
		count := int(header >> 1)
		byteWidth := int(d.bitWidth+7) / 8
		value, err := d.reader.GetValue(uint(byteWidth) * 8)
		if err != nil {
			return rleErr(err)
		}
		d.runIsRLE = true
		d.rleValue = int32(value)
		d.runRemaining = count
	} else {
		groups := int(header >> 1)
		d.runIsRLE = false
		d.runRemaining = groups * 8
	}
	return nil
}

func (d *Decoder) ValuesLeft() int           { return d.remaining }
func (d *Decoder) Encoding() format.Encoding { return format.RLE }
func (d *Decoder) Type() format.Type         { return format.Int32 }

// TotalBytes is unsupported on the raw hybrid decoder: unlike LevelDecoder
// it carries no length prefix of its own, so it has no declared byte span
// to report.
func (d *Decoder) TotalBytes() (int, error) { return encoding.UnsupportedTotalBytes(format.RLE, format.Int32) }

func rleErr(err error) error {
	return encoding.Error(format.RLE, format.Int32, err)
}

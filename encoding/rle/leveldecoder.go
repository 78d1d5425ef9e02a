package rle

import (
	"encoding/binary"

	"github.com/segmentio/parquet-decoding/encoding"
	"github.com/segmentio/parquet-decoding/format"
)

// LevelDecoder decodes a definition or repetition level stream: the RLE
// hybrid format prefixed with a 4-byte little-endian length, at a bit
// width fixed by the column's max level (ceil(log2(maxLevel+1))), which
// the stream itself does not carry.
type LevelDecoder struct {
	inner  *Decoder
	length int // payload length read from the 4-byte prefix, for TotalBytes
}

// NewLevelDecoder returns a LevelDecoder for a column whose maximum
// definition or repetition level is maxLevel.
func NewLevelDecoder(maxLevel int) *LevelDecoder {
	return &LevelDecoder{inner: NewDecoder(bitWidthForMaxLevel(maxLevel))}
}

func bitWidthForMaxLevel(maxLevel int) int {
	width := 0
	for (1 << width) <= maxLevel {
		width++
	}
	return width
}

func (d *LevelDecoder) SetData(data []byte, numValues int) error {
	if len(data) < 4 {
		return encoding.Error(format.RLE, format.Int32, encoding.ErrNotEnoughBytes)
	}
	length := int(binary.LittleEndian.Uint32(data[:4]))
	if len(data) < 4+length {
		return encoding.Error(format.RLE, format.Int32, encoding.ErrNotEnoughBytes)
	}
	d.length = length
	return d.inner.SetData(data[4:4+length], numValues)
}

func (d *LevelDecoder) Decode(out []int32) (int, error) { return d.inner.Decode(out) }
func (d *LevelDecoder) ValuesLeft() int                 { return d.inner.ValuesLeft() }
func (d *LevelDecoder) Encoding() format.Encoding       { return format.RLE }
func (d *LevelDecoder) Type() format.Type               { return format.Int32 }

// TotalBytes returns the 4-byte length prefix plus the payload length it
// declared, the one case in this module where a decoder's own framing
// states its full byte span up front.
func (d *LevelDecoder) TotalBytes() (int, error) { return 4 + d.length, nil }

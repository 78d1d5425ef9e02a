package delta_test

import (
	"testing"

	"github.com/segmentio/parquet-decoding/encoding/delta"
	"github.com/segmentio/parquet-decoding/format"
)

// buildBinaryPackedInt32 encodes block_size=128, num_mini_blocks=4 (mini
// block size 32), first_value=7, and 32 deltas 0..31 (min_delta=0,
// bit width 5) all in the first mini-block; the remaining three
// mini-blocks of the same block carry no real values (bit width 0).
func buildBinaryPackedInt32() []byte {
	return []byte{
		0x80, 0x01, // block size 128 (VLQ)
		0x04,       // num mini blocks (VLQ)
		0x21,       // total value count 33 (VLQ)
		0x0E,       // zigzag-vlq first value 7
		0x00,       // zigzag-vlq min delta 0
		5, 0, 0, 0, // bit widths per mini block
		32, 136, 65, 138, 57, 40, 169, 197, 154, 123, 48, 202, 73, 171, 189, 56, 235, 205, 187, 255,
	}
}

func expectedBinaryPackedInt32() []int32 {
	vals := []int32{7}
	cur := int32(7)
	for i := 0; i < 32; i++ {
		cur += int32(i)
		vals = append(vals, cur)
	}
	return vals
}

func TestBinaryPackedDecoderInt32(t *testing.T) {
	data := buildBinaryPackedInt32()
	want := expectedBinaryPackedInt32()

	d := delta.NewBinaryPackedDecoder[int32](format.Int32)
	if err := d.SetData(data, len(want)); err != nil {
		t.Fatal(err)
	}

	out := make([]int32, len(want))
	n, err := d.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(want) {
		t.Fatalf("decoded %d values, want %d", n, len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
	if d.ValuesLeft() != 0 {
		t.Fatalf("ValuesLeft() = %d, want 0", d.ValuesLeft())
	}
}

func TestBinaryPackedDecoderChunked(t *testing.T) {
	data := buildBinaryPackedInt32()
	want := expectedBinaryPackedInt32()

	d := delta.NewBinaryPackedDecoder[int32](format.Int32)
	if err := d.SetData(data, len(want)); err != nil {
		t.Fatal(err)
	}

	got := make([]int32, 0, len(want))
	buf := make([]int32, 7)
	for d.ValuesLeft() > 0 {
		n, err := d.Decode(buf)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, buf[:n]...)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestBinaryPackedDecoderRejectsBadMiniBlockSize(t *testing.T) {
	// block size 100, 4 mini blocks -> mini block size 25, not a multiple of 8.
	data := []byte{100, 4, 1, 0}
	d := delta.NewBinaryPackedDecoder[int32](format.Int32)
	if err := d.SetData(data, 1); err == nil {
		t.Fatal("expected error for a mini block size that is not a multiple of 8")
	}
}

func TestBinaryPackedDecoderAcceptsBlockSizeNotMultipleOf128(t *testing.T) {
	// block size 96, 4 mini blocks -> mini block size 24, a valid multiple of
	// 8; spec.md only requires block_size % num_mini_blocks == 0, nothing
	// ties block_size itself to 128.
	data := []byte{96, 4, 1, 0}
	d := delta.NewBinaryPackedDecoder[int32](format.Int32)
	if err := d.SetData(data, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBinaryPackedDecoderIgnoresNumValuesArgument(t *testing.T) {
	data := buildBinaryPackedInt32()
	want := expectedBinaryPackedInt32()

	d := delta.NewBinaryPackedDecoder[int32](format.Int32)
	// Pass a numValues smaller than the header's total_value_count (33);
	// the header is authoritative, so ValuesLeft must reflect the full
	// count, not this argument.
	if err := d.SetData(data, 1); err != nil {
		t.Fatal(err)
	}
	if d.ValuesLeft() != len(want) {
		t.Fatalf("ValuesLeft() = %d, want %d", d.ValuesLeft(), len(want))
	}
}

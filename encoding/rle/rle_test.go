package rle_test

import (
	"testing"

	"github.com/segmentio/parquet-decoding/encoding/rle"
)

func TestDecoderRLERun(t *testing.T) {
	// header = (4<<1)|0 = 8 -> RLE run of 4 values; bitWidth=3 -> 1 byte value = 5
	data := []byte{8, 5}
	d := rle.NewDecoder(3)
	if err := d.SetData(data, 4); err != nil {
		t.Fatal(err)
	}
	out := make([]int32, 4)
	n, err := d.Decode(out)
	if err != nil || n != 4 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	for i, v := range out {
		if v != 5 {
			t.Errorf("out[%d] = %d, want 5", i, v)
		}
	}
}

func TestDecoderBitPackedRun(t *testing.T) {
	// header = (1<<1)|1 = 3 -> bit-packed run of 1 group (8 values), bitWidth=3
	// values 0..7 packed LSB first into 3 bytes
	data := []byte{3, 0b10001000, 0b11000110, 0b11111010}
	d := rle.NewDecoder(3)
	if err := d.SetData(data, 8); err != nil {
		t.Fatal(err)
	}
	out := make([]int32, 8)
	n, err := d.Decode(out)
	if err != nil || n != 8 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	for i, v := range out {
		if int(v) != i {
			t.Errorf("out[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestDecoderChunkedAcrossRuns(t *testing.T) {
	// RLE run of 4 fives, then RLE run of 2 sevens
	data := []byte{8, 5, 4, 7}
	d := rle.NewDecoder(3)
	if err := d.SetData(data, 6); err != nil {
		t.Fatal(err)
	}
	out := make([]int32, 3)
	n, err := d.Decode(out)
	if err != nil || n != 3 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if out[0] != 5 || out[1] != 5 || out[2] != 5 {
		t.Fatalf("got %v", out)
	}
	n, err = d.Decode(out)
	if err != nil || n != 3 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if out[0] != 5 || out[1] != 7 || out[2] != 7 {
		t.Fatalf("got %v", out)
	}
	if d.ValuesLeft() != 0 {
		t.Fatal("expected drained")
	}
}

func TestLevelDecoder(t *testing.T) {
	// maxLevel=1 -> bitWidth=1. RLE run of 3 values set to 1, length prefix = 2 bytes.
	rleBytes := []byte{(3 << 1) | 0, 1}
	data := make([]byte, 4+len(rleBytes))
	data[0] = byte(len(rleBytes))
	copy(data[4:], rleBytes)

	d := rle.NewLevelDecoder(1)
	if err := d.SetData(data, 3); err != nil {
		t.Fatal(err)
	}
	out := make([]int32, 3)
	n, err := d.Decode(out)
	if err != nil || n != 3 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	for _, v := range out {
		if v != 1 {
			t.Fatalf("got %v", out)
		}
	}

	total, err := d.TotalBytes()
	if err != nil {
		t.Fatal(err)
	}
	if total != 4+len(rleBytes) {
		t.Fatalf("TotalBytes() = %d, want %d", total, 4+len(rleBytes))
	}
}

func TestDecoderTotalBytesUnsupported(t *testing.T) {
	d := rle.NewDecoder(3)
	if err := d.SetData([]byte{8, 5}, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := d.TotalBytes(); err == nil {
		t.Fatal("expected TotalBytes to be unsupported on the raw hybrid decoder")
	}
}

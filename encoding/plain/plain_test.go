package plain_test

import (
	"testing"

	"github.com/segmentio/parquet-decoding/deprecated"
	"github.com/segmentio/parquet-decoding/encoding/plain"
)

func TestInt32Decoder(t *testing.T) {
	data := []byte{
		1, 0, 0, 0,
		2, 0, 0, 0,
		0xFF, 0xFF, 0xFF, 0xFF, // -1
	}
	d := plain.NewInt32Decoder()
	if err := d.SetData(data, 3); err != nil {
		t.Fatal(err)
	}
	out := make([]int32, 3)
	n, err := d.Decode(out)
	if err != nil || n != 3 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	want := []int32{1, 2, -1}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
	if d.ValuesLeft() != 0 {
		t.Fatalf("ValuesLeft() = %d, want 0", d.ValuesLeft())
	}
}

func TestInt32DecoderChunked(t *testing.T) {
	data := []byte{
		1, 0, 0, 0,
		2, 0, 0, 0,
		3, 0, 0, 0,
	}
	d := plain.NewInt32Decoder()
	if err := d.SetData(data, 3); err != nil {
		t.Fatal(err)
	}
	out := make([]int32, 2)
	n, err := d.Decode(out)
	if err != nil || n != 2 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if out[0] != 1 || out[1] != 2 {
		t.Fatalf("got %v", out)
	}
	n, err = d.Decode(out)
	if err != nil || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if out[0] != 3 {
		t.Fatalf("got %v", out)
	}
	if d.ValuesLeft() != 0 {
		t.Fatal("expected all values drained")
	}
}

func TestInt64Decoder(t *testing.T) {
	data := []byte{1, 0, 0, 0, 0, 0, 0, 0}
	d := plain.NewInt64Decoder()
	if err := d.SetData(data, 1); err != nil {
		t.Fatal(err)
	}
	out := make([]int64, 1)
	if _, err := d.Decode(out); err != nil {
		t.Fatal(err)
	}
	if out[0] != 1 {
		t.Fatalf("got %d, want 1", out[0])
	}
}

func TestFloatDecoder(t *testing.T) {
	// 1.5 as float32 LE
	data := []byte{0x00, 0x00, 0xC0, 0x3F}
	d := plain.NewFloatDecoder()
	if err := d.SetData(data, 1); err != nil {
		t.Fatal(err)
	}
	out := make([]float32, 1)
	if _, err := d.Decode(out); err != nil {
		t.Fatal(err)
	}
	if out[0] != 1.5 {
		t.Fatalf("got %v, want 1.5", out[0])
	}
}

func TestDoubleDecoder(t *testing.T) {
	data := []byte{0, 0, 0, 0, 0, 0, 0xF8, 0x3F} // 1.5
	d := plain.NewDoubleDecoder()
	if err := d.SetData(data, 1); err != nil {
		t.Fatal(err)
	}
	out := make([]float64, 1)
	if _, err := d.Decode(out); err != nil {
		t.Fatal(err)
	}
	if out[0] != 1.5 {
		t.Fatalf("got %v, want 1.5", out[0])
	}
}

func TestBooleanDecoder(t *testing.T) {
	// values true,false,true,true,false,false,false,true, true
	data := []byte{0b10001101, 0b00000001}
	d := plain.NewBooleanDecoder()
	if err := d.SetData(data, 9); err != nil {
		t.Fatal(err)
	}
	out := make([]bool, 9)
	n, err := d.Decode(out)
	if err != nil || n != 9 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	want := []bool{true, false, true, true, false, false, false, true, true}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestInt96Decoder(t *testing.T) {
	data := make([]byte, 12)
	data[0] = 1
	data[4] = 2
	data[8] = 3
	d := plain.NewInt96Decoder()
	if err := d.SetData(data, 1); err != nil {
		t.Fatal(err)
	}
	out := make([]deprecated.Int96, 1)
	if _, err := d.Decode(out); err != nil {
		t.Fatal(err)
	}
	want := deprecated.Int96{1, 2, 3}
	if out[0] != want {
		t.Fatalf("got %v, want %v", out[0], want)
	}
}

func TestByteArrayDecoder(t *testing.T) {
	data := []byte{
		3, 0, 0, 0, 'f', 'o', 'o',
		0, 0, 0, 0,
		2, 0, 0, 0, 'h', 'i',
	}
	d := plain.NewByteArrayDecoder()
	if err := d.SetData(data, 3); err != nil {
		t.Fatal(err)
	}
	out := make([][]byte, 3)
	n, err := d.Decode(out)
	if err != nil || n != 3 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if string(out[0]) != "foo" || string(out[1]) != "" || string(out[2]) != "hi" {
		t.Fatalf("got %q %q %q", out[0], out[1], out[2])
	}
}

func TestByteArrayDecoderTruncated(t *testing.T) {
	data := []byte{5, 0, 0, 0, 'a', 'b'} // claims length 5, only 2 bytes follow
	d := plain.NewByteArrayDecoder()
	if err := d.SetData(data, 1); err != nil {
		t.Fatal(err)
	}
	out := make([][]byte, 1)
	if _, err := d.Decode(out); err == nil {
		t.Fatal("expected error decoding truncated byte array")
	}
}

func TestFixedLenByteArrayDecoder(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	d := plain.NewFixedLenByteArrayDecoder(3)
	if err := d.SetData(data, 2); err != nil {
		t.Fatal(err)
	}
	out := make([][]byte, 2)
	n, err := d.Decode(out)
	if err != nil || n != 2 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if string(out[0]) != string([]byte{1, 2, 3}) || string(out[1]) != string([]byte{4, 5, 6}) {
		t.Fatalf("got %v %v", out[0], out[1])
	}
}

func TestFixedLenByteArrayAsUUID(t *testing.T) {
	raw := make([]byte, 16)
	for i := range raw {
		raw[i] = byte(i)
	}
	d := plain.NewFixedLenByteArrayDecoder(16)
	if err := d.SetData(raw, 1); err != nil {
		t.Fatal(err)
	}
	out := make([][]byte, 1)
	if _, err := d.Decode(out); err != nil {
		t.Fatal(err)
	}
	id, err := plain.UUID(out[0])
	if err != nil {
		t.Fatal(err)
	}
	if id.String() == "" {
		t.Fatal("expected non-empty uuid string")
	}
}

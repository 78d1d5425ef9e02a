// Package format declares the small closed enumerations that the value
// decoding core is parameterized by: the on-disk column encodings and the
// physical types of the Parquet type system.
//
// The values mirror the identifiers used by the Parquet thrift metadata
// (parquet.thrift's Encoding and Type), but this package does not parse or
// depend on thrift; schema and page-header decoding are external
// collaborators of this core, which only needs the names and numeric
// values to select a decoder and report which one it built.
package format

import "fmt"

// Encoding identifies one of the on-disk value encodings a data page may
// use.
type Encoding int8

const (
	Plain                Encoding = 0
	PlainDictionary      Encoding = 2
	RLE                  Encoding = 3
	BitPacked            Encoding = 4 // deprecated, never produced by the factory
	DeltaBinaryPacked    Encoding = 5
	DeltaLengthByteArray Encoding = 6
	DeltaByteArray       Encoding = 7
	RLEDictionary        Encoding = 8
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case PlainDictionary:
		return "PLAIN_DICTIONARY"
	case RLE:
		return "RLE"
	case BitPacked:
		return "BIT_PACKED"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case DeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case DeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case RLEDictionary:
		return "RLE_DICTIONARY"
	default:
		return fmt.Sprintf("Encoding(%d)", int8(e))
	}
}

// Type identifies one of the eight physical types a decoder can produce
// values for.
type Type int8

const (
	Boolean Type = iota
	Int32
	Int64
	Int96
	Float
	Double
	ByteArray
	FixedLenByteArray
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return fmt.Sprintf("Type(%d)", int8(t))
	}
}

// Package encoding defines the contract shared by every column value
// decoder: given the raw bytes of a data page and a count of values to
// produce, materialize typed values into a caller-supplied buffer.
//
// The package intentionally says nothing about page headers, compression,
// schema resolution or I/O; a decoder receives plain bytes already sliced
// out of a page and already decompressed, and knows nothing about where
// they came from.
package encoding

import (
	"errors"
	"fmt"

	"github.com/segmentio/parquet-decoding/format"
)

// ErrNotEnoughBytes is returned when the page bytes given to SetData (or
// consumed while decoding) run out before the format being decoded says
// they should.
var ErrNotEnoughBytes = errors.New("not enough bytes")

// ErrUnsupportedType is returned when an encoding is recognized but is not
// valid for the (type, role) combination it was asked to decode, such as
// DELTA_BINARY_PACKED requested for FLOAT, or RLE requested for a value
// role other than a definition or repetition level stream.
var ErrUnsupportedType = errors.New("unsupported encoding for type")

// ErrNotImplemented is returned by the factory for an encoding identifier
// this module has no implementation for at all, such as the deprecated
// BIT_PACKED encoding.
var ErrNotImplemented = errors.New("encoding not implemented")

// ErrBadHeader is returned when a decoder's own header bytes (bit widths,
// block sizes, run headers, ...) fail a validity check.
var ErrBadHeader = errors.New("invalid header")

// Error wraps err with the encoding and type it was produced for, matching
// the convention callers should expect from every decoder constructor and
// Decode method in this module.
func Error(e format.Encoding, t format.Type, err error) error {
	return fmt.Errorf("%s %s: %w", e, t, err)
}

// Errorf is like Error but builds the wrapped error from a format string.
func Errorf(e format.Encoding, t format.Type, msg string, args ...interface{}) error {
	return Error(e, t, fmt.Errorf(msg, args...))
}

// UnsupportedTotalBytes is the TotalBytes implementation shared by every
// decoder whose wire format gives no self-contained way to know how many
// bytes of the page it consumed (everything except the RLE level stream).
func UnsupportedTotalBytes(e format.Encoding, t format.Type) (int, error) {
	return 0, Errorf(e, t, "%w: total byte span is not tracked for this encoding", ErrUnsupportedType)
}

// ProgrammerError panics with a message identifying a contract violation by
// the caller rather than a malformed page; in this module, a dict.Decoder's
// Decode called before SetDictionary. Such violations are bugs in the
// calling code, not recoverable data errors, so they are not reported
// through the error return.
func ProgrammerError(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// ColumnDescriptor is the column schema information a handful of decoders
// need but do not themselves parse: FIXED_LEN_BYTE_ARRAY's declared byte
// length, and the maximum definition/repetition level that fixes the bit
// width of an RLE level stream. It is supplied by the caller, typically
// backed by the column's thrift SchemaElement, which this module never
// reads directly.
type ColumnDescriptor interface {
	TypeLength() int
	MaxDefinitionLevel() int16
	MaxRepetitionLevel() int16
}

// FixedColumnDescriptor is a plain-value ColumnDescriptor, sufficient for
// callers (and tests) that already have these three numbers in hand and
// have no need to implement the interface against a richer schema type.
type FixedColumnDescriptor struct {
	Length int
	MaxDef int16
	MaxRep int16
}

func (d FixedColumnDescriptor) TypeLength() int            { return d.Length }
func (d FixedColumnDescriptor) MaxDefinitionLevel() int16 { return d.MaxDef }
func (d FixedColumnDescriptor) MaxRepetitionLevel() int16 { return d.MaxRep }

// ValueRole distinguishes the three kinds of sequences this module decodes:
// column values, and the two level streams used to reconstruct nested and
// repeated fields. All three are carried by the same RLE/bit-packed hybrid
// wire format, but the level streams are always INT32 and are framed with
// a length prefix that values never carry.
type ValueRole int8

const (
	Values ValueRole = iota
	DefinitionLevels
	RepetitionLevels
)

// MemoryPool is the allocation accounting collaborator used by decoders
// that must materialize freshly owned buffers instead of returning views
// into the input, namely DELTA_BYTE_ARRAY's per-value concatenation of a
// shared prefix and a decoded suffix.
//
// A MemoryPool is not a general purpose allocator: Allocate returns a slice
// of exactly the requested length that the caller owns until it discards
// it, and Release lets the pool account for buffers no longer referenced.
// The zero value of no pool at all (nil) is valid and means "use the
// runtime allocator and don't track anything", which is what every decoder
// in this module falls back to when constructed without one.
type MemoryPool interface {
	Allocate(size int) []byte
	Release(buf []byte)
}

// Decoder is implemented by every value decoder in this module. T is the
// Go type used to represent decoded values of the physical type the
// decoder was built for: bool, int32, int64, deprecated.Int96, float32,
// float64, or []byte.
//
// A Decoder is stateful: SetData resets it to decode a fresh page, and
// Decode may be called repeatedly with successive slices of the output
// buffer until ValuesLeft reaches zero ("chunking"). Callers may also pass
// a single buffer sized to the full value count in one call; decoders make
// no distinction between the two usages and must produce identical output
// either way.
//
// A Decoder is not safe for concurrent use; callers needing concurrent
// decoding of independent pages should construct one Decoder per page, or
// serialize calls to a shared Decoder with a mutex.
type Decoder[T any] interface {
	// SetData resets the decoder to read values of the given physical type
	// from data, which holds exactly the page's encoded value bytes (no
	// header, no level streams). numValues is the total number of values
	// the page claims to hold; it bounds how many values subsequent Decode
	// calls may produce but a page is free to supply fewer bytes than a
	// naive reading of numValues would otherwise require (e.g. a
	// dictionary-encoded RLE run collapses many values into a few bytes).
	//
	// SetData returns an error if data is structurally invalid for the
	// decoder's wire format (a malformed header, or a length that runs
	// past the end of data); it does not attempt to decode any values
	// eagerly, most of that work happens lazily in Decode.
	SetData(data []byte, numValues int) error

	// Decode fills as much of out as there are values left to produce,
	// returning the number of values written. It returns
	// (n, io.EOF)-shaped behavior via a plain nil error and n == 0 only
	// once ValuesLeft() == 0; any other failure to make progress is
	// reported as a non-nil error and the decoder's state afterward is
	// undefined (callers must not continue calling Decode on an errored
	// decoder).
	//
	// Calling Decode with a shorter out than ValuesLeft merely returns a
	// partial chunk; the next call resumes exactly where this one left
	// off, callers may mix chunk sizes freely.
	Decode(out []T) (int, error)

	// ValuesLeft returns how many values SetData promised that have not
	// yet been produced by Decode.
	ValuesLeft() int

	// Encoding identifies the on-disk encoding this decoder implements.
	Encoding() format.Encoding

	// Type identifies the physical type this decoder produces values of.
	Type() format.Type

	// TotalBytes reports how many bytes of the buffer given to SetData this
	// decoder's own framing accounts for, where that is knowable from the
	// format alone: the RLE level stream's length prefix plus payload, for
	// instance. Most encodings give no such guarantee (PLAIN's size is a
	// simple function of the value count already known to the caller, and
	// a DELTA_BINARY_PACKED page's trailing padding is opaque to it), and
	// return ErrUnsupportedType.
	TotalBytes() (int, error)
}

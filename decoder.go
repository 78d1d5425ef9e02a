// Package parquet assembles the per-encoding decoders in this module's
// encoding subpackages behind a single factory, NewDecoder, so callers
// need only know a column's (encoding, physical type, value role) triple,
// not which package implements it.
package parquet

import (
	"github.com/segmentio/parquet-decoding/encoding"
	"github.com/segmentio/parquet-decoding/encoding/delta"
	"github.com/segmentio/parquet-decoding/encoding/plain"
	"github.com/segmentio/parquet-decoding/encoding/rle"
	"github.com/segmentio/parquet-decoding/format"
)

// Options carries the extra, per-column information a handful of decoders
// need beyond the (encoding, type, role) triple.
type Options struct {
	// Descriptor supplies a column's type_length, max_def_level and
	// max_rep_level. Required when t is format.FixedLenByteArray, or when
	// decoding an RLE level stream (role is DefinitionLevels or
	// RepetitionLevels); ignored otherwise.
	Descriptor encoding.ColumnDescriptor

	// Pool receives DELTA_BYTE_ARRAY's per-value allocations. May be left
	// nil, in which case the decoder uses the runtime allocator directly
	// and no accounting happens.
	Pool encoding.MemoryPool
}

// NewDecoder builds the decoder for the given (encoding, type, role)
// triple. The concrete return type varies with t: bool for Boolean, int32
// for Int32, int64 for Int64, deprecated.Int96 for Int96, float32 for
// Float, float64 for Double, and []byte for ByteArray and
// FixedLenByteArray; RLE always returns int32 regardless of t, since it is
// only ever used here to decode a level stream. Generics cannot express
// this dispatch at compile time (Go has no return-type specialization), so
// NewDecoder returns any and callers type-assert to the encoding.Decoder[T]
// they expect for the type and role they requested.
//
// PLAIN_DICTIONARY and RLE_DICTIONARY are not reachable through this
// factory: decoding a dictionary-encoded column requires the decoded
// dictionary page itself, which this factory has no way to receive, so
// callers construct a dict.Decoder[T] directly with dict.NewDecoder and
// populate it via SetDictionary before use.
func NewDecoder(e format.Encoding, t format.Type, role encoding.ValueRole, opts Options) (any, error) {
	switch e {
	case format.Plain:
		return newPlainDecoder(t, opts)
	case format.RLE:
		return newRLEDecoder(t, role, opts)
	case format.PlainDictionary, format.RLEDictionary:
		return nil, encoding.Errorf(e, t, "%w: dictionary encodings are not constructed through this factory, use dict.NewDecoder directly", encoding.ErrUnsupportedType)
	case format.DeltaBinaryPacked:
		return newDeltaBinaryPackedDecoder(t)
	case format.DeltaLengthByteArray:
		if t != format.ByteArray {
			return nil, encoding.Errorf(e, t, "%w: DELTA_LENGTH_BYTE_ARRAY only supports BYTE_ARRAY", encoding.ErrUnsupportedType)
		}
		return delta.NewLengthByteArrayDecoder(), nil
	case format.DeltaByteArray:
		if t != format.ByteArray {
			return nil, encoding.Errorf(e, t, "%w: DELTA_BYTE_ARRAY only supports BYTE_ARRAY", encoding.ErrUnsupportedType)
		}
		return delta.NewByteArrayDecoder(opts.Pool), nil
	default:
		return nil, encoding.Errorf(e, t, "%w", encoding.ErrNotImplemented)
	}
}

func newPlainDecoder(t format.Type, opts Options) (any, error) {
	switch t {
	case format.Boolean:
		return plain.NewBooleanDecoder(), nil
	case format.Int32:
		return plain.NewInt32Decoder(), nil
	case format.Int64:
		return plain.NewInt64Decoder(), nil
	case format.Int96:
		return plain.NewInt96Decoder(), nil
	case format.Float:
		return plain.NewFloatDecoder(), nil
	case format.Double:
		return plain.NewDoubleDecoder(), nil
	case format.ByteArray:
		return plain.NewByteArrayDecoder(), nil
	case format.FixedLenByteArray:
		if opts.Descriptor == nil {
			return nil, encoding.Errorf(format.Plain, t, "%w: FIXED_LEN_BYTE_ARRAY requires a column descriptor for its type length", encoding.ErrBadHeader)
		}
		length := opts.Descriptor.TypeLength()
		if length <= 0 {
			return nil, encoding.Errorf(format.Plain, t, "%w: FIXED_LEN_BYTE_ARRAY requires a positive type length, got %d", encoding.ErrBadHeader, length)
		}
		return plain.NewFixedLenByteArrayDecoder(length), nil
	default:
		return nil, encoding.Errorf(format.Plain, t, "%w", encoding.ErrNotImplemented)
	}
}

// newRLEDecoder builds the single decoder RLE is used for in this module:
// a definition or repetition level stream, always int32, with a bit width
// fixed by the column's corresponding max level. Any other role has no
// RLE-encoded representation here, since values and dictionary indices
// that happen to use the same hybrid wire format are reached through their
// own entry points (rle.Decoder directly, via the dict package) instead of
// this factory.
func newRLEDecoder(t format.Type, role encoding.ValueRole, opts Options) (any, error) {
	if role != encoding.DefinitionLevels && role != encoding.RepetitionLevels {
		return nil, encoding.Errorf(format.RLE, t, "%w: RLE is only used here to decode definition and repetition levels", encoding.ErrUnsupportedType)
	}
	if opts.Descriptor == nil {
		return nil, encoding.Errorf(format.RLE, t, "%w: RLE level decoding requires a column descriptor", encoding.ErrBadHeader)
	}
	var maxLevel int
	if role == encoding.DefinitionLevels {
		maxLevel = int(opts.Descriptor.MaxDefinitionLevel())
	} else {
		maxLevel = int(opts.Descriptor.MaxRepetitionLevel())
	}
	return rle.NewLevelDecoder(maxLevel), nil
}

func newDeltaBinaryPackedDecoder(t format.Type) (any, error) {
	switch t {
	case format.Int32:
		return delta.NewBinaryPackedDecoder[int32](t), nil
	case format.Int64:
		return delta.NewBinaryPackedDecoder[int64](t), nil
	default:
		return nil, encoding.Errorf(format.DeltaBinaryPacked, t, "%w: DELTA_BINARY_PACKED only supports INT32 and INT64", encoding.ErrUnsupportedType)
	}
}

// Package deprecated holds parquet types that are no longer part of the
// specification but still appear in files written by older implementations.
package deprecated

// Int96 is an implementation of the deprecated INT96 parquet physical type.
//
// Parquet historically used INT96 to represent timestamps as a 64 bits
// nanoseconds-since-midnight value packed into the first two words and a
// 32 bits Julian day in the third; this package does not interpret that
// encoding, it only carries the three words as the bag of bits that the
// PLAIN encoding defines.
type Int96 [3]uint32

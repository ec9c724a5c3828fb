// Package fano builds prefix-free binary codes with the Shannon-Fano method
// and encodes symbol sequences against them.
//
// # Overview
//
// Shannon-Fano coding assigns every distinct symbol of an input a variable
// length binary codeword. Symbols are ranked by descending frequency, then
// the ranking is split top-down into two contiguous groups of near-equal
// total frequency; the left group gains a '0' bit, the right a '1', and the
// splitting repeats inside each group until every symbol stands alone.
// Frequent symbols end up with short codewords, and because every symbol is
// a leaf of the implied binary tree, no codeword is a prefix of another.
//
// Bitstreams stay symbolic: a codeword and an encoded message are ordinary
// Go strings of '0' and '1' bytes, one byte per bit. That keeps codewords
// printable, comparable, and directly usable as map keys; no bit packing
// happens anywhere in the package.
//
// # When to Use Shannon-Fano
//
// Shannon-Fano is a teaching-friendly entropy coder. It suits:
//   - Compression coursework and worked examples, where the split-by-half
//     construction is the point
//   - Tooling that must reproduce classic reference tables bit for bit
//   - Skewed alphabets where a simple frequency-ranked code is good enough
//
// # When NOT to Use Shannon-Fano
//
// The greedy top-down split is not optimal: Huffman coding produces a code
// at least as short for every input, and real codecs (zstd, brotli) use
// arithmetic or ANS stages that beat both. Use this package for its
// transparency, not for production compression ratios.
//
// # Basic Usage
//
//	tbl := fano.BuildString("ABRAACADABRA")
//
//	bits, _ := fano.EncodeString(tbl, "ABRAACADABRA")
//	text, _ := fano.DecodeString(tbl, bits)
//	// text == "ABRAACADABRA"
//
//	// Tables generalize over any comparable symbol type.
//	words := fano.Build([]string{"to", "be", "or", "not", "to", "be"})
//	seq, _ := words.Encode([]string{"to", "be"})
//
//	// Rebuild a table from persisted codewords.
//	tbl2, err := fano.NewTable(tbl.Codes())
//
// # Determinism
//
// Build is a pure function of its input sequence. Symbols with equal
// frequency rank in first-occurrence order, and frequency ties between
// split boundaries resolve toward the earlier boundary, so the same input
// always yields byte-identical codewords on every run and platform.
//
// # Errors
//
// Decode reports, rather than hides, damaged input: a non-bit byte fails
// with ErrInvalidBit and leftover bits that match no codeword fail with
// ErrMalformedBitstream. Encode fails with *UnknownSymbolError when the
// input contains a symbol the table never saw. NewTable rejects mappings
// that are not prefix-free. All errors work with errors.Is and errors.As.
//
// # Concurrency
//
// A Table is immutable once built. Any number of goroutines may call its
// methods concurrently without locking.
package fano

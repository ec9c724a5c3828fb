package fano

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrMalformedBitstream is returned by Decode when the input ends in
	// the middle of a codeword, as a truncated or corrupt stream does.
	ErrMalformedBitstream = errors.New("fano: malformed bitstream")

	// ErrInvalidBit is returned when a bitstream or codeword contains a
	// byte other than '0' or '1'.
	ErrInvalidBit = errors.New("fano: invalid bit")

	// ErrEmptyCode is returned by NewTable for an empty codeword; every
	// symbol of a usable code carries at least one bit.
	ErrEmptyCode = errors.New("fano: empty codeword")

	// ErrNotPrefixFree is returned by NewTable when one codeword equals or
	// prefixes another, which would make greedy decoding ambiguous.
	ErrNotPrefixFree = errors.New("fano: code is not prefix-free")
)

// UnknownSymbolError is returned by Encode when the input holds a symbol
// the table has no codeword for, typically because the table was built from
// different input than it is applied to.
type UnknownSymbolError[S comparable] struct {
	Symbol S   // the symbol missing from the table
	Offset int // its position in the Encode input
}

func (e *UnknownSymbolError[S]) Error() string {
	return fmt.Sprintf("fano: no codeword for symbol %s at offset %d", symbolString(e.Symbol), e.Offset)
}

// symbolString renders a symbol for error messages, quoting runes and
// strings so control characters stay readable.
func symbolString[S comparable](sym S) string {
	switch v := any(sym).(type) {
	case rune:
		return strconv.QuoteRune(v)
	case string:
		return strconv.Quote(v)
	case byte:
		return strconv.QuoteRune(rune(v))
	default:
		return fmt.Sprint(v)
	}
}

// Entry describes one symbol of a code table.
type Entry[S comparable] struct {
	Symbol S
	Freq   int    // occurrence count in the build input; zero for NewTable tables
	Code   string // assigned codeword, one '0' or '1' byte per bit
}

// Table maps every symbol of an alphabet to a prefix-free binary codeword
// and back. Tables come out of Build or NewTable and never change
// afterwards: one table can serve any number of concurrent Encode and
// Decode calls without synchronization.
type Table[S comparable] struct {
	codes   map[S]string // symbol -> codeword
	inverse map[string]S // codeword -> symbol
	entries []Entry[S]   // rank order (Build) or codeword order (NewTable)
	minLen  int          // shortest codeword length in bits, 0 when empty
	maxLen  int          // longest codeword length in bits, 0 when empty
}

// newTable indexes finished entries into a Table. Both lookup directions
// are built here, up front; nothing is populated lazily afterwards.
func newTable[S comparable](entries []Entry[S]) *Table[S] {
	t := &Table[S]{
		codes:   make(map[S]string, len(entries)),
		inverse: make(map[string]S, len(entries)),
		entries: entries,
	}
	for _, e := range entries {
		t.codes[e.Symbol] = e.Code
		t.inverse[e.Code] = e.Symbol
		if n := len(e.Code); t.minLen == 0 || n < t.minLen {
			t.minLen = n
		}
		t.maxLen = max(t.maxLen, len(e.Code))
	}
	return t
}

// Len returns the number of distinct symbols in the table.
func (t *Table[S]) Len() int { return len(t.entries) }

// Code returns the codeword assigned to sym and whether sym is in the
// table at all.
func (t *Table[S]) Code(sym S) (string, bool) {
	code, ok := t.codes[sym]
	return code, ok
}

// Codes returns the symbol to codeword mapping as a fresh map the caller
// may modify freely.
func (t *Table[S]) Codes() map[S]string {
	return maps.Clone(t.codes)
}

// Entries returns a copy of the table's entries: descending frequency
// order for built tables, codeword order for tables from NewTable.
func (t *Table[S]) Entries() []Entry[S] {
	return slices.Clone(t.entries)
}

// MinCodeLen returns the length in bits of the shortest codeword, or 0 for
// an empty table.
func (t *Table[S]) MinCodeLen() int { return t.minLen }

// MaxCodeLen returns the length in bits of the longest codeword, or 0 for
// an empty table.
func (t *Table[S]) MaxCodeLen() int { return t.maxLen }

// Encode concatenates the codewords of the input symbols, in order, into
// one symbolic bitstream of '0' and '1' bytes. Every input symbol must
// have a codeword: a miss aborts with *UnknownSymbolError and no partial
// output. An empty input encodes to the empty string on any table.
func (t *Table[S]) Encode(symbols []S) (string, error) {
	if len(symbols) == 0 {
		return "", nil
	}
	var b strings.Builder
	b.Grow(len(symbols) * t.minLen)
	for i, sym := range symbols {
		code, ok := t.codes[sym]
		if !ok {
			return "", &UnknownSymbolError[S]{Symbol: sym, Offset: i}
		}
		b.WriteString(code)
	}
	return b.String(), nil
}

// Decode translates a symbolic bitstream back into the symbol sequence it
// encodes. Bits accumulate into a pending fragment until the fragment
// equals some codeword, which emits that codeword's symbol and starts a
// fresh fragment. Prefix-freedom guarantees the first match is the only
// match, so a valid stream decodes exactly one way.
//
// A byte other than '0' or '1' fails with an error wrapping ErrInvalidBit.
// Input that runs out mid-fragment fails with an error wrapping
// ErrMalformedBitstream rather than silently dropping the tail. An empty
// table accepts only the empty stream.
func (t *Table[S]) Decode(bits string) ([]S, error) {
	var out []S
	if t.minLen > 0 {
		out = make([]S, 0, len(bits)/t.minLen)
	}
	start := 0 // first bit of the pending fragment
	for i := 0; i < len(bits); i++ {
		if !isBit(bits[i]) {
			return nil, fmt.Errorf("fano: byte %q at offset %d: %w", bits[i], i, ErrInvalidBit)
		}
		if i+1-start > t.maxLen {
			// The fragment is already longer than every codeword and can
			// never match; keep going so later bad bytes still surface.
			continue
		}
		if sym, ok := t.inverse[bits[start:i+1]]; ok {
			out = append(out, sym)
			start = i + 1
		}
	}
	if start != len(bits) {
		return nil, fmt.Errorf("fano: %d trailing bits at offset %d match no codeword: %w",
			len(bits)-start, start, ErrMalformedBitstream)
	}
	return out, nil
}

// EncodeString encodes the runes of s against a table from BuildString.
func EncodeString(t *Table[rune], s string) (string, error) {
	return t.Encode([]rune(s))
}

// DecodeString decodes a bitstream produced by EncodeString back to text.
func DecodeString(t *Table[rune], bits string) (string, error) {
	symbols, err := t.Decode(bits)
	if err != nil {
		return "", err
	}
	return string(symbols), nil
}

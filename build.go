package fano

import (
	"fmt"
	"math"
)

// Build constructs a prefix-free code table for the symbols of the input
// using the Shannon-Fano method: rank the alphabet by descending frequency,
// then repeatedly split the ranked list into two contiguous partitions of
// near-equal total frequency, appending '0' to every codeword on the left
// and '1' to every codeword on the right.
//
// Frequent symbols end up near the top of the ranking and receive short
// codewords. Build is fully deterministic: the same input always produces
// the same table (see rankEntries for the tie-break rule). An empty input
// yields an empty table whose Encode and Decode accept only empty inputs.
func Build[S comparable](symbols []S) *Table[S] {
	entries := countSymbols(symbols)
	rankEntries(entries)
	assignCodes(entries)
	return newTable(entries)
}

// BuildString builds a code table over the runes of s.
func BuildString(s string) *Table[rune] {
	return Build([]rune(s))
}

// NewTable builds a table from an existing symbol to codeword mapping, such
// as one persisted by an earlier run. The mapping must describe a usable
// code: every codeword non-empty and made of '0'/'1' bytes only, and no
// codeword a prefix of another (duplicates included), or decoding would be
// ambiguous. Violations fail with an error wrapping ErrEmptyCode,
// ErrInvalidBit or ErrNotPrefixFree.
//
// Frequencies are unknown for external tables and reported as zero, and
// Entries returns the symbols in codeword order rather than rank order.
func NewTable[S comparable](codes map[S]string) (*Table[S], error) {
	entries := make([]Entry[S], 0, len(codes))
	for sym, code := range codes {
		if err := checkCodeword(code); err != nil {
			return nil, fmt.Errorf("fano: codeword %q of symbol %s: %w", code, symbolString(sym), err)
		}
		entries = append(entries, Entry[S]{Symbol: sym, Code: code})
	}
	sortByCode(entries)
	if i := findPrefixCollision(entries); i >= 0 {
		a, b := entries[i], entries[i+1]
		return nil, fmt.Errorf("fano: codeword %q of symbol %s is a prefix of %q of symbol %s: %w",
			a.Code, symbolString(a.Symbol), b.Code, symbolString(b.Symbol), ErrNotPrefixFree)
	}
	return newTable(entries), nil
}

// partition is one pending frame of the code assignment worklist: a range
// of the ranked entries plus the bits accumulated on the path down to it.
type partition struct {
	lo, hi int
	prefix string
}

// assignCodes fills in the Code of every ranked entry, in place. The
// recursion of the textbook formulation is flattened into an explicit LIFO
// stack of index ranges over the entries slice, so alphabet size never
// touches call-stack limits. The right half is pushed first and the left
// half popped first, matching the '0'-before-'1' descent order.
func assignCodes[S comparable](entries []Entry[S]) {
	if len(entries) == 0 {
		return
	}
	stack := []partition{{lo: 0, hi: len(entries)}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.hi-p.lo == 1 {
			if p.prefix == "" {
				// A one-symbol alphabet never splits; it still needs a
				// non-empty codeword to be decodable.
				p.prefix = "0"
			}
			entries[p.lo].Code = p.prefix
			continue
		}
		split := p.lo + splitPoint(entries[p.lo:p.hi])
		stack = append(stack,
			partition{lo: split, hi: p.hi, prefix: p.prefix + "1"},
			partition{lo: p.lo, hi: split, prefix: p.prefix + "0"},
		)
	}
}

// splitPoint picks the boundary dividing part into two contiguous groups
// whose frequency totals are as close as possible. Only boundaries strictly
// inside the list qualify, so both groups are always non-empty and every
// partition shrinks. The scan keeps a running left-hand total and stops
// once a candidate is no better than the best seen and the left total has
// passed half of the whole, the classic formulation's early exit. Earlier
// boundaries win ties.
func splitPoint[S comparable](part []Entry[S]) int {
	total := 0
	for i := range part {
		total += part[i].Freq
	}
	var (
		cum   int
		split int
		best  = math.MaxInt
	)
	for i := 0; i < len(part)-1; i++ {
		cum += part[i].Freq
		diff := total - 2*cum // becomes |left - right| after the abs
		if diff < 0 {
			diff = -diff
		}
		if diff < best {
			best, split = diff, i+1
		} else if 2*cum > total {
			break
		}
	}
	return split
}

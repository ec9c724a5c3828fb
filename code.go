package fano

import (
	"fmt"
	"slices"
	"strings"
)

// Bits stay symbolic end to end: one ASCII digit per bit. A codeword is a
// plain string of '0' and '1' bytes, so it can be sliced, compared, and used
// as a map key without a packing step in between.
const (
	bitZero byte = '0'
	bitOne  byte = '1'
)

func isBit(c byte) bool { return c == bitZero || c == bitOne }

// checkCodeword rejects codewords no builder could have produced: empty
// strings and strings holding a byte other than '0' or '1'.
func checkCodeword(code string) error {
	if code == "" {
		return ErrEmptyCode
	}
	for i := 0; i < len(code); i++ {
		if !isBit(code[i]) {
			return fmt.Errorf("byte %q at offset %d: %w", code[i], i, ErrInvalidBit)
		}
	}
	return nil
}

// sortByCode orders entries lexicographically by codeword, in place. For a
// prefix-free set this is the left-to-right order of the code tree's leaves.
func sortByCode[S comparable](entries []Entry[S]) {
	slices.SortFunc(entries, func(a, b Entry[S]) int {
		return strings.Compare(a.Code, b.Code)
	})
}

// findPrefixCollision scans code-sorted entries for a codeword that equals or
// prefixes its successor. In lexicographic order a prefix sorts immediately
// before its extensions, so checking neighbors is exhaustive. Returns the
// offending index, or -1 when the set is prefix-free.
func findPrefixCollision[S comparable](entries []Entry[S]) int {
	for i := 0; i+1 < len(entries); i++ {
		if strings.HasPrefix(entries[i+1].Code, entries[i].Code) {
			return i
		}
	}
	return -1
}

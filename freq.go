package fano

import "slices"

// countSymbols tallies how often each distinct symbol occurs in the input.
// The returned entries are in first-occurrence order; that order is what the
// ranker's stable sort preserves for symbols of equal frequency, so it is
// part of the determinism contract, not an accident. Empty input yields an
// empty list.
func countSymbols[S comparable](symbols []S) []Entry[S] {
	// Alphabets are usually far smaller than the input they occur in.
	n := min(len(symbols), 256)
	index := make(map[S]int, n)
	entries := make([]Entry[S], 0, n)
	for _, sym := range symbols {
		if at, ok := index[sym]; ok {
			entries[at].Freq++
			continue
		}
		index[sym] = len(entries)
		entries = append(entries, Entry[S]{Symbol: sym, Freq: 1})
	}
	return entries
}

// rankEntries orders entries by descending frequency, in place. The sort is
// stable: symbols sharing a frequency keep their first-occurrence order, so
// ranking the same input always yields the same list. The ranked order feeds
// the partitioning directly and is never re-sorted afterwards.
func rankEntries[S comparable](entries []Entry[S]) {
	slices.SortStableFunc(entries, func(a, b Entry[S]) int {
		return b.Freq - a.Freq
	})
}

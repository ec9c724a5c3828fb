package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/bits"
	"strconv"

	"github.com/axiomhq/fano"
	"github.com/olekukonko/tablewriter"
)

// writeTable renders a code table to w in the configured format, with the
// statistics block appended when enabled.
func writeTable(w io.Writer, tbl *fano.Table[rune], cfg Config) error {
	entries := tbl.Entries()
	var err error
	switch cfg.Format {
	case "table":
		err = writePretty(w, entries)
	case "tsv":
		err = writeTSV(w, entries)
	case "json":
		err = writeJSON(w, entries)
	default:
		err = fmt.Errorf("unknown format %q", cfg.Format)
	}
	if err != nil || !cfg.Stats {
		return err
	}
	return writeStats(w, computeStats(entries))
}

func writePretty(w io.Writer, entries []fano.Entry[rune]) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Symbol", "Freq", "Code", "Bits"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, e := range entries {
		table.Append([]string{
			strconv.QuoteRune(e.Symbol),
			strconv.Itoa(e.Freq),
			e.Code,
			strconv.Itoa(len(e.Code)),
		})
	}
	table.Render()
	return nil
}

// writeTSV emits the same symbol<TAB>code lines the codes file uses, plus a
// frequency column, so its output can feed straight back into --codes.
func writeTSV(w io.Writer, entries []fano.Entry[rune]) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", strconv.QuoteRune(e.Symbol), e.Code, e.Freq); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, entries []fano.Entry[rune]) error {
	type row struct {
		Symbol string `json:"symbol"`
		Freq   int    `json:"freq"`
		Code   string `json:"code"`
	}
	rows := make([]row, len(entries))
	for i, e := range entries {
		rows[i] = row{Symbol: string(e.Symbol), Freq: e.Freq, Code: e.Code}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// tableStats summarizes how well a built code fits its input.
type tableStats struct {
	Symbols  int     // input length in symbols
	Distinct int     // alphabet size
	Bits     int     // total encoded length in bits
	Entropy  float64 // Shannon entropy of the input, bits per symbol
	MeanBits float64 // frequency-weighted mean codeword length
	Fixed    int     // bits per symbol of a fixed-width code for this alphabet
	Saving   float64 // percent saved against the fixed-width code
}

func computeStats(entries []fano.Entry[rune]) tableStats {
	st := tableStats{Distinct: len(entries)}
	for _, e := range entries {
		st.Symbols += e.Freq
		st.Bits += e.Freq * len(e.Code)
	}
	if st.Symbols == 0 {
		return st
	}
	for _, e := range entries {
		p := float64(e.Freq) / float64(st.Symbols)
		st.Entropy -= p * math.Log2(p)
		st.MeanBits += p * float64(len(e.Code))
	}
	st.Fixed = fixedWidth(st.Distinct)
	st.Saving = 100 * (1 - st.MeanBits/float64(st.Fixed))
	return st
}

// fixedWidth returns the bits per symbol a flat binary code would need for
// an alphabet of n symbols. A one-symbol alphabet still takes one bit.
func fixedWidth(n int) int {
	if n <= 1 {
		return 1
	}
	return bits.Len(uint(n - 1))
}

func writeStats(w io.Writer, st tableStats) error {
	_, err := fmt.Fprintf(w,
		"symbols:  %d (%d distinct)\noutput:   %d bits\nentropy:  %.4f bits/sym\nmean:     %.4f bits/sym\nfixed:    %d bits/sym\nsaving:   %.1f%%\n",
		st.Symbols, st.Distinct, st.Bits, st.Entropy, st.MeanBits, st.Fixed, st.Saving)
	return err
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/axiomhq/fano"
)

// The codes file holds one "symbol<TAB>codeword" line per table entry, with
// the symbol as a quoted Go rune literal so whitespace and control
// characters survive the trip. Blank lines and lines starting with '#' are
// ignored on load; anything after a second tab (such as the frequency
// column of the tsv output format) is ignored too.

func saveCodes(path string, tbl *fano.Table[rune]) error {
	var b strings.Builder
	for _, e := range tbl.Entries() {
		fmt.Fprintf(&b, "%s\t%s\n", strconv.QuoteRune(e.Symbol), e.Code)
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func loadCodes(path string) (*fano.Table[rune], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	codes := make(map[rune]string)
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		quoted, rest, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fmt.Errorf("%s:%d: want symbol<TAB>code", path, line)
		}
		code, _, _ := strings.Cut(rest, "\t")

		sym, err := parseSymbol(quoted)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", path, line, err)
		}
		if _, dup := codes[sym]; dup {
			return nil, fmt.Errorf("%s:%d: duplicate symbol %s", path, line, quoted)
		}
		codes[sym] = code
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return fano.NewTable(codes)
}

// parseSymbol reads a quoted rune literal such as 'A' or '\n'.
func parseSymbol(quoted string) (rune, error) {
	s, err := strconv.Unquote(quoted)
	if err != nil {
		return 0, fmt.Errorf("bad symbol %s: %v", quoted, err)
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError && size <= 1 {
		return 0, fmt.Errorf("symbol %s is not a single rune", quoted)
	}
	return r, nil
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/axiomhq/fano"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codes.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCodesFileRoundTrip(t *testing.T) {
	tbl := fano.BuildString("ABRAACADABRA")
	path := filepath.Join(t.TempDir(), "codes.tsv")
	require.NoError(t, saveCodes(path, tbl))

	loaded, err := loadCodes(path)
	require.NoError(t, err)
	assert.Equal(t, tbl.Codes(), loaded.Codes())

	// The loaded table decodes streams produced by the original.
	bits, err := fano.EncodeString(tbl, "ABRAACADABRA")
	require.NoError(t, err)
	text, err := fano.DecodeString(loaded, bits)
	require.NoError(t, err)
	assert.Equal(t, "ABRAACADABRA", text)
}

func TestSaveCodesEscapesSymbols(t *testing.T) {
	tbl := fano.BuildString("a a\ta\na")
	path := filepath.Join(t.TempDir(), "codes.tsv")
	require.NoError(t, saveCodes(path, tbl))

	loaded, err := loadCodes(path)
	require.NoError(t, err)
	assert.Equal(t, tbl.Codes(), loaded.Codes())
}

func TestLoadCodesSkipsCommentsAndExtraColumns(t *testing.T) {
	path := writeTestFile(t, "# reference table\n\n'A'\t0\n'B'\t10\t2\n")
	tbl, err := loadCodes(path)
	require.NoError(t, err)
	assert.Equal(t, map[rune]string{'A': "0", 'B': "10"}, tbl.Codes())
}

func TestLoadCodesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing tab", "'A' 0\n", "want symbol<TAB>code"},
		{"unquoted symbol", "A\t0\n", "bad symbol"},
		{"multi rune symbol", "\"ab\"\t0\n", "not a single rune"},
		{"duplicate symbol", "'A'\t0\n'A'\t1\n", "duplicate symbol"},
		{"empty codeword", "'A'\t\t1\n", "empty codeword"},
		{"bad bit", "'A'\t0z1\n", "invalid bit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadCodes(writeTestFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadCodesNotPrefixFree(t *testing.T) {
	_, err := loadCodes(writeTestFile(t, "'A'\t0\n'B'\t01\n"))
	assert.ErrorIs(t, err, fano.ErrNotPrefixFree)
}

func TestLoadCodesMissingFile(t *testing.T) {
	_, err := loadCodes(filepath.Join(t.TempDir(), "nope.tsv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

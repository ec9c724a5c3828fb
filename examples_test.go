package fano_test

import (
	"fmt"

	"github.com/axiomhq/fano"
)

func Example() {
	tbl := fano.BuildString("ABRAACADABRA")

	bits, _ := fano.EncodeString(tbl, "ABRAACADABRA")
	text, _ := fano.DecodeString(tbl, bits)
	fmt.Println(bits)
	fmt.Println(text)
	// Output:
	// 010110001110011110101100
	// ABRAACADABRA
}

func ExampleBuildString() {
	tbl := fano.BuildString("ABRAACADABRA")
	for _, e := range tbl.Entries() {
		fmt.Printf("%c freq=%d code=%s\n", e.Symbol, e.Freq, e.Code)
	}
	// Output:
	// A freq=6 code=0
	// B freq=2 code=10
	// R freq=2 code=110
	// C freq=1 code=1110
	// D freq=1 code=1111
}

func ExampleBuild_words() {
	words := []string{"to", "be", "or", "not", "to", "be"}
	tbl := fano.Build(words)

	bits, _ := tbl.Encode([]string{"not", "to", "be"})
	back, _ := tbl.Decode(bits)
	fmt.Println(bits, back)
	// Output:
	// 111010 [not to be]
}

func ExampleTable_Decode_malformed() {
	tbl := fano.BuildString("ABRAACADABRA")

	_, err := tbl.Decode("01011")
	fmt.Println(err)
	// Output:
	// fano: 2 trailing bits at offset 3 match no codeword: fano: malformed bitstream
}

func ExampleNewTable() {
	tbl, err := fano.NewTable(map[rune]string{
		'A': "0",
		'B': "01",
	})
	fmt.Println(tbl, err)
	// Output:
	// <nil> fano: codeword "0" of symbol 'A' is a prefix of "01" of symbol 'B': fano: code is not prefix-free
}

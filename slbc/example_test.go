package slbc_test

import (
	"fmt"

	"github.com/abhyagra/slbc/container"
	"github.com/abhyagra/slbc/slbc"
)

func ExampleEncodeIAST() {
	payload, _ := slbc.EncodeIAST("dharma")
	for i, b := range payload {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%02X", b)
	}
	fmt.Println()
	// Output: 26 1B 40 33 24 40 2E
}

func ExampleDecodePhon() {
	payload, _ := slbc.EncodeIAST("dharma")

	iast, _ := slbc.DecodePhon(payload, slbc.ScriptIAST)
	deva, _ := slbc.DecodePhon(payload, slbc.ScriptDevanagari)
	fmt.Println(iast)
	fmt.Println(deva)
	// Output:
	// dharma
	// धर्म
}

func ExampleBuild() {
	payload, _ := slbc.EncodeIAST("na ca")
	data := container.Build(payload)

	hdr, chunks, _ := container.Parse(data)
	fmt.Println(hdr.HasLipi(), len(chunks), container.ChunkTypeName(chunks[0].Type))
	// Output: true 2 PHON
}

func ExampleGuna() {
	r, _ := slbc.Guna(0x44) // i
	fmt.Println(r)
	// Output: guṇa: i (0x44) → e (0x85)
}

package main

import (
	"fmt"
	"os"

	"github.com/chewxy/sexp"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sexp-probe <file.kicad_sch>")
		os.Exit(1)
	}

	filename := os.Args[1]
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File size: %d bytes\n", len(data))
	head := data
	if len(head) > 80 {
		head = head[:80]
	}
	fmt.Printf("Head: %s\n", head)

	sexps, err := sexp.ParseString(string(data))
	if err != nil {
		fmt.Printf("Error parsing s-expression: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top-level s-expressions: %d\n", len(sexps))
	for i, s := range sexps {
		if i >= 3 {
			fmt.Printf("... and %d more\n", len(sexps)-3)
			break
		}
		fmt.Printf("#%d: leaf=%v", i+1, s.IsLeaf())
		if !s.IsLeaf() {
			fmt.Printf(" leaves=%d", s.LeafCount())
		}
		fmt.Println()
	}
}

package main

import (
	"fmt"

	"github.com/parlang/parl/scanner"
)

func main() {
	src := `
fn add(a, b) {
  a + b; // sum
}

spawn add(1, 2);
sync;
`
	s := scanner.New(src)
	for {
		tok, err := s.Next()
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%s: \t %s %q\n", tok.Pos, tok.Kind, tok.Lexeme)
		if tok.Kind == scanner.EOF {
			break
		}
	}
}

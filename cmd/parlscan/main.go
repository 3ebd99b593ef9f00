package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/parlang/parl/scanner"
	"github.com/xyproto/env/v2"
)

var (
	quiet     bool
	keepGoing bool
)

func init() {
	flag.BoolVar(&quiet, "q", false, "suppress token output, report errors only")
	flag.BoolVar(&keepGoing, "k", false, "report every invalid character instead of stopping at the first")
}

var (
	keywordColor = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
)

func main() {
	flag.Parse()

	if env.Bool("PARLSCAN_NO_COLOR") {
		color.NoColor = true
	}

	filename := flag.Arg(0)
	if filename == "" {
		repl()
		return
	}

	src := scanner.MustReadFile(filename)
	if !scan(filename, src) {
		os.Exit(1)
	}
}

// scan tokenizes src, printing one token per line, and reports whether
// the source scanned cleanly.
func scan(filename, src string) bool {
	scnr := scanner.New(src)
	ok := true
	for {
		tok, err := scnr.Next()
		if err != nil {
			printError(filename, err)
			ok = false
			if keepGoing {
				// the cursor is already past the bad character
				continue
			}
			return false
		}
		printToken(filename, tok)
		if tok.Kind == scanner.EOF {
			return ok
		}
	}
}

func printToken(filename string, tok scanner.Token) {
	if quiet {
		return
	}
	name := tok.Kind.String()
	if tok.Kind.IsKeyword() {
		name = keywordColor.Sprint(name)
	}
	fmt.Printf("%s:%s\t%s\t%q\n", filename, tok.Pos, name, tok.Lexeme)
}

func printError(filename string, err error) {
	fmt.Fprintln(os.Stderr, errorColor.Sprintf("%s:%v", filename, err))
}

func repl() {
	fmt.Println("parl scanner REPL. Type 'exit' to quit.")
	stdin := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !stdin.Scan() {
			break
		}
		line := stdin.Text()
		if line == "exit" {
			break
		}
		scan("<stdin>", line)
	}
}

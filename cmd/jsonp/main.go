// Command jsonp reads a JSON document, feeds it through the character
// tokenizer and the tree parser, and prints the result: the parsed value
// tree, or with --tokens the raw token stream. Syntax errors go to stderr
// with a nonzero exit status.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/tailscale/hujson"

	"jsonp"
	"jsonp/ast"
)

// CLI defines the command-line interface.
var CLI struct {
	Input       string `arg:"" optional:"" help:"Path to input JSON file. If not specified, reads from stdin." type:"path"`
	Tokens      bool   `help:"Dump the token stream instead of parsing." short:"t"`
	Standardize bool   `help:"Rewrite comments and trailing commas to standard JSON before reading." short:"s"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("jsonp"),
		kong.Description("A character-granular JSON reader."),
		kong.UsageOnError(),
	)

	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	text, err := readInput()
	if err != nil {
		return err
	}
	if CLI.Standardize {
		// The core grammar has no comments or trailing commas; rewrite them
		// away up front so JWCC-flavored input is still readable.
		std, err := hujson.Standardize(text)
		if err != nil {
			return fmt.Errorf("standardize input: %w", err)
		}
		text = std
	}

	tokens := jsonp.NewTokenizer().Tokenize(string(text))
	if CLI.Tokens {
		for _, tok := range tokens {
			fmt.Fprintf(w, "%v at %v\n", tok, tok.Pos)
		}
		return nil
	}

	v, err := ast.Parse(tokens)
	if err != nil {
		return err
	}
	spew.Fdump(w, v)
	return nil
}

func readInput() ([]byte, error) {
	if CLI.Input == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(CLI.Input)
}

package jsonp

import "fmt"

// Kind is the class of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	NotSupported Kind = iota // unrecognized input character
	Quote                    // double quotation mark `"`
	Digit                    // decimal digit, carries the matched character
	Dot                      // decimal point "."
	Comma                    // comma ","
	Colon                    // colon ":"
	Minus                    // minus sign "-"
	LCurly                   // left curly brace "{"
	RCurly                   // right curly brace "}"
	LBracket                 // left square bracket "["
	RBracket                 // right square bracket "]"
	Letter                   // letter, carries the matched character
	Newline                  // line feed
	Whitespace               // space or tab
)

var kindStr = [...]string{
	NotSupported: "unsupported character",
	Quote:        `'"'`,
	Digit:        "a digit",
	Dot:          `"."`,
	Comma:        `","`,
	Colon:        `":"`,
	Minus:        `"-"`,
	LCurly:       `"{"`,
	RCurly:       `"}"`,
	LBracket:     `"["`,
	RBracket:     `"]"`,
	Letter:       "a letter",
	Newline:      "a newline",
	Whitespace:   "a whitespace",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[NotSupported]
	}
	return kindStr[k]
}

// A Token is a single classified input character together with the position
// at which it was read. Ch is set only for Digit and Letter tokens: matching
// in the parser is a property of the Kind alone, the payload exists so that
// multi-character literals can be reassembled from consecutive tokens.
type Token struct {
	Kind Kind
	Ch   rune // payload for Digit and Letter tokens
	Pos  Position
}

// String renders the token the way syntax error messages quote it.
func (t Token) String() string {
	if t.Kind == Digit || t.Kind == Letter {
		return fmt.Sprintf("%q", t.Ch)
	}
	return t.Kind.String()
}

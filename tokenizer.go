package jsonp

// A Tokenizer converts raw text into a sequence of position-tagged tokens,
// one per input character. A Tokenizer is good for a single Tokenize call;
// construct a fresh one for each document, the position state is not reset
// by any other means.
type Tokenizer struct {
	pos      Position
	inString bool
}

// NewTokenizer constructs a tokenizer positioned at the start of a document.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{pos: Position{Line: 1, Column: 0}}
}

// Tokenize classifies each character of text into a token tagged with its
// source position. Tokenize cannot fail: characters outside the JSON
// alphabet are reported as NotSupported tokens and left for the parser to
// reject.
//
// A double quotation mark toggles string scanning. While a string is open,
// spaces and tabs are reported as Letter tokens rather than Whitespace, so
// that string contents survive the parser's whitespace strip. There is no
// escape handling: a backslash before a quotation mark does not keep the
// string open.
func (t *Tokenizer) Tokenize(text string) []Token {
	toks := make([]Token, 0, len(text))
	for _, ch := range text {
		t.pos.Column++
		toks = append(toks, t.classify(ch))
	}
	return toks
}

func (t *Tokenizer) classify(ch rune) Token {
	if t.inString {
		switch ch {
		case '\n':
			t.newLine()
			return Token{Kind: Newline, Pos: t.pos}
		case '"':
			t.inString = false
			return Token{Kind: Quote, Pos: t.pos}
		}
		// Everything else, spaces and tabs included, is string content.
		return Token{Kind: Letter, Ch: ch, Pos: t.pos}
	}

	switch ch {
	case '"':
		t.inString = true
		return Token{Kind: Quote, Pos: t.pos}
	case ':':
		return Token{Kind: Colon, Pos: t.pos}
	case '-':
		return Token{Kind: Minus, Pos: t.pos}
	case '{':
		return Token{Kind: LCurly, Pos: t.pos}
	case '}':
		return Token{Kind: RCurly, Pos: t.pos}
	case '[':
		return Token{Kind: LBracket, Pos: t.pos}
	case ']':
		return Token{Kind: RBracket, Pos: t.pos}
	case ',':
		return Token{Kind: Comma, Pos: t.pos}
	case '.':
		return Token{Kind: Dot, Pos: t.pos}
	case ' ', '\t':
		return Token{Kind: Whitespace, Pos: t.pos}
	case '\n':
		t.newLine()
		return Token{Kind: Newline, Pos: t.pos}
	}
	switch {
	case isDigit(ch):
		return Token{Kind: Digit, Ch: ch, Pos: t.pos}
	case isLetter(ch):
		return Token{Kind: Letter, Ch: ch, Pos: t.pos}
	}
	return Token{Kind: NotSupported, Pos: t.pos}
}

func (t *Tokenizer) newLine() {
	t.pos.Line++
	t.pos.Column = 1
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

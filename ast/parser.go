package ast

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/mds/slice"
	"go4.org/mem"

	"jsonp"
)

// Parse parses the token stream produced by a jsonp.Tokenizer into a value
// tree. Only object- and array-rooted documents are accepted. Parse takes
// ownership of tokens and reorders it in place; in case of error the
// returned error has concrete type *jsonp.SyntaxError and describes the
// first violation in left-to-right scan order.
func Parse(tokens []jsonp.Token) (Value, error) {
	// Newlines inside string literals would be lost to the whitespace strip
	// below, silently splicing the surrounding lines together. Reject them
	// while quote parity still tells string content apart from structure.
	var inString bool
	for _, tok := range tokens {
		switch tok.Kind {
		case jsonp.Quote:
			inString = !inString
		case jsonp.Newline:
			if inString {
				return nil, &jsonp.SyntaxError{Pos: tok.Pos, Message: "string literal spans multiple lines"}
			}
		}
	}

	p := &parser{tokens: slice.Partition(tokens, func(tok jsonp.Token) bool {
		return tok.Kind != jsonp.Whitespace && tok.Kind != jsonp.Newline
	})}

	cur, err := p.current()
	if err != nil {
		return nil, err
	}
	switch cur.Kind {
	case jsonp.LCurly:
		return p.parseObject()
	case jsonp.LBracket:
		return p.parseArray()
	}
	return nil, p.errorf(cur, "invalid JSON document, got %v", cur)
}

// A parser owns a filtered token stream and a monotonic read index into it.
// The index is never rewound; a parser is good for a single Parse call.
type parser struct {
	tokens []jsonp.Token
	idx    int
}

// current returns the token at the read index.
func (p *parser) current() (jsonp.Token, error) {
	if p.idx >= len(p.tokens) {
		return jsonp.Token{}, p.eof("unexpected end of file")
	}
	return p.tokens[p.idx], nil
}

// advance moves the read index forward by one. Advancing past the final
// token is allowed once; advancing again reports unterminated input.
func (p *parser) advance() error {
	if p.idx >= len(p.tokens) {
		return p.eof("unterminated document")
	}
	p.idx++
	return nil
}

// assertCurrent reports a syntax error unless the current token matches one
// of the expected kinds. Matching is by kind alone: any digit matches Digit
// and any letter matches Letter, regardless of the character they carry.
func (p *parser) assertCurrent(kinds ...jsonp.Kind) error {
	cur, err := p.current()
	if err != nil {
		return err
	}
	if slices.Contains(kinds, cur.Kind) {
		return nil
	}
	return p.errorf(cur, "expected %s, got %v", kindLabel(kinds), cur)
}

// collectLetters consumes consecutive Letter tokens and returns their
// characters as a string, stopping at the first token of any other kind.
func (p *parser) collectLetters() string {
	var sb strings.Builder
	for p.idx < len(p.tokens) && p.tokens[p.idx].Kind == jsonp.Letter {
		sb.WriteRune(p.tokens[p.idx].Ch)
		p.idx++
	}
	return sb.String()
}

// collectDigits consumes a run of digit, minus and decimal point tokens and
// returns it as written. Numeric well-formedness is not checked here; the
// run goes to strconv verbatim.
func (p *parser) collectDigits() string {
	var sb strings.Builder
	for p.idx < len(p.tokens) {
		switch tok := p.tokens[p.idx]; tok.Kind {
		case jsonp.Digit:
			sb.WriteRune(tok.Ch)
		case jsonp.Minus:
			sb.WriteByte('-')
		case jsonp.Dot:
			sb.WriteByte('.')
		default:
			return sb.String()
		}
		p.idx++
	}
	return sb.String()
}

// parseObject consumes one object.
// Precondition: the current token is "{".
func (p *parser) parseObject() (Value, error) {
	if err := p.assertCurrent(jsonp.LCurly); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var obj Object
	for {
		cur, err := p.current()
		if err != nil {
			return nil, err // missing closing brace
		}
		if cur.Kind == jsonp.RCurly {
			break
		}
		if err := p.assertCurrent(jsonp.Quote, jsonp.Comma); err != nil {
			return nil, err
		}
		m, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		obj = append(obj, m)
	}
	if err := p.advance(); err != nil { // consume "}"
		return nil, err
	}
	if len(obj) == 0 {
		return Empty{}, nil
	}
	return obj, nil
}

// parseMember consumes one "key": value member.
func (p *parser) parseMember() (*Member, error) {
	key, err := p.parseKey()
	if err != nil {
		return nil, err
	}
	if err := p.assertCurrent(jsonp.Colon); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &Member{Key: key, Value: val}, nil
}

// parseKey consumes a quoted member key. A comma left behind by the
// preceding member is consumed first.
func (p *parser) parseKey() (string, error) {
	cur, err := p.current()
	if err != nil {
		return "", err
	}
	if cur.Kind == jsonp.Comma {
		if err := p.advance(); err != nil {
			return "", err
		}
	}
	if err := p.assertCurrent(jsonp.Quote); err != nil {
		return "", err
	}
	if err := p.advance(); err != nil {
		return "", err
	}
	key := p.collectLetters()
	if err := p.assertCurrent(jsonp.Quote); err != nil {
		return "", err
	}
	return key, p.advance()
}

// parseValue consumes one value of any kind, dispatching on the current
// token. A letter begins a boolean constant; there is no null literal in
// this grammar.
func (p *parser) parseValue() (Value, error) {
	cur, err := p.current()
	if err != nil {
		return nil, err
	}
	switch cur.Kind {
	case jsonp.LCurly:
		return p.parseObject()
	case jsonp.Quote:
		body, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return String(body), nil
	case jsonp.Letter:
		return p.parseBool()
	case jsonp.Digit, jsonp.Minus:
		return p.parseNumber()
	case jsonp.LBracket:
		return p.parseArray()
	}
	return nil, p.errorf(cur, "unexpected %v in value", cur)
}

// parseArray consumes one array.
// Precondition: the current token is "[".
func (p *parser) parseArray() (Value, error) {
	if err := p.assertCurrent(jsonp.LBracket); err != nil {
		return nil, err
	}
	arr := Array{}
	for {
		cur, err := p.current()
		if err != nil {
			return nil, err // missing closing bracket
		}
		if cur.Kind == jsonp.RBracket {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if cur, err = p.current(); err != nil {
			return nil, err
		}
		if cur.Kind == jsonp.RBracket {
			break // empty array, or a value already consumed the separator
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	return arr, p.advance() // consume "]"
}

// parseString consumes a quoted string and returns its body with the
// quotation marks stripped.
func (p *parser) parseString() (string, error) {
	if err := p.assertCurrent(jsonp.Quote); err != nil {
		return "", err
	}
	if err := p.advance(); err != nil {
		return "", err
	}
	body := p.collectLetters()
	if err := p.assertCurrent(jsonp.Quote); err != nil {
		return "", err
	}
	return body, p.advance()
}

// parseNumber consumes a run of digit, minus and decimal point tokens and
// converts it with strconv. A run containing a decimal point is a Float,
// any other an Int. Malformed runs, a bare minus sign or a doubled decimal
// point among them, are rejected by the conversion.
func (p *parser) parseNumber() (Value, error) {
	start, err := p.current()
	if err != nil {
		return nil, err
	}
	text := p.collectDigits()
	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, p.errorf(start, "failed to parse float %q", text)
		}
		return Float(f), nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, p.errorf(start, "failed to parse integer %q", text)
	}
	return Int(n), nil
}

// parseBool consumes a run of letters and matches it against the boolean
// constants.
func (p *parser) parseBool() (Value, error) {
	start, err := p.current()
	if err != nil {
		return nil, err
	}
	text := mem.S(p.collectLetters())
	switch {
	case text.EqualString("true"):
		return Bool(true), nil
	case text.EqualString("false"):
		return Bool(false), nil
	}
	return nil, p.errorf(start, "unknown constant %q", text.StringCopy())
}

func (p *parser) errorf(tok jsonp.Token, msg string, args ...any) error {
	return &jsonp.SyntaxError{Pos: tok.Pos, Message: fmt.Sprintf(msg, args...)}
}

func (p *parser) eof(msg string) error {
	return &jsonp.SyntaxError{EOF: true, Message: msg}
}

// kindLabel makes a human-readable summary string for the given token kinds.
func kindLabel(kinds []jsonp.Kind) string {
	if len(kinds) == 1 {
		return kinds[0].String()
	}
	last := len(kinds) - 1
	ss := make([]string, last)
	for i, k := range kinds[:last] {
		ss[i] = k.String()
	}
	return strings.Join(ss, ", ") + " or " + kinds[last].String()
}

package jsonp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"jsonp"
)

func kinds(toks []jsonp.Token) []jsonp.Kind {
	var ks []jsonp.Kind
	for _, tok := range toks {
		ks = append(ks, tok.Kind)
	}
	return ks
}

func TestTokenizer(t *testing.T) {
	tests := []struct {
		input string
		want  []jsonp.Kind
	}{
		// Empty input
		{"", nil},

		// Punctuation
		{"{}[],:.-", []jsonp.Kind{
			jsonp.LCurly, jsonp.RCurly, jsonp.LBracket, jsonp.RBracket,
			jsonp.Comma, jsonp.Colon, jsonp.Dot, jsonp.Minus,
		}},

		// Whitespace and newlines
		{" \t\n ", []jsonp.Kind{
			jsonp.Whitespace, jsonp.Whitespace, jsonp.Newline, jsonp.Whitespace,
		}},

		// Digits and letters
		{"12a", []jsonp.Kind{jsonp.Digit, jsonp.Digit, jsonp.Letter}},
		{"-3.5", []jsonp.Kind{jsonp.Minus, jsonp.Digit, jsonp.Dot, jsonp.Digit}},
		{"true", []jsonp.Kind{jsonp.Letter, jsonp.Letter, jsonp.Letter, jsonp.Letter}},

		// Characters outside the alphabet
		{"@", []jsonp.Kind{jsonp.NotSupported}},
		{"#\\", []jsonp.Kind{jsonp.NotSupported, jsonp.NotSupported}},

		// A space inside a string is content, not whitespace.
		{`"a b"`, []jsonp.Kind{
			jsonp.Quote, jsonp.Letter, jsonp.Letter, jsonp.Letter, jsonp.Quote,
		}},

		// Punctuation inside a string is content too.
		{`"a:1"`, []jsonp.Kind{
			jsonp.Quote, jsonp.Letter, jsonp.Letter, jsonp.Letter, jsonp.Quote,
		}},

		// The quote after a closed string reopens string scanning.
		{`"a" "b"`, []jsonp.Kind{
			jsonp.Quote, jsonp.Letter, jsonp.Quote,
			jsonp.Whitespace,
			jsonp.Quote, jsonp.Letter, jsonp.Quote,
		}},

		// A small document
		{`{"a": 1}`, []jsonp.Kind{
			jsonp.LCurly, jsonp.Quote, jsonp.Letter, jsonp.Quote,
			jsonp.Colon, jsonp.Whitespace, jsonp.Digit, jsonp.RCurly,
		}},
	}

	for _, test := range tests {
		got := kinds(jsonp.NewTokenizer().Tokenize(test.input))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenizerPayload(t *testing.T) {
	input := `"x 9"`
	toks := jsonp.NewTokenizer().Tokenize(input)

	var got []rune
	for _, tok := range toks {
		if tok.Kind == jsonp.Letter {
			got = append(got, tok.Ch)
		}
	}
	if diff := cmp.Diff([]rune{'x', ' ', '9'}, got); diff != "" {
		t.Errorf("Input: %#q\nLetter payloads: (-want, +got)\n%s", input, diff)
	}
}

func TestTokenizerPos(t *testing.T) {
	type tokPos struct {
		Kind jsonp.Kind
		Pos  string
	}
	tests := []struct {
		input string
		want  []tokPos
	}{
		{"", nil},
		{"{}", []tokPos{
			{jsonp.LCurly, "line 1 column 1"},
			{jsonp.RCurly, "line 1 column 2"},
		}},

		// The newline token itself carries the position at the head of the
		// new line; the character after it is at column 2.
		{"{\n}", []tokPos{
			{jsonp.LCurly, "line 1 column 1"},
			{jsonp.Newline, "line 2 column 1"},
			{jsonp.RCurly, "line 2 column 2"},
		}},
		{"[\n\n1", []tokPos{
			{jsonp.LBracket, "line 1 column 1"},
			{jsonp.Newline, "line 2 column 1"},
			{jsonp.Newline, "line 3 column 1"},
			{jsonp.Digit, "line 3 column 2"},
		}},
	}
	for _, test := range tests {
		var got []tokPos
		for _, tok := range jsonp.NewTokenizer().Tokenize(test.input) {
			got = append(got, tokPos{tok.Kind, tok.Pos.String()})
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  jsonp.Token
		want string
	}{
		{jsonp.Token{Kind: jsonp.LCurly}, `"{"`},
		{jsonp.Token{Kind: jsonp.Comma}, `","`},
		{jsonp.Token{Kind: jsonp.Quote}, `'"'`},
		{jsonp.Token{Kind: jsonp.Digit, Ch: '7'}, `'7'`},
		{jsonp.Token{Kind: jsonp.Letter, Ch: 'q'}, `'q'`},
		{jsonp.Token{Kind: jsonp.Newline}, "a newline"},
		{jsonp.Token{Kind: jsonp.NotSupported}, "unsupported character"},
	}
	for _, test := range tests {
		if got := test.tok.String(); got != test.want {
			t.Errorf("Token %v: got %q, want %q", test.tok.Kind, got, test.want)
		}
	}
}

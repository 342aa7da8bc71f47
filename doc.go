// Package jsonp implements a character-granular JSON tokenizer.
//
// # Tokenizing
//
// The Tokenizer type classifies each character of an in-memory document into
// a token tagged with its line and column. Tokenization never fails;
// characters the grammar has no use for are reported as NotSupported tokens
// and rejected later, by the parser:
//
//	toks := jsonp.NewTokenizer().Tokenize(text)
//	for _, tok := range toks {
//	   log.Printf("%v at %v", tok, tok.Pos)
//	}
//
// The companion package jsonp/ast consumes the token stream and builds a
// tree of JSON values, reporting the first grammar violation as a
// *jsonp.SyntaxError.
//
// # Limitations
//
// The grammar is deliberately small. There is no null literal, no escape
// sequences inside strings, no exponent notation in numbers, and no comments
// or trailing commas. A string literal must not span lines: a newline inside
// a quoted string is a syntax error.
package jsonp

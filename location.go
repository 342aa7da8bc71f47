package jsonp

import "fmt"

// A Position describes the location of a single character in source text.
// Lines are numbered from 1. The column advances by one for every character
// consumed and restarts after a newline.
type Position struct {
	Line   int // line number, 1-based
	Column int // column of the character in its line
}

func (p Position) String() string {
	return fmt.Sprintf("line %d column %d", p.Line, p.Column)
}

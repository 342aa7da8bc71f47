package jsonp

import "fmt"

// SyntaxError is the concrete type of errors reported by the parser. It
// records the position of the offending token, or marks that the token
// stream ran out before the grammar was satisfied.
type SyntaxError struct {
	Pos     Position // position of the offending token; unset if EOF
	EOF     bool     // the token stream was exhausted at the point of failure
	Message string
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	if e.EOF {
		return fmt.Sprintf("Syntax error: %s at end of file", e.Message)
	}
	return fmt.Sprintf("Syntax error: %s at %s", e.Message, e.Pos)
}

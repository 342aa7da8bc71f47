// Package ast defines a syntax tree for JSON values, and a parser that
// constructs trees from the token stream produced by a jsonp.Tokenizer.
package ast

// A Value is an arbitrary JSON value. The concrete type is one of Object,
// Array, String, Int, Float, Bool or Empty.
type Value interface{ isValue() }

// An Object is an ordered collection of key-value members. Members with
// duplicate keys are preserved in source order, not merged or rejected.
type Object []*Member

func (Object) isValue() {}

// Len reports the number of members of o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Array is an ordered sequence of values.
type Array []Value

func (Array) isValue() {}

// Len reports the number of elements of a.
func (a Array) Len() int { return len(a) }

// A String is a string value, quotation marks stripped.
type String string

func (String) isValue() {}

// An Int is a 64-bit integer value.
type Int int64

func (Int) isValue() {}

// A Float is a double-precision value. A number containing a decimal point
// is always a Float, even when the fraction is zero.
type Float float64

func (Float) isValue() {}

// A Bool is a Boolean value.
type Bool bool

func (Bool) isValue() {}

// Empty is the object without members. It is produced only by the object
// production: an array without elements is an Array of length zero, never
// Empty.
type Empty struct{}

func (Empty) isValue() {}

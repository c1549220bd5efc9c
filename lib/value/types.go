package value

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero      = errors.New("division by zero")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrUnsupportedOperator = errors.New("unsupported operator")
	ErrNotPrintable        = errors.New("value can not be printed")
	ErrNotFinite           = errors.New("result is not a finite number")
)

// Value is both the label of an expression tree node and the result of
// evaluating one. Identifier and operation values only ever label nodes.
type Value interface {
	isValue()
	Equal(v Value) bool
	Op(opt string, other Value) (Value, error)
	String() string
}

var _ Value = Int(0)
var _ Value = Double(0)
var _ Value = Identifier("")
var _ Value = PlusOperation
var _ Value = nil_{}

type Int int64

func (I Int) isValue() {}
func (I Int) Equal(v Value) bool {
	switch v.(type) {
	case Int:
		return v.(Int) == I
	default:
		return false
	}
}
func (I Int) String() string {
	return fmt.Sprintf("Int(%d)", int64(I))
}
func (I Int) Op(opt string, other Value) (Value, error) {
	return route(I, opt, other)
}

type Double float64

func (d Double) isValue() {}
func (d Double) Equal(v Value) bool {
	switch v.(type) {
	case Double:
		return v.(Double) == d
	default:
		return false
	}
}
func (d Double) String() string {
	return fmt.Sprintf("Double(%v)", float64(d))
}
func (d Double) Op(opt string, other Value) (Value, error) {
	return route(d, opt, other)
}

// Identifier is a variable name as it appeared in the source text.
type Identifier string

func (id Identifier) isValue() {}
func (id Identifier) Equal(v Value) bool {
	switch v.(type) {
	case Identifier:
		return v.(Identifier) == id
	default:
		return false
	}
}
func (id Identifier) String() string {
	return fmt.Sprintf("Identifier(%s)", string(id))
}
func (id Identifier) Op(opt string, other Value) (Value, error) {
	return route(id, opt, other)
}

// Operation labels an inner node of an expression tree.
type Operation uint8

const (
	PlusOperation Operation = iota + 1
	MinusOperation
	MultiplyOperation
	DivideOperation
	Assign
)

// Symbol returns the operator as written in source text.
func (o Operation) Symbol() string {
	switch o {
	case PlusOperation:
		return "+"
	case MinusOperation:
		return "-"
	case MultiplyOperation:
		return "*"
	case DivideOperation:
		return "/"
	case Assign:
		return "="
	default:
		return "?"
	}
}

func (o Operation) isValue() {}
func (o Operation) Equal(v Value) bool {
	switch v.(type) {
	case Operation:
		return v.(Operation) == o
	default:
		return false
	}
}
func (o Operation) String() string {
	switch o {
	case PlusOperation:
		return "PlusOperation"
	case MinusOperation:
		return "MinusOperation"
	case MultiplyOperation:
		return "MultiplyOperation"
	case DivideOperation:
		return "DivideOperation"
	case Assign:
		return "Assign"
	default:
		return fmt.Sprintf("Operation(%d)", uint8(o))
	}
}
func (o Operation) Op(opt string, other Value) (Value, error) {
	return route(o, opt, other)
}

type nil_ struct{}

var Nil = nil_{}

func (n nil_) isValue() {}
func (n nil_) Equal(v Value) bool {
	switch v.(type) {
	case nil_:
		return true
	default:
		return false
	}
}
func (n nil_) String() string {
	return "Nil"
}
func (n nil_) Op(opt string, other Value) (Value, error) {
	return route(n, opt, other)
}

// IsNumber reports whether v is an Int or a Double.
func IsNumber(v Value) bool {
	switch v.(type) {
	case Int, Double:
		return true
	default:
		return false
	}
}

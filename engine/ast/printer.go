package ast

import (
	"fmt"

	"calc/lib/value"
)

// Printer renders a tree in infix form with every operator node
// parenthesised, so the shape built by the parser is visible. Missing
// children print as '_'.
type Printer struct{}

var _ VisitorString = Printer{}

func (p Printer) VisitNil() string {
	return "_"
}

func (p Printer) VisitNode(v value.Value, left, right Ast) string {
	switch v := v.(type) {
	case value.Operation:
		return fmt.Sprintf("(%s %s %s)", left.AcceptString(p), v.Symbol(), right.AcceptString(p))
	default:
		label := p.label(v)
		if IsNil(left) && IsNil(right) {
			return label
		}
		// a literal that picked up children is malformed, show them anyway
		return fmt.Sprintf("%s[%s, %s]", label, left.AcceptString(p), right.AcceptString(p))
	}
}

func (p Printer) label(v value.Value) string {
	switch v := v.(type) {
	case value.Identifier:
		return string(v)
	default:
		if s, err := value.Format(v); err == nil {
			return s
		}
		return v.String()
	}
}

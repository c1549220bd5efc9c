package ast

import (
	"calc/engine/lexer"
	"calc/lib/value"
)

type VisitorString interface {
	VisitNil() string
	VisitNode(v value.Value, left, right Ast) string
}

type VisitorValue interface {
	VisitNil() (value.Value, error)
	VisitNode(v value.Value, left, right Ast) (value.Value, error)
}

// Ast is an expression tree: either Nil or a Node. Trees are never modified
// after construction; the insert functions return new nodes.
type Ast interface {
	AcceptValue(v VisitorValue) (value.Value, error)
	AcceptString(v VisitorString) string
	Equals(other Ast) bool
}

var _ Ast = nil_{}
var _ Ast = Node{}

type nil_ struct{}

// Nil is the empty tree.
var Nil Ast = nil_{}

func (n nil_) AcceptValue(v VisitorValue) (value.Value, error) {
	return v.VisitNil()
}

func (n nil_) AcceptString(v VisitorString) string {
	return v.VisitNil()
}

func (n nil_) Equals(other Ast) bool {
	return IsNil(other)
}

type Node struct {
	Value value.Value
	Left  Ast
	Right Ast
}

func (n Node) AcceptValue(v VisitorValue) (value.Value, error) {
	return v.VisitNode(n.Value, orNil(n.Left), orNil(n.Right))
}

func (n Node) AcceptString(v VisitorString) string {
	return v.VisitNode(n.Value, orNil(n.Left), orNil(n.Right))
}

func (n Node) Equals(other Ast) bool {
	o, ok := other.(Node)
	if !ok {
		return false
	}
	return n.Value.Equal(o.Value) && orNil(n.Left).Equals(orNil(o.Left)) && orNil(n.Right).Equals(orNil(o.Right))
}

// New returns a leaf labelled v.
func New(v value.Value) Node {
	return Node{Value: v, Left: Nil, Right: Nil}
}

// IsNil reports whether a is the empty tree. A nil interface counts as empty.
func IsNil(a Ast) bool {
	if a == nil {
		return true
	}
	_, ok := a.(nil_)
	return ok
}

func orNil(a Ast) Ast {
	if a == nil {
		return Nil
	}
	return a
}

// InsertLeft returns a copy of a whose left child is child. Inserting into the
// empty tree yields child itself.
func InsertLeft(a Ast, child Ast) Ast {
	n, ok := a.(Node)
	if !ok {
		return orNil(child)
	}
	return Node{Value: n.Value, Left: orNil(child), Right: orNil(n.Right)}
}

// InsertRight returns a copy of a whose right child is child. Inserting into
// the empty tree yields child itself.
func InsertRight(a Ast, child Ast) Ast {
	n, ok := a.(Node)
	if !ok {
		return orNil(child)
	}
	return Node{Value: n.Value, Left: orNil(n.Left), Right: orNil(child)}
}

// ValueOf returns the label of the root, or value.Nil for the empty tree.
func ValueOf(a Ast) value.Value {
	if n, ok := a.(Node); ok {
		return n.Value
	}
	return value.Nil
}

// LeftOf returns the left child of the root, or Nil for the empty tree.
func LeftOf(a Ast) Ast {
	if n, ok := a.(Node); ok {
		return orNil(n.Left)
	}
	return Nil
}

// RightOf returns the right child of the root, or Nil for the empty tree.
func RightOf(a Ast) Ast {
	if n, ok := a.(Node); ok {
		return orNil(n.Right)
	}
	return Nil
}

// IsLeaf reports whether a is a node with no children.
func IsLeaf(a Ast) bool {
	n, ok := a.(Node)
	return ok && IsNil(n.Left) && IsNil(n.Right)
}

// FromToken maps a token to the value that labels its node. Parentheses and
// the none token have no label and map to value.Nil.
func FromToken(tok lexer.Token) value.Value {
	switch tok.Type {
	case lexer.Int:
		return value.Int(tok.Int)
	case lexer.Float:
		return value.Double(tok.Float)
	case lexer.Identifier:
		return value.Identifier(tok.Name)
	case lexer.Operator:
		switch tok.Op {
		case lexer.Plus:
			return value.PlusOperation
		case lexer.Minus:
			return value.MinusOperation
		case lexer.Multiply:
			return value.MultiplyOperation
		case lexer.Divide:
			return value.DivideOperation
		}
	case lexer.Equal:
		return value.Assign
	}
	return value.Nil
}

func (n Node) String() string {
	return n.AcceptString(Printer{})
}

func (n nil_) String() string {
	return "Nil"
}

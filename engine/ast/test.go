package ast

import (
	"calc/lib/value"
)

func MakeInt(i int64) Node {
	return New(value.Int(i))
}

func MakeDouble(d float64) Node {
	return New(value.Double(d))
}

func MakeVar(name string) Node {
	return New(value.Identifier(name))
}

func MakeBinary(left Ast, op value.Operation, right Ast) Node {
	return Node{Value: op, Left: left, Right: right}
}

var TestExamples []Ast

func init() {
	// This should not contain duplicates
	// Used in ast_test.go to check if each element
	// is equal to only itself.
	TestExamples = []Ast{
		Nil,
		MakeInt(4),
		MakeInt(5),
		MakeDouble(4),
		MakeDouble(3.4),
		MakeVar("x"),
		MakeVar("X"),
		New(value.PlusOperation),
		MakeBinary(MakeInt(1), value.PlusOperation, MakeInt(2)),
		MakeBinary(MakeInt(2), value.PlusOperation, MakeInt(1)),
		MakeBinary(MakeInt(1), value.MinusOperation, MakeInt(2)),
		MakeBinary(MakeInt(1), value.PlusOperation, Nil),
		MakeBinary(MakeVar("i"), value.Assign, MakeInt(1)),
		MakeBinary(MakeBinary(MakeInt(1), value.MultiplyOperation, MakeInt(2)), value.DivideOperation, MakeInt(3)),
		Node{Value: value.Int(2), Left: MakeInt(3), Right: Nil},
	}
}

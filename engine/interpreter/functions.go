package interpreter

import (
	"calc/engine/ast"
)

// Function is a user defined function: parameter trees, each expected to be a
// single identifier, and the body evaluated with those parameters bound.
type Function struct {
	Params []ast.Ast
	Body   ast.Ast
}

type Functions map[string]Function

func NewFunctions() Functions {
	return make(Functions)
}

// Define adds or replaces the function called name.
func (f Functions) Define(name string, fn Function) {
	f[name] = fn
}

func (f Functions) Lookup(name string) (Function, bool) {
	fn, ok := f[name]
	return fn, ok
}

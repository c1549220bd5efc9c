package interpreter

import (
	"fmt"

	"calc/engine/ast"
	"calc/lib/value"
)

// Interpreter evaluates expression trees against an environment and a
// function table it does not own.
type Interpreter struct {
	env   *Env
	funcs Functions
}

var _ ast.VisitorValue = Interpreter{}

func NewInterpreter(env *Env, funcs Functions) Interpreter {
	if funcs == nil {
		funcs = NewFunctions()
	}
	return Interpreter{env: env, funcs: funcs}
}

// Interpret evaluates tree. Assignments are written to env. The empty tree
// evaluates to value.Nil.
func Interpret(tree ast.Ast, env *Env, funcs Functions) (value.Value, error) {
	return NewInterpreter(env, funcs).Eval(tree)
}

func (i Interpreter) Eval(tree ast.Ast) (value.Value, error) {
	if tree == nil {
		return value.Nil, nil
	}
	return tree.AcceptValue(i)
}

func (i Interpreter) VisitNil() (value.Value, error) {
	return value.Nil, nil
}

func (i Interpreter) VisitNode(v value.Value, left, right ast.Ast) (value.Value, error) {
	switch v := v.(type) {
	case value.Int, value.Double:
		if !ast.IsNil(left) || !ast.IsNil(right) {
			return value.Nil, fmt.Errorf("%w: unexpected operand next to '%s'", ErrMalformedExpression, ast.New(v))
		}
		return v, nil
	case value.Identifier:
		if !ast.IsNil(left) || !ast.IsNil(right) {
			return value.Nil, fmt.Errorf("%w: unexpected operand next to '%s'", ErrMalformedExpression, string(v))
		}
		return i.env.Lookup(string(v))
	case value.Operation:
		if v == value.Assign {
			return i.visitAssign(left, right)
		}
		return i.visitBinary(left, v, right)
	default:
		return value.Nil, fmt.Errorf("%w: unexpected node '%s'", ErrMalformedExpression, v.String())
	}
}

func (i Interpreter) visitBinary(left ast.Ast, op value.Operation, right ast.Ast) (value.Value, error) {
	if ast.IsNil(left) || ast.IsNil(right) {
		return value.Nil, fmt.Errorf("%w: '%s' is missing an operand", ErrMalformedExpression, op.Symbol())
	}
	l, err := left.AcceptValue(i)
	if err != nil {
		return value.Nil, err
	}
	r, err := right.AcceptValue(i)
	if err != nil {
		return value.Nil, err
	}
	return l.Op(op.Symbol(), r)
}

// visitAssign binds the identifier on the left, which is not evaluated, to
// the value of the right operand and returns that value.
func (i Interpreter) visitAssign(left, right ast.Ast) (value.Value, error) {
	if ast.IsNil(left) || ast.IsNil(right) {
		return value.Nil, fmt.Errorf("%w: '=' is missing an operand", ErrMalformedExpression)
	}
	name, ok := ast.ValueOf(left).(value.Identifier)
	if !ok || !ast.IsLeaf(left) {
		return value.Nil, fmt.Errorf("%w: '%s'", ErrInvalidAssignment, left.AcceptString(ast.Printer{}))
	}
	val, err := right.AcceptValue(i)
	if err != nil {
		return value.Nil, err
	}
	i.env.Redefine(string(name), val)
	return val, nil
}

// Call evaluates the function called name with args bound to its parameters
// in a child scope of the interpreter's environment. Assignments made by the
// body stay in that scope.
func (i Interpreter) Call(name string, args []value.Value) (value.Value, error) {
	fn, ok := i.funcs.Lookup(name)
	if !ok {
		return value.Nil, fmt.Errorf("%w: '%s'", ErrUnknownFunction, name)
	}
	if len(fn.Params) != len(args) {
		return value.Nil, fmt.Errorf("%w: '%s' takes %d but got %d", ErrArity, name, len(fn.Params), len(args))
	}
	scope := i.env.PushEnv()
	for idx, param := range fn.Params {
		pname, ok := ast.ValueOf(param).(value.Identifier)
		if !ok || !ast.IsLeaf(param) {
			return value.Nil, fmt.Errorf("%w: parameter %d of '%s'", ErrInvalidParameter, idx, name)
		}
		if err := scope.Define(string(pname), args[idx]); err != nil {
			return value.Nil, err
		}
	}
	return Interpreter{env: scope, funcs: i.funcs}.Eval(fn.Body)
}

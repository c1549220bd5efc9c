package interpreter

import (
	"math"
	"strconv"
	"testing"

	"calc/engine/ast"
	"calc/engine/lexer"
	"calc/engine/parser"
	"calc/lib/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getInterpreter() Interpreter {
	return NewInterpreter(DefaultEnv(), NewFunctions())
}

func testValid(t *testing.T, node ast.Ast, expected value.Value) {
	i := getInterpreter()
	ret, err := i.Eval(node)
	assert.NoError(t, err)
	assert.Equal(t, expected, ret)
}

func testError(t *testing.T, node ast.Ast, target error) {
	i := getInterpreter()
	_, err := i.Eval(node)
	assert.ErrorIs(t, err, target)
}

func eval(t *testing.T, env *Env, text string) (value.Value, error) {
	t.Helper()
	return Interpret(parser.Parse(lexer.Lex(text)), env, NewFunctions())
}

func TestInterpreter_Leaves(t *testing.T) {
	testValid(t, ast.Nil, value.Nil)
	testValid(t, nil, value.Nil)
	testValid(t, ast.MakeInt(123), value.Int(123))
	testValid(t, ast.MakeDouble(123.3), value.Double(123.3))
	testValid(t, ast.MakeVar("pi"), value.Double(math.Pi))
	testError(t, ast.MakeVar("zzz"), ErrUnboundVariable)
}

func TestInterpreter_Binary(t *testing.T) {
	testValid(t, ast.MakeBinary(ast.MakeInt(5), value.PlusOperation, ast.MakeInt(8)), value.Int(13))
	testValid(t, ast.MakeBinary(ast.MakeInt(5), value.MinusOperation, ast.MakeInt(8)), value.Int(-3))
	testValid(t, ast.MakeBinary(ast.MakeInt(5), value.MultiplyOperation, ast.MakeInt(8)), value.Int(40))
	testValid(t, ast.MakeBinary(ast.MakeInt(4), value.DivideOperation, ast.MakeInt(8)), value.Double(0.5))
	testValid(t, ast.MakeBinary(ast.MakeInt(1), value.PlusOperation, ast.MakeDouble(0.5)), value.Double(1.5))

	// and errors are propagated from either side
	testError(t, ast.MakeBinary(ast.MakeInt(5), value.PlusOperation, ast.MakeVar("nope")), ErrUnboundVariable)
	testError(t, ast.MakeBinary(ast.MakeVar("nope"), value.PlusOperation, ast.MakeInt(5)), ErrUnboundVariable)
	testError(t, ast.MakeBinary(ast.MakeInt(1), value.DivideOperation, ast.MakeInt(0)), value.ErrDivisionByZero)
}

func TestInterpreter_Malformed(t *testing.T) {
	testError(t, ast.New(value.PlusOperation), ErrMalformedExpression)
	testError(t, ast.MakeBinary(ast.MakeInt(1), value.PlusOperation, ast.Nil), ErrMalformedExpression)
	testError(t, ast.MakeBinary(ast.Nil, value.MultiplyOperation, ast.MakeInt(1)), ErrMalformedExpression)
	testError(t, ast.Node{Value: value.Int(1), Left: ast.MakeInt(2), Right: ast.Nil}, ErrMalformedExpression)
	testError(t, ast.Node{Value: value.Identifier("x"), Left: ast.Nil, Right: ast.MakeInt(2)}, ErrMalformedExpression)
	testError(t, ast.New(value.Nil), ErrMalformedExpression)
	testError(t, ast.MakeBinary(ast.MakeVar("i"), value.Assign, ast.Nil), ErrMalformedExpression)
}

func TestInterpreter_Assign(t *testing.T) {
	env := DefaultEnv()
	i := NewInterpreter(env, nil)
	ret, err := i.Eval(ast.MakeBinary(ast.MakeVar("x"), value.Assign, ast.MakeInt(3)))
	assert.NoError(t, err)
	assert.Equal(t, value.Int(3), ret)
	found, err := env.Lookup("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Int(3), found)

	// reassigning replaces the binding
	_, err = i.Eval(ast.MakeBinary(ast.MakeVar("x"), value.Assign,
		ast.MakeBinary(ast.MakeVar("x"), value.MultiplyOperation, ast.MakeInt(2))))
	assert.NoError(t, err)
	found, err = env.Lookup("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Int(6), found)

	// the target is not evaluated, so it need not be bound
	testValid(t, ast.MakeBinary(ast.MakeVar("fresh"), value.Assign, ast.MakeDouble(1)), value.Double(1))

	testError(t, ast.MakeBinary(ast.MakeInt(1), value.Assign, ast.MakeInt(2)), ErrInvalidAssignment)
	testError(t, ast.MakeBinary(
		ast.MakeBinary(ast.MakeVar("a"), value.PlusOperation, ast.MakeInt(1)), value.Assign, ast.MakeInt(2)),
		ErrInvalidAssignment)
	// a failing right side leaves the env untouched
	env = DefaultEnv()
	_, err = Interpret(ast.MakeBinary(ast.MakeVar("y"), value.Assign, ast.MakeVar("nope")), env, nil)
	assert.ErrorIs(t, err, ErrUnboundVariable)
	_, err = env.Lookup("y")
	assert.ErrorIs(t, err, ErrUnboundVariable)
}

func TestInterpreter_DoesNotMutateTree(t *testing.T) {
	tree := ast.MakeBinary(ast.MakeVar("x"), value.Assign,
		ast.MakeBinary(ast.MakeInt(1), value.PlusOperation, ast.MakeInt(2)))
	before := tree
	_, err := Interpret(tree, DefaultEnv(), nil)
	assert.NoError(t, err)
	assert.True(t, before.Equals(tree))
}

func TestPipeline(t *testing.T) {
	scenarios := []struct {
		text     string
		expected value.Value
	}{
		{"2+2", value.Int(4)},
		{"1+(1*1)", value.Int(2)},
		{"1+(1*(1/1))", value.Double(2)},
		{"1+2*3", value.Int(9)},
		{"2*(1+2)", value.Int(6)},
		{"7/2", value.Double(3.5)},
		{"1.5*2", value.Double(3)},
		{"pi*0", value.Double(0)},
		{"", value.Nil},
	}
	for _, scenario := range scenarios {
		ret, err := eval(t, DefaultEnv(), scenario.text)
		assert.NoError(t, err, scenario.text)
		assert.Equal(t, scenario.expected, ret, scenario.text)
	}
}

func TestPipeline_Integers(t *testing.T) {
	for _, n := range []int64{0, 1, 9, 10, 12345, math.MaxInt64} {
		ret, err := eval(t, DefaultEnv(), strconv.FormatInt(n, 10))
		assert.NoError(t, err)
		assert.Equal(t, value.Int(n), ret)
	}
}

func TestPipeline_AssignmentVisibleAcrossLines(t *testing.T) {
	env := DefaultEnv()
	ret, err := eval(t, env, "i=1")
	require.NoError(t, err)
	assert.Equal(t, value.Int(1), ret)

	ret, err = eval(t, env, "i")
	require.NoError(t, err)
	assert.Equal(t, value.Int(1), ret)

	ret, err = eval(t, env, "i+1")
	require.NoError(t, err)
	assert.Equal(t, value.Int(2), ret)
}

func TestPipeline_Errors(t *testing.T) {
	_, err := eval(t, DefaultEnv(), "1/0")
	assert.ErrorIs(t, err, value.ErrDivisionByZero)
	_, err = eval(t, DefaultEnv(), "1/(2-2)")
	assert.ErrorIs(t, err, value.ErrDivisionByZero)
	_, err = eval(t, DefaultEnv(), "zzz")
	assert.ErrorIs(t, err, ErrUnboundVariable)
	_, err = eval(t, DefaultEnv(), "1+")
	assert.ErrorIs(t, err, ErrMalformedExpression)
	_, err = eval(t, DefaultEnv(), "-1")
	assert.ErrorIs(t, err, ErrMalformedExpression)
	_, err = eval(t, DefaultEnv(), "2 3")
	assert.ErrorIs(t, err, ErrMalformedExpression)
	_, err = eval(t, DefaultEnv(), "1=2")
	assert.ErrorIs(t, err, ErrInvalidAssignment)
}

func TestCall(t *testing.T) {
	env := DefaultEnv()
	funcs := NewFunctions()
	funcs.Define("area", Function{
		Params: []ast.Ast{ast.MakeVar("w"), ast.MakeVar("h")},
		Body:   ast.MakeBinary(ast.MakeVar("w"), value.MultiplyOperation, ast.MakeVar("h")),
	})
	funcs.Define("scaled", Function{
		Params: []ast.Ast{ast.MakeVar("x")},
		Body: ast.MakeBinary(
			ast.MakeBinary(ast.MakeVar("k"), value.Assign, ast.MakeInt(10)),
			value.MultiplyOperation, ast.MakeVar("x")),
	})
	funcs.Define("bad", Function{
		Params: []ast.Ast{ast.MakeInt(1)},
		Body:   ast.MakeInt(1),
	})
	i := NewInterpreter(env, funcs)

	ret, err := i.Call("area", []value.Value{value.Int(3), value.Double(1.5)})
	assert.NoError(t, err)
	assert.Equal(t, value.Double(4.5), ret)

	ret, err = i.Call("scaled", []value.Value{value.Int(2)})
	assert.NoError(t, err)
	assert.Equal(t, value.Int(20), ret)
	// assignments in the body do not leak into the caller's env
	_, err = env.Lookup("k")
	assert.ErrorIs(t, err, ErrUnboundVariable)
	// neither do parameters
	_, err = env.Lookup("w")
	assert.ErrorIs(t, err, ErrUnboundVariable)

	_, err = i.Call("missing", nil)
	assert.ErrorIs(t, err, ErrUnknownFunction)
	_, err = i.Call("area", []value.Value{value.Int(1)})
	assert.ErrorIs(t, err, ErrArity)
	_, err = i.Call("bad", []value.Value{value.Int(1)})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

package parser

import (
	"calc/engine/ast"
	"calc/engine/lexer"
	"calc/lib/stack"
	"calc/lib/value"
)

// Parse builds an expression tree from tokens. There is no operator
// precedence: each operator becomes the new root with everything parsed so
// far as its left operand, so operators apply strictly in arrival order.
//
// Parse never fails. Malformed input yields a partially filled tree which is
// rejected later, when the interpreter reaches the incomplete node. An
// unmatched ')' ends parsing and the rest of the tokens are ignored; an
// unclosed '(' is closed at the end of input.
func Parse(tokens []lexer.Token) ast.Ast {
	// accumulators of the enclosing parenthesis levels
	frames := stack.New[ast.Ast](4)
	acc := ast.Nil
loop:
	for _, tok := range tokens {
		switch tok.Type {
		case lexer.Int, lexer.Float, lexer.Identifier:
			acc = pushValue(acc, ast.FromToken(tok))
		case lexer.Operator, lexer.Equal:
			acc = pushOperator(acc, ast.FromToken(tok))
		case lexer.LParen:
			frames.Push(acc)
			acc = ast.Nil
		case lexer.RParen:
			outer, err := frames.Pop()
			if err != nil {
				break loop
			}
			acc = pushAst(outer, acc)
		}
	}
	for !frames.Empty() {
		outer, _ := frames.Pop()
		acc = pushAst(outer, acc)
	}
	return acc
}

// pushValue places a leaf in the first free child slot of the root. When both
// slots are taken the leaf becomes the new root with the old tree on its left.
func pushValue(acc ast.Ast, v value.Value) ast.Ast {
	leaf := ast.New(v)
	switch {
	case ast.IsNil(acc):
		return leaf
	case ast.IsNil(ast.LeftOf(acc)):
		return ast.InsertLeft(acc, leaf)
	case ast.IsNil(ast.RightOf(acc)):
		return ast.InsertRight(acc, leaf)
	default:
		return ast.Node{Value: v, Left: acc, Right: ast.Nil}
	}
}

// pushOperator makes op the new root with the whole tree so far as its left
// operand and an empty right operand.
func pushOperator(acc ast.Ast, op value.Value) ast.Ast {
	if ast.IsNil(acc) {
		return ast.New(op)
	}
	return ast.Node{Value: op, Left: acc, Right: ast.Nil}
}

// pushAst grafts a parenthesised sub-tree into acc like a single value. When
// both slots of acc are taken, acc's right child is folded into its left child
// and sub takes the right slot. Empty parentheses contribute nothing.
func pushAst(acc ast.Ast, sub ast.Ast) ast.Ast {
	switch {
	case ast.IsNil(sub):
		return acc
	case ast.IsNil(acc):
		return sub
	case ast.IsNil(ast.LeftOf(acc)):
		return ast.InsertLeft(acc, sub)
	case ast.IsNil(ast.RightOf(acc)):
		return ast.InsertRight(acc, sub)
	default:
		left := ast.LeftOf(acc)
		return ast.Node{
			Value: ast.ValueOf(acc),
			Left:  ast.Node{Value: ast.ValueOf(left), Left: ast.LeftOf(left), Right: ast.RightOf(acc)},
			Right: sub,
		}
	}
}

package lexer

import (
	"fmt"
	"strconv"
)

type TokenType uint8

const (
	None TokenType = iota
	Int
	Float
	Identifier
	Operator
	Equal
	LParen
	RParen
)

type Op uint8

const (
	Plus Op = iota + 1
	Minus
	Multiply
	Divide
)

func (o Op) String() string {
	switch o {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// Token is one lexical unit. Only the field matching Type is meaningful.
type Token struct {
	Type  TokenType
	Op    Op
	Int   int64
	Float float64
	Name  string
}

func IntToken(i int64) Token {
	return Token{Type: Int, Int: i}
}

func FloatToken(f float64) Token {
	return Token{Type: Float, Float: f}
}

func IdentifierToken(name string) Token {
	return Token{Type: Identifier, Name: name}
}

func OperatorToken(op Op) Token {
	return Token{Type: Operator, Op: op}
}

var (
	EqualToken  = Token{Type: Equal}
	LParenToken = Token{Type: LParen}
	RParenToken = Token{Type: RParen}
	NoneToken   = Token{Type: None}
)

func (t Token) String() string {
	switch t.Type {
	case Int:
		return fmt.Sprintf("INT(%d)", t.Int)
	case Float:
		return fmt.Sprintf("FLOAT(%s)", strconv.FormatFloat(t.Float, 'f', -1, 64))
	case Identifier:
		return fmt.Sprintf("IDENTIFIER(%s)", t.Name)
	case Operator:
		return fmt.Sprintf("OPE(%s)", t.Op)
	case Equal:
		return "EQUAL"
	case LParen:
		return "LPAR"
	case RParen:
		return "RPAR"
	default:
		return "NULL"
	}
}

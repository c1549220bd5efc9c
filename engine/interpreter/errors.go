package interpreter

import (
	"errors"
)

var (
	ErrUnboundVariable     = errors.New("unbound variable")
	ErrRedefinition        = errors.New("re-defining symbol")
	ErrMalformedExpression = errors.New("malformed expression")
	ErrInvalidAssignment   = errors.New("assignment target is not an identifier")
	ErrUnknownFunction     = errors.New("unknown function")
	ErrArity               = errors.New("wrong number of arguments")
	ErrInvalidParameter    = errors.New("function parameter is not an identifier")
)

package interpreter

import (
	"fmt"
	"math"

	"calc/lib/value"
)

// Env maps variable names to values. Names are case sensitive. Lookups fall
// through to the parent scope; writes always land in the receiver.
type Env struct {
	parent *Env
	table  map[string]value.Value
}

func NewEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		table:  make(map[string]value.Value),
	}
}

// DefaultEnv returns a root environment holding the built in constants.
func DefaultEnv() *Env {
	env := NewEnv(nil)
	// a fresh table can not already hold these names
	_ = env.Define("pi", value.Double(math.Pi))
	_ = env.Define("e", value.Double(math.E))
	return env
}

// Define binds name in this scope and fails if it is already bound here.
func (e *Env) Define(name string, v value.Value) error {
	if _, ok := e.table[name]; ok {
		return fmt.Errorf("%w: '%s'", ErrRedefinition, name)
	}
	e.table[name] = v
	return nil
}

// Redefine binds name in this scope, replacing any existing binding.
func (e *Env) Redefine(name string, v value.Value) {
	e.table[name] = v
}

func (e *Env) Lookup(name string) (value.Value, error) {
	if ret, ok := e.table[name]; ok {
		return ret, nil
	}

	if e.parent == nil {
		return value.Nil, fmt.Errorf("%w: '%s'", ErrUnboundVariable, name)
	} else {
		return e.parent.Lookup(name)
	}
}

// PushEnv creates an environment that is child of the caller
func (e *Env) PushEnv() *Env {
	return NewEnv(e)
}

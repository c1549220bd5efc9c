package engine

import (
	"context"
	"fmt"

	"calc/engine/ast"
	"calc/engine/interpreter"
	"calc/engine/lexer"
	"calc/engine/parser"
	"calc/lib/timer"
	"calc/lib/value"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var evaluations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "calc_evaluations_total",
		Help: "Number of evaluated lines by outcome.",
	},
	[]string{"status"},
)

// Result holds every stage of one evaluated line. Tokens and Tree are set
// even when evaluation fails.
type Result struct {
	Tokens []lexer.Token
	Tree   ast.Ast
	Value  value.Value
}

// Session owns the variable environment and the function table for the
// lifetime of an interactive session and runs lines through the lexer, the
// parser and the interpreter. A Session is not safe for concurrent use.
type Session struct {
	logger *zap.Logger
	env    *interpreter.Env
	funcs  interpreter.Functions
}

func NewSession(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		logger: logger,
		env:    interpreter.DefaultEnv(),
		funcs:  interpreter.NewFunctions(),
	}
}

// Exec evaluates one line. Errors only concern this line; the session stays
// usable.
func (s *Session) Exec(ctx context.Context, line string) (Result, error) {
	defer timer.Start(ctx, "engine.exec").Stop()
	res := Result{Tree: ast.Nil, Value: value.Nil}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	t := timer.Start(ctx, "engine.lex")
	res.Tokens = lexer.Lex(line)
	t.Stop()

	t = timer.Start(ctx, "engine.parse")
	res.Tree = parser.Parse(res.Tokens)
	t.Stop()

	t = timer.Start(ctx, "engine.interpret")
	v, err := interpreter.Interpret(res.Tree, s.env, s.funcs)
	t.Stop()

	if err != nil {
		evaluations.WithLabelValues("error").Inc()
		s.logger.Info("evaluation failed", zap.String("line", line), zap.Error(err))
		return res, err
	}
	evaluations.WithLabelValues("ok").Inc()
	res.Value = v
	s.logger.Debug("evaluated line",
		zap.String("line", line),
		zap.Int("tokens", len(res.Tokens)),
		zap.Stringer("result", v),
	)
	return res, nil
}

func (s *Session) Env() *interpreter.Env {
	return s.env
}

func (s *Session) Functions() interpreter.Functions {
	return s.funcs
}

// Define adds a function to the session's function table.
func (s *Session) Define(name string, fn interpreter.Function) {
	s.funcs.Define(name, fn)
}

// Call evaluates a function from the session's function table.
func (s *Session) Call(ctx context.Context, name string, args []value.Value) (value.Value, error) {
	defer timer.Start(ctx, "engine.call").Stop()
	ret, err := interpreter.NewInterpreter(s.env, s.funcs).Call(name, args)
	if err != nil {
		return value.Nil, fmt.Errorf("call to '%s' failed: %w", name, err)
	}
	return ret, nil
}

// Reset drops every variable and function, keeping only the built in
// constants.
func (s *Session) Reset() {
	s.env = interpreter.DefaultEnv()
	s.funcs = interpreter.NewFunctions()
	s.logger.Debug("session reset")
}

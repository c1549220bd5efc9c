package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"calc/engine"
	"calc/engine/ast"
	"calc/engine/lexer"
	"calc/lib/config"
	"calc/lib/timer"
	"calc/lib/value"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const version = "v2.7.0"

var red = color.New(color.FgRed)

// Shell dispatches REPL commands and evaluates everything else in one
// engine session.
type Shell struct {
	session *engine.Session
	logger  *zap.Logger
	out     io.Writer

	cfgPath string
	cfg     config.Config
	loaded  config.Loaded
	verbose bool
}

func NewShell(session *engine.Session, logger *zap.Logger, out io.Writer, cfgPath string, cfg config.Config) *Shell {
	return &Shell{
		session: session,
		logger:  logger,
		out:     out,
		cfgPath: cfgPath,
		cfg:     cfg,
		loaded:  cfg.Resolve(),
	}
}

type command struct {
	name string
	help string
	// takesArgs commands also match when followed by a space and arguments.
	takesArgs bool
	// run returns true when the shell should exit.
	run func(s *Shell, args []string) bool
}

var commands []command

func init() {
	commands = []command{
		{"info", "show infos", false, (*Shell).info},
		{"exit", "exit the program", false, func(*Shell, []string) bool { return true }},
		{"help", "print this help", false, (*Shell).help},
		{"verbose", "toggle the verbose", false, (*Shell).toggleVerbose},
		{"version", "prints the version", false, (*Shell).showVersion},
		{"reset", "forget every variable except pi and e", false, (*Shell).reset},
		{"config", "show, reload or set (config set <key> <value>) the config", true, (*Shell).configure},
	}
}

func (s *Shell) Greet() {
	s.loaded.GreetingColor.Fprintln(s.out, s.loaded.GreetingMessage)
}

func (s *Shell) Prompt() string {
	return s.loaded.PromptColor.Sprint(s.loaded.Prompt)
}

func (c command) matches(line string) bool {
	if line == c.name {
		return true
	}
	return c.takesArgs && strings.HasPrefix(line, c.name+" ")
}

// Handle runs one input line and reports whether the shell should exit. A
// line is a command only when it is exactly the command name, or for
// commands taking arguments, the name followed by a space. Everything else,
// including expressions such as 'exit + 1', is evaluated.
func (s *Shell) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if cmd, ok := lo.Find(commands, func(c command) bool { return c.matches(line) }); ok {
		return cmd.run(s, strings.Fields(line)[1:])
	}
	s.eval(ctx, line)
	return false
}

func (s *Shell) eval(ctx context.Context, line string) {
	if s.logger.Core().Enabled(zapcore.DebugLevel) {
		ctx = timer.WithTracing(ctx)
		defer func() { _ = timer.LogTracingInfo(ctx, s.logger) }()
	}
	res, err := s.session.Exec(ctx, line)
	if s.verbose {
		s.printStages(res)
	}
	if err != nil {
		red.Fprintln(s.out, err.Error())
		return
	}
	if res.Value.Equal(value.Nil) {
		return
	}
	formatted, err := value.Format(res.Value)
	if err != nil {
		red.Fprintln(s.out, err.Error())
		return
	}
	s.loaded.GeneralColor.Fprintln(s.out, formatted)
}

func (s *Shell) printStages(res engine.Result) {
	tokens := lo.Map(res.Tokens, func(t lexer.Token, _ int) string { return t.String() })
	fmt.Fprintln(s.out, "Lexing of line:", strings.Join(tokens, " "))
	fmt.Fprintln(s.out, "Parsing of line:", res.Tree.AcceptString(ast.Printer{}))
	fmt.Fprint(s.out, spew.Sdump(res.Tree))
}

func (s *Shell) info([]string) bool {
	s.loaded.GeneralColor.Fprintf(s.out, " Calc %s \n An interactive calculator with variables and parentheses \n", version)
	return false
}

func (s *Shell) help([]string) bool {
	lines := lo.Map(commands, func(c command, _ int) string {
		return fmt.Sprintf(" > %s : %s \n", c.name, c.help)
	})
	s.loaded.GeneralColor.Fprintf(s.out, " Calc %s Help \n%s", version, strings.Join(lines, ""))
	return false
}

func (s *Shell) showVersion([]string) bool {
	s.loaded.GeneralColor.Fprintf(s.out, " Calc %s \n", version)
	return false
}

func (s *Shell) toggleVerbose([]string) bool {
	s.verbose = !s.verbose
	s.loaded.GeneralColor.Fprint(s.out, "You toggled the verbose : ")
	red.Fprintln(s.out, lo.Ternary(s.verbose, "on", "off"))
	return false
}

func (s *Shell) reset([]string) bool {
	s.session.Reset()
	s.loaded.GeneralColor.Fprintln(s.out, "Session reset")
	return false
}

func (s *Shell) configure(args []string) bool {
	if len(args) == 0 {
		return s.showConfig()
	}
	switch args[0] {
	case "show":
		return s.showConfig()
	case "reload":
		cfg, err := config.Load(s.cfgPath)
		if err != nil {
			red.Fprintln(s.out, err.Error())
			return false
		}
		s.apply(cfg)
		s.loaded.GeneralColor.Fprintln(s.out, "Config reloaded")
	case "set":
		if len(args) < 3 {
			red.Fprintln(s.out, "usage: config set <key> <value>")
			return false
		}
		cfg := s.cfg
		if err := cfg.Set(args[1], strings.Join(args[2:], " ")); err != nil {
			red.Fprintln(s.out, err.Error())
			return false
		}
		if err := config.Write(s.cfgPath, cfg); err != nil {
			red.Fprintln(s.out, err.Error())
			return false
		}
		s.apply(cfg)
		s.loaded.GeneralColor.Fprintf(s.out, "Set %s\n", args[1])
	default:
		red.Fprintln(s.out, "usage: config [show|reload|set <key> <value>]")
	}
	return false
}

func (s *Shell) showConfig() bool {
	data, err := yaml.Marshal(s.cfg)
	if err != nil {
		red.Fprintln(s.out, err.Error())
		return false
	}
	s.loaded.GeneralColor.Fprint(s.out, string(data))
	return false
}

func (s *Shell) apply(cfg config.Config) {
	s.cfg = cfg
	s.loaded = cfg.Resolve()
}

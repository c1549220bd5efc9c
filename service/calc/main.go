package main

import (
	"context"
	"fmt"
	"os"

	"calc/engine"
	"calc/lib/config"
	"calc/service/common"

	"github.com/alexflint/go-arg"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogArgs struct {
	Dev      bool   `arg:"--dev,env:CALC_DEV" help:"development logging"`
	LogLevel string `arg:"--log-level,env:CALC_LOG_LEVEL" default:"error"`
}

type args struct {
	common.PrometheusArgs
	LogArgs
	Config  string   `arg:"--config,env:CALC_CONFIG" help:"path of the config file"`
	Json    bool     `arg:"--json" help:"print one JSON object per evaluated line"`
	Verbose bool     `arg:"--verbose" help:"start the shell in verbose mode"`
	Exprs   []string `arg:"positional" placeholder:"EXPR" help:"evaluate these lines and exit"`
}

func (args) Version() string {
	return "calc " + version
}

func (args) Description() string {
	return "An interactive calculator with variables and parentheses."
}

func newLogger(args LogArgs) (*zap.Logger, error) {
	if args.Dev {
		return zap.NewDevelopment()
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(args.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level '%s': %w", args.LogLevel, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	return cfg.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)
}

func main() {
	var flags args
	arg.MustParse(&flags)
	logger, err := newLogger(flags.LogArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to construct logger: %v\n", err)
		os.Exit(1)
	}
	_ = zap.ReplaceGlobals(logger)
	common.StartPromMetricsServer(flags.PrometheusArgs, logger)

	code := run(context.Background(), flags, logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(ctx context.Context, flags args, logger *zap.Logger) int {
	session := engine.NewSession(logger)

	lines := flags.Exprs
	if len(lines) == 0 && !isTerminal(os.Stdin) {
		var err error
		if lines, err = readLines(os.Stdin); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if len(lines) > 0 || !isTerminal(os.Stdin) {
		if runBatch(ctx, session, lines, flags.Json, os.Stdout, os.Stderr) > 0 {
			return 1
		}
		return 0
	}

	path := flags.Config
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			color.Red("%v", err)
			return 1
		}
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		logger.Error("failed to load config", zap.String("path", path), zap.Error(err))
		color.Red("fatal error please remove your config file %s", path)
		return 1
	}
	sh := NewShell(session, logger, color.Output, path, cfg)
	sh.verbose = flags.Verbose
	if err := runRepl(ctx, sh); err != nil {
		color.Red("%v", err)
		return 1
	}
	return 0
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

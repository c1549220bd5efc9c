package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/mo"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKey = errors.New("unknown config key")
)

type Greeting struct {
	Message string `yaml:"message"`
	Color   string `yaml:"color"`
}

type Prompt struct {
	Text  string `yaml:"text"`
	Color string `yaml:"color"`
}

// Config is the on-disk configuration of the interactive shell.
type Config struct {
	Greeting     Greeting `yaml:"greeting"`
	Prompt       Prompt   `yaml:"prompt"`
	GeneralColor string   `yaml:"general_color"`
}

func Default() Config {
	return Config{
		Greeting: Greeting{
			Message: "Welcome to calc! Type help for the list of commands.",
			Color:   "blue",
		},
		Prompt: Prompt{
			Text:  "> ",
			Color: "cyan",
		},
		GeneralColor: "purple",
	}
}

// DefaultPath returns config.yaml inside the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "calc", "config.yaml"), nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// LoadOrCreate loads the config at path. A missing or unreadable file is
// replaced by the default config, which is then loaded.
func LoadOrCreate(path string) (Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if werr := Write(path, Default()); werr != nil {
		return Config{}, fmt.Errorf("%v; writing default config also failed: %w", err, werr)
	}
	return Load(path)
}

// Keys lists the names accepted by Set.
var Keys = []string{"greeting_message", "greeting_color", "prompt", "prompt_color", "general_color"}

func (c *Config) Set(key, val string) error {
	switch key {
	case "greeting_message":
		c.Greeting.Message = val
	case "greeting_color":
		c.Greeting.Color = val
	case "prompt":
		c.Prompt.Text = val
	case "prompt_color":
		c.Prompt.Color = val
	case "general_color":
		c.GeneralColor = val
	default:
		return fmt.Errorf("%w: '%s' (expected one of %s)", ErrUnknownKey, key, strings.Join(Keys, ", "))
	}
	return nil
}

// Loaded is a Config with its colour names resolved.
type Loaded struct {
	GreetingMessage string
	GreetingColor   *color.Color
	Prompt          string
	PromptColor     *color.Color
	GeneralColor    *color.Color
}

func (c Config) Resolve() Loaded {
	return Loaded{
		GreetingMessage: c.Greeting.Message,
		GreetingColor:   color.New(ColorFor(c.Greeting.Color).OrElse(color.FgCyan)),
		Prompt:          c.Prompt.Text,
		PromptColor:     color.New(ColorFor(c.Prompt.Color).OrElse(color.FgCyan)),
		GeneralColor:    color.New(ColorFor(c.GeneralColor).OrElse(color.FgCyan)),
	}
}

var colors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"purple":  color.FgMagenta,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// ColorFor maps a colour name, case insensitively, to its attribute.
func ColorFor(name string) mo.Option[color.Attribute] {
	if attr, ok := colors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return mo.Some(attr)
	}
	return mo.None[color.Attribute]()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

func runRepl(ctx context.Context, sh *Shell) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	sh.Greet()
	h := history{}
	for {
		line, err := ln.Prompt(sh.Prompt())
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(sh.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if h.add(line) {
			ln.AppendHistory(line)
		}
		if sh.Handle(ctx, line) {
			return nil
		}
	}
}

// history drops entries equal to the previous one.
type history struct {
	last string
}

func (h *history) add(line string) bool {
	if line == h.last {
		return false
	}
	h.last = line
	return true
}

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"calc/engine"
	"calc/lib/value"
)

type jsonLine struct {
	Input  string          `json:"input"`
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// readLines returns the non blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

// runBatch evaluates lines in order in one session and returns the number of
// lines that failed. Results go to out, errors to errOut unless asJSON is set.
func runBatch(ctx context.Context, session *engine.Session, lines []string, asJSON bool, out, errOut io.Writer) int {
	failed := 0
	enc := json.NewEncoder(out)
	for _, line := range lines {
		res, err := session.Exec(ctx, line)
		var text string
		if err == nil && !res.Value.Equal(value.Nil) {
			text, err = value.Format(res.Value)
		}
		if err != nil {
			failed++
		}
		if asJSON {
			entry := jsonLine{Input: line, Result: json.RawMessage("null")}
			if err == nil {
				var data []byte
				if data, err = value.ToJson(res.Value); err == nil {
					entry.Result = data
				} else {
					failed++
				}
			}
			if err != nil {
				msg := err.Error()
				entry.Error = &msg
			}
			if eerr := enc.Encode(entry); eerr != nil {
				fmt.Fprintln(errOut, eerr)
				return failed + 1
			}
			continue
		}
		switch {
		case err != nil:
			fmt.Fprintf(errOut, "%s: %v\n", line, err)
		case text != "":
			fmt.Fprintln(out, text)
		}
	}
	return failed
}

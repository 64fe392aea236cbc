// internal/shell/shell.go
//
// Interactive shell around the solver.
// Responsibilities:
//   - Print a banner, prompt for constraint lines, and print solutions.
//   - Recognize the exit keywords ("exit"/"quit", case-insensitive).
//   - Re-prompt on blank lines and on parse errors (one diagnostic line).
//   - Pause for an Enter keypress after each result block.
//
// The reader and writer are injected so the loop is scriptable in tests;
// EOF on the reader ends the loop cleanly.

package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nlowes/wordhint/internal/solver"
)

const banner = `wordhint: five-letter pattern solver
tokens:  hg3      green: H confirmed at slot 3
         ly15     yellow: L present, not at slot 1 or 5
         ly15!    each trailing ! requires one more occurrence
type "exit" to quit`

// Shell runs the interactive solve loop over an injected reader/writer.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer
}

// New constructs a Shell reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Shell {
	return &Shell{in: bufio.NewScanner(in), out: out}
}

// Run executes the prompt loop until the exit keyword or EOF.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, banner)
	for {
		fmt.Fprint(s.out, "> ")
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isExit(line) {
			fmt.Fprintln(s.out, "bye")
			return nil
		}

		patterns, err := solver.SolveLine(line)
		if err != nil {
			fmt.Fprintln(s.out, "error:", err)
			continue
		}
		if len(patterns) == 0 {
			fmt.Fprintln(s.out, "no solutions")
		} else {
			for _, p := range patterns {
				fmt.Fprintln(s.out, p)
			}
		}

		fmt.Fprint(s.out, "press enter to continue ")
		if _, ok := s.readLine(); !ok {
			fmt.Fprintln(s.out)
			return nil
		}
	}
}

// readLine fetches the next input line; ok is false on EOF.
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// isExit reports whether line is one of the exit keywords.
func isExit(line string) bool {
	return strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit")
}

// Package watch implements aulangc's --watch CLI ergonomics: an
// interactive prompt that re-translates a file set on keypress. It is
// not a REPL over the dialect itself (the dialect has no interactive
// evaluation semantics) — just a thin line-editing wrapper around
// re-invoking the translator, grounded on the teacher's internal/repl
// use of github.com/peterh/liner for readline-style input.
package watch

import (
	"fmt"
	"io"

	"github.com/peterh/liner"
)

// Rebuilder re-translates the watched file set and reports whether it
// succeeded.
type Rebuilder func() error

// Run starts the interactive watch prompt: 'r' triggers Rebuilder, 'q'
// exits. It blocks until the user quits or input is exhausted.
func Run(out io.Writer, rebuild Rebuilder) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Fprintln(out, "watching for changes — press r to rebuild, q to quit")

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return nil
			}
			return err
		}
		line.AppendHistory(input)

		switch input {
		case "q", "quit":
			return nil
		case "r", "rebuild", "":
			if err := rebuild(); err != nil {
				fmt.Fprintf(out, "rebuild failed: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "rebuild ok")
		default:
			fmt.Fprintln(out, "unrecognized command (r = rebuild, q = quit)")
		}
	}
}

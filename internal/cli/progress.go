package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
)

// Progress shows a spinner on stderr while work runs.
type Progress struct {
	out     io.Writer
	enabled bool
}

// NewProgress returns a Progress writing to stderr. The spinner is disabled
// in quiet mode and when stderr is not a terminal.
func NewProgress(quiet bool) *Progress {
	return &Progress{
		out:     os.Stderr,
		enabled: !quiet && term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Run calls fn, spinning with the given message until it returns.
func (p *Progress) Run(message string, fn func() error) error {
	if p == nil || !p.enabled {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(p.out))
	s.Suffix = " " + message
	s.Start()

	err := fn()
	s.Stop()

	if err != nil {
		fmt.Fprintf(p.out, "%s\n", text.FgRed.Sprint("✗ "+message+" failed"))
	}
	return err
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("aborted")

// Prompter asks the user for values.
type Prompter interface {
	// Ask prompts for a value, returning def when the answer is empty.
	Ask(label, def string) (string, error)
	// AskSecret prompts without echoing. An empty answer returns def.
	AskSecret(label, def string) (string, error)
	Close() error
}

// ReadlinePrompter is the interactive Prompter used on a terminal.
type ReadlinePrompter struct {
	rl *readline.Instance
}

// NewReadlinePrompter creates a prompter on stdin/stdout.
func NewReadlinePrompter() (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	return &ReadlinePrompter{rl: rl}, nil
}

// Ask implements Prompter.
func (p *ReadlinePrompter) Ask(label, def string) (string, error) {
	p.rl.SetPrompt(promptLabel(label, def))
	line, err := p.rl.Readline()
	if err != nil {
		return "", promptError(err)
	}
	return answerOrDefault(line, def), nil
}

// AskSecret implements Prompter.
func (p *ReadlinePrompter) AskSecret(label, def string) (string, error) {
	shown := ""
	if def != "" {
		shown = "keep current"
	}
	line, err := p.rl.ReadPassword(promptLabel(label, shown))
	if err != nil {
		return "", promptError(err)
	}
	return answerOrDefault(string(line), def), nil
}

// Close releases the terminal.
func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}

func promptLabel(label, def string) string {
	if def == "" {
		return label + ": "
	}
	return fmt.Sprintf("%s [%s]: ", label, def)
}

func answerOrDefault(line, def string) string {
	if answer := strings.TrimSpace(line); answer != "" {
		return answer
	}
	return def
}

func promptError(err error) error {
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return fmt.Errorf("readline error: %w", err)
}

// Package console reads identifiers typed by the user, one per line.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrInterrupted is returned by ReadLine when the user presses Ctrl-C at the
// prompt.
var ErrInterrupted = errors.New("interrupted")

// LineReader prompts for and returns a single line of input. It returns io.EOF
// once input is exhausted.
type LineReader interface {
	io.Closer

	ReadLine(prompt string) (string, error)
}

type scannerReader struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewScanner reads lines from in, writing prompts to out. It is used when
// stdin is not a terminal.
func NewScanner(in io.Reader, out io.Writer) LineReader {
	return &scannerReader{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (s *scannerReader) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(s.out, prompt); err != nil {
		return "", err
	}

	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", errors.Wrap(err, "while reading input")
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *scannerReader) Close() error { return nil }

type terminalReader struct {
	rl *readline.Instance
}

// NewTerminal returns a LineReader with line editing and in-memory history.
func NewTerminal() (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryLimit:    100,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize terminal")
	}

	log.Debug("terminal line editor ready")
	return &terminalReader{rl: rl}, nil
}

func (t *terminalReader) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)
	line, err := t.rl.Readline()
	switch {
	case err == readline.ErrInterrupt:
		return "", ErrInterrupted
	case err != nil:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (t *terminalReader) Close() error {
	return t.rl.Close()
}

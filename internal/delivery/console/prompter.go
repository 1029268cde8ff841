package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads one line of user input per prompt.
type Prompter interface {
	Input(prompt string) (string, error)
}

type linePrompter struct {
	out io.Writer
	in  *bufio.Reader
}

func NewPrompter(in io.Reader, out io.Writer) Prompter {
	return &linePrompter{
		out: out,
		in:  bufio.NewReader(in),
	}
}

func (p *linePrompter) Input(prompt string) (string, error) {
	_, err := fmt.Fprint(p.out, prompt)
	if err != nil {
		return "", err
	}

	// A final line without a trailing newline still counts;
	// the EOF surfaces on the next read.
	line, err := p.in.ReadString('\n')
	if len(line) == 0 && err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

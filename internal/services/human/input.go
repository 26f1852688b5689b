package human

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Input supplies the human player's raw menu choices
type Input interface {
	// ReadChoice shows prompt and returns one line of input, without the newline.
	// It returns io.EOF when no more input will arrive.
	ReadChoice(ctx context.Context, prompt string) (string, error)
}

// LineInput reads choices line by line from a reader, writing prompts to a writer
type LineInput struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLineInput creates a LineInput over r, prompting on out
func NewLineInput(r io.Reader, out io.Writer) *LineInput {
	return &LineInput{
		scanner: bufio.NewScanner(r),
		out:     out,
	}
}

// ReadChoice writes the prompt and blocks until a line is available
func (in *LineInput) ReadChoice(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(in.out, prompt); err != nil {
		return "", err
	}
	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return in.scanner.Text(), nil
}

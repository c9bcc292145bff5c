// Package console implements the operator decision sources: an interactive
// stdin prompter and a flag-driven one for non-interactive runs. Both
// satisfy the pipeline's Prompter interface so the two modes share one
// orchestrator code path.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gifnorm/internal/detect"
)

// Interactive asks yes/no questions on a terminal. Prompts block until
// answered; EOF or a read error counts as "no".
type Interactive struct {
	in  *bufio.Reader
	out io.Writer
}

// NewInteractive returns a prompter reading answers from in (normally
// os.Stdin) and writing questions to out (normally os.Stdout).
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{in: bufio.NewReader(in), out: out}
}

// Ask prints the question with a "(y/n)" suffix and reads one line.
// "y" and "yes" (any case) are affirmative; everything else is not.
func (c *Interactive) Ask(question string) bool {
	fmt.Fprintf(c.out, "%s (y/n): ", question)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// ReadLine prints the prompt and returns one trimmed line of input.
func (c *Interactive) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ConfirmDelete asks whether every file in the given review bucket should
// be deleted.
func (c *Interactive) ConfirmDelete(category detect.TypeTag, count int) bool {
	return c.Ask(fmt.Sprintf("\nDelete these %d %s files?", count, categoryNoun(category)))
}

func categoryNoun(category detect.TypeTag) string {
	switch category {
	case detect.TagHTML:
		return "HTML"
	case detect.TagTextError:
		return "error"
	}
	return string(category)
}

// FlagAnswers answers review-bucket prompts from CLI flags; used when the
// run is non-interactive. Anything without an explicit flag is kept.
type FlagAnswers struct {
	DeleteHTML   bool
	DeleteErrors bool
}

// ConfirmDelete reports the flag value for the given bucket.
func (f FlagAnswers) ConfirmDelete(category detect.TypeTag, _ int) bool {
	switch category {
	case detect.TagHTML:
		return f.DeleteHTML
	case detect.TagTextError:
		return f.DeleteErrors
	}
	return false
}

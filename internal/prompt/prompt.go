// Package prompt asks questions on a line-oriented terminal: free text,
// single choice and multiple choice from numbered menus.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is returned when the input ends before an answer is given.
var ErrNoInput = errors.New("no input")

// Validator checks a free-text answer. A non-nil error is shown to the user
// and the question is asked again.
type Validator func(answer string) error

// Prompter reads answers from r and writes questions to w.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// New returns a Prompter over r and w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w}
}

// Input asks a free-text question until validate accepts the trimmed answer.
func (p *Prompter) Input(message string, validate Validator) (string, error) {
	for {
		fmt.Fprintf(p.w, "? %s ", message)
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if validate == nil {
			return answer, nil
		}
		if verr := validate(answer); verr != nil {
			fmt.Fprintf(p.w, ">> %v\n", verr)
			continue
		}
		return answer, nil
	}
}

// Select presents a numbered list and returns the chosen index. An empty
// answer picks def when def is a valid index; pass -1 for no default.
func (p *Prompter) Select(message string, choices []string, def int) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("%s: no choices available", message)
	}
	hasDefault := def >= 0 && def < len(choices)

	for {
		p.printMenu(message, choices)
		if hasDefault {
			fmt.Fprintf(p.w, "Enter number [1-%d] (default %d): ", len(choices), def+1)
		} else {
			fmt.Fprintf(p.w, "Enter number [1-%d]: ", len(choices))
		}

		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" && hasDefault {
			return def, nil
		}

		idx, perr := parseChoice(line, len(choices))
		if perr != nil {
			fmt.Fprintf(p.w, ">> %v\n", perr)
			continue
		}
		return idx, nil
	}
}

// MultiSelect presents a numbered list and returns the chosen indexes in the
// order they were typed, without duplicates. An empty answer selects nothing.
func (p *Prompter) MultiSelect(message string, choices []string) ([]int, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	for {
		p.printMenu(message, choices)
		fmt.Fprintf(p.w, "Enter numbers separated by commas, or leave empty for none: ")

		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, nil
		}

		picked, perr := parseChoices(line, len(choices))
		if perr != nil {
			fmt.Fprintf(p.w, ">> %v\n", perr)
			continue
		}
		return picked, nil
	}
}

func (p *Prompter) printMenu(message string, choices []string) {
	fmt.Fprintf(p.w, "\n? %s\n", message)
	for i, c := range choices {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, c)
	}
}

// readLine returns the next trimmed line. A final line without a newline is
// still returned; ErrNoInput is returned only when nothing was read.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.w)
			return "", ErrNoInput
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func parseChoice(s string, n int) (int, error) {
	num, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || num < 1 || num > n {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", strings.TrimSpace(s), n)
	}
	return num - 1, nil
}

func parseChoices(s string, n int) ([]int, error) {
	seen := make(map[int]bool)
	var picked []int
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		idx, err := parseChoice(field, n)
		if err != nil {
			return nil, err
		}
		if !seen[idx] {
			seen[idx] = true
			picked = append(picked, idx)
		}
	}
	return picked, nil
}

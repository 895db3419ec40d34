package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errInputClosed reports that stdin is exhausted. The menu treats it as a
// request to exit, never as an answer to re-ask.
var errInputClosed = errors.New("input closed")

// prompter reads validated user input for the interactive menu.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		// a final line without a trailing newline still counts
		if line != "" {
			return line, nil
		}
		return "", errInputClosed
	}
	return line, nil
}

// nonEmpty re-asks until a non-blank answer is given.
func (p *prompter) nonEmpty(prompt string) (string, error) {
	for {
		val, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if val != "" {
			return val, nil
		}
		fmt.Fprintln(p.out, "Input cannot be empty. Please try again.")
	}
}

// optional returns current when the answer is blank.
func (p *prompter) optional(prompt, current string) (string, error) {
	val, err := p.readLine(prompt)
	if err != nil {
		return "", err
	}
	if val != "" {
		return val, nil
	}
	return current, nil
}

// intInRange re-asks until the answer is a number in [min, max].
func (p *prompter) intInRange(prompt string, min, max int) (int, error) {
	for {
		s, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if v, err := strconv.Atoi(s); err == nil && v >= min && v <= max {
			return v, nil
		}
		fmt.Fprintf(p.out, "Enter a number between %d and %d.\n", min, max)
	}
}

func (p *prompter) confirm(prompt string) (bool, error) {
	ans, err := p.readLine(prompt + " (y/n): ")
	if err != nil {
		return false, err
	}
	ans = strings.ToLower(ans)
	return ans == "y" || ans == "yes", nil
}

func (p *prompter) pause() error {
	_, err := p.readLine("\nPress Enter to continue...")
	return err
}

func (p *prompter) header(title string) {
	divider := strings.Repeat("─", 60)
	fmt.Fprintln(p.out, divider)
	fmt.Fprintln(p.out, title)
	fmt.Fprintln(p.out, divider)
}

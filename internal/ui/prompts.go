package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter asks the user for input
type Prompter interface {
	// Ask returns the answer to question, or def when the answer is blank
	Ask(question, def string) (string, error)
	// Confirm asks a yes/no question that defaults to no
	Confirm(question string) (bool, error)
}

// NewPrompter returns an interactive prompter when stdin is a terminal and a
// line-based one otherwise
func NewPrompter() Prompter {
	if isTerminal(os.Stdin) {
		return SurveyPrompter{}
	}
	return NewLinePrompter(os.Stdin, out)
}

// Resolve returns the trimmed answer, or def when the answer is blank
func Resolve(answer, def string) string {
	if answer = strings.TrimSpace(answer); answer != "" {
		return answer
	}
	return def
}

// SurveyPrompter prompts with survey widgets
type SurveyPrompter struct{}

func (SurveyPrompter) Ask(question, def string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: question + ":",
		Default: def,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return Resolve(answer, def), nil
}

func (SurveyPrompter) Confirm(question string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: question,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// LinePrompter reads answers line by line, for pipes and scripts
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Ask(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	return Resolve(answer, def), nil
}

func (p *LinePrompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// readLine treats end of input as an empty answer
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Package session runs the interactive explore loop: collect filters, load
// the table, print the reports, browse raw rows, offer a restart.
package session

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("session aborted by user")

// AskFunc asks a single question. It has the signature of survey.AskOne so
// tests can script answers.
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// askText asks a free-text question and returns the trimmed, lowercased answer.
func askText(ask AskFunc, message string) (string, error) {
	var answer string
	if err := ask(&survey.Input{Message: message}, &answer); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(answer)), nil
}

// askUntil repeats a question until accept returns true for the answer.
// There is no retry limit.
func askUntil(ask AskFunc, message string, accept func(string) bool) (string, error) {
	for {
		answer, err := askText(ask, message)
		if err != nil {
			return "", err
		}
		if accept(answer) {
			return answer, nil
		}
	}
}

func oneOf(values ...string) func(string) bool {
	return func(s string) bool {
		for _, v := range values {
			if s == v {
				return true
			}
		}
		return false
	}
}

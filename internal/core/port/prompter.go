package port

import (
	"context"
	"strings"
)

type QuestionKind int

const (
	QuestionInput QuestionKind = iota
	QuestionPassword
	QuestionConfirm
	QuestionSelect
	QuestionEditor
)

type Choice struct {
	Label string
	Value string
}

// Question describes a single interactive prompt. Validate receives the raw
// textual answer and returns a non-nil error to ask again.
type Question struct {
	Name     string
	Kind     QuestionKind
	Message  string
	Choices  []Choice
	Default  any
	Validate func(answer string) error
}

type Answers map[string]any

func (a Answers) String(name string) string {
	value, _ := a[name].(string)
	return value
}

func (a Answers) Bool(name string) bool {
	value, _ := a[name].(bool)
	return value
}

func (a Answers) Has(name string) bool {
	_, exists := a[name]
	return exists
}

// Prompter asks questions in order and collects the answers by name. Select
// answers hold the choice value, confirm answers a bool, all others a string.
type Prompter interface {
	Ask(ctx context.Context, questions ...Question) (Answers, error)
}

// NotBlank is a validation rule rejecting answers made only of whitespace.
func NotBlank(message string) func(answer string) error {
	return func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return NewValidationError(message)
		}
		return nil
	}
}

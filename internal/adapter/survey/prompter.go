package survey

import (
	"context"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/pkg/errors"
)

// Prompter asks questions on the controlling terminal.
type Prompter struct {
	stdio terminal.Stdio
}

// Ask implements port.Prompter.
func (p *Prompter) Ask(ctx context.Context, questions ...port.Question) (port.Answers, error) {
	answers := make(port.Answers, len(questions))

	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		value, err := p.ask(q)
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil, errors.WithStack(port.ErrInterrupted)
			}

			return nil, errors.Wrapf(err, "could not ask question '%s'", q.Name)
		}

		answers[q.Name] = value
	}

	return answers, nil
}

func (p *Prompter) ask(q port.Question) (any, error) {
	opts := []survey.AskOpt{
		survey.WithStdio(p.stdio.In, p.stdio.Out, p.stdio.Err),
	}

	if q.Validate != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			str, _ := ans.(string)
			return q.Validate(str)
		}))
	}

	switch q.Kind {
	case port.QuestionConfirm:
		defaultValue, _ := q.Default.(bool)

		var answer bool
		prompt := &survey.Confirm{
			Message: q.Message,
			Default: defaultValue,
		}

		if err := survey.AskOne(prompt, &answer, survey.WithStdio(p.stdio.In, p.stdio.Out, p.stdio.Err)); err != nil {
			return nil, err
		}

		return answer, nil

	case port.QuestionSelect:
		labels := make([]string, 0, len(q.Choices))
		var defaultLabel any

		for _, c := range q.Choices {
			labels = append(labels, c.Label)
			if c.Value == q.Default {
				defaultLabel = c.Label
			}
		}

		var label string
		prompt := &survey.Select{
			Message: q.Message,
			Options: labels,
			Default: defaultLabel,
		}

		if err := survey.AskOne(prompt, &label, survey.WithStdio(p.stdio.In, p.stdio.Out, p.stdio.Err)); err != nil {
			return nil, err
		}

		for _, c := range q.Choices {
			if c.Label == label {
				return c.Value, nil
			}
		}

		return nil, errors.Errorf("unexpected choice '%s'", label)

	case port.QuestionPassword:
		var answer string
		prompt := &survey.Password{
			Message: q.Message,
		}

		if err := survey.AskOne(prompt, &answer, opts...); err != nil {
			return nil, err
		}

		return answer, nil

	case port.QuestionEditor:
		var answer string
		prompt := &survey.Editor{
			Message:  q.Message,
			FileName: "*.txt",
		}

		if err := survey.AskOne(prompt, &answer, opts...); err != nil {
			return nil, err
		}

		return answer, nil

	case port.QuestionInput:
		defaultValue, _ := q.Default.(string)

		var answer string
		prompt := &survey.Input{
			Message: q.Message,
			Default: defaultValue,
		}

		if err := survey.AskOne(prompt, &answer, opts...); err != nil {
			return nil, err
		}

		return answer, nil

	default:
		return nil, errors.Errorf("unsupported question kind '%d'", q.Kind)
	}
}

func NewPrompter() *Prompter {
	return NewPrompterWithStdio(os.Stdin, os.Stdout, os.Stderr)
}

func NewPrompterWithStdio(in terminal.FileReader, out terminal.FileWriter, err io.Writer) *Prompter {
	return &Prompter{
		stdio: terminal.Stdio{
			In:  in,
			Out: out,
			Err: err,
		},
	}
}

var _ port.Prompter = &Prompter{}

package service

import (
	"context"

	"github.com/bornholm/zerohost/internal/core/model"
	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/pkg/errors"
)

const customExpiry = "custom"

var expiryChoices = []port.Choice{
	{Label: "1 hour", Value: "1h"},
	{Label: "24 hours", Value: "24h"},
	{Label: "7 days", Value: "1w"},
	{Label: "Custom", Value: customExpiry},
}

// enrichmentQuestions lists, in order, the prompts needed to complete the
// given options. Values already set through flags are not asked again.
func enrichmentQuestions(opts ShareOptions) []port.Question {
	questions := make([]port.Question, 0, 6)

	if opts.Expires == "" {
		questions = append(questions, port.Question{
			Name:    "expires",
			Kind:    port.QuestionSelect,
			Message: "Select expiry time:",
			Choices: expiryChoices,
			Default: model.DefaultExpiry,
		})
	}

	if opts.Password == "" {
		questions = append(questions, port.Question{
			Name:    "password",
			Kind:    port.QuestionPassword,
			Message: "Password protect? (leave empty for none):",
		})
	}

	if !opts.Burn {
		questions = append(questions, port.Question{
			Name:    "burn",
			Kind:    port.QuestionConfirm,
			Message: "Burn after reading?",
			Default: false,
		})
	}

	if opts.Reference == "" {
		questions = append(questions, port.Question{
			Name:     "reference",
			Kind:     port.QuestionInput,
			Message:  "Reference label for tracking? (max 8 chars, leave empty for none):",
			Validate: validateReferenceAnswer,
		})
	}

	questions = append(questions,
		port.Question{
			Name:    "qr",
			Kind:    port.QuestionConfirm,
			Message: "Show QR code?",
			Default: false,
		},
		port.Question{
			Name:    "copy",
			Kind:    port.QuestionConfirm,
			Message: "Copy URL to clipboard?",
			Default: true,
		},
	)

	return questions
}

var customExpiryQuestion = port.Question{
	Name:     "customExpiry",
	Kind:     port.QuestionInput,
	Message:  "Enter custom expiry (e.g., 2h, 3d, 1w):",
	Validate: validateExpiryAnswer,
}

func (o *Orchestrator) enrich(ctx context.Context, opts ShareOptions) (ShareOptions, error) {
	answers, err := o.prompter.Ask(ctx, enrichmentQuestions(opts)...)
	if err != nil {
		return opts, errors.WithStack(err)
	}

	if answers.Has("expires") {
		opts.Expires = answers.String("expires")
	}

	if opts.Expires == customExpiry {
		custom, err := o.prompter.Ask(ctx, customExpiryQuestion)
		if err != nil {
			return opts, errors.WithStack(err)
		}

		opts.Expires = custom.String(customExpiryQuestion.Name)
	}

	// Empty answers mean "not set"
	if password := answers.String("password"); password != "" {
		opts.Password = password
	}

	if reference := answers.String("reference"); reference != "" {
		opts.Reference = reference
	}

	if answers.Has("burn") {
		opts.Burn = answers.Bool("burn")
	}

	opts.QRCode = answers.Bool("qr")
	opts.Copy = answers.Bool("copy")

	return opts, nil
}

func validateReferenceAnswer(answer string) error {
	if err := model.ValidateReference(answer); err != nil {
		return port.NewValidationError(errors.Cause(err).Error())
	}

	return nil
}

func validateExpiryAnswer(answer string) error {
	if !model.ValidateExpiry(answer) {
		return port.NewValidationError("Invalid expiry format")
	}

	return nil
}

package model

import (
	"regexp"

	"github.com/pkg/errors"
)

const MaxReferenceLength = 8

var (
	ErrReferenceTooLong     = errors.New("Reference must be 8 characters or less")
	ErrReferenceInvalidChar = errors.New("Only letters, numbers, hyphens, underscores, and periods allowed")
)

var referencePattern = regexp.MustCompile(`^[a-zA-Z0-9\-_.]+$`)

// ValidateReference checks a reference label. An empty label is valid and
// means "no reference".
func ValidateReference(reference string) error {
	if reference == "" {
		return nil
	}

	if len(reference) > MaxReferenceLength {
		return errors.WithStack(ErrReferenceTooLong)
	}

	if !referencePattern.MatchString(reference) {
		return errors.WithStack(ErrReferenceInvalidChar)
	}

	return nil
}

package store

import (
	"errors"
	"unicode/utf8"
)

// Submission bounds enforced before any network call; the backend applies
// the same limits.
const (
	TitleMinLen       = 3
	TitleMaxLen       = 50
	DescriptionMinLen = 10
	DescriptionMaxLen = 500
)

var (
	ErrTitleTooShort       = errors.New("title must be at least 3 characters")
	ErrTitleTooLong        = errors.New("title must be at most 50 characters")
	ErrDescriptionTooShort = errors.New("description must be at least 10 characters")
	ErrDescriptionTooLong  = errors.New("description must be at most 500 characters")
)

func validateSubmission(title, description string) error {
	titleLen := utf8.RuneCountInString(title)
	switch {
	case titleLen < TitleMinLen:
		return ErrTitleTooShort
	case titleLen > TitleMaxLen:
		return ErrTitleTooLong
	}

	descriptionLen := utf8.RuneCountInString(description)
	switch {
	case descriptionLen < DescriptionMinLen:
		return ErrDescriptionTooShort
	case descriptionLen > DescriptionMaxLen:
		return ErrDescriptionTooLong
	}

	return nil
}

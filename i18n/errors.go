package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ClassifyError represents a failure to map runtime language input onto the
// supported set. This is a domain-level outcome, returned to the caller;
// the typed dispatch after classification cannot fail.
type ClassifyError struct {
	// Code identifies the error category.
	Code ClassifyErrorCode

	// Tag is the input that failed to classify.
	Tag language.Tag
}

// ClassifyErrorCode categorizes classification errors.
type ClassifyErrorCode string

const (
	// ErrCodeUnsupportedLanguage indicates no supported language matches
	// the input tag.
	ErrCodeUnsupportedLanguage ClassifyErrorCode = "UNSUPPORTED_LANGUAGE"
)

// Error implements the error interface.
func (e *ClassifyError) Error() string {
	return fmt.Sprintf("%s: no supported language matches %q", e.Code, e.Tag)
}

// IsUnsupported returns true if the error is an unsupported-language error.
// Uses errors.As to handle wrapped errors.
func IsUnsupported(err error) bool {
	var ce *ClassifyError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeUnsupportedLanguage
	}
	return false
}

// NewUnsupportedError creates a ClassifyError for an unmatched tag.
func NewUnsupportedError(tag language.Tag) *ClassifyError {
	return &ClassifyError{
		Code: ErrCodeUnsupportedLanguage,
		Tag:  tag,
	}
}

// TranslationError represents a template with no translation for a
// language the classifier does support. Like ClassifyError this is a
// domain-level outcome: the typed localize path cannot produce it, only
// runtime-boundary dispatch can.
type TranslationError struct {
	// Code identifies the error category.
	Code TranslationErrorCode

	// Language names the untranslated language.
	Language string
}

// TranslationErrorCode categorizes translation errors.
type TranslationErrorCode string

const (
	// ErrCodeNoTranslation indicates the template lacks a translation for
	// the requested language.
	ErrCodeNoTranslation TranslationErrorCode = "NO_TRANSLATION"
)

// Error implements the error interface.
func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s: no %s translation available", e.Code, e.Language)
}

// IsNoTranslation returns true if the error is a missing-translation error.
// Uses errors.As to handle wrapped errors.
func IsNoTranslation(err error) bool {
	var te *TranslationError
	if errors.As(err, &te) {
		return te.Code == ErrCodeNoTranslation
	}
	return false
}

// NewNoTranslationError creates a TranslationError for the given language.
func NewNoTranslationError(lang Lang) *TranslationError {
	return &TranslationError{
		Code:     ErrCodeNoTranslation,
		Language: LangName(lang),
	}
}

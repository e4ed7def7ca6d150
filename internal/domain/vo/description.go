package vo

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"catalog/internal/errors"
)

const (
	// MinDescriptionLength is the shortest accepted description after normalization.
	MinDescriptionLength = 10
	// MaxDescriptionLength is the longest accepted description after normalization.
	MaxDescriptionLength = 2000
	// MaxCareInstructionLength is the longest accepted care instruction.
	MaxCareInstructionLength = 500
)

var (
	whitespaceRun      = regexp.MustCompile(`\s+`)
	descriptionPattern = regexp.MustCompile(`^[\p{L}\p{N}\s.,;:!?'"()%&/+#@*°_-]+$`)
	carePattern        = regexp.MustCompile(`^[\p{L}\p{N}\s.,;:!?'"()%&/+#*°-]+$`)
	careMarkerPattern  = regexp.MustCompile(`^([*-]|\d+\.)`)
)

// defaultForbiddenTerms are rejected in every description, case-insensitive.
var defaultForbiddenTerms = []string{
	"javascript:",
	"vbscript:",
	"data:text/html",
	"<script",
	"onerror=",
	"onload=",
	"drop table",
}

// DefaultForbiddenTerms returns a copy of the built-in forbidden description terms.
func DefaultForbiddenTerms() []string {
	terms := make([]string, len(defaultForbiddenTerms))
	copy(terms, defaultForbiddenTerms)

	return terms
}

// Description is the long-form text of a product or feature.
// Internal whitespace runs are collapsed to single spaces.
type Description struct {
	value string
}

// NewDescription validates raw against the built-in forbidden terms.
func NewDescription(raw string) (Description, error) {
	return newDescription(raw, defaultForbiddenTerms)
}

func newDescription(raw string, forbidden []string) (Description, error) {
	value := whitespaceRun.ReplaceAllString(strings.TrimSpace(raw), " ")
	if value == "" {
		return Description{}, errors.Invalid("description", "must not be blank")
	}

	length := utf8.RuneCountInString(value)
	if length < MinDescriptionLength {
		return Description{}, errors.Invalid("description", "must be at least %d characters", MinDescriptionLength)
	}
	if length > MaxDescriptionLength {
		return Description{}, errors.Invalid("description", "must not exceed %d characters", MaxDescriptionLength)
	}

	lower := strings.ToLower(value)
	for _, term := range forbidden {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" && strings.Contains(lower, term) {
			return Description{}, errors.Invalid("description", "contains forbidden content")
		}
	}

	if !descriptionPattern.MatchString(value) {
		return Description{}, errors.Invalid("description", "contains invalid characters")
	}

	return Description{value: value}, nil
}

func (d Description) String() string { return d.value }

// IsZero reports whether the description was never set.
func (d Description) IsZero() bool { return d.value == "" }

// Equals reports structural equality.
func (d Description) Equals(other Description) bool { return d.value == other.value }

// CareInstruction tells the customer how to look after a variant.
// It must be written as a list: "* ...", "- ..." or "1. ...".
type CareInstruction struct {
	value string
}

// NewCareInstruction validates raw as a care instruction.
func NewCareInstruction(raw string) (CareInstruction, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return CareInstruction{}, errors.Invalid("careInstruction", "must not be blank")
	}
	if utf8.RuneCountInString(value) > MaxCareInstructionLength {
		return CareInstruction{}, errors.Invalid("careInstruction", "must not exceed %d characters", MaxCareInstructionLength)
	}
	if !carePattern.MatchString(value) {
		return CareInstruction{}, errors.Invalid("careInstruction", "contains invalid characters")
	}
	if !careMarkerPattern.MatchString(value) {
		return CareInstruction{}, errors.Invalid("careInstruction", "must start with a bullet (*, -) or a numbered marker (1.)")
	}

	return CareInstruction{value: value}, nil
}

func (c CareInstruction) String() string { return c.value }

// IsZero reports whether the instruction was never set.
func (c CareInstruction) IsZero() bool { return c.value == "" }

// Equals reports structural equality.
func (c CareInstruction) Equals(other CareInstruction) bool { return c.value == other.value }

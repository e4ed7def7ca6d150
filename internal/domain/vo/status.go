package vo

import (
	"strings"

	"catalog/internal/errors"
)

// VariantStatus is the lifecycle state of a variant.
type VariantStatus string

const (
	StatusDraft        VariantStatus = "DRAFT"
	StatusActive       VariantStatus = "ACTIVE"
	StatusInactive     VariantStatus = "INACTIVE"
	StatusDiscontinued VariantStatus = "DISCONTINUED"
)

// ParseVariantStatus parses an exact status name. Unknown names fail rather than defaulting.
func ParseVariantStatus(raw string) (VariantStatus, error) {
	status := VariantStatus(strings.TrimSpace(raw))
	if !status.IsValid() {
		return "", errors.Invalid("status", "unknown variant status %q", raw)
	}

	return status, nil
}

// IsValid checks if the status is a known value.
func (s VariantStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusInactive, StatusDiscontinued:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s VariantStatus) IsTerminal() bool {
	return s == StatusDiscontinued
}

func (s VariantStatus) String() string { return string(s) }

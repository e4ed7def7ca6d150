package errors

import (
	"fmt"
)

// Kind classifies a domain failure. Callers decide on retry and transport
// mapping from the kind alone.
type Kind uint8

const (
	// KindUnknown is reported for errors that did not originate from the domain model.
	KindUnknown Kind = iota
	// KindInvalidArgument marks malformed or out-of-range input.
	KindInvalidArgument
	// KindMissingField marks a required value that was not supplied.
	KindMissingField
	// KindIllegalState marks a transition that is invalid for the current lifecycle state.
	KindIllegalState
	// KindNotFound marks an absent aggregate or entity.
	KindNotFound
	// KindConflict marks an optimistic concurrency or uniqueness conflict.
	KindConflict
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindMissingField:
		return "missing_field"
	case KindIllegalState:
		return "illegal_state"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// DomainError is a classified failure raised by the domain model.
type DomainError struct {
	Kind    Kind
	Field   string
	Message string
	// Err is an optional sentinel the failure can be matched against with Is.
	Err error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the sentinel carried by e, if any.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Invalid returns an invalid-argument failure for the given field.
func Invalid(field, format string, args ...any) error {
	return &DomainError{Kind: KindInvalidArgument, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Missing returns a missing-field failure for the given field.
func Missing(field string) error {
	return &DomainError{Kind: KindMissingField, Field: field, Message: "must not be null"}
}

// IllegalState returns an illegal-state failure.
func IllegalState(format string, args ...any) error {
	return &DomainError{Kind: KindIllegalState, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a not-found failure.
func NotFound(format string, args ...any) error {
	return &DomainError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict returns a conflict failure.
func Conflict(format string, args ...any) error {
	return &DomainError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first DomainError in err's tree.
func KindOf(err error) Kind {
	var domainErr *DomainError
	if As(err, &domainErr) {
		return domainErr.Kind
	}

	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Package vo contains the immutable, self-validating value objects of the catalog.
package vo

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"catalog/internal/errors"

	"github.com/google/uuid"
)

// uuidPattern matches the canonical 8-4-4-4-12 form, case-insensitive.
var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

func parseUUID(field, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", errors.Invalid(field, "must not be blank")
	}
	if !uuidPattern.MatchString(value) {
		return "", errors.Invalid(field, "must be a valid UUID format")
	}

	return strings.ToLower(value), nil
}

// ProductID identifies a product aggregate.
type ProductID struct {
	value string
}

// NewProductID validates raw as a product identifier.
func NewProductID(raw string) (ProductID, error) {
	value, err := parseUUID("productId", raw)
	if err != nil {
		return ProductID{}, err
	}

	return ProductID{value: value}, nil
}

// GenerateProductID returns a fresh random product identifier.
func GenerateProductID() ProductID {
	return ProductID{value: uuid.NewString()}
}

func (id ProductID) String() string { return id.value }

// IsZero reports whether the identifier was never set.
func (id ProductID) IsZero() bool { return id.value == "" }

// Equals reports structural equality.
func (id ProductID) Equals(other ProductID) bool { return id.value == other.value }

// VariantID identifies a variant inside a product.
type VariantID struct {
	value string
}

// NewVariantID validates raw as a variant identifier.
func NewVariantID(raw string) (VariantID, error) {
	value, err := parseUUID("variantId", raw)
	if err != nil {
		return VariantID{}, err
	}

	return VariantID{value: value}, nil
}

// GenerateVariantID returns a fresh random variant identifier.
func GenerateVariantID() VariantID {
	return VariantID{value: uuid.NewString()}
}

func (id VariantID) String() string { return id.value }

// IsZero reports whether the identifier was never set.
func (id VariantID) IsZero() bool { return id.value == "" }

// Equals reports structural equality.
func (id VariantID) Equals(other VariantID) bool { return id.value == other.value }

// FeatureID identifies a feature attached to a variant.
type FeatureID struct {
	value string
}

// NewFeatureID validates raw as a feature identifier.
func NewFeatureID(raw string) (FeatureID, error) {
	value, err := parseUUID("featureId", raw)
	if err != nil {
		return FeatureID{}, err
	}

	return FeatureID{value: value}, nil
}

// GenerateFeatureID returns a fresh random feature identifier.
func GenerateFeatureID() FeatureID {
	return FeatureID{value: uuid.NewString()}
}

func (id FeatureID) String() string { return id.value }

// IsZero reports whether the identifier was never set.
func (id FeatureID) IsZero() bool { return id.value == "" }

// Equals reports structural equality.
func (id FeatureID) Equals(other FeatureID) bool { return id.value == other.value }

// BusinessIDFormat selects which validator applies to business identifiers.
type BusinessIDFormat string

const (
	// BusinessIDFormatAny accepts any non-blank identifier up to 64 characters.
	BusinessIDFormatAny BusinessIDFormat = "any"
	// BusinessIDFormatUUID requires a canonical UUID.
	BusinessIDFormatUUID BusinessIDFormat = "uuid"
	// BusinessIDFormatCode requires uppercase alphanumeric segments joined by dashes.
	BusinessIDFormatCode BusinessIDFormat = "code"
)

const maxBusinessIDLength = 64

var businessCodePattern = regexp.MustCompile(`^[A-Z0-9]+(-[A-Z0-9]+)*$`)

// IsValid checks if the format is a known value.
func (f BusinessIDFormat) IsValid() bool {
	switch f {
	case BusinessIDFormatAny, BusinessIDFormatUUID, BusinessIDFormatCode:
		return true
	default:
		return false
	}
}

// ParseBusinessIDFormat parses a configured format name. Empty selects BusinessIDFormatAny.
func ParseBusinessIDFormat(raw string) (BusinessIDFormat, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return BusinessIDFormatAny, nil
	}

	format := BusinessIDFormat(value)
	if !format.IsValid() {
		return "", errors.Invalid("businessIdFormat", "unknown format %q", raw)
	}

	return format, nil
}

// BusinessID identifies the business owning a product.
type BusinessID struct {
	value string
}

// NewBusinessID validates raw with BusinessIDFormatAny.
func NewBusinessID(raw string) (BusinessID, error) {
	return ParseBusinessID(raw, BusinessIDFormatAny)
}

// ParseBusinessID validates raw against the given format.
func ParseBusinessID(raw string, format BusinessIDFormat) (BusinessID, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return BusinessID{}, errors.Invalid("businessId", "must not be blank")
	}

	switch format {
	case BusinessIDFormatAny:
		if utf8.RuneCountInString(value) > maxBusinessIDLength {
			return BusinessID{}, errors.Invalid("businessId", "must not exceed %d characters", maxBusinessIDLength)
		}
	case BusinessIDFormatUUID:
		normalized, err := parseUUID("businessId", value)
		if err != nil {
			return BusinessID{}, err
		}
		value = normalized
	case BusinessIDFormatCode:
		if len(value) > maxBusinessIDLength {
			return BusinessID{}, errors.Invalid("businessId", "must not exceed %d characters", maxBusinessIDLength)
		}
		if !businessCodePattern.MatchString(value) {
			return BusinessID{}, errors.Invalid("businessId", "must contain only uppercase letters, digits and dashes")
		}
	default:
		return BusinessID{}, errors.Invalid("businessIdFormat", "unknown format %q", format)
	}

	return BusinessID{value: value}, nil
}

func (id BusinessID) String() string { return id.value }

// IsZero reports whether the identifier was never set.
func (id BusinessID) IsZero() bool { return id.value == "" }

// Equals reports structural equality.
func (id BusinessID) Equals(other BusinessID) bool { return id.value == other.value }

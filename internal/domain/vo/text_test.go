package vo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextValueObjects(t *testing.T) {
	t.Parallel()

	build := map[string]func(string) (string, error){
		"category": func(s string) (string, error) { v, err := NewCategory(s); return v.String(), err },
		"name":     func(s string) (string, error) { v, err := NewName(s); return v.String(), err },
		"label":    func(s string) (string, error) { v, err := NewLabel(s); return v.String(), err },
		"unit":     func(s string) (string, error) { v, err := NewMeasurementUnit(s); return v.String(), err },
		"sku":      func(s string) (string, error) { v, err := NewSKU(s); return v.String(), err },
	}

	tests := []struct {
		name    string
		kind    string
		raw     string
		want    string
		wantErr string
	}{
		{name: "category trimmed", kind: "category", raw: "  Home & Garden ", want: "Home & Garden"},
		{name: "category unicode letters", kind: "category", raw: "Bücher", want: "Bücher"},
		{name: "category rejects markup", kind: "category", raw: "<b>Shoes</b>", wantErr: "invalid characters"},
		{name: "category too long", kind: "category", raw: strings.Repeat("a", 51), wantErr: "must not exceed 50"},
		{name: "name with parentheses", kind: "name", raw: "Gift wrap (premium)", want: "Gift wrap (premium)"},
		{name: "name blank", kind: "name", raw: "\t", wantErr: "must not be blank"},
		{name: "name rejects semicolon", kind: "name", raw: "Engraving; DROP", wantErr: "invalid characters"},
		{name: "label ok", kind: "label", raw: "New", want: "New"},
		{name: "label rejects angle brackets", kind: "label", raw: "New>", wantErr: "invalid characters"},
		{name: "unit ok", kind: "unit", raw: "cm", want: "cm"},
		{name: "unit too long", kind: "unit", raw: strings.Repeat("m", 21), wantErr: "must not exceed 20"},
		{name: "sku ok", kind: "sku", raw: "TSHIRT-RED_XL", want: "TSHIRT-RED_XL"},
		{name: "sku rejects space", kind: "sku", raw: "TSHIRT RED", wantErr: "invalid characters"},
		{name: "sku max length", kind: "sku", raw: strings.Repeat("A", 50), want: strings.Repeat("A", 50)},
		{name: "sku too long", kind: "sku", raw: strings.Repeat("A", 51), wantErr: "must not exceed 50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := build[tt.kind](tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDescription(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		d, err := NewDescription("  Soft   cotton\n\tshirt,  made to last.  ")
		require.NoError(t, err)
		assert.Equal(t, "Soft cotton shirt, made to last.", d.String())
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()

		_, err := NewDescription("Too short")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 10")
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()

		_, err := NewDescription(strings.Repeat("a", MaxDescriptionLength+1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not exceed")
	})

	t.Run("forbidden term is case-insensitive", func(t *testing.T) {
		t.Parallel()

		_, err := NewDescription("Click here: JavaScript:alert(1) for a discount")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "forbidden")
	})

	t.Run("policy adds forbidden terms", func(t *testing.T) {
		t.Parallel()

		policy := DefaultPolicy()
		policy.ForbiddenTerms = []string{"free shipping"}

		_, err := policy.Description("Great shirt with FREE SHIPPING included")
		require.Error(t, err)

		_, err = NewDescription("Great shirt with FREE SHIPPING included")
		require.NoError(t, err)
	})

	t.Run("equality is structural", func(t *testing.T) {
		t.Parallel()

		a, err := NewDescription("A sturdy canvas tote bag")
		require.NoError(t, err)
		b, err := NewDescription("A  sturdy canvas tote bag ")
		require.NoError(t, err)
		assert.True(t, a.Equals(b))
	})
}

func TestNewCareInstruction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "bullet star", raw: "* Machine wash cold"},
		{name: "bullet dash", raw: "  - Hand wash only"},
		{name: "numbered", raw: "1. Wash at 30°\n2. Do not tumble dry"},
		{name: "no marker", raw: "Machine wash cold", wantErr: true},
		{name: "blank", raw: "  ", wantErr: true},
		{name: "invalid characters", raw: "* Wash <b>cold</b>", wantErr: true},
		{name: "too long", raw: "* " + strings.Repeat("a", MaxCareInstructionLength), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewCareInstruction(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package vo

import (
	"testing"

	"catalog/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{name: "canonical", raw: "3f2b8c1e-9a4d-4e7f-8b2a-1c3d5e7f9a0b", want: "3f2b8c1e-9a4d-4e7f-8b2a-1c3d5e7f9a0b"},
		{name: "upper case is normalized", raw: "3F2B8C1E-9A4D-4E7F-8B2A-1C3D5E7F9A0B", want: "3f2b8c1e-9a4d-4e7f-8b2a-1c3d5e7f9a0b"},
		{name: "surrounding spaces trimmed", raw: "  3f2b8c1e-9a4d-4e7f-8b2a-1c3d5e7f9a0b ", want: "3f2b8c1e-9a4d-4e7f-8b2a-1c3d5e7f9a0b"},
		{name: "not a uuid", raw: "not-a-uuid", wantErr: "must be a valid UUID format"},
		{name: "missing dashes", raw: "3f2b8c1e9a4d4e7f8b2a1c3d5e7f9a0b", wantErr: "must be a valid UUID format"},
		{name: "blank", raw: "   ", wantErr: "must not be blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := NewProductID(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, errors.KindInvalidArgument, errors.KindOf(err))
				assert.True(t, id.IsZero())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
		})
	}
}

func TestGeneratedIdentifiersPassTheirOwnValidation(t *testing.T) {
	t.Parallel()

	for range 20 {
		productID, err := NewProductID(GenerateProductID().String())
		require.NoError(t, err)
		assert.False(t, productID.IsZero())

		_, err = NewVariantID(GenerateVariantID().String())
		require.NoError(t, err)

		_, err = NewFeatureID(GenerateFeatureID().String())
		require.NoError(t, err)
	}

	assert.False(t, GenerateVariantID().Equals(GenerateVariantID()))
}

func TestParseBusinessID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		format  BusinessIDFormat
		wantErr bool
	}{
		{name: "any accepts free text", raw: "acme shop", format: BusinessIDFormatAny},
		{name: "any rejects blank", raw: " ", format: BusinessIDFormatAny, wantErr: true},
		{name: "any rejects too long", raw: string(make([]byte, 65)), format: BusinessIDFormatAny, wantErr: true},
		{name: "uuid accepts uuid", raw: "3f2b8c1e-9a4d-4e7f-8b2a-1c3d5e7f9a0b", format: BusinessIDFormatUUID},
		{name: "uuid rejects code", raw: "ACME-01", format: BusinessIDFormatUUID, wantErr: true},
		{name: "code accepts uppercase segments", raw: "ACME-01", format: BusinessIDFormatCode},
		{name: "code rejects lowercase", raw: "acme-01", format: BusinessIDFormatCode, wantErr: true},
		{name: "code rejects trailing dash", raw: "ACME-", format: BusinessIDFormatCode, wantErr: true},
		{name: "unknown format", raw: "ACME", format: BusinessIDFormat("xml"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseBusinessID(tt.raw, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseBusinessIDFormat(t *testing.T) {
	t.Parallel()

	format, err := ParseBusinessIDFormat("")
	require.NoError(t, err)
	assert.Equal(t, BusinessIDFormatAny, format)

	format, err = ParseBusinessIDFormat(" CODE ")
	require.NoError(t, err)
	assert.Equal(t, BusinessIDFormatCode, format)

	_, err = ParseBusinessIDFormat("ean")
	assert.Error(t, err)
}

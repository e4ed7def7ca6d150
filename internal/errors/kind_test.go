package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	sentinel := Invalid("price", "currency mismatch")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "invalid argument", err: Invalid("sku", "must not be blank"), want: KindInvalidArgument},
		{name: "missing field", err: Missing("weight"), want: KindMissingField},
		{name: "illegal state", err: IllegalState("variant is discontinued"), want: KindIllegalState},
		{name: "not found", err: NotFound("product %s", "x"), want: KindNotFound},
		{name: "conflict", err: Conflict("stale version"), want: KindConflict},
		{name: "wrapped with stack", err: Wrap(sentinel, "change price"), want: KindInvalidArgument},
		{name: "plain error", err: New("boom"), want: KindUnknown},
		{name: "nil", err: nil, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestDomainError_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sku: must not be blank", Invalid("sku", "must not be blank").Error())
	assert.Equal(t, "weight: must not be null", Missing("weight").Error())
	assert.Equal(t, "variant is discontinued", IllegalState("variant is discontinued").Error())
	assert.True(t, IsKind(Wrapf(Missing("id"), "build %s", "variant"), KindMissingField))
	assert.False(t, IsKind(nil, KindMissingField))
}

package entity

import (
	"testing"

	"catalog/internal/domain/vo"
	"catalog/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScaling(t *testing.T, base, inc string, maxQuantity int) *ScalingPriceFeature {
	t.Helper()

	return must(NewScalingPriceFeature(testFeatureInfo(t), ScalingPrice{
		Unit:        must(vo.NewMeasurementUnit("cm")),
		BaseAmount:  decimal.RequireFromString(base),
		Increment:   decimal.RequireFromString(inc),
		MaxQuantity: maxQuantity,
	}))
}

func TestScalingPriceFeature_CalculateTotalPrice(t *testing.T) {
	t.Parallel()

	f := newScaling(t, "10.00", "2.50", 100)

	tests := []struct {
		name     string
		quantity int
		want     string
		wantErr  bool
	}{
		{name: "five units", quantity: 5, want: "22.50"},
		{name: "single unit", quantity: 1, want: "12.50"},
		{name: "max quantity", quantity: 100, want: "260.00"},
		{name: "zero", quantity: 0, wantErr: true},
		{name: "negative", quantity: -3, wantErr: true},
		{name: "max plus one", quantity: 101, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			total, err := f.CalculateTotalPrice(tt.quantity)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.KindInvalidArgument, errors.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, total.StringFixed(2))
		})
	}
}

func TestScalingPriceFeature_RoundsHalfUp(t *testing.T) {
	t.Parallel()

	f := newScaling(t, "0.005", "0.001", 10)

	total, err := f.CalculateTotalPrice(5)
	require.NoError(t, err)
	// 0.005 + 0.005 = 0.010
	assert.Equal(t, "0.01", total.String())

	f = newScaling(t, "0", "0.125", 10)
	total, err = f.CalculateTotalPrice(1)
	require.NoError(t, err)
	assert.Equal(t, "0.13", total.String())
}

func TestNewScalingPriceFeature_Validation(t *testing.T) {
	t.Parallel()

	unit := must(vo.NewMeasurementUnit("kg"))

	tests := []struct {
		name    string
		payload ScalingPrice
		kind    errors.Kind
	}{
		{name: "missing unit", payload: ScalingPrice{BaseAmount: decimal.Zero, Increment: decimal.Zero, MaxQuantity: 1}, kind: errors.KindMissingField},
		{name: "negative base", payload: ScalingPrice{Unit: unit, BaseAmount: decimal.NewFromInt(-1), Increment: decimal.Zero, MaxQuantity: 1}, kind: errors.KindInvalidArgument},
		{name: "negative increment", payload: ScalingPrice{Unit: unit, BaseAmount: decimal.Zero, Increment: decimal.NewFromInt(-1), MaxQuantity: 1}, kind: errors.KindInvalidArgument},
		{name: "zero max quantity", payload: ScalingPrice{Unit: unit, BaseAmount: decimal.Zero, Increment: decimal.Zero, MaxQuantity: 0}, kind: errors.KindInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := NewScalingPriceFeature(testFeatureInfo(t), tt.payload)
			require.Error(t, err)
			assert.Nil(t, f)
			assert.Equal(t, tt.kind, errors.KindOf(err))
		})
	}
}

func TestNewFixedPriceFeature(t *testing.T) {
	t.Parallel()

	f, err := NewFixedPriceFeature(testFeatureInfo(t), decimal.RequireFromString("4.995"))
	require.NoError(t, err)
	assert.Equal(t, FeatureKindFixedPrice, f.Kind())
	assert.Equal(t, "5", f.Price().String())

	_, err = NewFixedPriceFeature(testFeatureInfo(t), decimal.RequireFromString("-0.01"))
	require.Error(t, err)

	info := testFeatureInfo(t)
	info.Label = vo.Label{}
	_, err = NewFixedPriceFeature(info, decimal.Zero)
	require.Error(t, err)
	assert.Equal(t, errors.KindMissingField, errors.KindOf(err))
}

func TestFeature_Equality(t *testing.T) {
	t.Parallel()

	info := testFeatureInfo(t)
	basic := must(NewBasicFeature(info))
	basicAgain := must(NewBasicFeature(info))
	fixed := must(NewFixedPriceFeature(info, decimal.NewFromInt(3)))
	pricier := must(NewFixedPriceFeature(info, decimal.NewFromInt(4)))

	assert.True(t, basic.Equal(basicAgain))
	assert.True(t, basic.SameIdentity(fixed), "identity is the feature id")
	assert.False(t, basic.Equal(fixed), "different kinds are never equal")
	assert.False(t, fixed.Equal(basic))
	assert.False(t, fixed.Equal(pricier))
	assert.False(t, basic.SameIdentity(nil))
}

func TestFeatureSet(t *testing.T) {
	t.Parallel()

	a := must(NewBasicFeature(testFeatureInfo(t)))
	b := must(NewFixedPriceFeature(testFeatureInfo(t), decimal.NewFromInt(2)))

	set, err := NewFeatureSet(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	_, err = NewFeatureSet(a, a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate feature")

	_, err = set.With(a)
	require.Error(t, err)

	smaller := set.Without(a.ID())
	assert.Equal(t, 1, smaller.Len())
	assert.Equal(t, 2, set.Len(), "Without must not modify the receiver")
	assert.False(t, smaller.Contains(a.ID()))

	reordered, err := NewFeatureSet(b, a)
	require.NoError(t, err)
	assert.True(t, set.Equal(reordered))

	got, ok := set.Get(b.ID())
	require.True(t, ok)
	assert.Equal(t, FeatureKindFixedPrice, got.Kind())
}

func TestFeatureSet_RejectsNilFeatures(t *testing.T) {
	t.Parallel()

	valid := must(NewBasicFeature(testFeatureInfo(t)))

	tests := []struct {
		name    string
		feature Feature
	}{
		{name: "nil interface", feature: nil},
		{name: "nil basic", feature: (*BasicFeature)(nil)},
		{name: "nil fixed price", feature: (*FixedPriceFeature)(nil)},
		{name: "nil scaling price", feature: (*ScalingPriceFeature)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFeatureSet(valid, tt.feature)
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindMissingField))

			set := must(NewFeatureSet(valid))
			_, err = set.With(tt.feature)
			require.Error(t, err)

			assert.False(t, valid.SameIdentity(tt.feature))
		})
	}
}

func TestParseFeatureKind(t *testing.T) {
	t.Parallel()

	kind, err := ParseFeatureKind("SCALING_PRICE")
	require.NoError(t, err)
	assert.Equal(t, FeatureKindScalingPrice, kind)

	_, err = ParseFeatureKind("basic")
	assert.Error(t, err)
}

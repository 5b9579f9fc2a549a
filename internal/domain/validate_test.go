package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateField_Description(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{name: "exactly twenty characters", value: strings.Repeat("a", 20)},
		{name: "long sentence", value: "gives the wielder super-human strengths"},
		{name: "leading and trailing spaces kept", value: "   spaced out description   "},
		{name: "nineteen characters", value: strings.Repeat("a", 19), wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "not text", value: 12345678901234567890.0, wantErr: true},
		{name: "nil", value: nil, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ValidateField(KindPower, FieldDescription, tc.value)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
				var vErr *ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, KindPower, vErr.Kind)
				assert.Equal(t, FieldDescription, vErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, got, "valid descriptions pass through unchanged")
		})
	}
}

func TestValidateField_Strength(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{StrengthStrong, StrengthWeak, StrengthAverage} {
		got, err := ValidateField(KindHeroPower, FieldStrength, valid)
		require.NoError(t, err, valid)
		assert.Equal(t, valid, got)
	}

	for _, invalid := range []any{"strong", "WEAK", " Average", "Average ", "", "Mighty", 3, nil} {
		_, err := ValidateField(KindHeroPower, FieldStrength, invalid)
		assert.ErrorIs(t, err, ErrValidation, "%v should be rejected", invalid)
	}
}

func TestValidateField_Price(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		want    int64
		wantErr bool
	}{
		{name: "zero", value: json.Number("0"), want: 0},
		{name: "positive json number", value: json.Number("250"), want: 250},
		{name: "int", value: 7, want: 7},
		{name: "integral float", value: 12.0, want: 12},
		{name: "json number with decimal point", value: json.Number("3.0"), want: 3},
		{name: "json number with exponent", value: json.Number("1e2"), want: 100},
		{name: "float beyond int64", value: 1e19, wantErr: true},
		{name: "json number beyond int64", value: json.Number("1e19"), wantErr: true},
		{name: "negative float beyond int64", value: -1e19, wantErr: true},
		{name: "json number fraction with exponent", value: json.Number("15e-1"), wantErr: true},
		{name: "negative", value: json.Number("-1"), wantErr: true},
		{name: "negative int", value: -5, wantErr: true},
		{name: "absent", value: nil, wantErr: true},
		{name: "nil pointer", value: (*int64)(nil), wantErr: true},
		{name: "fraction", value: json.Number("1.5"), wantErr: true},
		{name: "string", value: "10", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ValidateField(KindVendorSweet, FieldPrice, tc.value)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateField_UnregisteredFieldPassesThrough(t *testing.T) {
	t.Parallel()

	got, err := ValidateField(KindHero, FieldName, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = ValidateField(KindPower, FieldDescription, 42)
	assert.ErrorIs(t, err, ErrValidation)
}

package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

func TestValidateAndConvertAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{" 12.34 ", 1234},
			{"1234567.89", 123456789},
			{"0.00", 0},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ValidateAndConvertAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"NaN", errs.ErrInvalidAmount, "Not a number"},
			{"Inf", errs.ErrInvalidAmount, "Infinity"},
			{"1e3", errs.ErrInvalidAmount, "Exponent notation"},
			{"+5", errs.ErrInvalidAmount, "Explicit plus sign"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
			{"999999999999999999999", errs.ErrAmountOverflow, "Overflow"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ValidateAndConvertAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestValidatePositiveAmount(t *testing.T) {
	cents, err := ValidatePositiveAmount("0.01")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), cents)

	_, err = ValidatePositiveAmount("0.00")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	_, err = ValidatePositiveAmount("-5")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestValidateAndConvertBalance(t *testing.T) {
	cents, err := ValidateAndConvertBalance("-25.50")
	assert.NoError(t, err)
	assert.Equal(t, int64(-2550), cents)

	cents, err = ValidateAndConvertBalance("500")
	assert.NoError(t, err)
	assert.Equal(t, int64(50000), cents)

	_, err = ValidateAndConvertBalance("-1.001")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestAmountInCentsToString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{100, "1.00"},
		{150, "1.50"},
		{123456789, "1234567.89"},
		{0, "0.00"},
		{-10000, "-100.00"},
		{-1, "-0.01"},
		{2147483647, "21474836.47"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, AmountInCentsToString(tc.cents))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range []string{"0.00", "0.01", "1.00", "10.50", "1234.56", "9999999.99"} {
		t.Run(tc, func(t *testing.T) {
			cents, err := ValidateAndConvertAmount(tc)
			assert.NoError(t, err)
			assert.Equal(t, tc, AmountInCentsToString(cents))
		})
	}
}

func TestAddCents(t *testing.T) {
	sum, err := AddCents(100, -250)
	assert.NoError(t, err)
	assert.Equal(t, int64(-150), sum)

	_, err = AddCents(math.MaxInt64, 1)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)

	_, err = AddCents(math.MinInt64, -1)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)

	assert.Equal(t, int64(360), AbsCents(-360))
}

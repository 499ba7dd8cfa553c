package entity

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

var (
	centsPerUnit = decimal.NewFromInt(100)
	maxCents     = decimal.NewFromInt(math.MaxInt64)
	minCents     = decimal.NewFromInt(math.MinInt64)
)

// ValidateAndConvertAmount parses a non-negative decimal string into cents.
// "10" -> 1000, "10.5" -> 1050, "10.55" -> 1055. More than two decimal
// places, exponents, signs other than none, NaN and Inf are rejected.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}
	return parseCents(amount)
}

// ValidateAndConvertBalance parses a signed decimal string into cents.
// Used for absolute balance targets, which may be negative.
func ValidateAndConvertBalance(amount string) (int64, error) {
	return parseCents(strings.TrimSpace(amount))
}

// ValidatePositiveAmount parses an amount that must be strictly greater than zero
func ValidatePositiveAmount(amount string) (int64, error) {
	cents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	return cents, nil
}

func parseCents(amount string) (int64, error) {
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	// decimal accepts exponents and a leading '+'; money strings must be plain digits
	if strings.ContainsAny(amount, "eE+") {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if -value.Exponent() > MaxDecimalPlaces && !value.Equal(value.Truncate(MaxDecimalPlaces)) {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	cents := value.Mul(centsPerUnit)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, errs.ErrAmountOverflow
	}
	return cents.IntPart(), nil
}

// AmountInCentsToString converts integer amount to a decimal string
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
func AmountInCentsToString(amountInCents int64) string {
	return decimal.New(amountInCents, -MaxDecimalPlaces).StringFixed(MaxDecimalPlaces)
}

// AddCents adds two cent values, reporting overflow as ErrAmountOverflow
func AddCents(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, errs.ErrAmountOverflow
	}
	return sum, nil
}

// AbsCents returns the absolute value of a cent amount
func AbsCents(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

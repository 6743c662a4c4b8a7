package money

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept for every amount.
const Scale = 2

const dateLayout = "2006-01-02"

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidNights = errors.New("stay must cover at least one whole night")
)

func init() {
	// prices travel as JSON numbers, the way clients already read them
	decimal.MarshalJSONWithoutQuotes = true
}

// Parse reads a decimal amount and truncates it to Scale digits.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d.Truncate(Scale), nil
}

// FromFloat is for trusted inputs only (seed data, multipliers).
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Truncate(Scale)
}

func LineTotal(pricePerNight decimal.Decimal, nights int) decimal.Decimal {
	return pricePerNight.Mul(decimal.NewFromInt(int64(nights))).Truncate(Scale)
}

func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Nights returns the whole-day length of a stay. Zero, negative and
// fractional-day spans are rejected.
func Nights(checkIn, checkOut string) (int, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return 0, err
	}

	span := out.Sub(in)
	if span <= 0 || span%(24*time.Hour) != 0 {
		return 0, ErrInvalidNights
	}
	return int(span / (24 * time.Hour)), nil
}

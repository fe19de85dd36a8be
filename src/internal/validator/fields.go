// Package validator holds the per-field checks applied to a parsed
// instruction. None of them touch account data.
package validator

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/payment-instruction-processor/src/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseAmount accepts a non-empty, unsigned run of ASCII digits whose value
// is greater than zero. Leading zeros are allowed.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	if raw == "" || strings.ContainsAny(raw, "-.") || !digitsOnly(raw) {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}

	return amount, true
}

// IsValidAccountID allows letters, digits, '-', '.' and '@'.
func IsValidAccountID(id string) bool {
	if id == "" {
		return false
	}

	for i := 0; i < len(id); i++ {
		ch := id[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '-', ch == '.', ch == '@':
		default:
			return false
		}
	}

	return true
}

// IsValidDateFormat checks the YYYY-MM-DD shape and coarse ranges only.
// Days 29-31 are accepted for every month.
func IsValidDateFormat(value string) bool {
	if len(value) != len(dateLayout) {
		return false
	}

	for i := 0; i < len(value); i++ {
		if i == 4 || i == 7 {
			if value[i] != '-' {
				return false
			}
			continue
		}
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}

	year := atoi(value[0:4])
	month := atoi(value[5:7])
	day := atoi(value[8:10])

	return year >= 1900 && year <= 9999 &&
		month >= 1 && month <= 12 &&
		day >= 1 && day <= 31
}

// IsFutureDate reports whether value falls strictly after the UTC calendar
// day of now. Out-of-range days roll over into the following month.
func IsFutureDate(value string, now time.Time) bool {
	if !IsValidDateFormat(value) {
		return false
	}

	date := time.Date(atoi(value[0:4]), time.Month(atoi(value[5:7])), atoi(value[8:10]), 0, 0, 0, 0, time.UTC)
	return date.After(Today(now))
}

// Today truncates now to midnight UTC.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeCurrency uppercases the code and reports whether it is supported.
func NormalizeCurrency(code string) (string, bool) {
	upper := strings.ToUpper(code)
	return upper, domain.IsSupportedCurrency(upper)
}

func digitsOnly(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// atoi expects digits only.
func atoi(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n
}

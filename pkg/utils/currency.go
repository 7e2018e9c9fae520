package utils

import (
	"math"
	"strconv"
	"strings"
)

var currencyStripper = strings.NewReplacer(
	"$", "",
	"€", "",
	"£", "",
	"¥", "",
	",", "",
	"\u00a0", "",
	"\t", "",
	"\n", "",
	" ", "",
)

// ParseCurrency converts a display amount such as "$1,234.56" to a number.
// Anything it cannot read is treated as 0.
func ParseCurrency(s string) float64 {
	cleaned := currencyStripper.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatCurrency renders n as USD with two decimals and thousands separators.
func FormatCurrency(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}

	cents := ToCents(n)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('$')
	for i, ch := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('.')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}

// RoundToCents rounds to two decimal places, half away from zero.
func RoundToCents(amount float64) float64 {
	return float64(ToCents(amount)) / 100
}

// ToCents converts an amount to integer cents, half away from zero.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts integer cents back to an amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

package domain

import (
	"fmt"
	"strconv"
)

// Amounts are whole rupees throughout the system.

const (
	currencySymbol = "₹"
	lakh           = 100_000
)

// FormatRupees renders an amount with thousands separators, e.g. 105000 -> ₹105,000.
func FormatRupees(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return sign + currencySymbol + string(out)
}

// FormatLakhs renders an amount in lakhs with two decimals, e.g. 85000 -> ₹0.85L.
func FormatLakhs(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	// round half up to hundredths of a lakh
	const step = lakh / 100
	hundredths := (amount + step/2) / step
	return fmt.Sprintf("%s%s%d.%02dL", sign, currencySymbol, hundredths/100, hundredths%100)
}

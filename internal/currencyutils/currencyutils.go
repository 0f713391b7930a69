// Package currencyutils provides amount parsing and currency display used throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the display currency symbol.
const DefaultSymbol = "₹"

var symbolPattern = regexp.MustCompile(`[€$£¥₹\s]`)

// ParseAmount parses user input such as "1,234.50" or "₹ 250" into a decimal value
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': empty value", amountStr)
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount strips currency symbols, whitespace and thousands separators
// so the result can be parsed by decimal.NewFromString. A lone comma followed by
// one or two digits is read as a decimal separator ("12,5" -> "12.5").
func StandardizeAmount(amountStr string) string {
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")

	if strings.Contains(amountStr, ",") && !strings.Contains(amountStr, ".") {
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			return parts[0] + "." + parts[1]
		}
	}

	return strings.ReplaceAll(amountStr, ",", "")
}

// FormatINR renders an amount the way the application displays money: the
// currency symbol, no fraction digits, and Indian digit grouping
// (last three digits, then groups of two), e.g. "₹1,23,457".
func FormatINR(amount decimal.Decimal, symbol string) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + symbol + GroupIndian(rounded.StringFixed(0))
}

// GroupIndian inserts en-IN thousands separators into a string of digits.
func GroupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// FormatPercent renders a percentage with one decimal place, e.g. "42.5%".
func FormatPercent(percent decimal.Decimal) string {
	return percent.StringFixed(1) + "%"
}

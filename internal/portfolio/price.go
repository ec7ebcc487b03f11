package portfolio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var budgetPattern = regexp.MustCompile(`₦(\d+\.?\d*)([BM]?)`)

// ExtractPrice converts a budget such as "₦2.5B" or "₦850M" into a number.
// Unparsable budgets yield 0.
func ExtractPrice(budget string) float64 {
	match := budgetPattern.FindStringSubmatch(budget)
	if match == nil {
		return 0
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	switch match[2] {
	case "B":
		return value * 1_000_000_000
	case "M":
		return value * 1_000_000
	}
	return value
}

// FormatPrice renders a price in the budget notation used across the dashboard.
func FormatPrice(price float64) string {
	switch {
	case price >= 1_000_000_000:
		return fmt.Sprintf("₦%.1fB", price/1_000_000_000)
	case price >= 1_000_000:
		return fmt.Sprintf("₦%.1fM", price/1_000_000)
	}
	return "₦" + groupThousands(int64(price))
}

func groupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}

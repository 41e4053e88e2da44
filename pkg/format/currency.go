// Package format renders numbers for display on calculator pages.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	rounded := mathutil.Round(amount)
	formatted := printer.Sprintf("%.2f", math.Abs(rounded))
	if rounded < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent renders a whole-number percent with up to two decimals (e.g., "12.5%").
func Percent(value float64) string {
	return Number(value) + "%"
}

// Number renders a value with thousands separators and at most two decimals,
// trimming trailing zeros (e.g., "1,234.5").
func Number(value float64) string {
	rounded := mathutil.Round(value)
	if rounded == 0 {
		// Drop the sign of negative zero.
		rounded = 0
	}
	formatted := printer.Sprintf("%.2f", rounded)
	if strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimSuffix(formatted, ".")
	}
	return formatted
}

// Input renders a value for an HTML input field without separators so it
// round-trips through the evaluator unchanged.
func Input(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// formatCurrency renders whole dollars with thousands separators, e.g. $1,234,567
func formatCurrency(d decimal.Decimal) string {
	rounded := d.RoundBank(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + "$" + humanize.Comma(rounded.IntPart())
}

// pluralize renders a count with its noun: 1 holding, 3 holdings
func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// initials takes the first letter of up to two words of name
func initials(name string) string {
	var sb strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r := []rune(word)
		sb.WriteRune(r[0])
	}
	return strings.ToUpper(sb.String())
}

// window returns the [start, end) slice of n rows that keeps cursor visible
// within capacity rows.
func window(n, cursor, capacity int) (int, int) {
	if capacity <= 0 || n <= capacity {
		return 0, n
	}
	start := cursor - capacity/2
	if start < 0 {
		start = 0
	}
	if start+capacity > n {
		start = n - capacity
	}
	return start, start + capacity
}

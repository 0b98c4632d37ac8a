package format

import (
	"fmt"
	"strings"
)

// Won formats a KRW amount with thousands separators and the currency
// suffix. Example: Won(17900) => "17,900원".
func Won(amount int64) string {
	return thousandSep(amount) + "원"
}

// Count formats an item count for result headers. Example: Count(12) => "12개".
func Count(n int) string {
	return fmt.Sprintf("%d개", n)
}

// Protein formats grams of protein, dropping a trailing ".0".
func Protein(grams float64) string {
	s := fmt.Sprintf("%.1f", grams)
	s = strings.TrimSuffix(s, ".0")
	return s + "g"
}

// Calories formats a kcal amount.
func Calories(kcal int) string {
	return fmt.Sprintf("%dkcal", kcal)
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") { neg = true; s = s[1:] }
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 { out += "," }
		out += string(c)
	}
	if neg { return "-" + out }
	return out
}

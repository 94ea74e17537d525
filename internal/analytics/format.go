package analytics

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
)

// FormatCurrency renders v in whole units of the given currency, rounded,
// with the currency's grouping separator and symbol. Codes go-money does
// not know are rendered as "1,234 XYZ". Values beyond the int64 range
// saturate at ±math.MaxInt64 and NaN renders as zero.
func FormatCurrency(v float64, code string) string {
	return currencyFormatter(code).Format(wholeUnits(v))
}

// FormatSignedCurrency is FormatCurrency with a leading "+" on positive
// values.
func FormatSignedCurrency(v float64, code string) string {
	s := FormatCurrency(v, code)
	if wholeUnits(v) > 0 {
		return "+" + s
	}
	return s
}

// int64Bound is 2^63, the first float64 above math.MaxInt64.
const int64Bound = 1 << 63

func wholeUnits(v float64) int64 {
	r := math.Round(v)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= int64Bound:
		return math.MaxInt64
	case r <= -int64Bound:
		return -math.MaxInt64
	}
	return int64(r)
}

// FormatPercentage renders v with two decimals and a percent sign.
func FormatPercentage(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func currencyFormatter(code string) *money.Formatter {
	code = strings.ToUpper(strings.TrimSpace(code))
	if cur := money.GetCurrency(code); cur != nil {
		return money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	}
	return money.NewFormatter(0, ".", ",", code, "1 $")
}

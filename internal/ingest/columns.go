package ingest

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"assetboard/internal/models"
)

type column int

const (
	colInvestor column = iota
	colAccount
	colName
	colCurrency
	colStartDate
	colEndDate
	colBeginValue
	colEndValue
	colContribution
	colReturnRate
	colSector
	colClassification
)

// headerAliases maps normalised header text to a record field. Korean
// names are the column titles of the spreadsheets the dashboard was built
// around; English names accept snake case, spaces and hyphens alike.
var headerAliases = map[string]column{
	"투자자":   colInvestor,
	"계좌명":   colAccount,
	"종목명":   colName,
	"통화":    colCurrency,
	"연초날짜":  colStartDate,
	"연말날짜":  colEndDate,
	"연초평가":  colBeginValue,
	"연말평가":  colEndValue,
	"자산기여도": colContribution,
	"수익률":   colReturnRate,
	"섹터":    colSector,
	"자산분류":  colClassification,

	"investor":        colInvestor,
	"account":         colAccount,
	"account_name":    colAccount,
	"name":            colName,
	"security":        colName,
	"instrument":      colName,
	"currency":        colCurrency,
	"start_date":      colStartDate,
	"end_date":        colEndDate,
	"begin_value":     colBeginValue,
	"beginning_value": colBeginValue,
	"end_value":       colEndValue,
	"ending_value":    colEndValue,
	"contribution":    colContribution,
	"return_rate":     colReturnRate,
	"return":          colReturnRate,
	"sector":          colSector,
	"classification":  colClassification,
	"asset_class":     colClassification,
}

func normalizeHeader(h string) string {
	h = norm.NFC.String(strings.TrimSpace(h))
	h = strings.ToLower(h)
	return strings.NewReplacer(" ", "_", "-", "_").Replace(h)
}

// mapHeader resolves each header cell to a field. The first occurrence of
// a field wins when a header repeats it.
func mapHeader(header []string) map[column]int {
	out := make(map[column]int)
	for i, h := range header {
		col, ok := headerAliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, dup := out[col]; !dup {
			out[col] = i
		}
	}
	return out
}

var numberNoise = strings.NewReplacer(
	",", "", " ", "", "\u00a0", "", "\t", "",
	"₩", "", "$", "", "€", "", "£", "", "¥", "", "%", "",
)

// parseNumber reads a spreadsheet number. Grouping separators, currency
// symbols and a percent sign are ignored and "(1,200)" reads as -1200.
// Anything unreadable or out of float64 range is 0.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	s = numberNoise.Replace(s)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	if neg {
		d = d.Neg()
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

func cell(row []string, idx map[column]int, col column) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func toRecord(row []string, idx map[column]int, pos int) models.AssetRecord {
	return models.AssetRecord{
		Row:            pos,
		Investor:       cell(row, idx, colInvestor),
		Account:        cell(row, idx, colAccount),
		Name:           cell(row, idx, colName),
		Currency:       strings.ToUpper(cell(row, idx, colCurrency)),
		StartDate:      cell(row, idx, colStartDate),
		EndDate:        cell(row, idx, colEndDate),
		BeginValue:     parseNumber(cell(row, idx, colBeginValue)),
		EndValue:       parseNumber(cell(row, idx, colEndValue)),
		Contribution:   parseNumber(cell(row, idx, colContribution)),
		ReturnRate:     parseNumber(cell(row, idx, colReturnRate)),
		Sector:         cell(row, idx, colSector),
		Classification: cell(row, idx, colClassification),
	}
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

package analytics

import "assetboard/internal/models"

// FilterByInvestor returns the records held by investor in their original
// order. The result never aliases the input slice.
func FilterByInvestor(records []models.AssetRecord, investor string) []models.AssetRecord {
	out := make([]models.AssetRecord, 0)
	for i := range records {
		if records[i].Investor == investor {
			out = append(out, records[i])
		}
	}
	return out
}

// Summarize totals the valuations and contribution of records. GrowthRate
// is the percent change from beginning to ending value, or 0 when the
// beginning total is not positive.
func Summarize(records []models.AssetRecord) Summary {
	var s Summary
	for i := range records {
		s.TotalBeginning += records[i].BeginValue
		s.TotalEnding += records[i].EndValue
		s.TotalContribution += records[i].Contribution
	}
	if s.TotalBeginning > 0 {
		s.GrowthRate = (s.TotalEnding - s.TotalBeginning) / s.TotalBeginning * 100
	}
	return s
}

// FilterAndSummarize is FilterByInvestor followed by Summarize.
func FilterAndSummarize(records []models.AssetRecord, investor string) ([]models.AssetRecord, Summary) {
	filtered := FilterByInvestor(records, investor)
	return filtered, Summarize(filtered)
}

// Investors lists the distinct investors in order of first appearance.
func Investors(records []models.AssetRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := range records {
		inv := records[i].Investor
		if _, ok := seen[inv]; ok {
			continue
		}
		seen[inv] = struct{}{}
		out = append(out, inv)
	}
	return out
}

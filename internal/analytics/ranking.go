package analytics

import (
	"math"
	"sort"

	"assetboard/internal/models"
)

// Rank lists records by magnitude, largest first. Under MetricCurrent the
// magnitude is the ending valuation, under MetricContribution the absolute
// contribution. Records whose magnitude is not positive are left out.
// Ties keep record order.
func Rank(records []models.AssetRecord, metric Metric) []RankedEntry {
	out := make([]RankedEntry, 0, len(records))
	for i := range records {
		r := &records[i]
		mag := r.EndValue
		if metric == MetricContribution {
			mag = math.Abs(r.Contribution)
		}
		if mag <= 0 {
			continue
		}
		out = append(out, RankedEntry{
			Name:         r.Name,
			Magnitude:    mag,
			Contribution: r.Contribution,
			Tag:          signTag(r.Contribution),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Magnitude > out[j].Magnitude
	})
	return out
}

func signTag(v float64) Tag {
	switch {
	case v > 0:
		return TagGain
	case v < 0:
		return TagLoss
	default:
		return TagNeutral
	}
}

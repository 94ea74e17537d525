package analytics

import "assetboard/internal/models"

// Breakdowns holds the four grouping views of a dashboard.
type Breakdowns struct {
	ClassificationCurrent      GroupNode `json:"classification_current"`
	SectorCurrent              GroupNode `json:"sector_current"`
	ClassificationContribution GroupNode `json:"classification_contribution"`
	SectorContribution         GroupNode `json:"sector_contribution"`
}

// Get returns the breakdown for key and metric.
func (b *Breakdowns) Get(key GroupKey, metric Metric) GroupNode {
	switch {
	case key == GroupBySector && metric == MetricContribution:
		return b.SectorContribution
	case key == GroupBySector:
		return b.SectorCurrent
	case metric == MetricContribution:
		return b.ClassificationContribution
	default:
		return b.ClassificationCurrent
	}
}

// Dashboard is every view of one investor's holdings.
type Dashboard struct {
	Investor            string               `json:"investor"`
	Summary             Summary              `json:"summary"`
	CurrentRanking      []RankedEntry        `json:"current_ranking"`
	ContributionRanking []RankedEntry        `json:"contribution_ranking"`
	Breakdowns          Breakdowns           `json:"breakdowns"`
	Records             []models.AssetRecord `json:"records"`
}

// BuildDashboard filters records to investor and derives every view from
// the filtered set.
func BuildDashboard(records []models.AssetRecord, investor string) Dashboard {
	filtered, summary := FilterAndSummarize(records, investor)
	return Dashboard{
		Investor:            investor,
		Summary:             summary,
		CurrentRanking:      Rank(filtered, MetricCurrent),
		ContributionRanking: Rank(filtered, MetricContribution),
		Breakdowns: Breakdowns{
			ClassificationCurrent:      BuildBreakdown(filtered, GroupByClassification, MetricCurrent),
			SectorCurrent:              BuildBreakdown(filtered, GroupBySector, MetricCurrent),
			ClassificationContribution: BuildBreakdown(filtered, GroupByClassification, MetricContribution),
			SectorContribution:         BuildBreakdown(filtered, GroupBySector, MetricContribution),
		},
		Records: filtered,
	}
}

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetboard/internal/models"
)

func TestBuildDashboard(t *testing.T) {
	records := []models.AssetRecord{
		{Investor: "A", Name: "s1", Classification: "stock", Sector: "tech", EndValue: 200000, Contribution: 100000},
		{Investor: "B", Name: "other", Classification: "stock", Sector: "tech", EndValue: 999, Contribution: 1},
		{Investor: "A", Name: "s2", Classification: "stock", Sector: "retail", EndValue: 100000, Contribution: -20000},
		{Investor: "A", Name: "c1", Classification: "cash", Sector: "cash", EndValue: 50000},
	}

	d := BuildDashboard(records, "A")
	assert.Equal(t, "A", d.Investor)
	require.Len(t, d.Records, 3)
	assert.Equal(t, 350000.0, d.Summary.TotalEnding)
	assert.Equal(t, []float64{200000, 100000, 50000}, magnitudes(d.CurrentRanking))
	assert.Equal(t, []float64{100000, 20000}, magnitudes(d.ContributionRanking))

	assert.Equal(t, "Classification", d.Breakdowns.ClassificationCurrent.Name)
	assert.Equal(t, "Sector", d.Breakdowns.SectorCurrent.Name)
	assert.Equal(t, 120000.0, d.Breakdowns.ClassificationContribution.Magnitude)
	assert.Equal(t, []string{"tech", "retail"}, childNames(d.Breakdowns.SectorContribution))

	assert.Equal(t, d.Breakdowns.SectorContribution, d.Breakdowns.Get(GroupBySector, MetricContribution))
	assert.Equal(t, d.Breakdowns.ClassificationCurrent, d.Breakdowns.Get(GroupByClassification, MetricCurrent))
}

func TestMetricAndGroupKey(t *testing.T) {
	assert.True(t, MetricCurrent.Valid())
	assert.False(t, Metric("ending").Valid())
	assert.True(t, GroupBySector.Valid())
	assert.False(t, GroupKey("account").Valid())
	assert.Equal(t, "Contribution", MetricContribution.Label())
}

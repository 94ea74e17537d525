// Package analytics derives the aggregate views of a holdings dataset:
// per-investor summaries, ranked contributor lists and two-level
// breakdowns by classification or sector. Every function is pure; inputs
// are never modified and every call builds fresh values.
package analytics

import "assetboard/internal/models"

// Metric selects the magnitude a view is sized and sorted by.
type Metric string

const (
	// MetricCurrent sizes entries by ending valuation.
	MetricCurrent Metric = "current"
	// MetricContribution sizes entries by absolute contribution.
	MetricContribution Metric = "contribution"
)

// Valid reports whether m is a known metric.
func (m Metric) Valid() bool {
	return m == MetricCurrent || m == MetricContribution
}

// Label is the display name of the metric.
func (m Metric) Label() string {
	if m == MetricContribution {
		return "Contribution"
	}
	return "Current value"
}

func (m Metric) value(r *models.AssetRecord) float64 {
	if m == MetricContribution {
		return r.Contribution
	}
	return r.EndValue
}

// GroupKey selects the label records are grouped by.
type GroupKey string

const (
	GroupByClassification GroupKey = "classification"
	GroupBySector         GroupKey = "sector"
)

// Valid reports whether k is a known grouping key.
func (k GroupKey) Valid() bool {
	return k == GroupByClassification || k == GroupBySector
}

// Label is the display name of the grouping dimension, used as the
// breakdown root name.
func (k GroupKey) Label() string {
	if k == GroupBySector {
		return "Sector"
	}
	return "Classification"
}

func (k GroupKey) of(r *models.AssetRecord) string {
	if k == GroupBySector {
		return r.Sector
	}
	return r.Classification
}

// Tag is the colour class of a view entry.
type Tag string

const (
	TagGain    Tag = "gain"
	TagLoss    Tag = "loss"
	TagNeutral Tag = "neutral"
	TagGroup   Tag = "group"
)

// Summary holds the totals of a record set.
type Summary struct {
	TotalBeginning    float64 `json:"total_beginning"`
	TotalEnding       float64 `json:"total_ending"`
	TotalContribution float64 `json:"total_contribution"`
	GrowthRate        float64 `json:"growth_rate"`
}

// RankedEntry is one item of a ranked contributor list.
type RankedEntry struct {
	Name         string  `json:"name"`
	Magnitude    float64 `json:"magnitude"`
	Contribution float64 `json:"contribution"`
	Tag          Tag     `json:"tag"`
}

// GroupNode is a node of a two-level breakdown. The root holds the total
// and the level-1 groups, groups hold one leaf per record, and the
// synthetic Other node has no children.
type GroupNode struct {
	Name      string      `json:"name"`
	Magnitude float64     `json:"magnitude"`
	Share     float64     `json:"share"`
	Tag       Tag         `json:"tag"`
	Children  []GroupNode `json:"children,omitempty"`
}

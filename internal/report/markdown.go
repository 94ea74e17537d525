// Package report renders an investor dashboard for people: a Markdown
// document, the same document as HTML, and PNG charts of the ranking and
// breakdown views.
package report

import (
	"fmt"
	"strings"

	"assetboard/internal/analytics"
)

var breakdownSections = []struct {
	key    analytics.GroupKey
	metric analytics.Metric
}{
	{analytics.GroupByClassification, analytics.MetricCurrent},
	{analytics.GroupBySector, analytics.MetricCurrent},
	{analytics.GroupByClassification, analytics.MetricContribution},
	{analytics.GroupBySector, analytics.MetricContribution},
}

// Markdown renders every view of d with amounts in currency.
func Markdown(d *analytics.Dashboard, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Holdings report: %s\n\n", escape(d.Investor))
	if len(d.Records) == 0 {
		b.WriteString("_No holdings for this investor._\n\n")
	}

	b.WriteString("## Summary\n\n")
	b.WriteString("| Measure | Value |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Beginning value | %s |\n", analytics.FormatCurrency(d.Summary.TotalBeginning, currency))
	fmt.Fprintf(&b, "| Ending value | %s |\n", analytics.FormatCurrency(d.Summary.TotalEnding, currency))
	fmt.Fprintf(&b, "| Contribution | %s |\n", analytics.FormatSignedCurrency(d.Summary.TotalContribution, currency))
	fmt.Fprintf(&b, "| Growth rate | %s |\n\n", analytics.FormatPercentage(d.Summary.GrowthRate))

	writeRanking(&b, "Ranking by current value", d.CurrentRanking, currency)
	writeRanking(&b, "Ranking by contribution", d.ContributionRanking, currency)

	b.WriteString("## Breakdowns\n\n")
	for _, s := range breakdownSections {
		writeBreakdown(&b, s.key, s.metric, d.Breakdowns.Get(s.key, s.metric), currency)
	}

	writeRecords(&b, d, currency)
	return b.String()
}

func writeRanking(b *strings.Builder, title string, entries []analytics.RankedEntry, currency string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(entries) == 0 {
		b.WriteString("_Nothing to rank._\n\n")
		return
	}
	b.WriteString("| # | Name | Magnitude | Contribution |\n|---:|---|---:|---:|\n")
	for i, e := range entries {
		fmt.Fprintf(b, "| %d | %s | %s | %s |\n", i+1, escape(e.Name),
			analytics.FormatCurrency(e.Magnitude, currency),
			analytics.FormatSignedCurrency(e.Contribution, currency))
	}
	b.WriteString("\n")
}

func writeBreakdown(b *strings.Builder, key analytics.GroupKey, metric analytics.Metric, root analytics.GroupNode, currency string) {
	fmt.Fprintf(b, "### %s by %s\n\n", key.Label(), strings.ToLower(metric.Label()))
	if len(root.Children) == 0 {
		b.WriteString("_Nothing to break down._\n\n")
		return
	}
	b.WriteString("| Group | Holding | Magnitude | Share |\n|---|---|---:|---:|\n")
	for _, group := range root.Children {
		fmt.Fprintf(b, "| **%s** | | %s | %s |\n", escape(group.Name),
			analytics.FormatCurrency(group.Magnitude, currency),
			analytics.FormatPercentage(group.Share))
		for _, leaf := range group.Children {
			fmt.Fprintf(b, "| | %s | %s | %s |\n", escape(leaf.Name),
				analytics.FormatCurrency(leaf.Magnitude, currency),
				analytics.FormatPercentage(leaf.Share))
		}
	}
	fmt.Fprintf(b, "| **Total** | | %s | %s |\n\n",
		analytics.FormatCurrency(root.Magnitude, currency),
		analytics.FormatPercentage(root.Share))
}

func writeRecords(b *strings.Builder, d *analytics.Dashboard, currency string) {
	b.WriteString("## Holdings\n\n")
	if len(d.Records) == 0 {
		b.WriteString("_No holdings._\n")
		return
	}
	b.WriteString("| Name | Currency | Classification | Sector | Period | Beginning | Ending | Contribution | Return |\n")
	b.WriteString("|---|---|---|---|---|---:|---:|---:|---:|\n")
	for _, r := range d.Records {
		period := r.StartDate
		if r.EndDate != "" {
			period += " ~ " + r.EndDate
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			escape(r.Name), escape(r.Currency), escape(r.Classification), escape(r.Sector), escape(period),
			analytics.FormatCurrency(r.BeginValue, currency),
			analytics.FormatCurrency(r.EndValue, currency),
			analytics.FormatSignedCurrency(r.Contribution, currency),
			analytics.FormatPercentage(r.ReturnRate))
	}
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "")

func escape(s string) string {
	return cellEscaper.Replace(s)
}

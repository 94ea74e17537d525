package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"assetboard/internal/analytics"
	"assetboard/internal/report"
)

type investorsCmd struct {
	source
}

func (*investorsCmd) Name() string     { return "investors" }
func (*investorsCmd) Synopsis() string { return "list the investors of a holdings table" }
func (*investorsCmd) Usage() string {
	return `report investors [-sample] [<file>]

  Lists the distinct investors of the table in order of first appearance.
`
}

func (c *investorsCmd) SetFlags(f *flag.FlagSet) { c.source.setFlags(f) }

func (c *investorsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	records, err := c.load(f)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	for _, investor := range analytics.Investors(records) {
		fmt.Println(investor)
	}
	return subcommands.ExitSuccess
}

type summaryCmd struct {
	view
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print the totals of one investor" }
func (*summaryCmd) Usage() string {
	return `report summary -investor <name> [-currency KRW] [-sample] [<file>]

  Prints the beginning value, ending value, contribution and growth rate
  of one investor.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) { c.view.setFlags(f) }

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	records, err := c.load(f)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	_, s := analytics.FilterAndSummarize(records, c.investor)
	fmt.Printf("Beginning value: %s\n", analytics.FormatCurrency(s.TotalBeginning, c.currency))
	fmt.Printf("Ending value:    %s\n", analytics.FormatCurrency(s.TotalEnding, c.currency))
	fmt.Printf("Contribution:    %s\n", analytics.FormatSignedCurrency(s.TotalContribution, c.currency))
	fmt.Printf("Growth rate:     %s\n", analytics.FormatPercentage(s.GrowthRate))
	return subcommands.ExitSuccess
}

type reportCmd struct {
	view
	raw  bool
	html bool
	out  string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render the full report of one investor" }
func (*reportCmd) Usage() string {
	return `report report -investor <name> [-raw | -html] [-o <file>] [-sample] [<file>]

  Renders the summary, rankings, breakdowns and holdings of one investor.
  Output is styled for the terminal unless -raw (Markdown) or -html is set.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.view.setFlags(f)
	f.BoolVar(&c.raw, "raw", false, "print plain Markdown")
	f.BoolVar(&c.html, "html", false, "print an HTML page")
	f.StringVar(&c.out, "o", "", "write to this file instead of stdout")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	records, err := c.load(f)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	d := analytics.BuildDashboard(records, c.investor)
	md := report.Markdown(&d, c.currency)

	var output []byte
	switch {
	case c.html:
		output, err = report.HTML("Holdings report: "+c.investor, md)
		if err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
	case c.raw || c.out != "":
		output = []byte(md)
	default:
		printMarkdown(md)
		return subcommands.ExitSuccess
	}

	if err := write(c.out, output); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type chartCmd struct {
	view
	kind    string
	groupBy string
	metric  string
	limit   int
	out     string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw a breakdown or ranking chart as PNG" }
func (*chartCmd) Usage() string {
	return `report chart -investor <name> -o <file.png> [-kind breakdown|ranking] [-group_by classification|sector] [-metric current|contribution] [-sample] [<file>]

  Draws the level-1 groups of a breakdown as a pie chart, or the largest
  holdings of a ranking as a bar chart.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.view.setFlags(f)
	f.StringVar(&c.kind, "kind", "breakdown", "breakdown or ranking")
	f.StringVar(&c.groupBy, "group_by", string(analytics.GroupByClassification), "breakdown grouping key")
	f.StringVar(&c.metric, "metric", string(analytics.MetricCurrent), "current or contribution")
	f.IntVar(&c.limit, "limit", 15, "number of ranking bars")
	f.StringVar(&c.out, "o", "", "output PNG file (required)")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	metric, key := analytics.Metric(c.metric), analytics.GroupKey(c.groupBy)
	if c.out == "" || !metric.Valid() || !key.Valid() || (c.kind != "breakdown" && c.kind != "ranking") {
		fail(errors.New("invalid flags, see: report help chart"))
		return subcommands.ExitUsageError
	}
	records, err := c.load(f)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	filtered := analytics.FilterByInvestor(records, c.investor)
	var png []byte
	if c.kind == "ranking" {
		png, err = report.RankingChart(metric.Label(), analytics.Rank(filtered, metric), c.limit)
	} else {
		png, err = report.BreakdownChart(analytics.BuildBreakdown(filtered, key, metric))
	}
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	if err := write(c.out, png); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func write(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

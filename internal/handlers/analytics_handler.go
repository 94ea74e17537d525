package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetboard/internal/analytics"
	apperrors "assetboard/internal/errors"
	"assetboard/internal/pagination"
	"assetboard/internal/report"
	"assetboard/internal/services"
)

const defaultChartLimit = 15

// AnalyticsHandler serves the per-investor views of a session's dataset.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
	datasetService   services.DatasetServicer
	currency         string
}

// NewAnalyticsHandler creates a new AnalyticsHandler. currency is the
// display currency used when a request does not name one.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer, datasetService services.DatasetServicer, currency string) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, datasetService: datasetService, currency: currency}
}

// CurrencyQuery selects the display currency of formatted amounts.
type CurrencyQuery struct {
	Currency string `form:"currency" binding:"omitempty,iso4217"`
}

// RankingQuery selects the ranking metric.
type RankingQuery struct {
	Metric   string `form:"metric" binding:"omitempty,view_metric"`
	Currency string `form:"currency" binding:"omitempty,iso4217"`
}

// BreakdownQuery selects the grouping key and metric of a breakdown.
type BreakdownQuery struct {
	GroupBy string `form:"group_by" binding:"omitempty,group_key"`
	Metric  string `form:"metric" binding:"omitempty,view_metric"`
}

// RankingChartQuery selects the metric and bar count of a ranking chart.
type RankingChartQuery struct {
	Metric string `form:"metric" binding:"omitempty,view_metric"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ReportQuery selects the report format and currency.
type ReportQuery struct {
	Format   string `form:"format" binding:"omitempty,report_format"`
	Currency string `form:"currency" binding:"omitempty,iso4217"`
}

// FormattedSummary holds the display strings of a summary.
type FormattedSummary struct {
	TotalBeginning    string `json:"total_beginning"`
	TotalEnding       string `json:"total_ending"`
	TotalContribution string `json:"total_contribution"`
	GrowthRate        string `json:"growth_rate"`
}

// SummaryResponse represents an investor summary.
type SummaryResponse struct {
	Investor  string            `json:"investor"`
	Currency  string            `json:"currency"`
	Summary   analytics.Summary `json:"summary"`
	Formatted FormattedSummary  `json:"formatted"`
}

// RankedEntryResponse is a ranked entry with display strings.
type RankedEntryResponse struct {
	analytics.RankedEntry
	FormattedMagnitude    string `json:"formatted_magnitude"`
	FormattedContribution string `json:"formatted_contribution"`
}

// RankingResponse represents a ranked contributor list.
type RankingResponse struct {
	Investor string                `json:"investor"`
	Metric   analytics.Metric      `json:"metric"`
	Currency string                `json:"currency"`
	Entries  []RankedEntryResponse `json:"entries"`
}

// BreakdownResponse represents a two-level breakdown.
type BreakdownResponse struct {
	Investor string              `json:"investor"`
	GroupBy  analytics.GroupKey  `json:"group_by"`
	Metric   analytics.Metric    `json:"metric"`
	Root     analytics.GroupNode `json:"root"`
}

// DashboardResponse represents every view of an investor.
type DashboardResponse struct {
	Currency  string              `json:"currency"`
	Formatted FormattedSummary    `json:"formatted"`
	Dashboard analytics.Dashboard `json:"dashboard"`
}

func (h *AnalyticsHandler) displayCurrency(requested string) string {
	if requested != "" {
		return requested
	}
	return h.currency
}

func metricOrDefault(m string) analytics.Metric {
	if m == "" {
		return analytics.MetricCurrent
	}
	return analytics.Metric(m)
}

func groupKeyOrDefault(k string) analytics.GroupKey {
	if k == "" {
		return analytics.GroupByClassification
	}
	return analytics.GroupKey(k)
}

func formatSummary(s analytics.Summary, currency string) FormattedSummary {
	return FormattedSummary{
		TotalBeginning:    analytics.FormatCurrency(s.TotalBeginning, currency),
		TotalEnding:       analytics.FormatCurrency(s.TotalEnding, currency),
		TotalContribution: analytics.FormatSignedCurrency(s.TotalContribution, currency),
		GrowthRate:        analytics.FormatPercentage(s.GrowthRate),
	}
}

// sessionAndInvestor reads the session and investor of a request and binds
// its query string into query.
func sessionAndInvestor(c *gin.Context, query interface{}) (string, string, error) {
	sessionID, err := getSessionID(c)
	if err != nil {
		return "", "", err
	}
	investor, err := investorParam(c)
	if err != nil {
		return "", "", err
	}
	if query != nil {
		if err := c.ShouldBindQuery(query); err != nil {
			return "", "", apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
	}
	return sessionID, investor, nil
}

// GetSummary handles retrieving an investor summary
// @Summary     Get investor summary
// @Description Total beginning value, ending value and contribution of one investor with the growth rate. An investor without holdings gets a zero summary.
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       investor path  string true  "Investor"
// @Param       currency query string false "Display currency (ISO 4217)"
// @Success     200 {object} SummaryResponse "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No dataset loaded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investors/{investor}/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	var query CurrencyQuery
	sessionID, investor, err := sessionAndInvestor(c, &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analyticsService.GetSummary(sessionID, investor)
	if err != nil {
		respondWithError(c, err)
		return
	}

	currency := h.displayCurrency(query.Currency)
	c.JSON(http.StatusOK, SummaryResponse{
		Investor:  investor,
		Currency:  currency,
		Summary:   *summary,
		Formatted: formatSummary(*summary, currency),
	})
}

// GetRecords handles listing an investor's holdings
// @Summary     List investor holdings
// @Description Paginated holdings of one investor in source order
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       investor  path  string true  "Investor"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 50, max 500)"
// @Success     200 {object} pagination.PageResponse[models.AssetRecord] "Paginated holdings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No dataset loaded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investors/{investor}/records [get]
func (h *AnalyticsHandler) GetRecords(c *gin.Context) {
	var page pagination.PageRequest
	sessionID, investor, err := sessionAndInvestor(c, &page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.datasetService.GetInvestorRecords(sessionID, investor, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRankings handles retrieving a ranked contributor list
// @Summary     Get investor ranking
// @Description Holdings ranked by ending value (metric=current) or absolute contribution (metric=contribution), largest first
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       investor path  string true  "Investor"
// @Param       metric   query string false "current or contribution (default current)"
// @Param       currency query string false "Display currency (ISO 4217)"
// @Success     200 {object} RankingResponse "Ranking"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No dataset loaded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investors/{investor}/rankings [get]
func (h *AnalyticsHandler) GetRankings(c *gin.Context) {
	var query RankingQuery
	sessionID, investor, err := sessionAndInvestor(c, &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	metric := metricOrDefault(query.Metric)
	entries, err := h.analyticsService.GetRankings(sessionID, investor, metric)
	if err != nil {
		respondWithError(c, err)
		return
	}

	currency := h.displayCurrency(query.Currency)
	out := make([]RankedEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = RankedEntryResponse{
			RankedEntry:           e,
			FormattedMagnitude:    analytics.FormatCurrency(e.Magnitude, currency),
			FormattedContribution: analytics.FormatSignedCurrency(e.Contribution, currency),
		}
	}

	c.JSON(http.StatusOK, RankingResponse{Investor: investor, Metric: metric, Currency: currency, Entries: out})
}

// GetBreakdown handles retrieving a two-level breakdown
// @Summary     Get investor breakdown
// @Description Holdings grouped by classification or sector and sized by ending value or absolute contribution. Groups under 5% of the total are folded into Other.
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       investor path  string true  "Investor"
// @Param       group_by query string false "classification or sector (default classification)"
// @Param       metric   query string false "current or contribution (default current)"
// @Success     200 {object} BreakdownResponse "Breakdown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No dataset loaded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investors/{investor}/breakdowns [get]
func (h *AnalyticsHandler) GetBreakdown(c *gin.Context) {
	var query BreakdownQuery
	sessionID, investor, err := sessionAndInvestor(c, &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	key, metric := groupKeyOrDefault(query.GroupBy), metricOrDefault(query.Metric)
	root, err := h.analyticsService.GetBreakdown(sessionID, investor, key, metric)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BreakdownResponse{Investor: investor, GroupBy: key, Metric: metric, Root: *root})
}

// GetBreakdownChart handles rendering a breakdown as a pie chart
// @Summary     Get breakdown chart
// @Description PNG pie chart of the level-1 groups of a breakdown
// @Tags        charts
// @Produce     png
// @Security    BearerAuth
// @Param       investor path  string true  "Investor"
// @Param       group_by query string false "classification or sector (default classification)"
// @Param       metric   query string false "current or contribution (default current)"
// @Success     200 {file} binary "PNG image"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No dataset loaded"
// @Failure     422 {object} ErrorResponse "Nothing to draw"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investors/{investor}/breakdowns/chart.png [get]
func (h *AnalyticsHandler) GetBreakdownChart(c *gin.Context) {
	var query BreakdownQuery
	sessionID, investor, err := sessionAndInvestor(c, &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	root, err := h.analyticsService.GetBreakdown(sessionID, investor, groupKeyOrDefault(query.GroupBy), metricOrDefault(query.Metric))
	if err != nil {
		respondWithError(c, err)
		return
	}

	png, err := report.BreakdownChart(*root)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GetRankingChart handles rendering a ranking as a bar chart
// @Summary     Get ranking chart
// @Description PNG bar chart of the largest holdings of a ranking
// @Tags        charts
// @Produce     png
// @Security    BearerAuth
// @Param       investor path  string true  "Investor"
// @Param       metric   query string false "current or contribution (default current)"
// @Param       limit    query int    false "Number of bars (default 15, max 100)"
// @Success     200 {file} binary "PNG image"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No dataset loaded"
// @Failure     422 {object} ErrorResponse "Nothing to draw"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investors/{investor}/rankings/chart.png [get]
func (h *AnalyticsHandler) GetRankingChart(c *gin.Context) {
	var query RankingChartQuery
	sessionID, investor, err := sessionAndInvestor(c, &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	metric := metricOrDefault(query.Metric)
	entries, err := h.analyticsService.GetRankings(sessionID, investor, metric)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := query.Limit
	if limit == 0 {
		limit = defaultChartLimit
	}
	png, err := report.RankingChart(metric.Label(), entries, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GetDashboard handles retrieving every view of an investor
// @Summary     Get investor dashboard
// @Description Summary, both rankings, all four breakdowns and the holdings of one investor
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       investor path  string true  "Investor"
// @Param       currency query string false "Display currency (ISO 4217)"
// @Success     200 {object} DashboardResponse "Dashboard"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No dataset loaded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investors/{investor}/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	var query CurrencyQuery
	sessionID, investor, err := sessionAndInvestor(c, &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.analyticsService.GetDashboard(sessionID, investor)
	if err != nil {
		respondWithError(c, err)
		return
	}

	currency := h.displayCurrency(query.Currency)
	c.JSON(http.StatusOK, DashboardResponse{
		Currency:  currency,
		Formatted: formatSummary(dashboard.Summary, currency),
		Dashboard: *dashboard,
	})
}

// GetReport handles rendering an investor report
// @Summary     Get investor report
// @Description The dashboard of one investor rendered as Markdown (format=md) or HTML (format=html)
// @Tags        analytics
// @Produce     text/markdown
// @Produce     html
// @Security    BearerAuth
// @Param       investor path  string true  "Investor"
// @Param       format   query string false "md or html (default md)"
// @Param       currency query string false "Display currency (ISO 4217)"
// @Success     200 {string} string "Report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No dataset loaded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investors/{investor}/report [get]
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	var query ReportQuery
	sessionID, investor, err := sessionAndInvestor(c, &query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.analyticsService.GetDashboard(sessionID, investor)
	if err != nil {
		respondWithError(c, err)
		return
	}

	md := report.Markdown(dashboard, h.displayCurrency(query.Currency))
	if query.Format != "html" {
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
		return
	}

	page, err := report.HTML("Holdings report: "+investor, md)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

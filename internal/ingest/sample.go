package ingest

import "assetboard/internal/models"

// SampleName is the dataset name reported for the built-in sample.
const SampleName = "sample-holdings"

type sampleRow struct {
	investor, name, currency, class, sector string
	begin, end, contrib, rate               float64
}

var sampleRows = []sampleRow{
	{"전체", "이마트", "KRW", "국내주식", "생필품", 0, 212000, 112000, 112.0},
	{"전체", "삼성전자", "KRW", "국내주식", "기술주", 528858, 776400, 157542, 25.5},
	{"전체", "애플", "USD", "해외주식", "기술주", 368695, 577282, -20569, -3.4},
	{"전체", "예수금(KRW)", "KRW", "예수금", "예수금", 1875000, 1685000, 0, 0},
	{"전체", "예수금(USD)", "USD", "예수금", "예수금", 442434, 179537, -12183, -6.4},
	{"영희", "애플", "USD", "해외주식", "기술주", 368695, 288641, -56623, -16.0},
	{"영희", "예수금(KRW)", "KRW", "예수금", "예수금", 1605000, 1605000, 0, 0},
	{"철수", "이마트", "KRW", "국내주식", "생필품", 0, 212000, 112000, 112.0},
	{"철수", "삼성전자", "KRW", "국내주식", "기술주", 528858, 776400, 157542, 25.0},
	{"철수", "애플", "USD", "해외주식", "기술주", 0, 288641, 36054, 14.0},
	{"철수", "예수금(KRW)", "KRW", "예수금", "예수금", 270000, 80000, 0, 0},
	{"철수", "예수금(USD)", "USD", "예수금", "예수금", 442434, 179537, -12183, -6.0},
}

// Sample returns the demo dataset: three investors holding twelve
// positions between 2025-01-01 and 2025-07-16. Each call returns a fresh
// slice.
func Sample() []models.AssetRecord {
	out := make([]models.AssetRecord, len(sampleRows))
	for i, r := range sampleRows {
		out[i] = models.AssetRecord{
			Row:            i,
			Investor:       r.investor,
			Name:           r.name,
			Currency:       r.currency,
			StartDate:      "2025-01-01",
			EndDate:        "2025-07-16",
			BeginValue:     r.begin,
			EndValue:       r.end,
			Contribution:   r.contrib,
			ReturnRate:     r.rate,
			Sector:         r.sector,
			Classification: r.class,
		}
	}
	return out
}

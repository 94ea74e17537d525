package models

// AssetRecord is one row of a holdings table: a single security held by a
// single investor, valued at the start and end of the period. Valuations
// and contribution are independently signed; ReturnRate is supplied by the
// source, not derived.
type AssetRecord struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	DatasetID string `gorm:"type:uuid;not null;index:idx_dataset_row,priority:1" json:"-"`
	Row       int    `gorm:"column:row_num;not null;index:idx_dataset_row,priority:2" json:"row"`

	Investor       string  `gorm:"not null;index" json:"investor"`
	Account        string  `json:"account,omitempty"`
	Name           string  `gorm:"not null" json:"name"`
	Currency       string  `json:"currency"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	BeginValue     float64 `gorm:"not null" json:"begin_value"`
	EndValue       float64 `gorm:"not null" json:"end_value"`
	Contribution   float64 `gorm:"not null" json:"contribution"`
	ReturnRate     float64 `gorm:"not null" json:"return_rate"`
	Sector         string  `json:"sector"`
	Classification string  `json:"classification"`
}

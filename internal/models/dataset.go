package models

// DatasetFormat identifies where a dataset came from.
type DatasetFormat string

const (
	DatasetFormatCSV    DatasetFormat = "csv"
	DatasetFormatXLSX   DatasetFormat = "xlsx"
	DatasetFormatSample DatasetFormat = "sample"
)

// Dataset describes the holdings table currently loaded into a session.
// Loading a new table replaces the previous one.
type Dataset struct {
	Base
	SessionID     string        `gorm:"type:uuid;not null;uniqueIndex" json:"session_id"`
	Name          string        `gorm:"not null" json:"name"`
	Format        DatasetFormat `gorm:"not null" json:"format"`
	RecordCount   int           `gorm:"not null" json:"record_count"`
	InvestorCount int           `gorm:"not null" json:"investor_count"`

	Records []AssetRecord `gorm:"foreignKey:DatasetID;constraint:OnDelete:CASCADE" json:"-"`
}

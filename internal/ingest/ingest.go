// Package ingest turns uploaded spreadsheets into asset records. It reads
// CSV and XLSX holdings tables, matches their header row against known
// column names and coerces every cell, so the analytics engine only ever
// sees well-typed records.
package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/logger"
	"assetboard/internal/models"
)

// DetectFormat picks a reader from the file extension. Legacy binary
// .xls workbooks are not supported.
func DetectFormat(filename string) (models.DatasetFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return models.DatasetFormatCSV, nil
	case ".xlsx", ".xlsm":
		return models.DatasetFormatXLSX, nil
	}
	return "", apperrors.ErrUnsupportedFormat
}

// Parse reads a holdings table. The first non-blank row is the header;
// every later non-blank row becomes one record. Cells under unrecognised
// headers are ignored, missing text cells are empty and missing or
// unreadable numbers are 0. A table without a single recognised column
// is rejected with ErrInvalidDataset.
func Parse(r io.Reader, format models.DatasetFormat) ([]models.AssetRecord, error) {
	var (
		rows [][]string
		err  error
	)
	switch format {
	case models.DatasetFormatCSV:
		rows, err = readCSV(r)
	case models.DatasetFormatXLSX:
		rows, err = readXLSX(r)
	default:
		return nil, apperrors.ErrUnsupportedFormat
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidDataset, err)
	}
	return buildRecords(rows)
}

// ParseFile opens path and parses it according to its extension.
func ParseFile(path string) ([]models.AssetRecord, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, format)
}

func buildRecords(rows [][]string) ([]models.AssetRecord, error) {
	headerAt := -1
	for i, row := range rows {
		if !blank(row) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDataset, "The file has no header row")
	}

	header := rows[headerAt]
	idx := mapHeader(header)
	if len(idx) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDataset, "The header row has no recognised column")
	}
	if _, ok := idx[colInvestor]; !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDataset, "The header row has no investor column")
	}
	if len(idx) < len(header) {
		logger.Named("ingest").Debugw("ignoring unrecognised columns",
			"recognised", len(idx),
			"columns", len(header),
		)
	}

	records := make([]models.AssetRecord, 0, len(rows)-headerAt-1)
	for i, row := range rows[headerAt+1:] {
		if blank(row) {
			continue
		}
		rec := toRecord(row, idx, len(records))
		if rec.Investor == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidDataset,
				fmt.Sprintf("Row %d has no investor", headerAt+i+2))
		}
		records = append(records, rec)
	}
	return records, nil
}

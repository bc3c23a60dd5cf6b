// Package spreadsheet writes the batch metadata and run status exports as
// xlsx workbooks.
package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"shortsbatcher/internal/core/domain"
)

// Sheet is the worksheet every export is written to.
const Sheet = "Sheet1"

var (
	metadataHeader = []any{"Link URL", "Title", "Description"}
	statusHeader   = []any{"Link URL", "Title", "D/N/E"}
)

// ExcelExporter implements ports.Exporter with excelize.
type ExcelExporter struct{}

// NewExcelExporter creates a new ExcelExporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Extension implements ports.Exporter.
func (e *ExcelExporter) Extension() string {
	return ".xlsx"
}

// WriteMetadata writes one row per record.
func (e *ExcelExporter) WriteMetadata(path string, records []domain.VideoRecord) error {
	rows := make([][]any, len(records))
	for i, r := range records {
		rows[i] = []any{r.URL, r.Title, r.Description}
	}
	return write(path, metadataHeader, rows, []float64{50, 50, 80})
}

// WriteStatus writes one row per ledger entry with its display label.
func (e *ExcelExporter) WriteStatus(path string, entries []domain.StatusEntry) error {
	rows := make([][]any, len(entries))
	for i, s := range entries {
		rows[i] = []any{s.URL, s.Title, s.Status.Label()}
	}
	return write(path, statusHeader, rows, []float64{50, 50, 25})
}

func write(path string, header []any, rows [][]any, widths []float64) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetRow(Sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(Sheet, "A1", last, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(Sheet, col, col, w); err != nil {
			return fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(Sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

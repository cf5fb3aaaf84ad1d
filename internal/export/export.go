package export

import (
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"listinglab/internal/model"
)

const (
	MimeCSV  = "text/csv"
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WriteCSV grava o cabeçalho e uma linha por anúncio.
func WriteCSV(w io.Writer, listings []model.Listing) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(model.Columns()); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, l := range listings {
		if err := writer.Write(l.Row()); err != nil {
			return fmt.Errorf("csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}
	return nil
}

func WriteXLSX(w io.Writer, listings []model.Listing) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := toCells(model.Columns())
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx header: %w", err)
	}

	for i, l := range listings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := toCells(l.Row())
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("xlsx row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write error: %w", err)
	}
	return nil
}

// DataURI embute o arquivo exportado num link de download.
func DataURI(mime string, payload []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

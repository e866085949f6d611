// Package export renders filtered ticket listings as CSV or XLSX downloads.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"modportal/internal/domain/ticket"
	vo "modportal/internal/domain/ticket/valueobjects"
)

const (
	sheetName       = "Tickets"
	timestampLayout = "20060102_150405"
	dateLayout      = "2006-01-02"
	datetimeLayout  = "2006-01-02 15:04:05"
)

// exportColumns is the fixed column order of both formats.
var exportColumns = []string{
	"id",
	"site_name",
	"modernization_type",
	"request_date",
	"priority",
	"assignee",
	"assignee_email",
	"creator_email",
	"external_case_number",
	"external_case_link",
	"status",
	"created_at",
	"updated_at",
}

type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// CSVFilename returns the timestamped download name for a CSV export.
func (e *Exporter) CSVFilename(now time.Time) string {
	return fmt.Sprintf("tickets_%s.csv", now.Format(timestampLayout))
}

// XLSXFilename returns the timestamped download name for an XLSX export.
func (e *Exporter) XLSXFilename(now time.Time) string {
	return fmt.Sprintf("tickets_%s.xlsx", now.Format(timestampLayout))
}

// WriteCSV writes the views as CSV. An empty result set produces a single
// "Sin datos" placeholder row instead of a bare header.
func (e *Exporter) WriteCSV(w io.Writer, views []ticket.View) error {
	cw := csv.NewWriter(w)

	if len(views) == 0 {
		if err := cw.Write([]string{"Sin datos"}); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		cw.Flush()
		return cw.Error()
	}

	if err := cw.Write(exportColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range views {
		if err := cw.Write(rowValues(&views[i])); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the views as a single-sheet workbook. An empty result set
// still gets the header row.
func (e *Exporter) WriteXLSX(w io.Writer, views []ticket.View) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	urgentStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i := range views {
		values := rowValues(&views[i])
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		if p, perr := vo.NewPriority(views[i].Priority); perr == nil && p.IsUrgent() {
			last, err := excelize.CoordinatesToCellName(len(exportColumns), i+2)
			if err != nil {
				return fmt.Errorf("failed to address row: %w", err)
			}
			if err := f.SetCellStyle(sheetName, cell, last, urgentStyle); err != nil {
				return fmt.Errorf("failed to style row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return fmt.Errorf("failed to encode workbook: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func rowValues(v *ticket.View) []string {
	return []string{
		strconv.FormatUint(uint64(v.ID), 10),
		v.SiteName,
		v.TypeName,
		v.RequestDate.Format(dateLayout),
		v.Priority,
		v.AssigneeName,
		v.AssigneeEmail,
		v.CreatorEmail,
		v.ExternalCaseNumber,
		v.ExternalCaseLink,
		v.Status,
		v.CreatedAt.Format(datetimeLayout),
		v.UpdatedAt.Format(datetimeLayout),
	}
}

package audit

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

const (
	exportSheetName  = "History"
	exportTimeFormat = "2006-01-02 15:04:05"
)

var exportColumns = []string{"Timestamp", "Booking", "Action", "Message", "Actor"}

// ExportXLSX пишет журнал (по брони или весь) в xlsx
func (l *Log) ExportXLSX(ctx context.Context, w io.Writer, bookingID *string) error {
	entries, err := l.List(ctx, bookingID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return fmt.Errorf("%w: ExportXLSX - rename sheet: %v", ErrInternal, err)
	}

	if err := writeRow(f, 1, toCells(exportColumns)); err != nil {
		return fmt.Errorf("%w: ExportXLSX - header: %v", ErrInternal, err)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		end, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		_ = f.SetCellStyle(exportSheetName, "A1", end, style)
	}

	for i, e := range entries {
		row := []interface{}{
			e.Timestamp.Format(exportTimeFormat),
			e.BookingID,
			e.Action,
			e.Message,
			e.Actor,
		}
		if err := writeRow(f, i+2, row); err != nil {
			return fmt.Errorf("%w: ExportXLSX - row %d: %v", ErrInternal, i+2, err)
		}
	}

	_ = f.SetColWidth(exportSheetName, "A", "A", 20)
	_ = f.SetColWidth(exportSheetName, "D", "D", 60)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: ExportXLSX - write: %v", ErrInternal, err)
	}

	l.logger.Info("Audit.ExportXLSX: exported %d entries", len(entries))
	return nil
}

func writeRow(f *excelize.File, rowNum int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// Narrative renders entries as customer-visible status history lines
func Narrative(entries []*domain.AuditEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s %s: %s", e.Timestamp.Format(exportTimeFormat), e.Action, e.Message))
	}
	return lines
}

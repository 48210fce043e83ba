// Package export writes a provider's earnings history to an .xlsx workbook.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"profix/internal/models"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const (
	sheetEarnings = "Earnings"
	sheetSummary  = "Summary"
)

var earningsHeaders = []string{
	"Booking ID", "Date", "Time", "Customer", "Service", "Hours", "Amount (₹)", "Status",
}

// Earnings is the data behind one export.
type Earnings struct {
	ProviderID   models.ID
	ProviderName string
	Period       string
	Bookings     []models.Booking
	Stats        *models.ProviderStats
	GeneratedAt  time.Time
}

// Total sums total_amount over the exported bookings.
func (e Earnings) Total() float64 {
	var sum float64
	for _, b := range e.Bookings {
		sum += float64(b.TotalAmount)
	}
	return sum
}

type Exporter struct {
	dir    string
	logger *zerolog.Logger
}

func NewExporter(dir string, logger *zerolog.Logger) *Exporter {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Exporter{dir: dir, logger: logger}
}

// EarningsWorkbook writes e to <dir>/earnings_<provider>_<period>_<timestamp>.xlsx
// and returns the file path.
func (x *Exporter) EarningsWorkbook(e Earnings) (string, error) {
	if err := os.MkdirAll(x.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %w", err)
	}
	if e.GeneratedAt.IsZero() {
		e.GeneratedAt = time.Now()
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetEarnings)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	if err := writeEarnings(f, e); err != nil {
		return "", err
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	writeSummary(f, e)

	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("earnings_%d_%s_%s.xlsx",
		e.ProviderID, slug(e.Period), e.GeneratedAt.Format("2006-01-02_15-04-05"))
	filePath := filepath.Join(x.dir, fileName)
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}

	x.logger.Info().Str("file_path", filePath).Int("rows", len(e.Bookings)).Msg("Earnings workbook created")
	return filePath, nil
}

func writeEarnings(f *excelize.File, e Earnings) error {
	header, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("error creating style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("error creating style: %w", err)
	}

	for i, h := range earningsHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetEarnings, cell, h)
	}
	_ = f.SetCellStyle(sheetEarnings, "A1", lastCell(len(earningsHeaders), 1), header)

	for i, b := range e.Bookings {
		row := i + 2
		values := []any{
			int64(b.ID), b.BookingDate, b.BookingTime, b.UserName, b.ServiceName,
			int64(b.EstimatedHours), float64(b.TotalAmount), b.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetEarnings, cell, v)
		}
		amount, _ := excelize.CoordinatesToCellName(7, row)
		_ = f.SetCellStyle(sheetEarnings, amount, amount, money)
	}

	totalRow := len(e.Bookings) + 2
	label, _ := excelize.CoordinatesToCellName(6, totalRow)
	total, _ := excelize.CoordinatesToCellName(7, totalRow)
	_ = f.SetCellValue(sheetEarnings, label, "Total")
	_ = f.SetCellValue(sheetEarnings, total, e.Total())
	_ = f.SetCellStyle(sheetEarnings, total, total, money)

	_ = f.SetColWidth(sheetEarnings, "A", "C", 12)
	_ = f.SetColWidth(sheetEarnings, "D", "E", 22)
	_ = f.SetColWidth(sheetEarnings, "F", "H", 14)
	return nil
}

func writeSummary(f *excelize.File, e Earnings) {
	rows := [][]any{
		{"Provider", e.ProviderName},
		{"Period", e.Period},
		{"Completed jobs", len(e.Bookings)},
		{"Total earnings (₹)", e.Total()},
		{"Generated", e.GeneratedAt.Format("2006-01-02 15:04")},
	}
	if s := e.Stats; s != nil {
		rows = append(rows,
			[]any{"All-time bookings", int64(s.TotalBookings)},
			[]any{"All-time earnings (₹)", float64(s.TotalEarnings)},
			[]any{"Average rating", float64(s.AverageRating)},
		)
	}
	for i, r := range rows {
		_ = f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", i+1), r[0])
		_ = f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", i+1), r[1])
	}
	_ = f.SetColWidth(sheetSummary, "A", "A", 24)
	_ = f.SetColWidth(sheetSummary, "B", "B", 28)
}

func lastCell(cols, row int) string {
	cell, _ := excelize.CoordinatesToCellName(cols, row)
	return cell
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "all"
	}
	return strings.Join(strings.Fields(s), "-")
}

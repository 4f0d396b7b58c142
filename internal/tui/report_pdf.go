package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/history"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes focus_report_<date>.pdf into dir and returns its
// absolute path. sessions may be nil, in which case the session log section
// is omitted.
func GeneratePDFReport(ctx context.Context, hist *history.History, sessions SessionLog, dir string, now time.Time) (string, error) {
	if hist == nil {
		return "", fmt.Errorf("generate report: no focus history")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Focus Report: %s", now.Format("2006-01-02")))
	pdf.Ln(12)

	// Daily table
	days := hist.Days(now, config.ReportDays)
	var periodMinutes float64
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Last %d days", config.ReportDays))
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(50, 7, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Minutes", "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for i := len(days) - 1; i >= 0; i-- {
		d := days[i]
		periodMinutes += d.Minutes
		pdf.CellFormat(50, 6, d.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.1f", d.Minutes), "1", 1, "R", false, 0, "")
	}

	// Summary
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period total: %s", FormatMinutes(periodMinutes)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("All-time total: %s over %d days", FormatMinutes(hist.TotalMinutes()), len(hist.Recorded())))
	pdf.Ln(10)

	// Session log
	if sessions != nil {
		recs, err := sessions.RecentSessions(ctx, config.ReportSessions)
		if err != nil {
			return "", fmt.Errorf("load sessions: %w", err)
		}
		count, focusSeconds, err := sessions.SessionTotals(ctx)
		if err != nil {
			return "", fmt.Errorf("load session totals: %w", err)
		}
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Completed sessions")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 8, fmt.Sprintf("Completed sessions: %d, total focus: %s", count, FormatDuration(time.Duration(focusSeconds)*time.Second)))
		pdf.Ln(8)
		if len(recs) == 0 {
			pdf.Cell(0, 8, "  - No completed sessions yet.")
			pdf.Ln(8)
		}
		for _, r := range recs {
			line := fmt.Sprintf("[%s] %s  (%d min)", r.CompletedAt.Format("2006-01-02 15:04"), r.Goal, r.FocusMinutes())
			pdf.MultiCell(0, 7, line, "", "", false)
		}
	}

	filename := filepath.Join(dir, fmt.Sprintf("focus_report_%s.pdf", now.Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}

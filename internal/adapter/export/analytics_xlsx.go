package export

import (
	"bytes"
	"fmt"

	"quotation_service/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	servicesSheet = "Popular Services"
	agentsSheet   = "Agents"
	recentSheet   = "Recent Quotations"
)

// AnalyticsXLSX renders the analytics report as a workbook with one sheet
// per section.
func (e *DocumentExporter) AnalyticsXLSX(r entities.AnalyticsReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	for _, name := range []string{servicesSheet, agentsSheet, recentSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#6B46C1"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	summary := [][]any{
		{"Metric", "Value"},
		{"Total quotations", r.TotalQuotations},
		{"Total revenue", r.TotalRevenue},
	}
	services := [][]any{{"Service ID", "Service", "Quotations"}}
	for _, s := range r.PopularServices {
		services = append(services, []any{s.ServiceID, sanitizeCell(s.ServiceName), s.Count})
	}
	agents := [][]any{{"Agent ID", "Agent", "Quotations", "Revenue"}}
	for _, a := range r.QuotationsByAgent {
		agents = append(agents, []any{a.AgentID, sanitizeCell(a.AgentName), a.Count, a.Revenue})
	}
	recent := [][]any{{"Quotation", "Client", "Total", "Status", "Created At", "Created By"}}
	for _, q := range r.RecentQuotations {
		creator := ""
		if q.CreatedBy != nil {
			creator = q.CreatedBy.Name
		}
		recent = append(recent, []any{
			q.Number, sanitizeCell(q.ClientName), q.Total, string(q.Status),
			q.CreatedAt.UTC().Format("2006-01-02 15:04"), sanitizeCell(creator),
		})
	}

	for sheet, rows := range map[string][][]any{
		summarySheet:  summary,
		servicesSheet: services,
		agentsSheet:   agents,
		recentSheet:   recent,
	} {
		if err := writeRows(f, sheet, rows, headerStyle); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	return f.SetColWidth(sheet, "A", "F", 22)
}

// sanitizeCell stops user-supplied text from being read as a formula.
func sanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

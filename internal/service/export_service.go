package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/model"
	"summer-success/tracker/internal/progress"
	"summer-success/tracker/internal/repository"
	"summer-success/tracker/pkg/metrics"
)

// ── Export errors ──

var (
	ErrExportGenerateFail = errors.New("export file could not be generated")
	ErrUnsupportedFormat  = errors.New("format must be csv, json, xlsx or pdf")
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

const unknownChild = "Unknown"

var csvHeader = []string{"Date", "Child", "Type", "Category", "Description", "Duration (min)", "Completed"}

// ExportFile a generated export
type ExportFile struct {
	Content     *bytes.Buffer
	Filename    string
	ContentType string
}

// ExportService read-only snapshots of the logged data
//
// Every format accepts the same filter and an empty dataset is valid: a
// header-only CSV, empty JSON arrays, an XLSX with headers, a PDF with zero
// counts.
type ExportService interface {
	Export(ctx context.Context, format string, req *dto.ExportRequest) (*ExportFile, error)
}

type exportService struct {
	repo   *repository.Repository
	cal    *Calendar
	logger *zap.Logger
}

// NewExportService creates an ExportService
func NewExportService(repo *repository.Repository, cal *Calendar, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, cal: cal, logger: logger}
}

// exportData the rows every format is rendered from
type exportData struct {
	children   []model.Child
	activities []model.Activity
	behaviors  []model.Behavior
	names      map[string]string
}

func (d *exportData) childName(id string) string {
	if name, ok := d.names[id]; ok {
		return name
	}
	return unknownChild
}

func (s *exportService) Export(ctx context.Context, format string, req *dto.ExportRequest) (*ExportFile, error) {
	var render func(*exportData) (*bytes.Buffer, error)
	var contentType, filename string
	today := s.cal.Today()

	switch format {
	case FormatCSV:
		render, contentType = s.renderCSV, "text/csv; charset=utf-8"
		filename = fmt.Sprintf("summer-success-%s.csv", today)
	case FormatJSON:
		render, contentType = s.renderJSON, "application/json"
		filename = fmt.Sprintf("summer-success-%s.json", today)
	case FormatXLSX:
		render, contentType = s.renderXLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = fmt.Sprintf("summer-success-%s.xlsx", today)
	case FormatPDF:
		render, contentType = s.renderPDF, "application/pdf"
		filename = fmt.Sprintf("summer-success-report-%s.pdf", today)
	default:
		return nil, ErrUnsupportedFormat
	}

	data, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}

	buf, err := render(data)
	if err != nil {
		s.logger.Error("render export failed", zap.String("format", format), zap.Error(err))
		return nil, ErrExportGenerateFail
	}

	metrics.Exports.WithLabelValues(format).Inc()
	s.logger.Info("export generated",
		zap.String("format", format),
		zap.Int("activities", len(data.activities)),
		zap.Int("behaviors", len(data.behaviors)),
	)
	return &ExportFile{Content: buf, Filename: filename, ContentType: contentType}, nil
}

func (s *exportService) load(ctx context.Context, req *dto.ExportRequest) (*exportData, error) {
	filter := repository.RecordFilter{ChildID: req.ChildID, Start: req.Start, End: req.End}

	children, err := s.repo.Child.List(ctx)
	if err != nil {
		s.logger.Error("list children failed", zap.Error(err))
		return nil, err
	}
	activities, err := s.repo.Activity.ListChronological(ctx, filter)
	if err != nil {
		s.logger.Error("list activities failed", zap.Error(err))
		return nil, err
	}
	behaviors, err := s.repo.Behavior.List(ctx, filter)
	if err != nil {
		s.logger.Error("list behaviors failed", zap.Error(err))
		return nil, err
	}

	data := &exportData{
		activities: activities,
		behaviors:  behaviors,
		names:      make(map[string]string, len(children)),
	}
	for _, c := range children {
		data.names[c.ChildID] = c.Name
		if req.ChildID == "" || req.ChildID == c.ChildID {
			data.children = append(data.children, c)
		}
	}
	return data, nil
}

// ═══════════════════════════════════════════════════════════
// CSV
// ═══════════════════════════════════════════════════════════

func (s *exportService) renderCSV(data *exportData) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for i := range data.activities {
		if err := w.Write(activityRow(data, &data.activities[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf, w.Error()
}

func activityRow(data *exportData, a *model.Activity) []string {
	duration := ""
	if a.Duration != nil {
		duration = strconv.Itoa(*a.Duration)
	}
	completed := "No"
	if a.Completed {
		completed = "Yes"
	}
	return []string{
		a.Date,
		data.childName(a.ChildID),
		string(a.Type),
		a.Category,
		a.Description,
		duration,
		completed,
	}
}

// ═══════════════════════════════════════════════════════════
// JSON
// ═══════════════════════════════════════════════════════════

type jsonExport struct {
	ExportDate string                 `json:"exportDate"`
	Children   []dto.ChildResponse    `json:"children"`
	Activities []dto.ActivityResponse `json:"activities"`
	Behaviors  []dto.BehaviorResponse `json:"behaviors"`
	Summary    jsonExportSummary      `json:"summary"`
}

type jsonExportSummary struct {
	TotalActivities int             `json:"totalActivities"`
	TotalBehaviors  int             `json:"totalBehaviors"`
	DateRange       jsonExportRange `json:"dateRange"`
}

type jsonExportRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

func (s *exportService) renderJSON(data *exportData) (*bytes.Buffer, error) {
	out := jsonExport{
		ExportDate: formatTime(s.cal.Now()),
		Children:   make([]dto.ChildResponse, 0, len(data.children)),
		Activities: toActivityResponses(data.activities),
		Behaviors:  toBehaviorResponses(data.behaviors),
		Summary: jsonExportSummary{
			TotalActivities: len(data.activities),
			TotalBehaviors:  len(data.behaviors),
		},
	}
	for i := range data.children {
		out.Children = append(out.Children, toChildResponse(&data.children[i]))
	}
	if n := len(data.activities); n > 0 {
		start, end := data.activities[0].Date, data.activities[n-1].Date
		out.Summary.DateRange = jsonExportRange{Start: &start, End: &end}
	}

	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf, nil
}

// ═══════════════════════════════════════════════════════════
// XLSX
// ═══════════════════════════════════════════════════════════
//
// Sheet "Activities": the CSV columns, one row per activity
// Sheet "Summary":    per-child activity, behavior and reward totals

func (s *exportService) renderXLSX(data *exportData) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const activitySheet, summarySheet = "Activities", "Summary"
	if err := f.SetSheetName("Sheet1", activitySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#9333EA"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// activities
	for i, h := range csvHeader {
		f.SetCellValue(activitySheet, cell(colName(i), 1), h)
	}
	f.SetCellStyle(activitySheet, "A1", cell(colName(len(csvHeader)-1), 1), headerStyle)
	f.SetColWidth(activitySheet, "A", "A", 12)
	f.SetColWidth(activitySheet, "B", "D", 18)
	f.SetColWidth(activitySheet, "E", "E", 40)
	f.SetColWidth(activitySheet, "F", "G", 14)

	for i := range data.activities {
		row := i + 2
		a := &data.activities[i]
		values := activityRow(data, a)
		for col, v := range values {
			f.SetCellValue(activitySheet, cell(colName(col), row), v)
		}
		if a.Duration != nil {
			f.SetCellValue(activitySheet, cell("F", row), *a.Duration)
		}
	}

	// summary
	summaryHeader := []string{"Child", "Activities", "Completed", "Behaviors", "Minutes Lost"}
	for i, h := range summaryHeader {
		f.SetCellValue(summarySheet, cell(colName(i), 1), h)
	}
	f.SetCellStyle(summarySheet, "A1", cell(colName(len(summaryHeader)-1), 1), headerStyle)
	f.SetColWidth(summarySheet, "A", "A", 18)
	f.SetColWidth(summarySheet, "B", "E", 14)

	for i, c := range data.children {
		var total, completed, behaviors, lost int
		for j := range data.activities {
			if data.activities[j].ChildID == c.ChildID {
				total++
				if data.activities[j].Completed {
					completed++
				}
			}
		}
		for j := range data.behaviors {
			if data.behaviors[j].ChildID == c.ChildID {
				behaviors++
				lost += data.behaviors[j].Minutes()
			}
		}
		row := i + 2
		f.SetCellValue(summarySheet, cell("A", row), c.Name)
		f.SetCellValue(summarySheet, cell("B", row), total)
		f.SetCellValue(summarySheet, cell("C", row), completed)
		f.SetCellValue(summarySheet, cell("D", row), behaviors)
		f.SetCellValue(summarySheet, cell("E", row), lost)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// ═══════════════════════════════════════════════════════════
// PDF
// ═══════════════════════════════════════════════════════════
//
// Page 1: title, generated date, totals, per-child counts
// Page 2: activity log table (only when there are activities)

func (s *exportService) renderPDF(data *exportData) (*bytes.Buffer, error) {
	now := s.cal.Now().In(s.cal.Location())

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Summer Success Report", false)
	pdf.SetCreationDate(now)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(147, 51, 234)
	pdf.Text(14, 22, "Summer Success Report")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(14, 32, "Generated on: "+now.Format("January 2, 2006"))

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(14, 45, "Summary")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(14, 52, fmt.Sprintf("Total Activities: %d", len(data.activities)))
	pdf.Text(14, 58, fmt.Sprintf("Total Behaviors Logged: %d", len(data.behaviors)))

	y := 70.0
	for _, c := range data.children {
		if y > 270 {
			pdf.AddPage()
			y = 22
		}
		var activities, behaviors int
		for i := range data.activities {
			if data.activities[i].ChildID == c.ChildID {
				activities++
			}
		}
		for i := range data.behaviors {
			if data.behaviors[i].ChildID == c.ChildID {
				behaviors++
			}
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(59, 130, 246)
		pdf.Text(14, y, tr(c.Name))
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(24, y+6, fmt.Sprintf("Activities: %d", activities))
		pdf.Text(24, y+12, fmt.Sprintf("Behaviors: %d", behaviors))
		y += 20
	}

	if len(data.activities) > 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(147, 51, 234)
		pdf.Text(14, 22, "Activities Log")

		widths := []float64{24, 36, 28, 58, 26}
		pdf.SetXY(14, 30)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(147, 51, 234)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range []string{"Date", "Child", "Type", "Category", "Duration"} {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFillColor(245, 245, 245)
		for i := range data.activities {
			a := &data.activities[i]
			date := a.Date
			if t, err := progress.ParseDate(a.Date); err == nil {
				date = t.Format("Jan 2")
			}
			duration := "-"
			if a.Duration != nil && *a.Duration > 0 {
				duration = fmt.Sprintf("%dm", *a.Duration)
			}

			fill := i%2 == 1
			pdf.SetX(14)
			for j, v := range []string{date, data.childName(a.ChildID), string(a.Type), a.Category, duration} {
				pdf.CellFormat(widths[j], 7, tr(v), "1", 0, "L", fill, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

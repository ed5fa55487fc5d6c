package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/model"
)

// ── helpers ──

func setupTestExportService(t *testing.T) (ExportService, *mockRepos, string) {
	t.Helper()
	repo, mocks := newMockRepos()
	ctx := context.Background()

	alex := &model.Child{Name: "Alex"}
	_ = mocks.child.Create(ctx, alex)
	_ = mocks.activity.Create(ctx, &model.Activity{
		ChildID: alex.ChildID, Date: "2025-07-02", Type: model.ActivityChore,
		Category: "Vacuum", Description: "Stairs", Completed: true,
	})
	_ = mocks.activity.Create(ctx, &model.Activity{
		ChildID: alex.ChildID, Date: "2025-07-01", Type: model.ActivityEducation,
		Category: "Reading", Description: "Chapter, \"one\"", Duration: intPtr(30), Completed: false,
	})
	_ = mocks.activity.Create(ctx, &model.Activity{
		ChildID: "removed-child", Date: "2025-07-03", Type: model.ActivitySkill,
		Category: "Swimming", Description: "Laps", Duration: intPtr(20), Completed: true,
	})
	_ = mocks.behavior.Create(ctx, &model.Behavior{
		ChildID: alex.ChildID, Date: "2025-07-01", Type: "Lying", Deduction: intPtr(5),
	})

	return NewExportService(repo, fixedCalendar(testToday), zap.NewNop()), mocks, alex.ChildID
}

// ═══════════════════════════════════════════════════════════
// CSV
// ═══════════════════════════════════════════════════════════

func TestExportService_CSV(t *testing.T) {
	svc, _, _ := setupTestExportService(t)

	file, err := svc.Export(context.Background(), FormatCSV, &dto.ExportRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Filename != "summer-success-2025-07-14.csv" {
		t.Errorf("unexpected filename %s", file.Filename)
	}

	rows, err := csv.NewReader(file.Content).ReadAll()
	if err != nil {
		t.Fatalf("csv must parse: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], ",") != "Date,Child,Type,Category,Description,Duration (min),Completed" {
		t.Errorf("unexpected header %v", rows[0])
	}

	// oldest first
	first := rows[1]
	if first[0] != "2025-07-01" || first[1] != "Alex" || first[4] != `Chapter, "one"` || first[5] != "30" || first[6] != "No" {
		t.Errorf("unexpected first row %v", first)
	}
	if chore := rows[2]; chore[5] != "" || chore[6] != "Yes" {
		t.Errorf("chore row should have empty duration: %v", chore)
	}
	if orphan := rows[3]; orphan[1] != "Unknown" {
		t.Errorf("missing child should export as Unknown: %v", orphan)
	}
}

func TestExportService_CSV_Empty(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewExportService(repo, fixedCalendar(testToday), zap.NewNop())

	file, err := svc.Export(context.Background(), FormatCSV, &dto.ExportRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, _ := csv.NewReader(file.Content).ReadAll()
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}

// ═══════════════════════════════════════════════════════════
// JSON
// ═══════════════════════════════════════════════════════════

func TestExportService_JSON_Filtered(t *testing.T) {
	svc, _, childID := setupTestExportService(t)

	file, err := svc.Export(context.Background(), FormatJSON, &dto.ExportRequest{
		DateRangeRequest: dto.DateRangeRequest{Start: "2025-07-02"},
		ChildID:          childID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out struct {
		ExportDate string                 `json:"exportDate"`
		Children   []dto.ChildResponse    `json:"children"`
		Activities []dto.ActivityResponse `json:"activities"`
		Behaviors  []dto.BehaviorResponse `json:"behaviors"`
		Summary    struct {
			TotalActivities int `json:"totalActivities"`
			TotalBehaviors  int `json:"totalBehaviors"`
			DateRange       struct {
				Start *string `json:"start"`
				End   *string `json:"end"`
			} `json:"dateRange"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(file.Content.Bytes(), &out); err != nil {
		t.Fatalf("json must parse: %v", err)
	}
	if out.ExportDate == "" || len(out.Children) != 1 {
		t.Errorf("unexpected header: %+v", out)
	}
	if out.Summary.TotalActivities != 1 || out.Summary.TotalBehaviors != 0 {
		t.Errorf("filter not applied: %+v", out.Summary)
	}
	if out.Summary.DateRange.Start == nil || *out.Summary.DateRange.Start != "2025-07-02" {
		t.Errorf("unexpected date range: %+v", out.Summary.DateRange)
	}
}

func TestExportService_JSON_EmptyHasNullRange(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewExportService(repo, fixedCalendar(testToday), zap.NewNop())

	file, err := svc.Export(context.Background(), FormatJSON, &dto.ExportRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := file.Content.String()
	if !strings.Contains(body, `"activities": []`) || !strings.Contains(body, `"start": null`) {
		t.Errorf("expected empty arrays and null range:\n%s", body)
	}
}

// ═══════════════════════════════════════════════════════════
// XLSX / PDF
// ═══════════════════════════════════════════════════════════

func TestExportService_XLSX(t *testing.T) {
	svc, _, _ := setupTestExportService(t)

	file, err := svc.Export(context.Background(), FormatXLSX, &dto.ExportRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(file.Content.Bytes()))
	if err != nil {
		t.Fatalf("xlsx must open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Activities")
	if err != nil {
		t.Fatalf("read Activities: %v", err)
	}
	if len(rows) != 4 || rows[0][0] != "Date" {
		t.Errorf("unexpected Activities sheet: %v", rows)
	}

	summary, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("read Summary: %v", err)
	}
	if len(summary) != 2 || summary[1][0] != "Alex" || summary[1][1] != "2" || summary[1][3] != "1" {
		t.Errorf("unexpected Summary sheet: %v", summary)
	}
}

func TestExportService_PDF(t *testing.T) {
	svc, _, _ := setupTestExportService(t)

	file, err := svc.Export(context.Background(), FormatPDF, &dto.ExportRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(file.Content.Bytes(), []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
	if file.Filename != "summer-success-report-2025-07-14.pdf" || file.ContentType != "application/pdf" {
		t.Errorf("unexpected file meta: %s %s", file.Filename, file.ContentType)
	}
}

func TestExportService_UnsupportedFormat(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewExportService(repo, fixedCalendar(testToday), zap.NewNop())

	if _, err := svc.Export(context.Background(), "docx", &dto.ExportRequest{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/progress"
	"summer-success/tracker/internal/repository"
)

// ── Vacation errors ──

var (
	ErrInvalidCalendar = errors.New("calendar could not be parsed")
	ErrCalendarFetch   = errors.New("calendar could not be fetched")
)

const (
	icsMaxFileSize  = 5 * 1024 * 1024 // 5MB
	icsFetchTimeout = 30 * time.Second
	// longest span a single event may cover
	icsMaxEventDays = 366
)

// VacationService vacation day management
type VacationService interface {
	List(ctx context.Context, start, end string) ([]string, error)
	Toggle(ctx context.Context, date string) (*dto.VacationStateResponse, error)
	Set(ctx context.Context, date string, on bool) (*dto.VacationStateResponse, error)
	ImportICS(ctx context.Context, r io.Reader) (*dto.VacationImportResponse, error)
	ImportICSFromURL(ctx context.Context, rawURL string) (*dto.VacationImportResponse, error)
	ExportICS(ctx context.Context) ([]byte, error)
}

type vacationService struct {
	repo   *repository.Repository
	cal    *Calendar
	logger *zap.Logger
	client *http.Client
	// maxBytes caps an imported calendar; larger input is rejected, not truncated
	maxBytes int64
}

// NewVacationService creates a VacationService
func NewVacationService(repo *repository.Repository, cal *Calendar, logger *zap.Logger) VacationService {
	return &vacationService{
		repo:     repo,
		cal:      cal,
		logger:   logger,
		client:   &http.Client{Timeout: icsFetchTimeout},
		maxBytes: icsMaxFileSize,
	}
}

// ────────────────────── List / Toggle / Set ──────────────────────

func (s *vacationService) List(ctx context.Context, start, end string) ([]string, error) {
	days, err := s.repo.VacationDay.List(ctx, start, end)
	if err != nil {
		s.logger.Error("list vacation days failed", zap.Error(err))
		return nil, err
	}
	return vacationDates(days), nil
}

func (s *vacationService) Toggle(ctx context.Context, date string) (*dto.VacationStateResponse, error) {
	if _, err := progress.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	removed, err := s.repo.VacationDay.Remove(ctx, date)
	if err != nil {
		s.logger.Error("remove vacation day failed", zap.String("date", date), zap.Error(err))
		return nil, err
	}
	if removed {
		s.logger.Info("vacation day removed", zap.String("date", date))
		return &dto.VacationStateResponse{Date: date, OnVacation: false}, nil
	}

	if _, err := s.repo.VacationDay.Add(ctx, date); err != nil {
		s.logger.Error("add vacation day failed", zap.String("date", date), zap.Error(err))
		return nil, err
	}
	s.logger.Info("vacation day added", zap.String("date", date))
	return &dto.VacationStateResponse{Date: date, OnVacation: true}, nil
}

func (s *vacationService) Set(ctx context.Context, date string, on bool) (*dto.VacationStateResponse, error) {
	if _, err := progress.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	var err error
	if on {
		_, err = s.repo.VacationDay.Add(ctx, date)
	} else {
		_, err = s.repo.VacationDay.Remove(ctx, date)
	}
	if err != nil {
		s.logger.Error("set vacation day failed", zap.String("date", date), zap.Bool("on", on), zap.Error(err))
		return nil, err
	}
	return &dto.VacationStateResponse{Date: date, OnVacation: on}, nil
}

// ────────────────────── ICS import ──────────────────────

// ImportICS marks every day covered by a VEVENT as vacation. All-day events
// treat DTEND as exclusive; timed events cover each calendar day they touch
// in the tracker's time zone. Inserts run in one transaction.
func (s *vacationService) ImportICS(ctx context.Context, r io.Reader) (*dto.VacationImportResponse, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCalendar, err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrInvalidCalendar, s.maxBytes)
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCalendar, err)
	}

	events := cal.Events()
	dates := collectEventDates(events, s.cal.Location())

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("begin transaction failed", zap.Error(err))
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)

	added := 0
	for _, d := range dates {
		inserted, err := txRepo.VacationDay.Add(ctx, d)
		if err != nil {
			tx.Rollback()
			s.logger.Error("import vacation day failed", zap.String("date", d), zap.Error(err))
			return nil, err
		}
		if inserted {
			added++
		}
	}
	if err := tx.Commit().Error; err != nil {
		s.logger.Error("commit vacation import failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("vacation calendar imported",
		zap.Int("events", len(events)),
		zap.Int("days", len(dates)),
		zap.Int("added", added),
	)
	return &dto.VacationImportResponse{Events: len(events), Added: added, Dates: dates}, nil
}

// ImportICSFromURL fetches a calendar over http(s) or webcal and imports it
func (s *vacationService) ImportICSFromURL(ctx context.Context, rawURL string) (*dto.VacationImportResponse, error) {
	body, err := s.fetchICS(ctx, rawURL)
	if err != nil {
		s.logger.Warn("fetch calendar failed", zap.String("url", rawURL), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCalendarFetch, err)
	}
	defer body.Close()

	return s.ImportICS(ctx, body)
}

func (s *vacationService) fetchICS(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	u := rawURL
	if strings.HasPrefix(u, "webcal://") {
		u = "https://" + strings.TrimPrefix(u, "webcal://")
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return nil, fmt.Errorf("unsupported scheme in %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// collectEventDates returns the sorted, de-duplicated days covered by events
func collectEventDates(events []*ics.VEvent, loc *time.Location) []string {
	set := make(map[string]bool)
	for _, evt := range events {
		for _, d := range eventDays(evt, loc) {
			set[d] = true
		}
	}

	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

func eventDays(evt *ics.VEvent, loc *time.Location) []string {
	start, allDay, err := parseICSDateTime(evt, ics.ComponentPropertyDtStart, loc)
	if err != nil {
		return nil
	}
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	end, _, err := parseICSDateTime(evt, ics.ComponentPropertyDtEnd, loc)
	if err != nil {
		// no DTEND: a single day
		return []string{progress.FormatDate(startDay)}
	}

	// last covered day, inclusive
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	midnight := end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0
	if (allDay || midnight) && last.After(startDay) {
		last = last.AddDate(0, 0, -1)
	}
	if last.Before(startDay) {
		last = startDay
	}

	var days []string
	for d := startDay; !d.After(last) && len(days) < icsMaxEventDays; d = d.AddDate(0, 0, 1) {
		days = append(days, progress.FormatDate(d))
	}
	return days
}

// parseICSDateTime reads a DTSTART/DTEND property in loc. allDay reports a
// VALUE=DATE value.
func parseICSDateTime(evt *ics.VEvent, propName ics.ComponentProperty, loc *time.Location) (time.Time, bool, error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, false, fmt.Errorf("missing property %s", propName)
	}
	val := strings.TrimSpace(prop.Value)

	tzid := ""
	for k, v := range prop.ICalParameters {
		if strings.ToUpper(k) == "TZID" && len(v) > 0 {
			tzid = v[0]
		}
	}

	if t, err := time.Parse("20060102", val); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse("20060102T150405Z", val); err == nil {
		return t.In(loc), false, nil
	}
	if t, err := time.Parse("20060102T150405", val); err == nil {
		if tzid != "" {
			if tzLoc, err := time.LoadLocation(tzid); err == nil {
				return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, tzLoc).In(loc), false, nil
			}
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), false, nil
	}

	return time.Time{}, false, fmt.Errorf("unparseable date %q", val)
}

// ────────────────────── ICS export ──────────────────────

// ExportICS renders every vacation day as an all-day event
func (s *vacationService) ExportICS(ctx context.Context) ([]byte, error) {
	days, err := s.repo.VacationDay.List(ctx, "", "")
	if err != nil {
		s.logger.Error("list vacation days failed", zap.Error(err))
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Summer Success//Tracker//EN")
	cal.SetXWRCalName("Summer Success vacation days")

	stamp := s.cal.Now().UTC()
	for _, d := range days {
		day, err := progress.ParseDate(d.Date)
		if err != nil {
			continue
		}
		evt := cal.AddEvent(d.VacationDayID + "@summer-success")
		evt.SetDtStampTime(stamp)
		evt.SetAllDayStartAt(day)
		evt.SetAllDayEndAt(day.AddDate(0, 0, 1))
		evt.SetSummary("Vacation")
	}

	return []byte(cal.Serialize()), nil
}

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"summer-success/tracker/internal/model"
	"summer-success/tracker/internal/repository"
	pkgerrors "summer-success/tracker/pkg/errors"
)

// ── Mock ChildRepository ──

type mockChildRepo struct {
	children map[string]*model.Child
	seq      int
}

func newMockChildRepo() *mockChildRepo {
	return &mockChildRepo{children: make(map[string]*model.Child)}
}

func (m *mockChildRepo) Create(_ context.Context, child *model.Child) error {
	if child.ChildID == "" {
		m.seq++
		child.ChildID = fmt.Sprintf("child-%d", m.seq)
	}
	child.CreatedAt = time.Now()
	m.children[child.ChildID] = child
	return nil
}

func (m *mockChildRepo) GetByID(_ context.Context, id string) (*model.Child, error) {
	if c, ok := m.children[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockChildRepo) GetByName(_ context.Context, name string) (*model.Child, error) {
	for _, c := range m.children {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockChildRepo) List(_ context.Context) ([]model.Child, error) {
	result := make([]model.Child, 0, len(m.children))
	for _, c := range m.children {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock ActivityRepository ──

type mockActivityRepo struct {
	activities map[string]*model.Activity
	order      []string // insertion order
	seq        int
}

func newMockActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{activities: make(map[string]*model.Activity)}
}

func (m *mockActivityRepo) Create(_ context.Context, activity *model.Activity) error {
	if activity.ActivityID == "" {
		m.seq++
		activity.ActivityID = fmt.Sprintf("act-%d", m.seq)
	}
	if activity.Version == 0 {
		activity.Version = 1
	}
	stored := *activity
	m.activities[activity.ActivityID] = &stored
	m.order = append(m.order, activity.ActivityID)
	return nil
}

func (m *mockActivityRepo) GetByID(_ context.Context, id string) (*model.Activity, error) {
	if a, ok := m.activities[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockActivityRepo) Update(_ context.Context, activity *model.Activity) error {
	stored, ok := m.activities[activity.ActivityID]
	if !ok || stored.Version != activity.Version {
		return pkgerrors.ErrOptimisticLock
	}
	activity.Version++
	cp := *activity
	m.activities[activity.ActivityID] = &cp
	return nil
}

func (m *mockActivityRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.activities[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.activities, id)
	return nil
}

func (m *mockActivityRepo) matching(filter repository.RecordFilter) []model.Activity {
	var result []model.Activity
	for _, id := range m.order {
		a, ok := m.activities[id]
		if !ok || !matchRecord(filter, a.ChildID, a.Date) {
			continue
		}
		if filter.Type != "" && string(a.Type) != filter.Type {
			continue
		}
		result = append(result, *a)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

func (m *mockActivityRepo) List(_ context.Context, filter repository.RecordFilter) ([]model.Activity, int64, error) {
	asc := m.matching(filter)
	desc := make([]model.Activity, 0, len(asc))
	for i := len(asc) - 1; i >= 0; i-- {
		desc = append(desc, asc[i])
	}
	return paginate(desc, filter), int64(len(desc)), nil
}

func (m *mockActivityRepo) ListChronological(_ context.Context, filter repository.RecordFilter) ([]model.Activity, error) {
	return m.matching(filter), nil
}

// ── Mock BehaviorRepository ──

type mockBehaviorRepo struct {
	behaviors map[string]*model.Behavior
	order     []string
	seq       int
}

func newMockBehaviorRepo() *mockBehaviorRepo {
	return &mockBehaviorRepo{behaviors: make(map[string]*model.Behavior)}
}

func (m *mockBehaviorRepo) Create(_ context.Context, behavior *model.Behavior) error {
	if behavior.BehaviorID == "" {
		m.seq++
		behavior.BehaviorID = fmt.Sprintf("beh-%d", m.seq)
	}
	stored := *behavior
	m.behaviors[behavior.BehaviorID] = &stored
	m.order = append(m.order, behavior.BehaviorID)
	return nil
}

func (m *mockBehaviorRepo) GetByID(_ context.Context, id string) (*model.Behavior, error) {
	if b, ok := m.behaviors[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBehaviorRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.behaviors[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.behaviors, id)
	return nil
}

func (m *mockBehaviorRepo) List(_ context.Context, filter repository.RecordFilter) ([]model.Behavior, error) {
	var result []model.Behavior
	for i := len(m.order) - 1; i >= 0; i-- {
		b, ok := m.behaviors[m.order[i]]
		if ok && matchRecord(filter, b.ChildID, b.Date) {
			result = append(result, *b)
		}
	}
	return paginate(result, filter), nil
}

// ── Mock VacationDayRepository ──

type mockVacationDayRepo struct {
	days map[string]bool
	err  error
}

func newMockVacationDayRepo(days ...string) *mockVacationDayRepo {
	m := &mockVacationDayRepo{days: make(map[string]bool)}
	for _, d := range days {
		m.days[d] = true
	}
	return m
}

func (m *mockVacationDayRepo) List(_ context.Context, start, end string) ([]model.VacationDay, error) {
	if m.err != nil {
		return nil, m.err
	}
	var dates []string
	for d := range m.days {
		if (start == "" || d >= start) && (end == "" || d <= end) {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	result := make([]model.VacationDay, 0, len(dates))
	for _, d := range dates {
		result = append(result, model.VacationDay{VacationDayID: "vac-" + d, Date: d})
	}
	return result, nil
}

func (m *mockVacationDayRepo) Exists(_ context.Context, date string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.days[date], nil
}

func (m *mockVacationDayRepo) Add(_ context.Context, date string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.days[date] {
		return false, nil
	}
	m.days[date] = true
	return true, nil
}

func (m *mockVacationDayRepo) Remove(_ context.Context, date string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if !m.days[date] {
		return false, nil
	}
	delete(m.days, date)
	return true, nil
}

// ── Mock PreferencesRepository ──

type mockPreferencesRepo struct {
	prefs *model.Preferences
}

func newMockPreferencesRepo() *mockPreferencesRepo {
	return &mockPreferencesRepo{}
}

func (m *mockPreferencesRepo) Get(_ context.Context) (*model.Preferences, error) {
	if m.prefs == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m.prefs
	return &cp, nil
}

func (m *mockPreferencesRepo) Save(_ context.Context, prefs *model.Preferences) error {
	prefs.Singleton = true
	prefs.UpdatedAt = time.Now()
	cp := *prefs
	m.prefs = &cp
	return nil
}

// ── helpers ──

func matchRecord(filter repository.RecordFilter, childID, date string) bool {
	if filter.ChildID != "" && childID != filter.ChildID {
		return false
	}
	if filter.Start != "" && date < filter.Start {
		return false
	}
	if filter.End != "" && date > filter.End {
		return false
	}
	return true
}

func paginate[T any](list []T, filter repository.RecordFilter) []T {
	if filter.Limit <= 0 {
		return list
	}
	if filter.Offset >= len(list) {
		return nil
	}
	end := min(filter.Offset+filter.Limit, len(list))
	return list[filter.Offset:end]
}

// mockRepos every mock behind one Repository
type mockRepos struct {
	child       *mockChildRepo
	activity    *mockActivityRepo
	behavior    *mockBehaviorRepo
	vacation    *mockVacationDayRepo
	preferences *mockPreferencesRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		child:       newMockChildRepo(),
		activity:    newMockActivityRepo(),
		behavior:    newMockBehaviorRepo(),
		vacation:    newMockVacationDayRepo(),
		preferences: newMockPreferencesRepo(),
	}
	repo := &repository.Repository{
		Child:       m.child,
		Activity:    m.activity,
		Behavior:    m.behavior,
		VacationDay: m.vacation,
		Preferences: m.preferences,
	}
	return repo, m
}

// fixedCalendar a Calendar in UTC whose today is date at noon
func fixedCalendar(date string) *Calendar {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	now := t.Add(12 * time.Hour)
	return &Calendar{loc: time.UTC, now: func() time.Time { return now }}
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

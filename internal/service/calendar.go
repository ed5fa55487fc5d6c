package service

import (
	"errors"
	"time"

	"summer-success/tracker/internal/progress"
)

// ErrInvalidDate a date that is not YYYY-MM-DD
var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

// Calendar resolves "today" in the tracker's time zone
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar creates a Calendar on the wall clock
func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{loc: loc, now: time.Now}
}

// Location the tracker's time zone
func (c *Calendar) Location() *time.Location { return c.loc }

// Now current instant
func (c *Calendar) Now() time.Time { return c.now() }

// Today current calendar day in the tracker's time zone
func (c *Calendar) Today() string {
	return progress.Today(c.now(), c.loc)
}

// Resolve returns date when set and well formed, today when empty
func (c *Calendar) Resolve(date string) (string, error) {
	if date == "" {
		return c.Today(), nil
	}
	if _, err := progress.ParseDate(date); err != nil {
		return "", ErrInvalidDate
	}
	return date, nil
}

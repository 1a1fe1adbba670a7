package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

// ReportPeriod is one calendar month, interpreted in UTC.
type ReportPeriod struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func (p ReportPeriod) Validate() error {
	if p.Month < time.January || p.Month > time.December {
		return fmt.Errorf("%w: month %d is out of range", ErrIncorrectRequestBody, p.Month)
	}

	if p.Year < 2000 || p.Year > 2100 {
		return fmt.Errorf("%w: year %d is out of range", ErrIncorrectRequestBody, p.Year)
	}

	return nil
}

// Bounds returns the half-open interval [first instant of the month, first
// instant of the next month) in UTC.
func (p ReportPeriod) Bounds() (time.Time, time.Time) {
	from := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// Elapsed reports whether the whole month lies in the past. Business rules
// forbid retroactive edits beyond status and notes, so an elapsed month's
// aggregates are stable and safe to cache.
func (p ReportPeriod) Elapsed(now time.Time) bool {
	_, until := p.Bounds()
	return !now.UTC().Before(until)
}

// ReportScope narrows which raw violations are aggregated. Narrowing is
// applied before aggregation, never to the finished aggregate rows.
type ReportScope struct {
	Period   ReportPeriod
	Zone     string
	Category *Category
}

func (s ReportScope) Validate() error {
	err := s.Period.Validate()
	if err != nil {
		return err
	}

	if s.Category != nil && !s.Category.IsValid() {
		return fmt.Errorf("%w: invalid category %q", ErrIncorrectRequestBody, *s.Category)
	}

	return nil
}

type CategoryCounts struct {
	Helmet int `json:"helmet"`
	Vest   int `json:"vest"`
	Mask   int `json:"mask"`
	Gloves int `json:"gloves"`
}

func (c CategoryCounts) Of(cat Category) int {
	switch cat {
	case CategoryHelmet:
		return c.Helmet
	case CategoryVest:
		return c.Vest
	case CategoryMask:
		return c.Mask
	case CategoryGloves:
		return c.Gloves
	default:
		return 0
	}
}

// WorkerReportRow is one row of the by-worker monthly report. Workers with
// zero qualifying violations in the period do not get a row at all.
type WorkerReportRow struct {
	WorkerID        uuid.UUID      `json:"workerId"`
	EmployeeID      string         `json:"employeeId"`
	WorkerName      string         `json:"workerName"`
	Department      string         `json:"department"`
	TotalViolations int            `json:"totalViolations"`
	Counts          CategoryCounts `json:"countsByCategory"`
}

type WorkerReport struct {
	Year            int               `json:"year"`
	Month           time.Month        `json:"month"`
	Zone            string            `json:"zone,omitempty"`
	Category        *Category         `json:"category,omitempty"`
	Workers         []WorkerReportRow `json:"workers"`
	TotalViolations int               `json:"totalViolations"`
}

type RankedWorker struct {
	WorkerID   uuid.UUID `json:"workerId"`
	EmployeeID string    `json:"employeeId"`
	WorkerName string    `json:"workerName"`
	Count      int       `json:"count"`
}

type RankedLocation struct {
	LocationID uuid.UUID `json:"locationId"`
	Zone       string    `json:"zone"`
	Count      int       `json:"count"`
}

// CategoryReportRow carries a category's period total plus its top-5
// rankings. Fewer than five entries mean fewer distinct workers or locations
// qualified; the lists are never padded.
type CategoryReportRow struct {
	Category     Category         `json:"category"`
	Total        int              `json:"total"`
	TopWorkers   []RankedWorker   `json:"topViolators"`
	TopLocations []RankedLocation `json:"topLocations"`
}

type CategoryReport struct {
	Year       int                 `json:"year"`
	Month      time.Month          `json:"month"`
	Zone       string              `json:"zone,omitempty"`
	Categories []CategoryReportRow `json:"categories"`
}

type DashboardSummary struct {
	TotalToday       int            `json:"totalToday"`
	PendingCount     int            `json:"pendingCount"`
	CountsByCategory CategoryCounts `json:"countsByCategory"`
}

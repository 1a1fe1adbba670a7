package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type ViolationsSortBy string

func (s ViolationsSortBy) String() string {
	return string(s)
}

func (s ViolationsSortBy) IsValid() bool {
	switch s {
	case SortByDetectedAt, SortByWorker, SortByZone:
		return true
	default:
		return false
	}
}

const (
	SortByDetectedAt ViolationsSortBy = "detected_at"
	SortByWorker     ViolationsSortBy = "worker_id"
	SortByZone       ViolationsSortBy = "zone"
)

type OrderBy string

func (o OrderBy) String() string {
	return string(o)
}

func (o OrderBy) IsValid() bool {
	switch o {
	case ASC, DESC:
		return true
	default:
		return false
	}
}

const (
	ASC  OrderBy = "asc"
	DESC OrderBy = "desc"
)

const (
	MaxPageSize     = 500
	DefaultPageSize = 50

	// MaxPageNumber bounds the page number so the page*size offset stays far
	// from uint64 overflow. Any page this deep is past the end of real data
	// and comes back empty.
	MaxPageNumber = 1_000_000
)

// ViolationsFilter is the normalized query plan for a violation search.
// Nil/empty optional fields impose no constraint. DateFrom is inclusive,
// DateTo is an exclusive upper bound: an inclusive calendar day supplied by
// the caller is normalized to the following midnight before it gets here.
type ViolationsFilter struct {
	Zone     string
	Category *Category
	WorkerID *uuid.UUID
	DateFrom *time.Time
	DateTo   *time.Time
	Status   *ViolationStatus
	Page     uint64
	Limit    uint64
	SortBy   ViolationsSortBy
	OrderBy  OrderBy
}

// Normalize clamps pagination and fills sort defaults. Out-of-range values
// never error, they are silently brought back into range.
func (f ViolationsFilter) Normalize() ViolationsFilter {
	if f.Page < 1 {
		f.Page = 1
	}

	if f.Page > MaxPageNumber {
		f.Page = MaxPageNumber
	}

	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}

	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}

	if !f.SortBy.IsValid() {
		f.SortBy = SortByDetectedAt
	}

	if !f.OrderBy.IsValid() {
		f.OrderBy = DESC
	}

	return f
}

package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryHelmet Category = "helmet"
	CategoryVest   Category = "vest"
	CategoryMask   Category = "mask"
	CategoryGloves Category = "gloves"
)

// AllCategories is the closed set of PPE categories, in report order.
var AllCategories = []Category{CategoryHelmet, CategoryVest, CategoryMask, CategoryGloves}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryHelmet, CategoryVest, CategoryMask, CategoryGloves:
		return true
	default:
		return false
	}
}

// ParseCategory accepts category values case-insensitively. The second
// return value reports whether the input belongs to the closed set.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.IsValid()
}

type ViolationStatus string

const (
	StatusPending      ViolationStatus = "pending"
	StatusAcknowledged ViolationStatus = "acknowledged"
	StatusResolved     ViolationStatus = "resolved"
)

func (s ViolationStatus) String() string {
	return string(s)
}

func (s ViolationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAcknowledged, StatusResolved:
		return true
	default:
		return false
	}
}

func ParseViolationStatus(s string) (ViolationStatus, bool) {
	st := ViolationStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.IsValid()
}

// Violation is a single PPE violation reported by the detection pipeline.
// DetectedAt is the event time supplied by the pipeline; CreatedAt is the
// insertion time. Only Status and Note are mutable after creation.
type Violation struct {
	ID          uuid.UUID       `json:"id"`
	WorkerID    uuid.UUID       `json:"workerId"`
	LocationID  uuid.UUID       `json:"locationId"`
	Category    Category        `json:"category"`
	EvidenceURL string          `json:"evidenceUrl"`
	Confidence  decimal.Decimal `json:"confidenceScore"`
	DetectedAt  time.Time       `json:"detectedAt"`
	Status      ViolationStatus `json:"status"`
	Note        *string         `json:"note"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ViolationRow is a violation enriched with the referenced worker's and
// location's display fields, ready for presentation.
type ViolationRow struct {
	Violation
	EmployeeID string `json:"employeeId"`
	WorkerName string `json:"workerName"`
	Zone       string `json:"zone"`
}

// ViolationUpdate carries the mutable fields of a violation. Nil fields are
// left unchanged.
type ViolationUpdate struct {
	Status *ViolationStatus
	Note   *string
}

func (u ViolationUpdate) IsEmpty() bool {
	return u.Status == nil && u.Note == nil
}

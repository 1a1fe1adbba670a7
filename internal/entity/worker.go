package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Worker is owned by the HR sync process and is read-only to every other
// path in this service.
type Worker struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID string    `json:"employeeId"`
	FullName   string    `json:"fullName"`
	Department string    `json:"department"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Location is a monitored camera zone.
type Location struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"deviceId"`
	Zone      string    `json:"zone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

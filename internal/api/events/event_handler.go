package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/sitesafe/violations/internal/entity"
)

type Service interface {
	CreateViolation(ctx context.Context, workerID, locationID uuid.UUID, category entity.Category,
		evidenceURL string, confidence decimal.Decimal, detectedAt time.Time) (entity.ViolationRow, error)
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

type OnViolationDetectedEvent struct {
	WorkerID        uuid.UUID       `json:"worker_id"`
	LocationID      uuid.UUID       `json:"location_id"`
	Category        string          `json:"category"`
	EvidenceURL     string          `json:"evidence_url"`
	ConfidenceScore decimal.Decimal `json:"confidence_score"`
	DetectedAt      time.Time       `json:"detected_at"`
}

// OnViolationDetected records a detection published by the vision pipeline.
// The pipeline speaks the closed category enumeration; anything else is a
// malformed event, not a filter to be silently dropped.
func (h *EventHandler) OnViolationDetected(ctx context.Context, msg kafka.Message) error {
	var event OnViolationDetectedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	category, ok := entity.ParseCategory(event.Category)
	if !ok {
		return fmt.Errorf("%w: unknown category %q", entity.ErrIncorrectRequestBody, event.Category)
	}

	_, err = h.s.CreateViolation(ctx,
		event.WorkerID, event.LocationID, category, event.EvidenceURL, event.ConfidenceScore, event.DetectedAt)
	if err != nil {
		return fmt.Errorf("create violation: %w", err)
	}

	return nil
}

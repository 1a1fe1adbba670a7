package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sitesafe/violations/internal/entity"
)

const maxNoteLength = 2000

var (
	minConfidence = decimal.Zero
	maxConfidence = decimal.NewFromInt(100)
)

func ValidateCreateViolationParams(
	workerID, locationID uuid.UUID,
	category entity.Category,
	confidence decimal.Decimal,
	detectedAt time.Time,
) error {
	if workerID.IsNil() || locationID.IsNil() {
		return fmt.Errorf("%w: workerId: %s, locationId: %s", entity.ErrIncorrectRequestBody, workerID, locationID)
	}

	if !category.IsValid() {
		return fmt.Errorf("%w: invalid category: %s", entity.ErrIncorrectRequestBody, category)
	}

	if confidence.LessThan(minConfidence) || confidence.GreaterThan(maxConfidence) {
		return fmt.Errorf("%w: confidence %s is out of [0,100]", entity.ErrIncorrectRequestBody, confidence)
	}

	if detectedAt.IsZero() {
		return fmt.Errorf("%w: detectedAt is required", entity.ErrIncorrectRequestBody)
	}

	return nil
}

func ValidateUpdateViolationParams(upd entity.ViolationUpdate) error {
	if upd.Status != nil && !upd.Status.IsValid() {
		return fmt.Errorf("%w: invalid status: %s", entity.ErrIncorrectRequestBody, *upd.Status)
	}

	if upd.Note != nil && len(*upd.Note) > maxNoteLength {
		return fmt.Errorf("%w: note longer than %d characters", entity.ErrIncorrectRequestBody, maxNoteLength)
	}

	return nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sitesafe/violations/internal/entity"
	"github.com/sitesafe/violations/pkg/metrics"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	ViolationByID(ctx context.Context, violationID uuid.UUID) (entity.ViolationRow, error)
	ViolationsListByFilter(ctx context.Context, filter entity.ViolationsFilter) ([]entity.ViolationRow, int, error)
	CreateViolation(ctx context.Context, violation entity.Violation) (entity.ViolationRow, error)
	UpdateViolation(ctx context.Context, violationID uuid.UUID, upd entity.ViolationUpdate) (entity.ViolationRow, error)
	DashboardSummary(ctx context.Context, now time.Time) (entity.DashboardSummary, error)
	WorkerReportRows(ctx context.Context, scope entity.ReportScope) ([]entity.WorkerReportRow, error)
	CategoryTotals(ctx context.Context, scope entity.ReportScope) (entity.CategoryCounts, error)
	TopWorkersByCategory(ctx context.Context, scope entity.ReportScope, category entity.Category, limit uint64) ([]entity.RankedWorker, error)
	TopLocationsByCategory(ctx context.Context, scope entity.ReportScope, category entity.Category, limit uint64) ([]entity.RankedLocation, error)
	WorkersList(ctx context.Context, activeOnly bool) ([]entity.Worker, error)
	LocationsList(ctx context.Context, activeOnly bool) ([]entity.Location, error)
	UpsertWorkers(ctx context.Context, workers ...entity.Worker) error
}

type Producer interface {
	SendViolationCreated(ctx context.Context, row entity.ViolationRow)
}

// Cache is an optional read-through cache for elapsed-month reports. A nil
// Cache disables caching without changing any report semantics.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type HR interface {
	ActiveWorkers(ctx context.Context) ([]entity.Worker, error)
}

const topRankSize = 5

type Service struct {
	repo           Repository
	producer       Producer
	cache          Cache
	hr             HR
	m              *metrics.Metrics
	reportCacheTTL time.Duration
}

func New(
	repo Repository,
	producer Producer,
	cache Cache,
	hr HR,
	m *metrics.Metrics,
	reportCacheTTL time.Duration,
) *Service {
	return &Service{
		repo:           repo,
		producer:       producer,
		cache:          cache,
		hr:             hr,
		m:              m,
		reportCacheTTL: reportCacheTTL,
	}
}

func (s *Service) SearchViolations(
	ctx context.Context, filter entity.ViolationsFilter) ([]entity.ViolationRow, int, error) {
	s.m.IncrementSearches()

	return s.repo.ViolationsListByFilter(ctx, filter.Normalize())
}

func (s *Service) ViolationByID(ctx context.Context, violationID uuid.UUID) (entity.ViolationRow, error) {
	return s.repo.ViolationByID(ctx, violationID)
}

// CreateViolation records a detection from the vision pipeline. Both entity
// references must resolve or the whole create is rejected. The assigned
// status is always pending; created_at is the insertion time, distinct from
// the supplied detection time.
func (s *Service) CreateViolation(
	ctx context.Context,
	workerID, locationID uuid.UUID,
	category entity.Category,
	evidenceURL string,
	confidence decimal.Decimal,
	detectedAt time.Time,
) (entity.ViolationRow, error) {
	err := ValidateCreateViolationParams(workerID, locationID, category, confidence, detectedAt)
	if err != nil {
		return entity.ViolationRow{}, err
	}

	now := time.Now()

	violation := entity.Violation{
		ID:          uuid.Must(uuid.NewV4()),
		WorkerID:    workerID,
		LocationID:  locationID,
		Category:    category,
		EvidenceURL: evidenceURL,
		Confidence:  confidence,
		DetectedAt:  detectedAt,
		Status:      entity.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	row, err := s.repo.CreateViolation(ctx, violation)
	if err != nil {
		return entity.ViolationRow{}, err
	}

	s.m.IncrementViolationsCreated()
	s.producer.SendViolationCreated(ctx, row)

	slog.InfoContext(ctx, "violation recorded",
		"violation_id", row.ID, "category", row.Category, "zone", row.Zone)

	return row, nil
}

// UpdateViolation changes status and/or note. Supervisors only; fields left
// nil stay untouched, and an empty update returns the current row unchanged.
// Transitions are deliberately unordered: resolved back to pending is legal.
func (s *Service) UpdateViolation(
	ctx context.Context, violationID uuid.UUID, upd entity.ViolationUpdate) (entity.ViolationRow, error) {
	userFromContext, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.ViolationRow{}, fmt.Errorf("get user from context: %w", err)
	}

	if userFromContext.Role.Name != entity.RoleSupervisor {
		return entity.ViolationRow{}, fmt.Errorf(
			"%w: user %s is not a supervisor", entity.ErrForbidden, userFromContext.ID)
	}

	err = ValidateUpdateViolationParams(upd)
	if err != nil {
		return entity.ViolationRow{}, err
	}

	return s.repo.UpdateViolation(ctx, violationID, upd)
}

func (s *Service) DashboardSummary(ctx context.Context) (entity.DashboardSummary, error) {
	return s.repo.DashboardSummary(ctx, time.Now())
}

// WorkerReport builds the by-worker monthly report. Elapsed months are read
// through the cache when one is configured; the month in progress is always
// recomputed.
func (s *Service) WorkerReport(ctx context.Context, scope entity.ReportScope) (entity.WorkerReport, error) {
	err := scope.Validate()
	if err != nil {
		return entity.WorkerReport{}, err
	}

	var report entity.WorkerReport

	cacheKey := reportCacheKey("workers", scope)

	if hit := s.cacheGet(ctx, scope, cacheKey, &report); hit {
		return report, nil
	}

	rows, err := s.repo.WorkerReportRows(ctx, scope)
	if err != nil {
		return entity.WorkerReport{}, err
	}

	report = entity.WorkerReport{
		Year:     scope.Period.Year,
		Month:    scope.Period.Month,
		Zone:     scope.Zone,
		Category: scope.Category,
		Workers:  rows,
	}

	for _, row := range rows {
		report.TotalViolations += row.TotalViolations
	}

	s.m.IncrementReportsGenerated()
	s.cacheSet(ctx, scope, cacheKey, report)

	return report, nil
}

// CategoryReport builds the by-category monthly report: period totals plus
// the top five workers and locations inside every category. The report
// always carries all four category rows; a category narrowing in the scope
// changes which raw violations are counted, so the other rows come back
// with zero totals and empty rankings.
func (s *Service) CategoryReport(ctx context.Context, scope entity.ReportScope) (entity.CategoryReport, error) {
	err := scope.Validate()
	if err != nil {
		return entity.CategoryReport{}, err
	}

	var report entity.CategoryReport

	cacheKey := reportCacheKey("categories", scope)

	if hit := s.cacheGet(ctx, scope, cacheKey, &report); hit {
		return report, nil
	}

	totals, err := s.repo.CategoryTotals(ctx, scope)
	if err != nil {
		return entity.CategoryReport{}, err
	}

	report = entity.CategoryReport{
		Year:       scope.Period.Year,
		Month:      scope.Period.Month,
		Zone:       scope.Zone,
		Categories: make([]entity.CategoryReportRow, 0, len(entity.AllCategories)),
	}

	for _, category := range entity.AllCategories {
		row := entity.CategoryReportRow{
			Category:     category,
			Total:        totals.Of(category),
			TopWorkers:   []entity.RankedWorker{},
			TopLocations: []entity.RankedLocation{},
		}

		if row.Total > 0 {
			row.TopWorkers, err = s.repo.TopWorkersByCategory(ctx, scope, category, topRankSize)
			if err != nil {
				return entity.CategoryReport{}, err
			}

			row.TopLocations, err = s.repo.TopLocationsByCategory(ctx, scope, category, topRankSize)
			if err != nil {
				return entity.CategoryReport{}, err
			}
		}

		report.Categories = append(report.Categories, row)
	}

	s.m.IncrementReportsGenerated()
	s.cacheSet(ctx, scope, cacheKey, report)

	return report, nil
}

func (s *Service) WorkersList(ctx context.Context, activeOnly bool) ([]entity.Worker, error) {
	return s.repo.WorkersList(ctx, activeOnly)
}

func (s *Service) LocationsList(ctx context.Context, activeOnly bool) ([]entity.Location, error) {
	return s.repo.LocationsList(ctx, activeOnly)
}

// SyncWorkers pulls the active roster from the HR service and upserts it by
// employee id. Nothing else in this service ever writes worker records.
func (s *Service) SyncWorkers(ctx context.Context) error {
	workers, err := s.hr.ActiveWorkers(ctx)
	if err != nil {
		return fmt.Errorf("fetch hr roster: %w", err)
	}

	now := time.Now()

	for i := range workers {
		workers[i].ID = uuid.Must(uuid.NewV4())
		workers[i].CreatedAt = now
		workers[i].UpdatedAt = now
	}

	err = s.repo.UpsertWorkers(ctx, workers...)
	if err != nil {
		return fmt.Errorf("upsert workers: %w", err)
	}

	slog.InfoContext(ctx, "hr roster synced", "workers", len(workers))

	return nil
}

func reportCacheKey(report string, scope entity.ReportScope) string {
	category := ""
	if scope.Category != nil {
		category = scope.Category.String()
	}

	return fmt.Sprintf("report:%s:%d-%02d:%s:%s",
		report, scope.Period.Year, int(scope.Period.Month), scope.Zone, category)
}

func (s *Service) cacheGet(ctx context.Context, scope entity.ReportScope, key string, dest any) bool {
	if s.cache == nil || !scope.Period.Elapsed(time.Now()) {
		return false
	}

	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		slog.WarnContext(ctx, "report cache read failed", "key", key, "error", err)
		return false
	}

	if hit {
		s.m.IncrementReportCacheHits()
	}

	return hit
}

func (s *Service) cacheSet(ctx context.Context, scope entity.ReportScope, key string, value any) {
	if s.cache == nil || !scope.Period.Elapsed(time.Now()) {
		return
	}

	err := s.cache.Set(ctx, key, value, s.reportCacheTTL)
	if err != nil {
		slog.WarnContext(ctx, "report cache write failed", "key", key, "error", err)
	}
}

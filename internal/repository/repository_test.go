package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sitesafe/violations/internal/entity"
	"github.com/sitesafe/violations/internal/repository"
	"github.com/stretchr/testify/require"
)

func seedWorker(t *testing.T, repo *repository.Repository, employeeID, name string) entity.Worker {
	t.Helper()

	now := time.Now().Truncate(time.Millisecond)

	worker := entity.Worker{
		ID:         uuid.Must(uuid.NewV4()),
		EmployeeID: employeeID,
		FullName:   name,
		Department: "Монтажный участок",
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := repo.UpsertWorkers(context.Background(), worker)
	require.NoError(t, err)

	return worker
}

func seedLocation(t *testing.T, repo *repository.Repository, deviceID, zone string) entity.Location {
	t.Helper()

	now := time.Now().Truncate(time.Millisecond)

	location := entity.Location{
		ID:        uuid.Must(uuid.NewV4()),
		DeviceID:  deviceID,
		Zone:      zone,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.UpsertLocations(context.Background(), location)
	require.NoError(t, err)

	return location
}

func seedViolation(
	t *testing.T,
	repo *repository.Repository,
	worker entity.Worker,
	location entity.Location,
	category entity.Category,
	status entity.ViolationStatus,
	detectedAt time.Time,
) entity.ViolationRow {
	t.Helper()

	now := time.Now().Truncate(time.Millisecond)

	row, err := repo.CreateViolation(context.Background(), entity.Violation{
		ID:          uuid.Must(uuid.NewV4()),
		WorkerID:    worker.ID,
		LocationID:  location.ID,
		Category:    category,
		EvidenceURL: "s3://evidence/" + uuid.Must(uuid.NewV4()).String() + ".jpg",
		Confidence:  decimal.RequireFromString("92.50"),
		DetectedAt:  detectedAt,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)

	return row
}

func TestRepository_CreateViolation(t *testing.T) {
	repo := repository.New(repository.SetupTestDatabase(t))
	ctx := context.Background()

	worker := seedWorker(t, repo, "EMP001", "Иванов Иван")
	location := seedLocation(t, repo, "cam-001", "Цех А")

	detectedAt := time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)
	confidence := decimal.RequireFromString("87.25")

	violation := entity.Violation{
		ID:          uuid.Must(uuid.NewV4()),
		WorkerID:    worker.ID,
		LocationID:  location.ID,
		Category:    entity.CategoryHelmet,
		EvidenceURL: "s3://evidence/frame-001.jpg",
		Confidence:  confidence,
		DetectedAt:  detectedAt,
		Status:      entity.StatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	created, err := repo.CreateViolation(ctx, violation)
	require.NoError(t, err)
	require.Equal(t, violation.ID, created.ID)
	require.Equal(t, entity.StatusPending, created.Status)
	require.Nil(t, created.Note)
	require.Equal(t, "EMP001", created.EmployeeID)
	require.Equal(t, "Иванов Иван", created.WorkerName)
	require.Equal(t, "Цех А", created.Zone)
	require.True(t, confidence.Equal(created.Confidence))
	require.True(t, detectedAt.Equal(created.DetectedAt))

	got, err := repo.ViolationByID(ctx, violation.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestRepository_CreateViolation_UnknownReferences(t *testing.T) {
	repo := repository.New(repository.SetupTestDatabase(t))
	ctx := context.Background()

	worker := seedWorker(t, repo, "EMP001", "Иванов Иван")
	location := seedLocation(t, repo, "cam-001", "Цех А")

	violation := entity.Violation{
		ID:          uuid.Must(uuid.NewV4()),
		WorkerID:    uuid.Must(uuid.NewV4()),
		LocationID:  location.ID,
		Category:    entity.CategoryVest,
		EvidenceURL: "s3://evidence/frame-002.jpg",
		Confidence:  decimal.RequireFromString("90.00"),
		DetectedAt:  time.Now().UTC(),
		Status:      entity.StatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	_, err := repo.CreateViolation(ctx, violation)
	require.ErrorIs(t, err, entity.ErrWorkerNotFound)

	// the failed create must leave no partial record behind
	_, err = repo.ViolationByID(ctx, violation.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	violation.WorkerID = worker.ID
	violation.LocationID = uuid.Must(uuid.NewV4())

	_, err = repo.CreateViolation(ctx, violation)
	require.ErrorIs(t, err, entity.ErrLocationNotFound)
}

func TestRepository_ViolationsListByFilter(t *testing.T) { //nolint:funlen
	repo := repository.New(repository.SetupTestDatabase(t))
	ctx := context.Background()

	workerA := seedWorker(t, repo, "EMP001", "Иванов Иван")
	workerB := seedWorker(t, repo, "EMP002", "Петров Пётр")
	locationA := seedLocation(t, repo, "cam-001", "Цех А")
	locationB := seedLocation(t, repo, "cam-002", "Цех Б")

	v1 := seedViolation(t, repo, workerA, locationA, entity.CategoryHelmet, entity.StatusPending,
		time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC))
	v2 := seedViolation(t, repo, workerA, locationA, entity.CategoryVest, entity.StatusResolved,
		time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC))
	v3 := seedViolation(t, repo, workerB, locationB, entity.CategoryHelmet, entity.StatusPending,
		time.Date(2024, time.January, 31, 23, 59, 0, 0, time.UTC))
	v4 := seedViolation(t, repo, workerB, locationB, entity.CategoryGloves, entity.StatusAcknowledged,
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))

	base := entity.ViolationsFilter{
		Page:    1,
		Limit:   10,
		SortBy:  entity.SortByDetectedAt,
		OrderBy: entity.ASC,
	}

	helmet := entity.CategoryHelmet
	pending := entity.StatusPending
	dateFrom := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	// inclusive day 2024-01-31 normalized to the exclusive bound 2024-02-01
	dateTo := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		filter         func(f entity.ViolationsFilter) entity.ViolationsFilter
		wantIDs        []uuid.UUID
		wantTotalCount int
	}{
		{
			name:           "no filters",
			filter:         func(f entity.ViolationsFilter) entity.ViolationsFilter { return f },
			wantIDs:        []uuid.UUID{v1.ID, v2.ID, v3.ID, v4.ID},
			wantTotalCount: 4,
		},
		{
			name: "by zone",
			filter: func(f entity.ViolationsFilter) entity.ViolationsFilter {
				f.Zone = "Цех А"
				return f
			},
			wantIDs:        []uuid.UUID{v1.ID, v2.ID},
			wantTotalCount: 2,
		},
		{
			name: "by category",
			filter: func(f entity.ViolationsFilter) entity.ViolationsFilter {
				f.Category = &helmet
				return f
			},
			wantIDs:        []uuid.UUID{v1.ID, v3.ID},
			wantTotalCount: 2,
		},
		{
			name: "by worker",
			filter: func(f entity.ViolationsFilter) entity.ViolationsFilter {
				f.WorkerID = &workerB.ID
				return f
			},
			wantIDs:        []uuid.UUID{v3.ID, v4.ID},
			wantTotalCount: 2,
		},
		{
			name: "by status",
			filter: func(f entity.ViolationsFilter) entity.ViolationsFilter {
				f.Status = &pending
				return f
			},
			wantIDs:        []uuid.UUID{v1.ID, v3.ID},
			wantTotalCount: 2,
		},
		{
			name: "date from is inclusive",
			filter: func(f entity.ViolationsFilter) entity.ViolationsFilter {
				f.DateFrom = &dateFrom
				return f
			},
			wantIDs:        []uuid.UUID{v2.ID, v3.ID, v4.ID},
			wantTotalCount: 3,
		},
		{
			name: "date to keeps the whole last day",
			filter: func(f entity.ViolationsFilter) entity.ViolationsFilter {
				f.DateTo = &dateTo
				return f
			},
			wantIDs:        []uuid.UUID{v1.ID, v2.ID, v3.ID},
			wantTotalCount: 3,
		},
		{
			name: "first page keeps full total count",
			filter: func(f entity.ViolationsFilter) entity.ViolationsFilter {
				f.Limit = 2
				return f
			},
			wantIDs:        []uuid.UUID{v1.ID, v2.ID},
			wantTotalCount: 4,
		},
		{
			name: "second page keeps full total count",
			filter: func(f entity.ViolationsFilter) entity.ViolationsFilter {
				f.Page = 2
				f.Limit = 2
				return f
			},
			wantIDs:        []uuid.UUID{v3.ID, v4.ID},
			wantTotalCount: 4,
		},
		{
			name: "page past the end is empty, not an error",
			filter: func(f entity.ViolationsFilter) entity.ViolationsFilter {
				f.Page = 5
				f.Limit = 2
				return f
			},
			wantIDs:        []uuid.UUID{},
			wantTotalCount: 4,
		},
		{
			name: "sort by detected_at desc",
			filter: func(f entity.ViolationsFilter) entity.ViolationsFilter {
				f.OrderBy = entity.DESC
				return f
			},
			wantIDs:        []uuid.UUID{v4.ID, v3.ID, v2.ID, v1.ID},
			wantTotalCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, totalCount, err := repo.ViolationsListByFilter(ctx, tt.filter(base))
			require.NoError(t, err)
			require.Equal(t, tt.wantTotalCount, totalCount)

			gotIDs := make([]uuid.UUID, 0, len(rows))
			for _, row := range rows {
				gotIDs = append(gotIDs, row.ID)
			}

			require.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestRepository_UpdateViolation(t *testing.T) {
	repo := repository.New(repository.SetupTestDatabase(t))
	ctx := context.Background()

	worker := seedWorker(t, repo, "EMP001", "Иванов Иван")
	location := seedLocation(t, repo, "cam-001", "Цех А")

	created := seedViolation(t, repo, worker, location, entity.CategoryMask, entity.StatusPending,
		time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC))

	resolved := entity.StatusResolved
	pending := entity.StatusPending
	note := "Работник предупреждён"

	got, err := repo.UpdateViolation(ctx, created.ID, entity.ViolationUpdate{Status: &resolved})
	require.NoError(t, err)
	require.Equal(t, entity.StatusResolved, got.Status)
	require.Nil(t, got.Note)

	got, err = repo.UpdateViolation(ctx, created.ID, entity.ViolationUpdate{Note: &note})
	require.NoError(t, err)
	require.Equal(t, entity.StatusResolved, got.Status)
	require.NotNil(t, got.Note)
	require.Equal(t, note, *got.Note)

	// transitions are not ordered: resolved may go back to pending
	got, err = repo.UpdateViolation(ctx, created.ID, entity.ViolationUpdate{Status: &pending})
	require.NoError(t, err)
	require.Equal(t, entity.StatusPending, got.Status)
	require.Equal(t, note, *got.Note)

	// repeating the identical update is idempotent on the visible state
	again, err := repo.UpdateViolation(ctx, created.ID, entity.ViolationUpdate{Status: &pending})
	require.NoError(t, err)
	require.Equal(t, got.Status, again.Status)
	require.Equal(t, *got.Note, *again.Note)
	require.Equal(t, got.DetectedAt, again.DetectedAt)

	unchanged, err := repo.UpdateViolation(ctx, created.ID, entity.ViolationUpdate{})
	require.NoError(t, err)
	require.Equal(t, got, unchanged)

	_, err = repo.UpdateViolation(ctx, uuid.Must(uuid.NewV4()), entity.ViolationUpdate{Status: &resolved})
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_DashboardSummary(t *testing.T) {
	repo := repository.New(repository.SetupTestDatabase(t))
	ctx := context.Background()

	worker := seedWorker(t, repo, "EMP001", "Иванов Иван")
	location := seedLocation(t, repo, "cam-001", "Цех А")

	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	seedViolation(t, repo, worker, location, entity.CategoryHelmet, entity.StatusPending,
		time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
	seedViolation(t, repo, worker, location, entity.CategoryVest, entity.StatusResolved,
		time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC))
	seedViolation(t, repo, worker, location, entity.CategoryMask, entity.StatusPending,
		time.Date(2024, time.March, 14, 23, 59, 59, 0, time.UTC))

	summary, err := repo.DashboardSummary(ctx, now)
	require.NoError(t, err)

	require.Equal(t, 2, summary.TotalToday)
	require.Equal(t, 2, summary.PendingCount)
	require.Equal(t, entity.CategoryCounts{Helmet: 1, Vest: 1, Mask: 1, Gloves: 0}, summary.CountsByCategory)
}

func TestRepository_WorkerReportRows(t *testing.T) {
	repo := repository.New(repository.SetupTestDatabase(t))
	ctx := context.Background()

	workerA := seedWorker(t, repo, "EMP001", "Иванов Иван")
	workerB := seedWorker(t, repo, "EMP002", "Петров Пётр")
	location := seedLocation(t, repo, "cam-001", "Цех А")

	seedViolation(t, repo, workerA, location, entity.CategoryHelmet, entity.StatusPending,
		time.Date(2024, time.January, 5, 8, 0, 0, 0, time.UTC))
	seedViolation(t, repo, workerA, location, entity.CategoryHelmet, entity.StatusPending,
		time.Date(2024, time.January, 6, 8, 0, 0, 0, time.UTC))
	seedViolation(t, repo, workerA, location, entity.CategoryVest, entity.StatusResolved,
		time.Date(2024, time.January, 8, 8, 0, 0, 0, time.UTC))
	seedViolation(t, repo, workerB, location, entity.CategoryHelmet, entity.StatusPending,
		time.Date(2024, time.January, 7, 8, 0, 0, 0, time.UTC))
	// next month, must not leak into the January report
	seedViolation(t, repo, workerB, location, entity.CategoryHelmet, entity.StatusPending,
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))

	scope := entity.ReportScope{Period: entity.ReportPeriod{Year: 2024, Month: time.January}}

	rows, err := repo.WorkerReportRows(ctx, scope)
	require.NoError(t, err)

	require.Equal(t, []entity.WorkerReportRow{
		{
			WorkerID:        workerA.ID,
			EmployeeID:      "EMP001",
			WorkerName:      "Иванов Иван",
			Department:      "Монтажный участок",
			TotalViolations: 3,
			Counts:          entity.CategoryCounts{Helmet: 2, Vest: 1},
		},
		{
			WorkerID:        workerB.ID,
			EmployeeID:      "EMP002",
			WorkerName:      "Петров Пётр",
			Department:      "Монтажный участок",
			TotalViolations: 1,
			Counts:          entity.CategoryCounts{Helmet: 1},
		},
	}, rows)

	// a worker without qualifying violations does not get a zero row
	empty, err := repo.WorkerReportRows(ctx,
		entity.ReportScope{Period: entity.ReportPeriod{Year: 2023, Month: time.December}})
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestRepository_CategoryAggregates(t *testing.T) {
	repo := repository.New(repository.SetupTestDatabase(t))
	ctx := context.Background()

	workerA := seedWorker(t, repo, "EMP001", "Иванов Иван")
	workerB := seedWorker(t, repo, "EMP002", "Петров Пётр")
	locationA := seedLocation(t, repo, "cam-001", "Цех А")
	locationB := seedLocation(t, repo, "cam-002", "Цех Б")

	seedViolation(t, repo, workerA, locationA, entity.CategoryHelmet, entity.StatusPending,
		time.Date(2024, time.January, 5, 8, 0, 0, 0, time.UTC))
	seedViolation(t, repo, workerA, locationA, entity.CategoryHelmet, entity.StatusPending,
		time.Date(2024, time.January, 6, 8, 0, 0, 0, time.UTC))
	seedViolation(t, repo, workerB, locationB, entity.CategoryHelmet, entity.StatusPending,
		time.Date(2024, time.January, 7, 8, 0, 0, 0, time.UTC))
	seedViolation(t, repo, workerA, locationA, entity.CategoryVest, entity.StatusResolved,
		time.Date(2024, time.January, 8, 8, 0, 0, 0, time.UTC))

	scope := entity.ReportScope{Period: entity.ReportPeriod{Year: 2024, Month: time.January}}

	totals, err := repo.CategoryTotals(ctx, scope)
	require.NoError(t, err)
	require.Equal(t, entity.CategoryCounts{Helmet: 3, Vest: 1}, totals)

	// two distinct offenders with limit 5: the ranking is short, never padded
	topWorkers, err := repo.TopWorkersByCategory(ctx, scope, entity.CategoryHelmet, 5)
	require.NoError(t, err)
	require.Equal(t, []entity.RankedWorker{
		{WorkerID: workerA.ID, EmployeeID: "EMP001", WorkerName: "Иванов Иван", Count: 2},
		{WorkerID: workerB.ID, EmployeeID: "EMP002", WorkerName: "Петров Пётр", Count: 1},
	}, topWorkers)

	topLocations, err := repo.TopLocationsByCategory(ctx, scope, entity.CategoryHelmet, 5)
	require.NoError(t, err)
	require.Equal(t, []entity.RankedLocation{
		{LocationID: locationA.ID, Zone: "Цех А", Count: 2},
		{LocationID: locationB.ID, Zone: "Цех Б", Count: 1},
	}, topLocations)

	// zone narrowing applies to raw rows before aggregation
	scope.Zone = "Цех Б"

	totals, err = repo.CategoryTotals(ctx, scope)
	require.NoError(t, err)
	require.Equal(t, entity.CategoryCounts{Helmet: 1}, totals)

	topWorkers, err = repo.TopWorkersByCategory(ctx, scope, entity.CategoryHelmet, 5)
	require.NoError(t, err)
	require.Equal(t, []entity.RankedWorker{
		{WorkerID: workerB.ID, EmployeeID: "EMP002", WorkerName: "Петров Пётр", Count: 1},
	}, topWorkers)
}

func TestRepository_WorkersList(t *testing.T) {
	repo := repository.New(repository.SetupTestDatabase(t))
	ctx := context.Background()

	active := seedWorker(t, repo, "EMP001", "Иванов Иван")

	now := time.Now().Truncate(time.Millisecond)

	inactive := entity.Worker{
		ID:         uuid.Must(uuid.NewV4()),
		EmployeeID: "EMP002",
		FullName:   "Петров Пётр",
		Department: "Монтажный участок",
		Active:     false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := repo.UpsertWorkers(ctx, inactive)
	require.NoError(t, err)

	workers, err := repo.WorkersList(ctx, false)
	require.NoError(t, err)
	require.Len(t, workers, 2)

	workers, err = repo.WorkersList(ctx, true)
	require.NoError(t, err)
	require.Len(t, workers, 1)
	require.Equal(t, active.ID, workers[0].ID)

	// a second upsert with the same employee id updates in place
	renamed := inactive
	renamed.ID = uuid.Must(uuid.NewV4())
	renamed.FullName = "Петров Пётр Петрович"
	renamed.Active = true

	err = repo.UpsertWorkers(ctx, renamed)
	require.NoError(t, err)

	workers, err = repo.WorkersList(ctx, true)
	require.NoError(t, err)
	require.Len(t, workers, 2)
	require.Equal(t, inactive.ID, workers[1].ID)
	require.Equal(t, "Петров Пётр Петрович", workers[1].FullName)
}

func TestRepository_LocationsList(t *testing.T) {
	repo := repository.New(repository.SetupTestDatabase(t))
	ctx := context.Background()

	seedLocation(t, repo, "cam-001", "Цех А")

	now := time.Now().Truncate(time.Millisecond)

	err := repo.UpsertLocations(ctx, entity.Location{
		ID:        uuid.Must(uuid.NewV4()),
		DeviceID:  "cam-002",
		Zone:      "Цех Б",
		Active:    false,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	locations, err := repo.LocationsList(ctx, false)
	require.NoError(t, err)
	require.Len(t, locations, 2)

	locations, err = repo.LocationsList(ctx, true)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	require.Equal(t, "Цех А", locations[0].Zone)
}

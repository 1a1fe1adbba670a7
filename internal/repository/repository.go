package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitesafe/violations/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) ViolationByID(ctx context.Context, violationID uuid.UUID) (entity.ViolationRow, error) {
	sqlQuery := selectViolations + ` WHERE v.id = $1`

	row, err := scanViolationRow(r.db.QueryRow(ctx, sqlQuery, violationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ViolationRow{}, entity.ErrNotFound
		}

		return entity.ViolationRow{}, err
	}

	return row, nil
}

// ViolationsListByFilter returns one page of shaped violation rows plus the
// count of all rows matching the predicate set, independent of the page
// window. A page past the end comes back as an empty list, not an error.
func (r *Repository) ViolationsListByFilter(
	ctx context.Context, filter entity.ViolationsFilter) ([]entity.ViolationRow, int, error) {
	countStmt := applyViolationsWhere(
		sq.Select("count(*)").
			From("violations v").
			Join(joinWorkers).
			Join(joinLocations).
			PlaceholderFormat(sq.Dollar),
		filter,
	)

	sqlQuery, args, err := countStmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	if count == 0 {
		return []entity.ViolationRow{}, 0, nil
	}

	stmt := applyViolationsPage(
		applyViolationsWhere(
			sq.Select(violationColumns...).
				From("violations v").
				Join(joinWorkers).
				Join(joinLocations).
				PlaceholderFormat(sq.Dollar),
			filter,
		),
		filter,
	)

	sqlQuery, args, err = stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	violations := make([]entity.ViolationRow, 0, filter.Limit)

	for rows.Next() {
		violation, err := scanViolationRow(rows)
		if err != nil {
			return nil, 0, err
		}

		violations = append(violations, violation)
	}

	return violations, count, rows.Err()
}

func applyViolationsWhere(stmt sq.SelectBuilder, f entity.ViolationsFilter) sq.SelectBuilder {
	if f.Zone != "" {
		stmt = stmt.Where(sq.Eq{"l.zone": f.Zone})
	}

	if f.Category != nil {
		stmt = stmt.Where(sq.Eq{"v.category": *f.Category})
	}

	if f.WorkerID != nil {
		stmt = stmt.Where(sq.Eq{"v.worker_id": *f.WorkerID})
	}

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"v.status": *f.Status})
	}

	if f.DateFrom != nil {
		stmt = stmt.Where(sq.GtOrEq{"v.detected_at": *f.DateFrom})
	}

	if f.DateTo != nil {
		// Exclusive upper bound, already normalized to the following
		// midnight for day-granular input.
		stmt = stmt.Where(sq.Lt{"v.detected_at": *f.DateTo})
	}

	return stmt
}

func applyViolationsPage(stmt sq.SelectBuilder, f entity.ViolationsFilter) sq.SelectBuilder {
	sortColumn := map[entity.ViolationsSortBy]string{
		entity.SortByDetectedAt: "v.detected_at",
		entity.SortByWorker:     "v.worker_id",
		entity.SortByZone:       "l.zone",
	}[f.SortBy]

	stmt = stmt.OrderBy(fmt.Sprintf("%s %s", sortColumn, f.OrderBy))
	stmt = stmt.Limit(f.Limit)
	stmt = stmt.Offset((f.Page - 1) * f.Limit)

	return stmt
}

// CreateViolation inserts a violation after checking that both references
// resolve. The whole operation runs in one transaction: a failed existence
// check leaves no partial record behind.
func (r *Repository) CreateViolation(ctx context.Context, violation entity.Violation) (entity.ViolationRow, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.ViolationRow{}, err
	}

	defer tx.Rollback(ctx)

	var workerExists, locationExists bool

	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM workers WHERE id = $1), EXISTS (SELECT 1 FROM locations WHERE id = $2)`,
		violation.WorkerID, violation.LocationID,
	).Scan(&workerExists, &locationExists)
	if err != nil {
		return entity.ViolationRow{}, err
	}

	if !workerExists {
		return entity.ViolationRow{}, fmt.Errorf("%w: %s", entity.ErrWorkerNotFound, violation.WorkerID)
	}

	if !locationExists {
		return entity.ViolationRow{}, fmt.Errorf("%w: %s", entity.ErrLocationNotFound, violation.LocationID)
	}

	sqlQuery :=
		`INSERT INTO violations
			(id, worker_id, location_id, category, evidence_url, confidence, detected_at, status, note, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = tx.Exec(ctx, sqlQuery,
		violation.ID,
		violation.WorkerID,
		violation.LocationID,
		violation.Category,
		violation.EvidenceURL,
		violation.Confidence,
		violation.DetectedAt,
		violation.Status,
		violation.Note,
		violation.CreatedAt,
		violation.UpdatedAt,
	)
	if err != nil {
		return entity.ViolationRow{}, err
	}

	row, err := scanViolationRow(tx.QueryRow(ctx, selectViolations+` WHERE v.id = $1`, violation.ID))
	if err != nil {
		return entity.ViolationRow{}, err
	}

	return row, tx.Commit(ctx)
}

// UpdateViolation applies a partial status/note update as a single UPDATE
// statement, so a concurrent reader never observes half of it. An empty
// update is a no-op that returns the current row.
func (r *Repository) UpdateViolation(
	ctx context.Context, violationID uuid.UUID, upd entity.ViolationUpdate) (entity.ViolationRow, error) {
	if upd.IsEmpty() {
		return r.ViolationByID(ctx, violationID)
	}

	stmt := sq.Update("violations").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": violationID}).
		PlaceholderFormat(sq.Dollar)

	if upd.Status != nil {
		stmt = stmt.Set("status", *upd.Status)
	}

	if upd.Note != nil {
		stmt = stmt.Set("note", *upd.Note)
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return entity.ViolationRow{}, err
	}

	tag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return entity.ViolationRow{}, err
	}

	if tag.RowsAffected() == 0 {
		return entity.ViolationRow{}, entity.ErrNotFound
	}

	return r.ViolationByID(ctx, violationID)
}

// DashboardSummary recomputes the polled counters on every call: today's
// detections in the [midnight, midnight) UTC window, pending violations
// across all time, and all-time counts per category.
func (r *Repository) DashboardSummary(ctx context.Context, now time.Time) (entity.DashboardSummary, error) {
	dayStart := now.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	var summary entity.DashboardSummary

	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM violations WHERE detected_at >= $1 AND detected_at < $2`,
		dayStart, dayEnd,
	).Scan(&summary.TotalToday)
	if err != nil {
		return entity.DashboardSummary{}, err
	}

	err = r.db.QueryRow(ctx,
		`SELECT count(*) FROM violations WHERE status = $1`, entity.StatusPending,
	).Scan(&summary.PendingCount)
	if err != nil {
		return entity.DashboardSummary{}, err
	}

	err = r.db.QueryRow(ctx,
		`SELECT
			count(*) FILTER (WHERE category = 'helmet'),
			count(*) FILTER (WHERE category = 'vest'),
			count(*) FILTER (WHERE category = 'mask'),
			count(*) FILTER (WHERE category = 'gloves')
		FROM violations`,
	).Scan(
		&summary.CountsByCategory.Helmet,
		&summary.CountsByCategory.Vest,
		&summary.CountsByCategory.Mask,
		&summary.CountsByCategory.Gloves,
	)
	if err != nil {
		return entity.DashboardSummary{}, err
	}

	return summary, nil
}

// WorkerReportRows aggregates the period's violations per worker. Workers
// without a qualifying violation produce no row, so the result is already
// the filtered set the by-worker report needs.
func (r *Repository) WorkerReportRows(ctx context.Context, scope entity.ReportScope) ([]entity.WorkerReportRow, error) {
	stmt := applyReportScope(
		sq.Select(
			"w.id",
			"w.employee_id",
			"w.full_name",
			"w.department",
			"count(*) AS total",
			"count(*) FILTER (WHERE v.category = 'helmet') AS helmet",
			"count(*) FILTER (WHERE v.category = 'vest') AS vest",
			"count(*) FILTER (WHERE v.category = 'mask') AS mask",
			"count(*) FILTER (WHERE v.category = 'gloves') AS gloves",
		).
			From("violations v").
			Join(joinWorkers).
			Join(joinLocations).
			GroupBy("w.id", "w.employee_id", "w.full_name", "w.department").
			OrderBy("total DESC").
			PlaceholderFormat(sq.Dollar),
		scope,
	)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	report := make([]entity.WorkerReportRow, 0)

	for rows.Next() {
		var row entity.WorkerReportRow

		err = rows.Scan(
			&row.WorkerID,
			&row.EmployeeID,
			&row.WorkerName,
			&row.Department,
			&row.TotalViolations,
			&row.Counts.Helmet,
			&row.Counts.Vest,
			&row.Counts.Mask,
			&row.Counts.Gloves,
		)
		if err != nil {
			return nil, err
		}

		report = append(report, row)
	}

	return report, rows.Err()
}

// CategoryTotals counts the period's violations per category under the
// given scope.
func (r *Repository) CategoryTotals(ctx context.Context, scope entity.ReportScope) (entity.CategoryCounts, error) {
	stmt := applyReportScope(
		sq.Select(
			"count(*) FILTER (WHERE v.category = 'helmet')",
			"count(*) FILTER (WHERE v.category = 'vest')",
			"count(*) FILTER (WHERE v.category = 'mask')",
			"count(*) FILTER (WHERE v.category = 'gloves')",
		).
			From("violations v").
			Join(joinWorkers).
			Join(joinLocations).
			PlaceholderFormat(sq.Dollar),
		scope,
	)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return entity.CategoryCounts{}, err
	}

	var counts entity.CategoryCounts

	err = r.db.QueryRow(ctx, sqlQuery, args...).
		Scan(&counts.Helmet, &counts.Vest, &counts.Mask, &counts.Gloves)
	if err != nil {
		return entity.CategoryCounts{}, err
	}

	return counts, nil
}

// TopWorkersByCategory ranks workers by violation count within one category
// and period. Fewer than limit distinct workers yield a shorter list.
func (r *Repository) TopWorkersByCategory(
	ctx context.Context, scope entity.ReportScope, category entity.Category, limit uint64) ([]entity.RankedWorker, error) {
	stmt := applyReportScope(
		sq.Select("w.id", "w.employee_id", "w.full_name", "count(*) AS total").
			From("violations v").
			Join(joinWorkers).
			Join(joinLocations).
			Where(sq.Eq{"v.category": category}).
			GroupBy("w.id", "w.employee_id", "w.full_name").
			OrderBy("total DESC").
			Limit(limit).
			PlaceholderFormat(sq.Dollar),
		scope,
	)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	ranked := make([]entity.RankedWorker, 0, limit)

	for rows.Next() {
		var rw entity.RankedWorker

		err = rows.Scan(&rw.WorkerID, &rw.EmployeeID, &rw.WorkerName, &rw.Count)
		if err != nil {
			return nil, err
		}

		ranked = append(ranked, rw)
	}

	return ranked, rows.Err()
}

func (r *Repository) TopLocationsByCategory(
	ctx context.Context, scope entity.ReportScope, category entity.Category, limit uint64) ([]entity.RankedLocation, error) {
	stmt := applyReportScope(
		sq.Select("l.id", "l.zone", "count(*) AS total").
			From("violations v").
			Join(joinWorkers).
			Join(joinLocations).
			Where(sq.Eq{"v.category": category}).
			GroupBy("l.id", "l.zone").
			OrderBy("total DESC").
			Limit(limit).
			PlaceholderFormat(sq.Dollar),
		scope,
	)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	ranked := make([]entity.RankedLocation, 0, limit)

	for rows.Next() {
		var rl entity.RankedLocation

		err = rows.Scan(&rl.LocationID, &rl.Zone, &rl.Count)
		if err != nil {
			return nil, err
		}

		ranked = append(ranked, rl)
	}

	return ranked, rows.Err()
}

// applyReportScope narrows the raw violation set before any aggregation
// happens. The category narrowing here composes with the per-category
// predicates of the top-N queries.
func applyReportScope(stmt sq.SelectBuilder, scope entity.ReportScope) sq.SelectBuilder {
	from, until := scope.Period.Bounds()

	stmt = stmt.Where(sq.GtOrEq{"v.detected_at": from})
	stmt = stmt.Where(sq.Lt{"v.detected_at": until})

	if scope.Zone != "" {
		stmt = stmt.Where(sq.Eq{"l.zone": scope.Zone})
	}

	if scope.Category != nil {
		stmt = stmt.Where(sq.Eq{"v.category": *scope.Category})
	}

	return stmt
}

func (r *Repository) WorkersList(ctx context.Context, activeOnly bool) ([]entity.Worker, error) {
	sqlQuery := `
		SELECT id, employee_id, full_name, department, active, created_at, updated_at
		FROM workers`

	if activeOnly {
		sqlQuery += ` WHERE active`
	}

	sqlQuery += ` ORDER BY employee_id`

	rows, err := r.db.Query(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	workers := make([]entity.Worker, 0)

	for rows.Next() {
		var w entity.Worker

		err = rows.Scan(&w.ID, &w.EmployeeID, &w.FullName, &w.Department, &w.Active, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return nil, err
		}

		workers = append(workers, w)
	}

	return workers, rows.Err()
}

func (r *Repository) LocationsList(ctx context.Context, activeOnly bool) ([]entity.Location, error) {
	sqlQuery := `
		SELECT id, device_id, zone, active, created_at, updated_at
		FROM locations`

	if activeOnly {
		sqlQuery += ` WHERE active`
	}

	sqlQuery += ` ORDER BY zone`

	rows, err := r.db.Query(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	locations := make([]entity.Location, 0)

	for rows.Next() {
		var l entity.Location

		err = rows.Scan(&l.ID, &l.DeviceID, &l.Zone, &l.Active, &l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return nil, err
		}

		locations = append(locations, l)
	}

	return locations, rows.Err()
}

// UpsertWorkers applies the HR roster snapshot keyed by employee id. The
// roster is the only writer of worker records.
func (r *Repository) UpsertWorkers(ctx context.Context, workers ...entity.Worker) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	sqlQuery :=
		`INSERT INTO workers
			(id, employee_id, full_name, department, active, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			department = EXCLUDED.department,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`

	for _, w := range workers {
		_, err = tx.Exec(ctx, sqlQuery,
			w.ID,
			w.EmployeeID,
			w.FullName,
			w.Department,
			w.Active,
			w.CreatedAt,
			w.UpdatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// UpsertLocations applies the camera registry snapshot keyed by device id.
func (r *Repository) UpsertLocations(ctx context.Context, locations ...entity.Location) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	sqlQuery :=
		`INSERT INTO locations
			(id, device_id, zone, active, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6)
		ON CONFLICT (device_id) DO UPDATE SET
			zone = EXCLUDED.zone,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`

	for _, l := range locations {
		_, err = tx.Exec(ctx, sqlQuery,
			l.ID,
			l.DeviceID,
			l.Zone,
			l.Active,
			l.CreatedAt,
			l.UpdatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanViolationRow(row rowScanner) (entity.ViolationRow, error) {
	var v entity.ViolationRow

	err := row.Scan(
		&v.ID,
		&v.WorkerID,
		&v.LocationID,
		&v.Category,
		&v.EvidenceURL,
		&v.Confidence,
		&v.DetectedAt,
		&v.Status,
		&v.Note,
		&v.CreatedAt,
		&v.UpdatedAt,
		&v.EmployeeID,
		&v.WorkerName,
		&v.Zone,
	)
	if err != nil {
		return entity.ViolationRow{}, err
	}

	return v, nil
}

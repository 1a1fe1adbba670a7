package repository

const (
	selectViolations = `SELECT
		v.id,
		v.worker_id,
		v.location_id,
		v.category,
		v.evidence_url,
		v.confidence,
		v.detected_at,
		v.status,
		v.note,
		v.created_at,
		v.updated_at,
		w.employee_id,
		w.full_name,
		l.zone
	FROM violations v
	JOIN workers w ON w.id = v.worker_id
	JOIN locations l ON l.id = v.location_id`

	joinWorkers   = "workers w ON w.id = v.worker_id"
	joinLocations = "locations l ON l.id = v.location_id"
)

// violationColumns is the shaped-row column list for squirrel-built queries.
// It must stay in sync with scanViolationRow.
var violationColumns = []string{
	"v.id",
	"v.worker_id",
	"v.location_id",
	"v.category",
	"v.evidence_url",
	"v.confidence",
	"v.detected_at",
	"v.status",
	"v.note",
	"v.created_at",
	"v.updated_at",
	"w.employee_id",
	"w.full_name",
	"l.zone",
}

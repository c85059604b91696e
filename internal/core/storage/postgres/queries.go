package postgres

// SQL queries for couple-scoped event storage

const eventColumns = `
			couple_id, id, title, description, location, color,
			start_at, end_at, all_day, amount, recurrence,
			created_by, created_at, updated_at`

const (
	// querySaveEvent inserts an event keyed by (couple_id, id).
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates.
	querySaveEvent = `
		INSERT INTO events (` + eventColumns + `
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (couple_id, id) DO NOTHING
		RETURNING id
	`

	// queryUpdateEvent rewrites every mutable column. created_by and
	// created_at are immutable.
	queryUpdateEvent = `
		UPDATE events SET
			title = $3,
			description = $4,
			location = $5,
			color = $6,
			start_at = $7,
			end_at = $8,
			all_day = $9,
			amount = $10,
			recurrence = $11,
			updated_at = $12
		WHERE couple_id = $1 AND id = $2
	`

	queryGetEvent = `
		SELECT` + eventColumns + `
		FROM events
		WHERE couple_id = $1 AND id = $2
	`

	queryDeleteEvent = `
		DELETE FROM events
		WHERE couple_id = $1 AND id = $2
	`

	// queryListEventsInRange fetches the candidates for a viewport.
	// A series may produce occurrences anywhere after its start, so recurring
	// rows are bounded only by the window end; the engine does the rest.
	queryListEventsInRange = `
		SELECT` + eventColumns + `
		FROM events
		WHERE couple_id = $1
		  AND start_at <= $3
		  AND (recurrence IS NOT NULL OR COALESCE(end_at, start_at) >= $2)
		ORDER BY start_at ASC, id ASC
	`

	queryListEvents = `
		SELECT` + eventColumns + `
		FROM events
		WHERE couple_id = $1
		ORDER BY start_at ASC, id ASC
	`
)

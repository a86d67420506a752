package postgres

// SQL queries for aggregate query storage.
//
// UpdateStatus and Delete are single statements with RETURNING so each one
// reads and writes its row atomically; no explicit transaction is needed.

const selectColumns = `id, user_id, model, edit_status, execute_status, posted_at, patched_at`

const (
	// queryInsert stores a new query. posted_at and patched_at share $5.
	// The stored row is returned because jsonb may rewrite the model.
	queryInsert = `
		INSERT INTO aggregate_queries (
			user_id, model, edit_status, execute_status, posted_at, patched_at
		)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING ` + selectColumns + `
	`

	queryGet = `
		SELECT ` + selectColumns + `
		FROM aggregate_queries
		WHERE id = $1
	`

	queryList = `
		SELECT ` + selectColumns + `
		FROM aggregate_queries
		ORDER BY id ASC
	`

	queryListByUser = `
		SELECT ` + selectColumns + `
		FROM aggregate_queries
		WHERE user_id = $1
		ORDER BY id ASC
	`

	// queryUpdateStatus leaves a column untouched when its parameter is NULL.
	// patched_at always moves forward, by at least a microsecond, even if
	// the clock does not.
	queryUpdateStatus = `
		UPDATE aggregate_queries
		SET edit_status = COALESCE($2, edit_status),
		    execute_status = COALESCE($3, execute_status),
		    patched_at = GREATEST($4, patched_at + INTERVAL '1 microsecond')
		WHERE id = $1
		RETURNING ` + selectColumns + `
	`

	queryDelete = `
		DELETE FROM aggregate_queries
		WHERE id = $1
		RETURNING ` + selectColumns + `
	`

	querySchemaExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'aggregate_queries'
		)
	`
)

package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	v1 "github.com/emis-lab/aggregate-query/internal/api/v1"
)

func marshalModel(m v1.Model) ([]byte, error) {
	if m == nil {
		m = v1.Model{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model: %w", err)
	}
	return data, nil
}

// nullStatus maps an unset patch field to SQL NULL so COALESCE keeps the
// stored value.
func nullStatus[T ~string](s *T) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*s), Valid: true}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanQueryRow scans a database row into an AggregateQuery.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanQueryRow(row scanner) (*v1.AggregateQuery, error) {
	var q v1.AggregateQuery
	var modelJSON []byte
	var editStatus, executeStatus string

	err := row.Scan(
		&q.ID,
		&q.User,
		&modelJSON,
		&editStatus,
		&executeStatus,
		&q.PostedAt,
		&q.PatchedAt,
	)
	if err != nil {
		return nil, err
	}

	q.Model, err = v1.DecodeModel(modelJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal model: %w", err)
	}
	q.EditStatus = v1.EditStatus(editStatus)
	q.ExecuteStatus = v1.ExecuteStatus(executeStatus)
	q.PostedAt = q.PostedAt.UTC()
	q.PatchedAt = q.PatchedAt.UTC()

	return &q, nil
}

func scanQueryRows(rows *sql.Rows) ([]*v1.AggregateQuery, error) {
	defer rows.Close()

	queries := make([]*v1.AggregateQuery, 0)
	for rows.Next() {
		q, err := scanQueryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aggregate query row: %w", err)
		}
		queries = append(queries, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating aggregate queries: %w", err)
	}

	return queries, nil
}

package spa

import (
	"context"
	"database/sql"
)

var _ Store = (*PGStore)(nil)

// PGStore implements Store against the spas table in PostgreSQL.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Find(ctx context.Context, id int64) (*Spa, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, name, reference_no, status, updated_at from spas where id=$1`, id)
	var (
		rec    Spa
		status string
	)
	if err := row.Scan(&rec.ID, &rec.Name, &rec.ReferenceNo, &status, &rec.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// The raw value goes through as-is; PolicyFor fails closed on anything
	// outside the enumeration.
	rec.Status = Status(status)
	return &rec, nil
}

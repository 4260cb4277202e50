package auth

import (
	"context"
	"database/sql"
)

var _ UserStore = (*PGStore)(nil)

// PGStore implements UserStore against the admin_users table in PostgreSQL.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

const userColumns = `id, username, email, password_hash, role, full_name, phone, spa_id, is_active, last_login`

func (s *PGStore) FindActiveByUsername(ctx context.Context, username string) (*AdminUser, error) {
	row := s.db.QueryRowContext(ctx,
		`select `+userColumns+` from admin_users where username=$1 and is_active=true`, username)
	return scanUser(row)
}

func (s *PGStore) FindActiveByID(ctx context.Context, id int64) (*AdminUser, error) {
	row := s.db.QueryRowContext(ctx,
		`select `+userColumns+` from admin_users where id=$1 and is_active=true`, id)
	return scanUser(row)
}

func (s *PGStore) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		`update admin_users set last_login=current_timestamp where id=$1`, id)
	return err
}

func scanUser(row *sql.Row) (*AdminUser, error) {
	var (
		u         AdminUser
		secret    string
		spaID     sql.NullInt64
		lastLogin sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &secret, &u.Role,
		&u.FullName, &u.Phone, &spaID, &u.Active, &lastLogin); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// Resolve the secret format once, at fetch time.
	u.Secret = ClassifySecret(secret)
	if spaID.Valid {
		u.SpaID = spaID.Int64
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return &u, nil
}

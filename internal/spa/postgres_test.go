package spa

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGStoreFind(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "reference_no", "status", "updated_at"}).
		AddRow(int64(42), "Serenity Spa", "LSA-2025-0042", "approved", time.Now())
	mock.ExpectQuery("select id, name, reference_no, status, updated_at from spas").
		WithArgs(int64(42)).WillReturnRows(rows)

	store := NewPGStore(db)
	rec, err := store.Find(context.Background(), 42)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if rec.ID != 42 || rec.Status != StatusApproved {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreFindNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("select id, name, reference_no, status, updated_at from spas").
		WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id", "name", "reference_no", "status", "updated_at"}))

	store := NewPGStore(db)
	if _, err := store.Find(context.Background(), 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package controllers

import (
	"testing"
	"time"

	"inkstudio-backend/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newConflictTestDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("gorm.Open failed: %v", err)
	}

	orig := config.DB
	config.DB = gdb
	t.Cleanup(func() {
		config.DB = orig
		db.Close()
	})
	return mock
}

func TestHasArtistConflict(t *testing.T) {
	mock := newConflictTestDB(t)

	studioUUID := uuid.New()
	artistUUID := uuid.New()
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	// An existing booking occupying [base, base+1h) collides with a request
	// straddling its second half.
	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_time", "end_time"}).
			AddRow(uuid.New().String(), base, base.Add(time.Hour)))

	conflict, err := hasArtistConflict(studioUUID, artistUUID,
		base.Add(30*time.Minute), base.Add(90*time.Minute), uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !conflict {
		t.Error("overlapping interval should conflict")
	}

	// Back-to-back bookings share a boundary instant; half-open intervals
	// mean that is not a conflict.
	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_time", "end_time"}).
			AddRow(uuid.New().String(), base, base.Add(time.Hour)))

	conflict, err = hasArtistConflict(studioUUID, artistUUID,
		base.Add(time.Hour), base.Add(2*time.Hour), uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conflict {
		t.Error("adjacent interval must not conflict")
	}

	// No candidates at all.
	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_time", "end_time"}))

	conflict, err = hasArtistConflict(studioUUID, artistUUID,
		base, base.Add(time.Hour), uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conflict {
		t.Error("empty schedule must not conflict")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

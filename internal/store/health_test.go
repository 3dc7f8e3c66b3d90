package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-deploy-gate/internal/logger"
)

func TestCheckConnectivity_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	wrapped := &DB{DB: db, logger: logger.Nop()}

	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	if err := wrapped.CheckConnectivity(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCheckConnectivity_QueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	wrapped := &DB{DB: db, logger: logger.Nop()}

	probeErr := errors.New("server closed the connection unexpectedly")
	mock.ExpectQuery("SELECT 1").WillReturnError(probeErr)

	err = wrapped.CheckConnectivity(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, probeErr) {
		t.Errorf("expected wrapped probe error, got: %v", err)
	}
}

func TestCheckConnectivity_SequentialProbes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	wrapped := &DB{DB: db, logger: logger.Nop()}

	// A failed probe must not poison the next one: each probe runs on a
	// connection checked out for that probe alone.
	mock.ExpectQuery("SELECT 1").WillReturnError(errors.New("boom"))
	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	if err := wrapped.CheckConnectivity(context.Background()); err == nil {
		t.Fatal("expected first probe to fail")
	}
	if err := wrapped.CheckConnectivity(context.Background()); err != nil {
		t.Fatalf("expected second probe to succeed, got: %v", err)
	}
}

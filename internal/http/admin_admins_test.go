package httpapi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "admins_email_key"}
	if !isUniqueViolation(dup) {
		t.Fatalf("23505 must be a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert admin: %w", dup)) {
		t.Fatalf("wrapped 23505 must be a unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23502"}) {
		t.Fatalf("not-null violation must not map to conflict")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Fatalf("plain error must not map to conflict")
	}
}

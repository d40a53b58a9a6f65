package migrations

import (
	"os"
	"testing"

	"raydan-backend-go/internal/db"
)

// Requires a live Postgres instance; set TEST_DATABASE_URL to run.
func TestApplyAndInsertDefaults(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	conn, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	if err := Apply(conn, "../../migrations"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	var row struct {
		ID     string `db:"id"`
		Status string `db:"status"`
	}
	err = conn.Get(&row, `
INSERT INTO membership_applications (first_name, last_name, email, phone, address, membership_tier)
VALUES ('Test', 'Applicant', 'applicant@example.org', '+967700000000', 'Sanaa', 'individual')
RETURNING id, status`)
	if err != nil {
		t.Fatalf("insert without id: %v", err)
	}
	if row.ID == "" {
		t.Fatalf("id not generated by the database")
	}
	if row.Status != "pending" {
		t.Fatalf("status = %q, want pending", row.Status)
	}

	if _, err := conn.Exec(`DELETE FROM membership_applications WHERE id = $1`, row.ID); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}

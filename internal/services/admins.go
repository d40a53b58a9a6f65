package services

import (
	"time"

	"github.com/jmoiron/sqlx"

	"raydan-backend-go/internal/models"
)

func FetchActiveAdmin(db *sqlx.DB, adminID string) (*models.Admin, error) {
	var admin models.Admin
	err := db.Get(&admin, `
SELECT id, email, password_hash, full_name, role, is_active, last_login_at, created_at, updated_at
FROM admins
WHERE id = $1 AND is_active = TRUE
`, adminID)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// SetLastLogin is fire-and-forget on successful sign-in; callers only log
// the error.
func SetLastLogin(db *sqlx.DB, adminID string) error {
	_, err := db.Exec(`UPDATE admins SET last_login_at = $1 WHERE id = $2`, time.Now().UTC(), adminID)
	return err
}

func ValidRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleEditor
}

// EnsureSuperAdmin creates the bootstrap account on first run. Existing
// accounts are left untouched.
func EnsureSuperAdmin(db *sqlx.DB, tokens TokenService, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	var exists bool
	if err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email); err != nil {
		return err
	}
	if exists {
		return nil
	}
	hash, err := tokens.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
INSERT INTO admins (email, password_hash, full_name, role, is_active)
VALUES ($1, $2, $3, $4, TRUE)
`, email, hash, "Administrator", RoleSuperAdmin)
	return err
}

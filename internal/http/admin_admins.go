package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/services"
)

type AdminAccountDTO struct {
	ID          string     `db:"id" json:"id"`
	Email       string     `db:"email" json:"email"`
	FullName    string     `db:"full_name" json:"fullName"`
	Role        string     `db:"role" json:"role"`
	IsActive    bool       `db:"is_active" json:"isActive"`
	LastLoginAt *time.Time `db:"last_login_at" json:"lastLoginAt"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=10"`
	FullName string `json:"fullName" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=super_admin editor"`
}

type UpdateAdminRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"omitempty,min=10"`
	FullName string  `json:"fullName" validate:"required"`
	Role     string  `json:"role" validate:"required,oneof=super_admin editor"`
	IsActive bool    `json:"isActive"`
}

const adminAccountColumns = `
id, email, full_name, role, is_active, last_login_at, created_at
`

func (s *Server) AdminListAdmins(w http.ResponseWriter, r *http.Request) {
	rows := []AdminAccountDTO{}
	err := s.DB.Select(&rows, `
SELECT `+adminAccountColumns+`
FROM admins
ORDER BY created_at ASC
`)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminCreateAdmin(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req CreateAdminRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	hash, err := s.Tokens.HashPassword(req.Password)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	row := AdminAccountDTO{}
	err = s.DB.Get(&row, `
INSERT INTO admins (email, password_hash, full_name, role, is_active)
VALUES ($1, $2, $3, $4, TRUE)
RETURNING `+adminAccountColumns,
		req.Email, hash, req.FullName, req.Role)
	if err != nil {
		if isUniqueViolation(err) {
			WriteError(w, http.StatusConflict, i18n.T(lang, "error.generic"))
			return
		}
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// AdminUpdateAdmin rejects self-demotion and self-deactivation so the
// last super admin cannot lock everyone out.
func (s *Server) AdminUpdateAdmin(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req UpdateAdminRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	adminID := chi.URLParam(r, "adminId")
	if adminID == CurrentAdminID(r) && (req.Role != services.RoleSuperAdmin || !req.IsActive) {
		WriteError(w, http.StatusForbidden, i18n.T(lang, "error.forbidden"))
		return
	}

	var hash *string
	if req.Password != nil {
		hashed, err := s.Tokens.HashPassword(*req.Password)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
			return
		}
		hash = &hashed
	}

	row := AdminAccountDTO{}
	err := s.DB.Get(&row, `
UPDATE admins
SET email = $1, full_name = $2, role = $3, is_active = $4,
    password_hash = COALESCE($5, password_hash), updated_at = NOW()
WHERE id = $6
RETURNING `+adminAccountColumns,
		req.Email, req.FullName, req.Role, req.IsActive, hash, adminID)
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(lang, "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteAdmin(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	adminID := chi.URLParam(r, "adminId")
	if adminID == CurrentAdminID(r) {
		WriteError(w, http.StatusForbidden, i18n.T(lang, "error.forbidden"))
		return
	}
	result, err := s.DB.Exec(`DELETE FROM admins WHERE id = $1`, adminID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		WriteError(w, http.StatusNotFound, i18n.T(lang, "error.notfound"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

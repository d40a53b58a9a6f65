package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/services"
)

type AdminApplicationDTO struct {
	ID             string    `db:"id" json:"id"`
	FirstName      string    `db:"first_name" json:"firstName"`
	LastName       string    `db:"last_name" json:"lastName"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	Address        string    `db:"address" json:"address"`
	MembershipTier string    `db:"membership_tier" json:"membershipTier"`
	Status         string    `db:"status" json:"status"`
	AdminNotes     *string   `db:"admin_notes" json:"adminNotes"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

const adminApplicationColumns = `
id, first_name, last_name, email, phone, address, membership_tier, status,
admin_notes, created_at, updated_at
`

func (s *Server) AdminListApplications(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	where := ""
	args := []interface{}{}
	if status := r.URL.Query().Get("status"); status != "" {
		if status != services.StatusPending && status != services.StatusApproved && status != services.StatusRejected {
			WriteError(w, http.StatusBadRequest, i18n.T(lang, "error.generic"))
			return
		}
		args = append(args, status)
		where = fmt.Sprintf("WHERE status = $%d", len(args))
	}
	if term := services.CleanSearchTerm(r.URL.Query().Get("q")); term != "" {
		args = append(args, "%"+services.EscapeLike(term)+"%")
		clause := fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", len(args), len(args), len(args))
		if where == "" {
			where = "WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}

	rows := []AdminApplicationDTO{}
	query := `
SELECT ` + adminApplicationColumns + `
FROM membership_applications
` + where + `
ORDER BY created_at DESC
`
	if err := s.DB.Select(&rows, query, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminApplicationDetail(w http.ResponseWriter, r *http.Request) {
	row := AdminApplicationDTO{}
	err := s.DB.Get(&row, `
SELECT `+adminApplicationColumns+`
FROM membership_applications
WHERE id = $1
`, chi.URLParam(r, "applicationId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

type ApplicationNotesRequest struct {
	AdminNotes string `json:"adminNotes" validate:"max=2000"`
}

func (s *Server) AdminUpdateApplicationNotes(w http.ResponseWriter, r *http.Request) {
	var req ApplicationNotesRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	row := AdminApplicationDTO{}
	err := s.DB.Get(&row, `
UPDATE membership_applications
SET admin_notes = $1, updated_at = NOW()
WHERE id = $2
RETURNING `+adminApplicationColumns,
		nullIfEmpty(req.AdminNotes), chi.URLParam(r, "applicationId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminApproveApplication(w http.ResponseWriter, r *http.Request) {
	s.triageApplication(w, r, services.StatusApproved)
}

func (s *Server) AdminRejectApplication(w http.ResponseWriter, r *http.Request) {
	s.triageApplication(w, r, services.StatusRejected)
}

// triageApplication moves a pending application to a terminal status.
// Re-triaging an already decided application is a conflict, not a no-op.
func (s *Server) triageApplication(w http.ResponseWriter, r *http.Request, target string) {
	lang := requestLang(r)
	applicationID := chi.URLParam(r, "applicationId")

	var current string
	if err := s.DB.Get(&current, `SELECT status FROM membership_applications WHERE id = $1`, applicationID); err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(lang, "error.notfound"))
		return
	}
	if !services.CanTriage(current) {
		WriteError(w, http.StatusConflict, i18n.T(lang, "error.generic"))
		return
	}

	row := AdminApplicationDTO{}
	err := s.DB.Get(&row, `
UPDATE membership_applications
SET status = $1, updated_at = NOW()
WHERE id = $2 AND status = $3
RETURNING `+adminApplicationColumns,
		target, applicationID, services.StatusPending)
	if err != nil {
		WriteError(w, http.StatusConflict, i18n.T(lang, "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

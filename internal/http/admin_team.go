package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
)

type AdminTeamMemberDTO struct {
	ID           string    `db:"id" json:"id"`
	NameAR       string    `db:"name_ar" json:"nameAr"`
	NameEN       string    `db:"name_en" json:"nameEn"`
	PositionAR   string    `db:"position_ar" json:"positionAr"`
	PositionEN   string    `db:"position_en" json:"positionEn"`
	BioAR        string    `db:"bio_ar" json:"bioAr"`
	BioEN        string    `db:"bio_en" json:"bioEn"`
	PhotoURL     string    `db:"photo_url" json:"photoUrl"`
	Email        *string   `db:"email" json:"email"`
	LinkedinURL  *string   `db:"linkedin_url" json:"linkedinUrl"`
	TwitterURL   *string   `db:"twitter_url" json:"twitterUrl"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	IsLeadership bool      `db:"is_leadership" json:"isLeadership"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type TeamMemberRequest struct {
	NameAR       string  `json:"nameAr" validate:"required"`
	NameEN       string  `json:"nameEn"`
	PositionAR   string  `json:"positionAr"`
	PositionEN   string  `json:"positionEn"`
	BioAR        string  `json:"bioAr"`
	BioEN        string  `json:"bioEn"`
	PhotoURL     string  `json:"photoUrl"`
	Email        *string `json:"email" validate:"omitempty,email"`
	LinkedinURL  *string `json:"linkedinUrl" validate:"omitempty,url"`
	TwitterURL   *string `json:"twitterUrl" validate:"omitempty,url"`
	DisplayOrder int     `json:"displayOrder"`
	IsLeadership bool    `json:"isLeadership"`
	IsActive     bool    `json:"isActive"`
}

const adminTeamColumns = `
id, name_ar, name_en, position_ar, position_en, bio_ar, bio_en, photo_url,
email, linkedin_url, twitter_url, display_order, is_leadership, is_active, created_at
`

func (s *Server) AdminListTeam(w http.ResponseWriter, r *http.Request) {
	rows := []AdminTeamMemberDTO{}
	err := s.DB.Select(&rows, `
SELECT `+adminTeamColumns+`
FROM team_members
ORDER BY display_order ASC, created_at ASC
`)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminCreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req TeamMemberRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	row := AdminTeamMemberDTO{}
	err := s.DB.Get(&row, `
INSERT INTO team_members (name_ar, name_en, position_ar, position_en, bio_ar, bio_en,
                          photo_url, email, linkedin_url, twitter_url, display_order,
                          is_leadership, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING `+adminTeamColumns,
		req.NameAR, req.NameEN, req.PositionAR, req.PositionEN, req.BioAR, req.BioEN,
		req.PhotoURL, req.Email, req.LinkedinURL, req.TwitterURL, req.DisplayOrder,
		req.IsLeadership, req.IsActive)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

func (s *Server) AdminUpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req TeamMemberRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	row := AdminTeamMemberDTO{}
	err := s.DB.Get(&row, `
UPDATE team_members
SET name_ar = $1, name_en = $2, position_ar = $3, position_en = $4, bio_ar = $5,
    bio_en = $6, photo_url = $7, email = $8, linkedin_url = $9, twitter_url = $10,
    display_order = $11, is_leadership = $12, is_active = $13, updated_at = NOW()
WHERE id = $14
RETURNING `+adminTeamColumns,
		req.NameAR, req.NameEN, req.PositionAR, req.PositionEN, req.BioAR, req.BioEN,
		req.PhotoURL, req.Email, req.LinkedinURL, req.TwitterURL, req.DisplayOrder,
		req.IsLeadership, req.IsActive, chi.URLParam(r, "memberId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	result, err := s.DB.Exec(`DELETE FROM team_members WHERE id = $1`, chi.URLParam(r, "memberId"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

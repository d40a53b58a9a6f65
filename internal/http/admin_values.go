package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/icons"
)

type AdminValueDTO struct {
	ID           string    `db:"id" json:"id"`
	Type         string    `db:"type" json:"type"`
	TitleAR      string    `db:"title_ar" json:"titleAr"`
	TitleEN      string    `db:"title_en" json:"titleEn"`
	ContentAR    string    `db:"content_ar" json:"contentAr"`
	ContentEN    string    `db:"content_en" json:"contentEn"`
	Icon         *string   `db:"icon" json:"icon"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type ValueRequest struct {
	Type         string `json:"type" validate:"required,oneof=mission vision value"`
	TitleAR      string `json:"titleAr" validate:"required"`
	TitleEN      string `json:"titleEn"`
	ContentAR    string `json:"contentAr"`
	ContentEN    string `json:"contentEn"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"displayOrder"`
}

const adminValueColumns = `
id, type, title_ar, title_en, content_ar, content_en, icon, display_order, created_at
`

func (s *Server) AdminListValues(w http.ResponseWriter, r *http.Request) {
	rows := []AdminValueDTO{}
	err := s.DB.Select(&rows, `
SELECT `+adminValueColumns+`
FROM organization_values
ORDER BY type ASC, display_order ASC
`)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminCreateValue(w http.ResponseWriter, r *http.Request) {
	var req ValueRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	icon, ok := icons.Normalize(req.Icon)
	if !ok {
		WriteError(w, http.StatusBadRequest, i18n.T(requestLang(r), "error.generic"))
		return
	}
	row := AdminValueDTO{}
	err := s.DB.Get(&row, `
INSERT INTO organization_values (type, title_ar, title_en, content_ar, content_en, icon, display_order)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING `+adminValueColumns,
		req.Type, req.TitleAR, req.TitleEN, req.ContentAR, req.ContentEN,
		nullIfEmpty(icon), req.DisplayOrder)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

func (s *Server) AdminUpdateValue(w http.ResponseWriter, r *http.Request) {
	var req ValueRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	icon, ok := icons.Normalize(req.Icon)
	if !ok {
		WriteError(w, http.StatusBadRequest, i18n.T(requestLang(r), "error.generic"))
		return
	}
	row := AdminValueDTO{}
	err := s.DB.Get(&row, `
UPDATE organization_values
SET type = $1, title_ar = $2, title_en = $3, content_ar = $4, content_en = $5,
    icon = $6, display_order = $7, updated_at = NOW()
WHERE id = $8
RETURNING `+adminValueColumns,
		req.Type, req.TitleAR, req.TitleEN, req.ContentAR, req.ContentEN,
		nullIfEmpty(icon), req.DisplayOrder, chi.URLParam(r, "valueId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteValue(w http.ResponseWriter, r *http.Request) {
	result, err := s.DB.Exec(`DELETE FROM organization_values WHERE id = $1`, chi.URLParam(r, "valueId"))
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

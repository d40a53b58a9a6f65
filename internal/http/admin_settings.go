package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
)

type AdminSettingDTO struct {
	ID          string    `db:"id" json:"id"`
	Key         string    `db:"key" json:"key"`
	ValueAR     string    `db:"value_ar" json:"valueAr"`
	ValueEN     string    `db:"value_en" json:"valueEn"`
	Description string    `db:"description" json:"description"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type SettingRequest struct {
	ValueAR     string `json:"valueAr"`
	ValueEN     string `json:"valueEn"`
	Description string `json:"description"`
}

func (s *Server) AdminListSettings(w http.ResponseWriter, r *http.Request) {
	rows := []AdminSettingDTO{}
	err := s.DB.Select(&rows, `
SELECT id, key, value_ar, value_en, description, updated_at
FROM site_settings
ORDER BY key ASC
`)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminUpsertSetting(w http.ResponseWriter, r *http.Request) {
	var req SettingRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	row := AdminSettingDTO{}
	err := s.DB.Get(&row, `
INSERT INTO site_settings (key, value_ar, value_en, description)
VALUES ($1, $2, $3, $4)
ON CONFLICT (key) DO UPDATE
SET value_ar = EXCLUDED.value_ar, value_en = EXCLUDED.value_en,
    description = EXCLUDED.description, updated_at = NOW()
RETURNING id, key, value_ar, value_en, description, updated_at
`, chi.URLParam(r, "key"), req.ValueAR, req.ValueEN, req.Description)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

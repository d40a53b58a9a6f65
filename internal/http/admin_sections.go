package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/icons"
	"raydan-backend-go/internal/services"
)

type AdminSectionDTO struct {
	ID            string    `db:"id" json:"id"`
	TitleAR       string    `db:"title_ar" json:"titleAr"`
	TitleEN       string    `db:"title_en" json:"titleEn"`
	DescriptionAR string    `db:"description_ar" json:"descriptionAr"`
	DescriptionEN string    `db:"description_en" json:"descriptionEn"`
	Slug          string    `db:"slug" json:"slug"`
	Icon          string    `db:"icon" json:"icon"`
	OrderIndex    int       `db:"order_index" json:"orderIndex"`
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

type SectionRequest struct {
	TitleAR       string `json:"titleAr" validate:"required"`
	TitleEN       string `json:"titleEn" validate:"required"`
	DescriptionAR string `json:"descriptionAr"`
	DescriptionEN string `json:"descriptionEn"`
	Icon          string `json:"icon"`
	OrderIndex    int    `json:"orderIndex"`
	IsActive      bool   `json:"isActive"`
}

const adminSectionColumns = `
id, title_ar, title_en, description_ar, description_en, slug, icon,
order_index, is_active, created_at
`

func (s *Server) AdminListSections(w http.ResponseWriter, r *http.Request) {
	rows := []AdminSectionDTO{}
	err := s.DB.Select(&rows, `
SELECT `+adminSectionColumns+`
FROM sections
ORDER BY order_index ASC
`)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminCreateSection(w http.ResponseWriter, r *http.Request) {
	var req SectionRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	icon, ok := icons.Normalize(req.Icon)
	if !ok {
		WriteError(w, http.StatusBadRequest, i18n.T(requestLang(r), "error.generic"))
		return
	}
	slug, err := services.ResolveSectionSlug(s.DB, req.TitleEN)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	row := AdminSectionDTO{}
	err = s.DB.Get(&row, `
INSERT INTO sections (title_ar, title_en, description_ar, description_en, slug,
                      icon, order_index, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING `+adminSectionColumns,
		req.TitleAR, req.TitleEN, req.DescriptionAR, req.DescriptionEN, slug,
		icon, req.OrderIndex, req.IsActive)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

// AdminUpdateSection keeps the existing slug; published URLs stay stable
// even when the title changes.
func (s *Server) AdminUpdateSection(w http.ResponseWriter, r *http.Request) {
	var req SectionRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	icon, ok := icons.Normalize(req.Icon)
	if !ok {
		WriteError(w, http.StatusBadRequest, i18n.T(requestLang(r), "error.generic"))
		return
	}
	row := AdminSectionDTO{}
	err := s.DB.Get(&row, `
UPDATE sections
SET title_ar = $1, title_en = $2, description_ar = $3, description_en = $4,
    icon = $5, order_index = $6, is_active = $7, updated_at = NOW()
WHERE id = $8
RETURNING `+adminSectionColumns,
		req.TitleAR, req.TitleEN, req.DescriptionAR, req.DescriptionEN,
		icon, req.OrderIndex, req.IsActive, chi.URLParam(r, "sectionId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteSection(w http.ResponseWriter, r *http.Request) {
	result, err := s.DB.Exec(`DELETE FROM sections WHERE id = $1`, chi.URLParam(r, "sectionId"))
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

type AdminCategoryDTO struct {
	ID            string    `db:"id" json:"id"`
	SectionID     string    `db:"section_id" json:"sectionId"`
	TitleAR       string    `db:"title_ar" json:"titleAr"`
	TitleEN       string    `db:"title_en" json:"titleEn"`
	DescriptionAR string    `db:"description_ar" json:"descriptionAr"`
	DescriptionEN string    `db:"description_en" json:"descriptionEn"`
	Slug          string    `db:"slug" json:"slug"`
	OrderIndex    int       `db:"order_index" json:"orderIndex"`
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

type CategoryRequest struct {
	SectionID     string `json:"sectionId" validate:"required,uuid"`
	TitleAR       string `json:"titleAr" validate:"required"`
	TitleEN       string `json:"titleEn" validate:"required"`
	DescriptionAR string `json:"descriptionAr"`
	DescriptionEN string `json:"descriptionEn"`
	OrderIndex    int    `json:"orderIndex"`
	IsActive      bool   `json:"isActive"`
}

const adminCategoryColumns = `
id, section_id, title_ar, title_en, description_ar, description_en, slug,
order_index, is_active, created_at
`

func (s *Server) AdminListCategories(w http.ResponseWriter, r *http.Request) {
	rows := []AdminCategoryDTO{}
	query := `
SELECT ` + adminCategoryColumns + `
FROM categories
ORDER BY order_index ASC
`
	args := []interface{}{}
	if sectionID := r.URL.Query().Get("section_id"); sectionID != "" {
		query = `
SELECT ` + adminCategoryColumns + `
FROM categories
WHERE section_id = $1
ORDER BY order_index ASC
`
		args = append(args, sectionID)
	}
	if err := s.DB.Select(&rows, query, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	slug, err := services.ResolveCategorySlug(s.DB, req.TitleEN)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	row := AdminCategoryDTO{}
	err = s.DB.Get(&row, `
INSERT INTO categories (section_id, title_ar, title_en, description_ar,
                        description_en, slug, order_index, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING `+adminCategoryColumns,
		req.SectionID, req.TitleAR, req.TitleEN, req.DescriptionAR,
		req.DescriptionEN, slug, req.OrderIndex, req.IsActive)
	if err != nil {
		WriteError(w, http.StatusBadRequest, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

func (s *Server) AdminUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	row := AdminCategoryDTO{}
	err := s.DB.Get(&row, `
UPDATE categories
SET section_id = $1, title_ar = $2, title_en = $3, description_ar = $4,
    description_en = $5, order_index = $6, is_active = $7, updated_at = NOW()
WHERE id = $8
RETURNING `+adminCategoryColumns,
		req.SectionID, req.TitleAR, req.TitleEN, req.DescriptionAR,
		req.DescriptionEN, req.OrderIndex, req.IsActive, chi.URLParam(r, "categoryId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	result, err := s.DB.Exec(`DELETE FROM categories WHERE id = $1`, chi.URLParam(r, "categoryId"))
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

package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/icons"
)

type AdminHeroContentDTO struct {
	ID         string    `db:"id" json:"id"`
	TitleAR    string    `db:"title_ar" json:"titleAr"`
	TitleEN    string    `db:"title_en" json:"titleEn"`
	SubtitleAR string    `db:"subtitle_ar" json:"subtitleAr"`
	SubtitleEN string    `db:"subtitle_en" json:"subtitleEn"`
	CTATextAR  string    `db:"cta_text_ar" json:"ctaTextAr"`
	CTATextEN  string    `db:"cta_text_en" json:"ctaTextEn"`
	CTALink    string    `db:"cta_link" json:"ctaLink"`
	IsActive   bool      `db:"is_active" json:"isActive"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

type HeroContentRequest struct {
	TitleAR    string `json:"titleAr" validate:"required"`
	TitleEN    string `json:"titleEn"`
	SubtitleAR string `json:"subtitleAr"`
	SubtitleEN string `json:"subtitleEn"`
	CTATextAR  string `json:"ctaTextAr"`
	CTATextEN  string `json:"ctaTextEn"`
	CTALink    string `json:"ctaLink"`
	IsActive   bool   `json:"isActive"`
}

const adminHeroColumns = `
id, title_ar, title_en, subtitle_ar, subtitle_en, cta_text_ar, cta_text_en,
cta_link, is_active, updated_at
`

func (s *Server) AdminGetHeroContent(w http.ResponseWriter, r *http.Request) {
	row := AdminHeroContentDTO{}
	err := s.DB.Get(&row, `
SELECT `+adminHeroColumns+`
FROM hero_content
ORDER BY updated_at DESC
LIMIT 1
`)
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

// AdminUpsertHeroContent replaces the single hero block. A new row is
// inserted when none exists yet.
func (s *Server) AdminUpsertHeroContent(w http.ResponseWriter, r *http.Request) {
	var req HeroContentRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	row := AdminHeroContentDTO{}
	err := s.DB.Get(&row, `
UPDATE hero_content
SET title_ar = $1, title_en = $2, subtitle_ar = $3, subtitle_en = $4,
    cta_text_ar = $5, cta_text_en = $6, cta_link = $7, is_active = $8,
    updated_at = NOW()
WHERE id = (SELECT id FROM hero_content ORDER BY updated_at DESC LIMIT 1)
RETURNING `+adminHeroColumns,
		req.TitleAR, req.TitleEN, req.SubtitleAR, req.SubtitleEN,
		req.CTATextAR, req.CTATextEN, req.CTALink, req.IsActive)
	if err == nil {
		WriteJSON(w, http.StatusOK, row)
		return
	}
	err = s.DB.Get(&row, `
INSERT INTO hero_content (title_ar, title_en, subtitle_ar, subtitle_en,
                          cta_text_ar, cta_text_en, cta_link, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING `+adminHeroColumns,
		req.TitleAR, req.TitleEN, req.SubtitleAR, req.SubtitleEN,
		req.CTATextAR, req.CTATextEN, req.CTALink, req.IsActive)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

type AdminHeroSlideDTO struct {
	ID            string    `db:"id" json:"id"`
	TitleAR       string    `db:"title_ar" json:"titleAr"`
	TitleEN       string    `db:"title_en" json:"titleEn"`
	DescriptionAR string    `db:"description_ar" json:"descriptionAr"`
	DescriptionEN string    `db:"description_en" json:"descriptionEn"`
	ImageURL      string    `db:"image_url" json:"imageUrl"`
	DisplayOrder  int       `db:"display_order" json:"displayOrder"`
	LinkType      *string   `db:"link_type" json:"linkType"`
	LinkID        *string   `db:"link_id" json:"linkId"`
	ExternalLink  *string   `db:"external_link" json:"externalLink"`
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

type HeroSlideRequest struct {
	TitleAR       string  `json:"titleAr" validate:"required"`
	TitleEN       string  `json:"titleEn"`
	DescriptionAR string  `json:"descriptionAr"`
	DescriptionEN string  `json:"descriptionEn"`
	ImageURL      string  `json:"imageUrl" validate:"required"`
	DisplayOrder  int     `json:"displayOrder"`
	LinkType      *string `json:"linkType" validate:"omitempty,oneof=briefing activity external"`
	LinkID        *string `json:"linkId"`
	ExternalLink  *string `json:"externalLink"`
	IsActive      bool    `json:"isActive"`
}

// validLink enforces that internal link types carry a target id and the
// external type carries a URL.
func (req *HeroSlideRequest) validLink() bool {
	if req.LinkType == nil {
		return true
	}
	switch *req.LinkType {
	case "briefing", "activity":
		return req.LinkID != nil && *req.LinkID != ""
	case "external":
		return req.ExternalLink != nil && *req.ExternalLink != ""
	}
	return false
}

const adminSlideColumns = `
id, title_ar, title_en, description_ar, description_en, image_url,
display_order, link_type, link_id, external_link, is_active, created_at
`

func (s *Server) AdminListHeroSlides(w http.ResponseWriter, r *http.Request) {
	rows := []AdminHeroSlideDTO{}
	err := s.DB.Select(&rows, `
SELECT `+adminSlideColumns+`
FROM hero_slides
ORDER BY display_order ASC, created_at ASC
`)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminCreateHeroSlide(w http.ResponseWriter, r *http.Request) {
	var req HeroSlideRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	if !req.validLink() {
		WriteError(w, http.StatusBadRequest, i18n.T(requestLang(r), "error.generic"))
		return
	}
	row := AdminHeroSlideDTO{}
	err := s.DB.Get(&row, `
INSERT INTO hero_slides (title_ar, title_en, description_ar, description_en,
                         image_url, display_order, link_type, link_id,
                         external_link, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING `+adminSlideColumns,
		req.TitleAR, req.TitleEN, req.DescriptionAR, req.DescriptionEN,
		req.ImageURL, req.DisplayOrder, req.LinkType, req.LinkID,
		req.ExternalLink, req.IsActive)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

func (s *Server) AdminUpdateHeroSlide(w http.ResponseWriter, r *http.Request) {
	var req HeroSlideRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	if !req.validLink() {
		WriteError(w, http.StatusBadRequest, i18n.T(requestLang(r), "error.generic"))
		return
	}
	row := AdminHeroSlideDTO{}
	err := s.DB.Get(&row, `
UPDATE hero_slides
SET title_ar = $1, title_en = $2, description_ar = $3, description_en = $4,
    image_url = $5, display_order = $6, link_type = $7, link_id = $8,
    external_link = $9, is_active = $10, updated_at = NOW()
WHERE id = $11
RETURNING `+adminSlideColumns,
		req.TitleAR, req.TitleEN, req.DescriptionAR, req.DescriptionEN,
		req.ImageURL, req.DisplayOrder, req.LinkType, req.LinkID,
		req.ExternalLink, req.IsActive, chi.URLParam(r, "slideId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteHeroSlide(w http.ResponseWriter, r *http.Request) {
	result, err := s.DB.Exec(`DELETE FROM hero_slides WHERE id = $1`, chi.URLParam(r, "slideId"))
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

type AdminSiteStatDTO struct {
	ID           string    `db:"id" json:"id"`
	LabelAR      string    `db:"label_ar" json:"labelAr"`
	LabelEN      string    `db:"label_en" json:"labelEn"`
	Value        string    `db:"value" json:"value"`
	Icon         string    `db:"icon" json:"icon"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type SiteStatRequest struct {
	LabelAR      string `json:"labelAr" validate:"required"`
	LabelEN      string `json:"labelEn"`
	Value        string `json:"value" validate:"required"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}

const adminStatColumns = `
id, label_ar, label_en, value, icon, display_order, is_active, created_at
`

func (s *Server) AdminListStats(w http.ResponseWriter, r *http.Request) {
	rows := []AdminSiteStatDTO{}
	err := s.DB.Select(&rows, `
SELECT `+adminStatColumns+`
FROM site_stats
ORDER BY display_order ASC
`)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminCreateStat(w http.ResponseWriter, r *http.Request) {
	var req SiteStatRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	icon, ok := icons.Normalize(req.Icon)
	if !ok {
		WriteError(w, http.StatusBadRequest, i18n.T(requestLang(r), "error.generic"))
		return
	}
	row := AdminSiteStatDTO{}
	err := s.DB.Get(&row, `
INSERT INTO site_stats (label_ar, label_en, value, icon, display_order, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+adminStatColumns,
		req.LabelAR, req.LabelEN, req.Value, icon, req.DisplayOrder, req.IsActive)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

func (s *Server) AdminUpdateStat(w http.ResponseWriter, r *http.Request) {
	var req SiteStatRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	icon, ok := icons.Normalize(req.Icon)
	if !ok {
		WriteError(w, http.StatusBadRequest, i18n.T(requestLang(r), "error.generic"))
		return
	}
	row := AdminSiteStatDTO{}
	err := s.DB.Get(&row, `
UPDATE site_stats
SET label_ar = $1, label_en = $2, value = $3, icon = $4, display_order = $5,
    is_active = $6, updated_at = NOW()
WHERE id = $7
RETURNING `+adminStatColumns,
		req.LabelAR, req.LabelEN, req.Value, icon, req.DisplayOrder,
		req.IsActive, chi.URLParam(r, "statId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteStat(w http.ResponseWriter, r *http.Request) {
	result, err := s.DB.Exec(`DELETE FROM site_stats WHERE id = $1`, chi.URLParam(r, "statId"))
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

type AdminWhyPointDTO struct {
	ID            string    `db:"id" json:"id"`
	TitleAR       string    `db:"title_ar" json:"titleAr"`
	TitleEN       string    `db:"title_en" json:"titleEn"`
	DescriptionAR string    `db:"description_ar" json:"descriptionAr"`
	DescriptionEN string    `db:"description_en" json:"descriptionEn"`
	Icon          string    `db:"icon" json:"icon"`
	DisplayOrder  int       `db:"display_order" json:"displayOrder"`
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

type WhyPointRequest struct {
	TitleAR       string `json:"titleAr" validate:"required"`
	TitleEN       string `json:"titleEn"`
	DescriptionAR string `json:"descriptionAr"`
	DescriptionEN string `json:"descriptionEn"`
	Icon          string `json:"icon"`
	DisplayOrder  int    `json:"displayOrder"`
	IsActive      bool   `json:"isActive"`
}

const adminWhyPointColumns = `
id, title_ar, title_en, description_ar, description_en, icon, display_order,
is_active, created_at
`

func (s *Server) AdminListWhyPoints(w http.ResponseWriter, r *http.Request) {
	rows := []AdminWhyPointDTO{}
	err := s.DB.Select(&rows, `
SELECT `+adminWhyPointColumns+`
FROM why_raydan_points
ORDER BY display_order ASC
`)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminCreateWhyPoint(w http.ResponseWriter, r *http.Request) {
	var req WhyPointRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	icon, ok := icons.Normalize(req.Icon)
	if !ok {
		WriteError(w, http.StatusBadRequest, i18n.T(requestLang(r), "error.generic"))
		return
	}
	row := AdminWhyPointDTO{}
	err := s.DB.Get(&row, `
INSERT INTO why_raydan_points (title_ar, title_en, description_ar, description_en,
                               icon, display_order, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING `+adminWhyPointColumns,
		req.TitleAR, req.TitleEN, req.DescriptionAR, req.DescriptionEN,
		icon, req.DisplayOrder, req.IsActive)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

func (s *Server) AdminUpdateWhyPoint(w http.ResponseWriter, r *http.Request) {
	var req WhyPointRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	icon, ok := icons.Normalize(req.Icon)
	if !ok {
		WriteError(w, http.StatusBadRequest, i18n.T(requestLang(r), "error.generic"))
		return
	}
	row := AdminWhyPointDTO{}
	err := s.DB.Get(&row, `
UPDATE why_raydan_points
SET title_ar = $1, title_en = $2, description_ar = $3, description_en = $4,
    icon = $5, display_order = $6, is_active = $7, updated_at = NOW()
WHERE id = $8
RETURNING `+adminWhyPointColumns,
		req.TitleAR, req.TitleEN, req.DescriptionAR, req.DescriptionEN,
		icon, req.DisplayOrder, req.IsActive, chi.URLParam(r, "pointId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteWhyPoint(w http.ResponseWriter, r *http.Request) {
	result, err := s.DB.Exec(`DELETE FROM why_raydan_points WHERE id = $1`, chi.URLParam(r, "pointId"))
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

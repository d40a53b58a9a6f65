package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
)

type AdminBriefingDTO struct {
	ID            string    `db:"id" json:"id"`
	TitleAR       string    `db:"title_ar" json:"titleAr"`
	TitleEN       string    `db:"title_en" json:"titleEn"`
	ContentAR     string    `db:"content_ar" json:"contentAr"`
	ContentEN     string    `db:"content_en" json:"contentEn"`
	ExcerptAR     string    `db:"excerpt_ar" json:"excerptAr"`
	ExcerptEN     string    `db:"excerpt_en" json:"excerptEn"`
	AuthorAR      string    `db:"author_ar" json:"authorAr"`
	AuthorEN      string    `db:"author_en" json:"authorEn"`
	CategoryAR    string    `db:"category_ar" json:"categoryAr"`
	CategoryEN    string    `db:"category_en" json:"categoryEn"`
	FeaturedImage string    `db:"featured_image" json:"featuredImage"`
	PDFURL        *string   `db:"pdf_url" json:"pdfUrl"`
	IsFeatured    bool      `db:"is_featured" json:"isFeatured"`
	ViewsCount    int       `db:"views_count" json:"viewsCount"`
	PublishedAt   time.Time `db:"published_at" json:"publishedAt"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

type BriefingRequest struct {
	TitleAR       string  `json:"titleAr" validate:"required"`
	TitleEN       string  `json:"titleEn"`
	ContentAR     string  `json:"contentAr" validate:"required"`
	ContentEN     string  `json:"contentEn"`
	ExcerptAR     string  `json:"excerptAr"`
	ExcerptEN     string  `json:"excerptEn"`
	AuthorAR      string  `json:"authorAr" validate:"required"`
	AuthorEN      string  `json:"authorEn"`
	CategoryAR    string  `json:"categoryAr"`
	CategoryEN    string  `json:"categoryEn"`
	FeaturedImage string  `json:"featuredImage"`
	PDFURL        *string `json:"pdfUrl"`
	IsFeatured    bool    `json:"isFeatured"`
	PublishedAt   *string `json:"publishedAt"`
}

func (req *BriefingRequest) publishedAt() time.Time {
	if req.PublishedAt != nil {
		if parsed, err := time.Parse(time.RFC3339, *req.PublishedAt); err == nil {
			return parsed
		}
	}
	return time.Now().UTC()
}

func (s *Server) decodeValid(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	lang := requestLang(r)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, i18n.T(lang, "error.generic"))
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		WriteError(w, http.StatusBadRequest, i18n.T(lang, "error.generic"))
		return false
	}
	return true
}

const adminBriefingColumns = `
id, title_ar, title_en, content_ar, content_en, excerpt_ar, excerpt_en,
author_ar, author_en, category_ar, category_en, featured_image, pdf_url,
is_featured, views_count, published_at, created_at
`

func (s *Server) AdminListBriefings(w http.ResponseWriter, r *http.Request) {
	rows := []AdminBriefingDTO{}
	err := s.DB.Select(&rows, `
SELECT `+adminBriefingColumns+`
FROM briefings
ORDER BY published_at DESC
`)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminCreateBriefing(w http.ResponseWriter, r *http.Request) {
	var req BriefingRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	row := AdminBriefingDTO{}
	err := s.DB.Get(&row, `
INSERT INTO briefings (title_ar, title_en, content_ar, content_en, excerpt_ar, excerpt_en,
                       author_ar, author_en, category_ar, category_en, featured_image,
                       pdf_url, is_featured, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING `+adminBriefingColumns,
		req.TitleAR, req.TitleEN, req.ContentAR, req.ContentEN, req.ExcerptAR, req.ExcerptEN,
		req.AuthorAR, req.AuthorEN, req.CategoryAR, req.CategoryEN, req.FeaturedImage,
		req.PDFURL, req.IsFeatured, req.publishedAt())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

func (s *Server) AdminUpdateBriefing(w http.ResponseWriter, r *http.Request) {
	var req BriefingRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	row := AdminBriefingDTO{}
	err := s.DB.Get(&row, `
UPDATE briefings
SET title_ar = $1, title_en = $2, content_ar = $3, content_en = $4,
    excerpt_ar = $5, excerpt_en = $6, author_ar = $7, author_en = $8,
    category_ar = $9, category_en = $10, featured_image = $11, pdf_url = $12,
    is_featured = $13, published_at = $14, updated_at = NOW()
WHERE id = $15
RETURNING `+adminBriefingColumns,
		req.TitleAR, req.TitleEN, req.ContentAR, req.ContentEN, req.ExcerptAR, req.ExcerptEN,
		req.AuthorAR, req.AuthorEN, req.CategoryAR, req.CategoryEN, req.FeaturedImage,
		req.PDFURL, req.IsFeatured, req.publishedAt(), chi.URLParam(r, "briefingId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteBriefing(w http.ResponseWriter, r *http.Request) {
	result, err := s.DB.Exec(`DELETE FROM briefings WHERE id = $1`, chi.URLParam(r, "briefingId"))
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

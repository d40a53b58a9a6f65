package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/services"
)

type AdminArticleDTO struct {
	ID            string    `db:"id" json:"id"`
	CategoryID    string    `db:"category_id" json:"categoryId"`
	AuthorID      string    `db:"author_id" json:"authorId"`
	TitleAR       string    `db:"title_ar" json:"titleAr"`
	TitleEN       string    `db:"title_en" json:"titleEn"`
	ContentAR     string    `db:"content_ar" json:"contentAr"`
	ContentEN     string    `db:"content_en" json:"contentEn"`
	ExcerptAR     string    `db:"excerpt_ar" json:"excerptAr"`
	ExcerptEN     string    `db:"excerpt_en" json:"excerptEn"`
	Slug          string    `db:"slug" json:"slug"`
	FeaturedImage string    `db:"featured_image" json:"featuredImage"`
	IsFeatured    bool      `db:"is_featured" json:"isFeatured"`
	ViewsCount    int       `db:"views_count" json:"viewsCount"`
	PublishedAt   time.Time `db:"published_at" json:"publishedAt"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

type ArticleRequest struct {
	CategoryID    string  `json:"categoryId" validate:"required,uuid"`
	AuthorID      string  `json:"authorId" validate:"required,uuid"`
	TitleAR       string  `json:"titleAr" validate:"required"`
	TitleEN       string  `json:"titleEn" validate:"required"`
	ContentAR     string  `json:"contentAr"`
	ContentEN     string  `json:"contentEn"`
	ExcerptAR     string  `json:"excerptAr"`
	ExcerptEN     string  `json:"excerptEn"`
	FeaturedImage string  `json:"featuredImage"`
	IsFeatured    bool    `json:"isFeatured"`
	PublishedAt   *string `json:"publishedAt"`
}

func (req *ArticleRequest) publishedAt() time.Time {
	if req.PublishedAt != nil {
		if parsed, err := time.Parse(time.RFC3339, *req.PublishedAt); err == nil {
			return parsed
		}
	}
	return time.Now().UTC()
}

const adminArticleColumns = `
id, category_id, author_id, title_ar, title_en, content_ar, content_en,
excerpt_ar, excerpt_en, slug, featured_image, is_featured, views_count,
published_at, created_at
`

func (s *Server) AdminListArticles(w http.ResponseWriter, r *http.Request) {
	rows := []AdminArticleDTO{}
	query := `
SELECT ` + adminArticleColumns + `
FROM articles
ORDER BY published_at DESC
`
	args := []interface{}{}
	if categoryID := r.URL.Query().Get("category_id"); categoryID != "" {
		query = `
SELECT ` + adminArticleColumns + `
FROM articles
WHERE category_id = $1
ORDER BY published_at DESC
`
		args = append(args, categoryID)
	}
	if err := s.DB.Select(&rows, query, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req ArticleRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	slug, err := services.ResolveArticleSlug(s.DB, req.TitleEN)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	row := AdminArticleDTO{}
	err = s.DB.Get(&row, `
INSERT INTO articles (category_id, author_id, title_ar, title_en, content_ar,
                      content_en, excerpt_ar, excerpt_en, slug, featured_image,
                      is_featured, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING `+adminArticleColumns,
		req.CategoryID, req.AuthorID, req.TitleAR, req.TitleEN, req.ContentAR,
		req.ContentEN, req.ExcerptAR, req.ExcerptEN, slug, req.FeaturedImage,
		req.IsFeatured, req.publishedAt())
	if err != nil {
		WriteError(w, http.StatusBadRequest, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

func (s *Server) AdminUpdateArticle(w http.ResponseWriter, r *http.Request) {
	var req ArticleRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	row := AdminArticleDTO{}
	err := s.DB.Get(&row, `
UPDATE articles
SET category_id = $1, author_id = $2, title_ar = $3, title_en = $4,
    content_ar = $5, content_en = $6, excerpt_ar = $7, excerpt_en = $8,
    featured_image = $9, is_featured = $10, published_at = $11, updated_at = NOW()
WHERE id = $12
RETURNING `+adminArticleColumns,
		req.CategoryID, req.AuthorID, req.TitleAR, req.TitleEN,
		req.ContentAR, req.ContentEN, req.ExcerptAR, req.ExcerptEN,
		req.FeaturedImage, req.IsFeatured, req.publishedAt(), chi.URLParam(r, "articleId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteArticle(w http.ResponseWriter, r *http.Request) {
	result, err := s.DB.Exec(`DELETE FROM articles WHERE id = $1`, chi.URLParam(r, "articleId"))
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

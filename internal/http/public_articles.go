package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
)

type ArticleCardDTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Slug          string `json:"slug"`
	AuthorName    string `json:"authorName"`
	Category      string `json:"category"`
	FeaturedImage string `json:"featuredImage"`
	IsFeatured    bool   `json:"isFeatured"`
	ViewsCount    int    `json:"viewsCount"`
	PublishedAt   string `json:"publishedAt"`
}

type ArticleDetailDTO struct {
	ArticleCardDTO
	Content string `json:"content"`
}

type articleRow struct {
	ID            string    `db:"id"`
	TitleAR       string    `db:"title_ar"`
	TitleEN       string    `db:"title_en"`
	ExcerptAR     string    `db:"excerpt_ar"`
	ExcerptEN     string    `db:"excerpt_en"`
	Slug          string    `db:"slug"`
	AuthorAR      string    `db:"author_name_ar"`
	AuthorEN      string    `db:"author_name_en"`
	CategoryAR    string    `db:"category_title_ar"`
	CategoryEN    string    `db:"category_title_en"`
	FeaturedImage string    `db:"featured_image"`
	IsFeatured    bool      `db:"is_featured"`
	ViewsCount    int       `db:"views_count"`
	PublishedAt   time.Time `db:"published_at"`
}

func (row articleRow) card(lang i18n.Lang) ArticleCardDTO {
	return ArticleCardDTO{
		ID:            row.ID,
		Title:         i18n.Pick(lang, row.TitleAR, row.TitleEN),
		Excerpt:       i18n.Pick(lang, row.ExcerptAR, row.ExcerptEN),
		Slug:          row.Slug,
		AuthorName:    i18n.Pick(lang, row.AuthorAR, row.AuthorEN),
		Category:      i18n.Pick(lang, row.CategoryAR, row.CategoryEN),
		FeaturedImage: row.FeaturedImage,
		IsFeatured:    row.IsFeatured,
		ViewsCount:    row.ViewsCount,
		PublishedAt:   formatTime(row.PublishedAt),
	}
}

const articleColumns = `
SELECT a.id, a.title_ar, a.title_en, a.excerpt_ar, a.excerpt_en, a.slug,
       u.full_name_ar AS author_name_ar, u.full_name_en AS author_name_en,
       c.title_ar AS category_title_ar, c.title_en AS category_title_en,
       a.featured_image, a.is_featured, a.views_count, a.published_at
FROM articles a
JOIN users u ON u.id = a.author_id
JOIN categories c ON c.id = a.category_id
`

func (s *Server) PublicArticles(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	query := articleColumns
	args := []interface{}{}
	if category := r.URL.Query().Get("category"); category != "" {
		args = append(args, category)
		query += "WHERE c.slug = $1\n"
	}
	query += "ORDER BY a.published_at DESC"
	rows := []articleRow{}
	if err := s.DB.Select(&rows, query, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	items := make([]ArticleCardDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.card(lang))
	}
	WriteJSON(w, http.StatusOK, map[string][]ArticleCardDTO{"items": items})
}

func (s *Server) PublicArticleDetail(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	slug := chi.URLParam(r, "slug")
	row := struct {
		articleRow
		ContentAR string `db:"content_ar"`
		ContentEN string `db:"content_en"`
	}{}
	query := `
SELECT a.id, a.title_ar, a.title_en, a.excerpt_ar, a.excerpt_en, a.slug,
       u.full_name_ar AS author_name_ar, u.full_name_en AS author_name_en,
       c.title_ar AS category_title_ar, c.title_en AS category_title_en,
       a.featured_image, a.is_featured, a.views_count, a.published_at,
       a.content_ar, a.content_en
FROM articles a
JOIN users u ON u.id = a.author_id
JOIN categories c ON c.id = a.category_id
WHERE a.slug = $1
`
	if err := s.DB.Get(&row, query, slug); err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(lang, "error.notfound"))
		return
	}
	_, _ = s.DB.Exec(`UPDATE articles SET views_count = views_count + 1 WHERE id = $1`, row.ID)
	WriteJSON(w, http.StatusOK, ArticleDetailDTO{
		ArticleCardDTO: row.card(lang),
		Content:        i18n.Pick(lang, row.ContentAR, row.ContentEN),
	})
}

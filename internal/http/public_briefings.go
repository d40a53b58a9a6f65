package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/services"
)

type BriefingCardDTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Author        string `json:"author"`
	Category      string `json:"category"`
	FeaturedImage string `json:"featuredImage"`
	IsFeatured    bool   `json:"isFeatured"`
	ViewsCount    int    `json:"viewsCount"`
	PublishedAt   string `json:"publishedAt"`
}

type BriefingDetailDTO struct {
	BriefingCardDTO
	Content string  `json:"content"`
	PDFURL  *string `json:"pdfUrl"`
}

type BriefingListResponse struct {
	Items []BriefingCardDTO `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
}

type briefingRow struct {
	ID            string    `db:"id"`
	TitleAR       string    `db:"title_ar"`
	TitleEN       string    `db:"title_en"`
	ExcerptAR     string    `db:"excerpt_ar"`
	ExcerptEN     string    `db:"excerpt_en"`
	AuthorAR      string    `db:"author_ar"`
	AuthorEN      string    `db:"author_en"`
	CategoryAR    string    `db:"category_ar"`
	CategoryEN    string    `db:"category_en"`
	FeaturedImage string    `db:"featured_image"`
	IsFeatured    bool      `db:"is_featured"`
	ViewsCount    int       `db:"views_count"`
	PublishedAt   time.Time `db:"published_at"`
}

func (row briefingRow) card(lang i18n.Lang) BriefingCardDTO {
	return BriefingCardDTO{
		ID:            row.ID,
		Title:         i18n.Pick(lang, row.TitleAR, row.TitleEN),
		Excerpt:       i18n.Pick(lang, row.ExcerptAR, row.ExcerptEN),
		Author:        i18n.Pick(lang, row.AuthorAR, row.AuthorEN),
		Category:      i18n.Pick(lang, row.CategoryAR, row.CategoryEN),
		FeaturedImage: row.FeaturedImage,
		IsFeatured:    row.IsFeatured,
		ViewsCount:    row.ViewsCount,
		PublishedAt:   formatTime(row.PublishedAt),
	}
}

func (s *Server) PublicBriefings(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	limit := parseInt(r.URL.Query().Get("limit"), 9)
	page := parseInt(r.URL.Query().Get("page"), 1)
	if limit < 1 {
		limit = 9
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	where := "WHERE TRUE"
	args := []interface{}{}
	if r.URL.Query().Get("featured") == "true" {
		where += " AND is_featured = TRUE"
	}
	if term := services.CleanSearchTerm(r.URL.Query().Get("q")); term != "" {
		like := "%" + services.EscapeLike(strings.ToLower(term)) + "%"
		args = append(args, like)
		where += fmt.Sprintf(" AND (lower(title_ar) LIKE $%d OR lower(title_en) LIKE $%d OR lower(author_ar) LIKE $%d OR lower(author_en) LIKE $%d)",
			len(args), len(args), len(args), len(args))
	}

	var total int
	if err := s.DB.Get(&total, "SELECT count(*) FROM briefings "+where, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	args = append(args, limit, offset)
	query := fmt.Sprintf(`
SELECT id, title_ar, title_en, excerpt_ar, excerpt_en, author_ar, author_en,
       category_ar, category_en, featured_image, is_featured, views_count, published_at
FROM briefings
%s
ORDER BY published_at DESC
LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows := []briefingRow{}
	if err := s.DB.Select(&rows, query, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	items := make([]BriefingCardDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.card(lang))
	}
	WriteJSON(w, http.StatusOK, BriefingListResponse{Items: items, Total: total, Page: page, Size: limit})
}

func (s *Server) PublicBriefingDetail(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	briefingID := chi.URLParam(r, "briefingId")
	row := struct {
		briefingRow
		ContentAR string  `db:"content_ar"`
		ContentEN string  `db:"content_en"`
		PDFURL    *string `db:"pdf_url"`
	}{}
	if err := s.DB.Get(&row, `
SELECT id, title_ar, title_en, excerpt_ar, excerpt_en, author_ar, author_en,
       category_ar, category_en, featured_image, is_featured, views_count, published_at,
       content_ar, content_en, pdf_url
FROM briefings
WHERE id = $1
`, briefingID); err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(lang, "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, BriefingDetailDTO{
		BriefingCardDTO: row.card(lang),
		Content:         i18n.Pick(lang, row.ContentAR, row.ContentEN),
		PDFURL:          row.PDFURL,
	})
}

// IncrementBriefingViews is fire-and-forget from the client; failures are
// swallowed so a miscounted view never breaks the page.
func (s *Server) IncrementBriefingViews(w http.ResponseWriter, r *http.Request) {
	briefingID := chi.URLParam(r, "briefingId")
	_, _ = s.DB.Exec(`UPDATE briefings SET views_count = views_count + 1 WHERE id = $1`, briefingID)
	w.WriteHeader(http.StatusNoContent)
}

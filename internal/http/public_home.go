package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
)

type HeroDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTAText  string `json:"ctaText"`
	CTALink  string `json:"ctaLink"`
}

type HeroSlideDTO struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"imageUrl"`
	DisplayOrder int     `json:"displayOrder"`
	Link         *string `json:"link"`
	External     bool    `json:"external"`
}

type SiteStatDTO struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Value        string `json:"value"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"displayOrder"`
}

type WhyPointDTO struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"displayOrder"`
}

type SectionDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	OrderIndex  int    `json:"orderIndex"`
}

func (s *Server) PublicHero(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	row := struct {
		ID         string `db:"id"`
		TitleAR    string `db:"title_ar"`
		TitleEN    string `db:"title_en"`
		SubtitleAR string `db:"subtitle_ar"`
		SubtitleEN string `db:"subtitle_en"`
		CTATextAR  string `db:"cta_text_ar"`
		CTATextEN  string `db:"cta_text_en"`
		CTALink    string `db:"cta_link"`
	}{}
	if err := s.DB.Get(&row, `
SELECT id, title_ar, title_en, subtitle_ar, subtitle_en, cta_text_ar, cta_text_en, cta_link
FROM hero_content
WHERE is_active = TRUE
ORDER BY updated_at DESC
LIMIT 1
`); err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(lang, "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, HeroDTO{
		ID:       row.ID,
		Title:    i18n.Pick(lang, row.TitleAR, row.TitleEN),
		Subtitle: i18n.Pick(lang, row.SubtitleAR, row.SubtitleEN),
		CTAText:  i18n.Pick(lang, row.CTATextAR, row.CTATextEN),
		CTALink:  row.CTALink,
	})
}

func (s *Server) PublicHeroSlides(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	rows := []struct {
		ID            string  `db:"id"`
		TitleAR       string  `db:"title_ar"`
		TitleEN       string  `db:"title_en"`
		DescriptionAR string  `db:"description_ar"`
		DescriptionEN string  `db:"description_en"`
		ImageURL      string  `db:"image_url"`
		DisplayOrder  int     `db:"display_order"`
		LinkType      *string `db:"link_type"`
		LinkID        *string `db:"link_id"`
		ExternalLink  *string `db:"external_link"`
	}{}
	if err := s.DB.Select(&rows, `
SELECT id, title_ar, title_en, description_ar, description_en, image_url, display_order, link_type, link_id, external_link
FROM hero_slides
WHERE is_active = TRUE
ORDER BY display_order ASC
`); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	items := make([]HeroSlideDTO, 0, len(rows))
	for _, row := range rows {
		// Slides without an image never render; skip them server-side.
		if strings.TrimSpace(row.ImageURL) == "" {
			continue
		}
		link, external := resolveSlideLink(row.LinkType, row.LinkID, row.ExternalLink)
		items = append(items, HeroSlideDTO{
			ID:           row.ID,
			Title:        i18n.Pick(lang, row.TitleAR, row.TitleEN),
			Description:  i18n.Pick(lang, row.DescriptionAR, row.DescriptionEN),
			ImageURL:     row.ImageURL,
			DisplayOrder: row.DisplayOrder,
			Link:         link,
			External:     external,
		})
	}
	WriteJSON(w, http.StatusOK, map[string][]HeroSlideDTO{"items": items})
}

// resolveSlideLink computes a slide's outbound link from its link_type
// discriminator: an internal route for briefing/activity slides, the raw
// URL for external ones, nothing otherwise.
func resolveSlideLink(linkType, linkID, externalLink *string) (*string, bool) {
	if linkType == nil {
		return nil, false
	}
	switch *linkType {
	case "briefing":
		if linkID != nil && *linkID != "" {
			link := "/briefings/" + *linkID
			return &link, false
		}
	case "activity":
		if linkID != nil && *linkID != "" {
			link := "/activities/" + *linkID
			return &link, false
		}
	case "external":
		if externalLink != nil && strings.TrimSpace(*externalLink) != "" {
			link := strings.TrimSpace(*externalLink)
			return &link, true
		}
	}
	return nil, false
}

func (s *Server) PublicStats(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	rows := []struct {
		ID           string `db:"id"`
		LabelAR      string `db:"label_ar"`
		LabelEN      string `db:"label_en"`
		Value        string `db:"value"`
		Icon         string `db:"icon"`
		DisplayOrder int    `db:"display_order"`
	}{}
	if err := s.DB.Select(&rows, `
SELECT id, label_ar, label_en, value, icon, display_order
FROM site_stats
WHERE is_active = TRUE
ORDER BY display_order ASC
`); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	items := make([]SiteStatDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, SiteStatDTO{
			ID:           row.ID,
			Label:        i18n.Pick(lang, row.LabelAR, row.LabelEN),
			Value:        row.Value,
			Icon:         row.Icon,
			DisplayOrder: row.DisplayOrder,
		})
	}
	WriteJSON(w, http.StatusOK, map[string][]SiteStatDTO{"items": items})
}

func (s *Server) PublicWhyPoints(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	rows := []struct {
		ID            string `db:"id"`
		TitleAR       string `db:"title_ar"`
		TitleEN       string `db:"title_en"`
		DescriptionAR string `db:"description_ar"`
		DescriptionEN string `db:"description_en"`
		Icon          string `db:"icon"`
		DisplayOrder  int    `db:"display_order"`
	}{}
	if err := s.DB.Select(&rows, `
SELECT id, title_ar, title_en, description_ar, description_en, icon, display_order
FROM why_raydan_points
WHERE is_active = TRUE
ORDER BY display_order ASC
`); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	items := make([]WhyPointDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, WhyPointDTO{
			ID:           row.ID,
			Title:        i18n.Pick(lang, row.TitleAR, row.TitleEN),
			Description:  i18n.Pick(lang, row.DescriptionAR, row.DescriptionEN),
			Icon:         row.Icon,
			DisplayOrder: row.DisplayOrder,
		})
	}
	WriteJSON(w, http.StatusOK, map[string][]WhyPointDTO{"items": items})
}

func (s *Server) PublicSettings(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	rows := []struct {
		Key     string `db:"key"`
		ValueAR string `db:"value_ar"`
		ValueEN string `db:"value_en"`
	}{}
	if err := s.DB.Select(&rows, `SELECT key, value_ar, value_en FROM site_settings ORDER BY key ASC`); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = i18n.Pick(lang, row.ValueAR, row.ValueEN)
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"lang":   lang,
		"dir":    lang.Dir(),
		"values": values,
	})
}

func (s *Server) PublicSections(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	rows := []struct {
		ID            string `db:"id"`
		TitleAR       string `db:"title_ar"`
		TitleEN       string `db:"title_en"`
		DescriptionAR string `db:"description_ar"`
		DescriptionEN string `db:"description_en"`
		Slug          string `db:"slug"`
		Icon          string `db:"icon"`
		OrderIndex    int    `db:"order_index"`
	}{}
	if err := s.DB.Select(&rows, `
SELECT id, title_ar, title_en, description_ar, description_en, slug, icon, order_index
FROM sections
WHERE is_active = TRUE
ORDER BY order_index ASC
`); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	items := make([]SectionDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, SectionDTO{
			ID:          row.ID,
			Title:       i18n.Pick(lang, row.TitleAR, row.TitleEN),
			Description: i18n.Pick(lang, row.DescriptionAR, row.DescriptionEN),
			Slug:        row.Slug,
			Icon:        row.Icon,
			OrderIndex:  row.OrderIndex,
		})
	}
	WriteJSON(w, http.StatusOK, map[string][]SectionDTO{"items": items})
}

func (s *Server) PublicSectionCategories(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	slug := chi.URLParam(r, "slug")
	rows := []struct {
		ID            string `db:"id"`
		TitleAR       string `db:"title_ar"`
		TitleEN       string `db:"title_en"`
		DescriptionAR string `db:"description_ar"`
		DescriptionEN string `db:"description_en"`
		Slug          string `db:"slug"`
		OrderIndex    int    `db:"order_index"`
	}{}
	if err := s.DB.Select(&rows, `
SELECT c.id, c.title_ar, c.title_en, c.description_ar, c.description_en, c.slug, c.order_index
FROM categories c
JOIN sections sec ON sec.id = c.section_id
WHERE sec.slug = $1 AND c.is_active = TRUE AND sec.is_active = TRUE
ORDER BY c.order_index ASC
`, slug); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	items := make([]SectionDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, SectionDTO{
			ID:          row.ID,
			Title:       i18n.Pick(lang, row.TitleAR, row.TitleEN),
			Description: i18n.Pick(lang, row.DescriptionAR, row.DescriptionEN),
			Slug:        row.Slug,
			OrderIndex:  row.OrderIndex,
		})
	}
	WriteJSON(w, http.StatusOK, map[string][]SectionDTO{"items": items})
}

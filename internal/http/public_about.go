package httpapi

import (
	"net/http"

	"raydan-backend-go/internal/i18n"
)

type TeamMemberDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Bio          string  `json:"bio"`
	PhotoURL     string  `json:"photoUrl"`
	Email        *string `json:"email"`
	LinkedinURL  *string `json:"linkedinUrl"`
	TwitterURL   *string `json:"twitterUrl"`
	DisplayOrder int     `json:"displayOrder"`
	IsLeadership bool    `json:"isLeadership"`
}

type OrganizationValueDTO struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Icon         *string `json:"icon"`
	DisplayOrder int     `json:"displayOrder"`
}

func (s *Server) PublicTeam(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	rows := []struct {
		ID           string  `db:"id"`
		NameAR       string  `db:"name_ar"`
		NameEN       string  `db:"name_en"`
		PositionAR   string  `db:"position_ar"`
		PositionEN   string  `db:"position_en"`
		BioAR        string  `db:"bio_ar"`
		BioEN        string  `db:"bio_en"`
		PhotoURL     string  `db:"photo_url"`
		Email        *string `db:"email"`
		LinkedinURL  *string `db:"linkedin_url"`
		TwitterURL   *string `db:"twitter_url"`
		DisplayOrder int     `db:"display_order"`
		IsLeadership bool    `db:"is_leadership"`
	}{}
	query := `
SELECT id, name_ar, name_en, position_ar, position_en, bio_ar, bio_en, photo_url,
       email, linkedin_url, twitter_url, display_order, is_leadership
FROM team_members
WHERE is_active = TRUE
`
	if r.URL.Query().Get("leadership") == "true" {
		query += "AND is_leadership = TRUE\n"
	}
	query += "ORDER BY display_order ASC"
	if err := s.DB.Select(&rows, query); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	items := make([]TeamMemberDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, TeamMemberDTO{
			ID:           row.ID,
			Name:         i18n.Pick(lang, row.NameAR, row.NameEN),
			Position:     i18n.Pick(lang, row.PositionAR, row.PositionEN),
			Bio:          i18n.Pick(lang, row.BioAR, row.BioEN),
			PhotoURL:     row.PhotoURL,
			Email:        row.Email,
			LinkedinURL:  row.LinkedinURL,
			TwitterURL:   row.TwitterURL,
			DisplayOrder: row.DisplayOrder,
			IsLeadership: row.IsLeadership,
		})
	}
	WriteJSON(w, http.StatusOK, map[string][]TeamMemberDTO{"items": items})
}

func (s *Server) PublicValues(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	rows := []struct {
		ID           string  `db:"id"`
		Type         string  `db:"type"`
		TitleAR      string  `db:"title_ar"`
		TitleEN      string  `db:"title_en"`
		ContentAR    string  `db:"content_ar"`
		ContentEN    string  `db:"content_en"`
		Icon         *string `db:"icon"`
		DisplayOrder int     `db:"display_order"`
	}{}
	query := `
SELECT id, type, title_ar, title_en, content_ar, content_en, icon, display_order
FROM organization_values
`
	args := []interface{}{}
	if valueType := r.URL.Query().Get("type"); valueType != "" {
		args = append(args, valueType)
		query += "WHERE type = $1\n"
	}
	query += "ORDER BY display_order ASC"
	if err := s.DB.Select(&rows, query, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	items := make([]OrganizationValueDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, OrganizationValueDTO{
			ID:           row.ID,
			Type:         row.Type,
			Title:        i18n.Pick(lang, row.TitleAR, row.TitleEN),
			Content:      i18n.Pick(lang, row.ContentAR, row.ContentEN),
			Icon:         row.Icon,
			DisplayOrder: row.DisplayOrder,
		})
	}
	WriteJSON(w, http.StatusOK, map[string][]OrganizationValueDTO{"items": items})
}

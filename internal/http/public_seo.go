package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/models"
	"raydan-backend-go/internal/services"
)

type BusinessInfoDTO struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Address       string            `json:"address"`
	City          string            `json:"city"`
	State         string            `json:"state"`
	Country       string            `json:"country"`
	PostalCode    string            `json:"postalCode"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
	Description   string            `json:"description"`
	FoundedYear   int               `json:"foundedYear"`
	BusinessHours json.RawMessage   `json:"businessHours"`
	SocialMedia   map[string]string `json:"socialMedia"`
}

type SEOResponse struct {
	PagePath    string                   `json:"pagePath"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Keywords    []string                 `json:"keywords"`
	OGImage     *string                  `json:"ogImage"`
	Canonical   *string                  `json:"canonical"`
	Lang        i18n.Lang                `json:"lang"`
	Dir         string                   `json:"dir"`
	Schemas     []map[string]interface{} `json:"schemas"`
}

func (s *Server) fetchBusinessInfo() (*models.BusinessInfo, error) {
	var info models.BusinessInfo
	err := s.DB.Get(&info, `
SELECT id, business_name, business_name_ar, address, address_ar, city, city_ar,
       state, state_ar, country, country_ar, postal_code, phone, phone_secondary,
       email, latitude, longitude, business_hours, founded_year, description,
       description_ar, keywords, social_media, google_business_profile_url, updated_at
FROM business_info
LIMIT 1
`)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *Server) PublicBusinessInfo(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	cacheKey := "business-info:" + string(lang)
	if cached, ok, err := s.Cache.Get(r.Context(), cacheKey); err == nil && ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(cached)
		return
	}

	info, err := s.fetchBusinessInfo()
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(lang, "error.notfound"))
		return
	}
	social := map[string]string{}
	_ = json.Unmarshal(info.SocialMedia, &social)
	dto := BusinessInfoDTO{
		ID:            info.ID,
		Name:          i18n.Pick(lang, info.BusinessNameAR, info.BusinessName),
		Address:       i18n.Pick(lang, info.AddressAR, info.Address),
		City:          i18n.Pick(lang, info.CityAR, info.City),
		State:         i18n.Pick(lang, info.StateAR, info.State),
		Country:       i18n.Pick(lang, info.CountryAR, info.Country),
		PostalCode:    info.PostalCode,
		Phone:         info.Phone,
		Email:         info.Email,
		Description:   i18n.Pick(lang, info.DescriptionAR, info.Description),
		FoundedYear:   info.FoundedYear,
		BusinessHours: json.RawMessage(info.BusinessHours),
		SocialMedia:   social,
	}
	payload, err := json.Marshal(dto)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	ttl := time.Duration(s.Config.CacheTTLSeconds) * time.Second
	if err := s.Cache.Set(r.Context(), cacheKey, payload, ttl); err != nil {
		log.Printf("cache business info: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// PublicSEO returns the head metadata and structured-data blocks for a
// page path, localized to the active language.
func (s *Server) PublicSEO(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	pagePath := strings.TrimSpace(r.URL.Query().Get("path"))
	if pagePath == "" {
		pagePath = "/"
	}
	row := models.SEOMetadata{}
	if err := s.DB.Get(&row, `
SELECT id, page_path, title, title_ar, description, description_ar, keywords,
       og_image, schema_type, additional_schema, canonical_url, updated_at
FROM seo_metadata
WHERE page_path = $1
`, pagePath); err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(lang, "error.notfound"))
		return
	}
	keywords := []string{}
	_ = json.Unmarshal(row.Keywords, &keywords)

	schemas := []map[string]interface{}{}
	if info, err := s.fetchBusinessInfo(); err == nil {
		schemas = append(schemas, services.OrganizationSchema(*info, lang, s.Config.PublicBaseURL))
	}
	if pagePath != "/" {
		home := i18n.T(lang, "site.title")
		name := i18n.Pick(lang, row.TitleAR, row.Title)
		schemas = append(schemas, services.BreadcrumbSchema([]services.BreadcrumbItem{
			{Name: home, URL: s.Config.PublicBaseURL},
			{Name: name, URL: s.Config.PublicBaseURL + pagePath},
		}))
	}
	if len(row.AdditionalSchema) > 2 {
		extra := map[string]interface{}{}
		if err := json.Unmarshal(row.AdditionalSchema, &extra); err == nil && len(extra) > 0 {
			schemas = append(schemas, extra)
		}
	}

	WriteJSON(w, http.StatusOK, SEOResponse{
		PagePath:    row.PagePath,
		Title:       i18n.Pick(lang, row.TitleAR, row.Title),
		Description: i18n.Pick(lang, row.DescriptionAR, row.Description),
		Keywords:    keywords,
		OGImage:     row.OGImage,
		Canonical:   row.CanonicalURL,
		Lang:        lang,
		Dir:         lang.Dir(),
		Schemas:     schemas,
	})
}

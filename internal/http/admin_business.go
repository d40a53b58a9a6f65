package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
)

type AdminBusinessInfoDTO struct {
	ID             string          `db:"id" json:"id"`
	BusinessName   string          `db:"business_name" json:"businessName"`
	BusinessNameAR string          `db:"business_name_ar" json:"businessNameAr"`
	Address        string          `db:"address" json:"address"`
	AddressAR      string          `db:"address_ar" json:"addressAr"`
	City           string          `db:"city" json:"city"`
	CityAR         string          `db:"city_ar" json:"cityAr"`
	State          string          `db:"state" json:"state"`
	StateAR        string          `db:"state_ar" json:"stateAr"`
	Country        string          `db:"country" json:"country"`
	CountryAR      string          `db:"country_ar" json:"countryAr"`
	PostalCode     string          `db:"postal_code" json:"postalCode"`
	Phone          string          `db:"phone" json:"phone"`
	PhoneSecondary *string         `db:"phone_secondary" json:"phoneSecondary"`
	Email          string          `db:"email" json:"email"`
	Latitude       *float64        `db:"latitude" json:"latitude"`
	Longitude      *float64        `db:"longitude" json:"longitude"`
	BusinessHours  json.RawMessage `db:"business_hours" json:"businessHours"`
	FoundedYear    int             `db:"founded_year" json:"foundedYear"`
	Description    string          `db:"description" json:"description"`
	DescriptionAR  string          `db:"description_ar" json:"descriptionAr"`
	Keywords       json.RawMessage `db:"keywords" json:"keywords"`
	SocialMedia    json.RawMessage `db:"social_media" json:"socialMedia"`
	GoogleProfile  *string         `db:"google_business_profile_url" json:"googleBusinessProfileUrl"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}

type BusinessInfoRequest struct {
	BusinessName   string          `json:"businessName" validate:"required"`
	BusinessNameAR string          `json:"businessNameAr" validate:"required"`
	Address        string          `json:"address"`
	AddressAR      string          `json:"addressAr"`
	City           string          `json:"city"`
	CityAR         string          `json:"cityAr"`
	State          string          `json:"state"`
	StateAR        string          `json:"stateAr"`
	Country        string          `json:"country"`
	CountryAR      string          `json:"countryAr"`
	PostalCode     string          `json:"postalCode"`
	Phone          string          `json:"phone"`
	PhoneSecondary *string         `json:"phoneSecondary"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Latitude       *float64        `json:"latitude"`
	Longitude      *float64        `json:"longitude"`
	BusinessHours  json.RawMessage `json:"businessHours"`
	FoundedYear    int             `json:"foundedYear"`
	Description    string          `json:"description"`
	DescriptionAR  string          `json:"descriptionAr"`
	Keywords       json.RawMessage `json:"keywords"`
	SocialMedia    json.RawMessage `json:"socialMedia"`
	GoogleProfile  *string         `json:"googleBusinessProfileUrl"`
}

const adminBusinessColumns = `
id, business_name, business_name_ar, address, address_ar, city, city_ar,
state, state_ar, country, country_ar, postal_code, phone, phone_secondary,
email, latitude, longitude, business_hours, founded_year, description,
description_ar, keywords, social_media, google_business_profile_url, updated_at
`

func (s *Server) AdminGetBusinessInfo(w http.ResponseWriter, r *http.Request) {
	row := AdminBusinessInfoDTO{}
	err := s.DB.Get(&row, `
SELECT `+adminBusinessColumns+`
FROM business_info
LIMIT 1
`)
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminUpsertBusinessInfo(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req BusinessInfoRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	if len(req.BusinessHours) == 0 {
		req.BusinessHours = json.RawMessage(`{}`)
	}
	if len(req.Keywords) == 0 {
		req.Keywords = json.RawMessage(`[]`)
	}
	if len(req.SocialMedia) == 0 {
		req.SocialMedia = json.RawMessage(`{}`)
	}

	args := []interface{}{
		req.BusinessName, req.BusinessNameAR, req.Address, req.AddressAR,
		req.City, req.CityAR, req.State, req.StateAR, req.Country, req.CountryAR,
		req.PostalCode, req.Phone, req.PhoneSecondary, req.Email,
		req.Latitude, req.Longitude, []byte(req.BusinessHours), req.FoundedYear,
		req.Description, req.DescriptionAR, []byte(req.Keywords),
		[]byte(req.SocialMedia), req.GoogleProfile,
	}

	row := AdminBusinessInfoDTO{}
	err := s.DB.Get(&row, `
UPDATE business_info
SET business_name = $1, business_name_ar = $2, address = $3, address_ar = $4,
    city = $5, city_ar = $6, state = $7, state_ar = $8, country = $9,
    country_ar = $10, postal_code = $11, phone = $12, phone_secondary = $13,
    email = $14, latitude = $15, longitude = $16, business_hours = $17,
    founded_year = $18, description = $19, description_ar = $20,
    keywords = $21, social_media = $22, google_business_profile_url = $23,
    updated_at = NOW()
WHERE id = (SELECT id FROM business_info LIMIT 1)
RETURNING `+adminBusinessColumns, args...)
	if err != nil {
		err = s.DB.Get(&row, `
INSERT INTO business_info (business_name, business_name_ar, address, address_ar,
                           city, city_ar, state, state_ar, country, country_ar,
                           postal_code, phone, phone_secondary, email, latitude,
                           longitude, business_hours, founded_year, description,
                           description_ar, keywords, social_media,
                           google_business_profile_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
        $17, $18, $19, $20, $21, $22, $23)
RETURNING `+adminBusinessColumns, args...)
	}
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}

	for _, cached := range []string{"business-info:en", "business-info:ar"} {
		_ = s.Cache.Delete(r.Context(), cached)
	}
	WriteJSON(w, http.StatusOK, row)
}

type AdminSEODTO struct {
	ID               string          `db:"id" json:"id"`
	PagePath         string          `db:"page_path" json:"pagePath"`
	Title            string          `db:"title" json:"title"`
	TitleAR          string          `db:"title_ar" json:"titleAr"`
	Description      string          `db:"description" json:"description"`
	DescriptionAR    string          `db:"description_ar" json:"descriptionAr"`
	Keywords         json.RawMessage `db:"keywords" json:"keywords"`
	OGImage          *string         `db:"og_image" json:"ogImage"`
	SchemaType       string          `db:"schema_type" json:"schemaType"`
	AdditionalSchema json.RawMessage `db:"additional_schema" json:"additionalSchema"`
	CanonicalURL     *string         `db:"canonical_url" json:"canonicalUrl"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updatedAt"`
}

type SEORequest struct {
	PagePath         string          `json:"pagePath" validate:"required,startswith=/"`
	Title            string          `json:"title" validate:"required"`
	TitleAR          string          `json:"titleAr" validate:"required"`
	Description      string          `json:"description"`
	DescriptionAR    string          `json:"descriptionAr"`
	Keywords         json.RawMessage `json:"keywords"`
	OGImage          *string         `json:"ogImage"`
	SchemaType       string          `json:"schemaType"`
	AdditionalSchema json.RawMessage `json:"additionalSchema"`
	CanonicalURL     *string         `json:"canonicalUrl"`
}

const adminSEOColumns = `
id, page_path, title, title_ar, description, description_ar, keywords,
og_image, schema_type, additional_schema, canonical_url, updated_at
`

func (s *Server) AdminListSEO(w http.ResponseWriter, r *http.Request) {
	rows := []AdminSEODTO{}
	err := s.DB.Select(&rows, `
SELECT `+adminSEOColumns+`
FROM seo_metadata
ORDER BY page_path ASC
`)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminUpsertSEO(w http.ResponseWriter, r *http.Request) {
	var req SEORequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	if len(req.Keywords) == 0 {
		req.Keywords = json.RawMessage(`[]`)
	}
	if len(req.AdditionalSchema) == 0 {
		req.AdditionalSchema = json.RawMessage(`{}`)
	}
	if req.SchemaType == "" {
		req.SchemaType = "WebPage"
	}
	row := AdminSEODTO{}
	err := s.DB.Get(&row, `
INSERT INTO seo_metadata (page_path, title, title_ar, description, description_ar,
                          keywords, og_image, schema_type, additional_schema,
                          canonical_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (page_path) DO UPDATE
SET title = EXCLUDED.title, title_ar = EXCLUDED.title_ar,
    description = EXCLUDED.description, description_ar = EXCLUDED.description_ar,
    keywords = EXCLUDED.keywords, og_image = EXCLUDED.og_image,
    schema_type = EXCLUDED.schema_type,
    additional_schema = EXCLUDED.additional_schema,
    canonical_url = EXCLUDED.canonical_url, updated_at = NOW()
RETURNING `+adminSEOColumns,
		req.PagePath, req.Title, req.TitleAR, req.Description, req.DescriptionAR,
		[]byte(req.Keywords), req.OGImage, req.SchemaType,
		[]byte(req.AdditionalSchema), req.CanonicalURL)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteSEO(w http.ResponseWriter, r *http.Request) {
	result, err := s.DB.Exec(`DELETE FROM seo_metadata WHERE id = $1`, chi.URLParam(r, "seoId"))
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

package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
)

type AdminActivityDTO struct {
	ID               string     `db:"id" json:"id"`
	TitleAR          string     `db:"title_ar" json:"titleAr"`
	TitleEN          string     `db:"title_en" json:"titleEn"`
	DescriptionAR    string     `db:"description_ar" json:"descriptionAr"`
	DescriptionEN    string     `db:"description_en" json:"descriptionEn"`
	ActivityTypeAR   string     `db:"activity_type_ar" json:"activityTypeAr"`
	ActivityTypeEN   string     `db:"activity_type_en" json:"activityTypeEn"`
	LocationAR       string     `db:"location_ar" json:"locationAr"`
	LocationEN       string     `db:"location_en" json:"locationEn"`
	FeaturedImage    string     `db:"featured_image" json:"featuredImage"`
	StartDate        time.Time  `db:"start_date" json:"startDate"`
	EndDate          *time.Time `db:"end_date" json:"endDate"`
	IsUpcoming       bool       `db:"is_upcoming" json:"isUpcoming"`
	RegistrationLink *string    `db:"registration_link" json:"registrationLink"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
}

type ActivityRequest struct {
	TitleAR          string     `json:"titleAr" validate:"required"`
	TitleEN          string     `json:"titleEn"`
	DescriptionAR    string     `json:"descriptionAr"`
	DescriptionEN    string     `json:"descriptionEn"`
	ActivityTypeAR   string     `json:"activityTypeAr"`
	ActivityTypeEN   string     `json:"activityTypeEn"`
	LocationAR       string     `json:"locationAr"`
	LocationEN       string     `json:"locationEn"`
	FeaturedImage    string     `json:"featuredImage"`
	StartDate        time.Time  `json:"startDate" validate:"required"`
	EndDate          *time.Time `json:"endDate"`
	IsUpcoming       bool       `json:"isUpcoming"`
	RegistrationLink *string    `json:"registrationLink"`
}

const adminActivityColumns = `
id, title_ar, title_en, description_ar, description_en, activity_type_ar,
activity_type_en, location_ar, location_en, featured_image, start_date,
end_date, is_upcoming, registration_link, created_at
`

func (s *Server) AdminListActivities(w http.ResponseWriter, r *http.Request) {
	rows := []AdminActivityDTO{}
	err := s.DB.Select(&rows, `
SELECT `+adminActivityColumns+`
FROM activities
ORDER BY start_date DESC
`)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminCreateActivity(w http.ResponseWriter, r *http.Request) {
	var req ActivityRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	row := AdminActivityDTO{}
	err := s.DB.Get(&row, `
INSERT INTO activities (title_ar, title_en, description_ar, description_en,
                        activity_type_ar, activity_type_en, location_ar, location_en,
                        featured_image, start_date, end_date, is_upcoming, registration_link)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING `+adminActivityColumns,
		req.TitleAR, req.TitleEN, req.DescriptionAR, req.DescriptionEN,
		req.ActivityTypeAR, req.ActivityTypeEN, req.LocationAR, req.LocationEN,
		req.FeaturedImage, req.StartDate, req.EndDate, req.IsUpcoming, req.RegistrationLink)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusCreated, row)
}

func (s *Server) AdminUpdateActivity(w http.ResponseWriter, r *http.Request) {
	var req ActivityRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	row := AdminActivityDTO{}
	err := s.DB.Get(&row, `
UPDATE activities
SET title_ar = $1, title_en = $2, description_ar = $3, description_en = $4,
    activity_type_ar = $5, activity_type_en = $6, location_ar = $7, location_en = $8,
    featured_image = $9, start_date = $10, end_date = $11, is_upcoming = $12,
    registration_link = $13, updated_at = NOW()
WHERE id = $14
RETURNING `+adminActivityColumns,
		req.TitleAR, req.TitleEN, req.DescriptionAR, req.DescriptionEN,
		req.ActivityTypeAR, req.ActivityTypeEN, req.LocationAR, req.LocationEN,
		req.FeaturedImage, req.StartDate, req.EndDate, req.IsUpcoming,
		req.RegistrationLink, chi.URLParam(r, "activityId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteActivity(w http.ResponseWriter, r *http.Request) {
	result, err := s.DB.Exec(`DELETE FROM activities WHERE id = $1`, chi.URLParam(r, "activityId"))
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

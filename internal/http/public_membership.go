package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/services"
)

type MembershipApplicationRequest struct {
	FirstName      string `json:"firstName" validate:"required,min=2,max=100"`
	LastName       string `json:"lastName" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,min=6,max=30"`
	Address        string `json:"address" validate:"required,min=5,max=300"`
	MembershipTier string `json:"membershipTier" validate:"required"`
}

func (s *Server) PublicMembershipTiers(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": services.MembershipTiers(lang),
	})
}

func (s *Server) SubmitMembershipApplication(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req MembershipApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, i18n.T(lang, "error.generic"))
		return
	}
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	if err := s.validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, i18n.T(lang, "error.generic"))
		return
	}
	if !services.ValidTier(req.MembershipTier) {
		WriteError(w, http.StatusBadRequest, i18n.T(lang, "error.generic"))
		return
	}

	var id string
	err := s.DB.QueryRowx(`
INSERT INTO membership_applications (first_name, last_name, email, phone, address, membership_tier, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`, req.FirstName, req.LastName, req.Email, req.Phone, req.Address, req.MembershipTier, services.StatusPending).Scan(&id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]string{
		"id":      id,
		"status":  services.StatusPending,
		"message": i18n.T(lang, "membership.success"),
	})
}

package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"raydan-backend-go/internal/services"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    int64     `json:"expiresAt"`
	Admin        *AdminDTO `json:"admin"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AdminDTO struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FullName    string  `json:"fullName"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"isActive"`
	LastLoginAt *string `json:"lastLoginAt"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Password) == "" {
		WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	row := struct {
		ID           string     `db:"id"`
		Email        string     `db:"email"`
		PasswordHash string     `db:"password_hash"`
		FullName     string     `db:"full_name"`
		Role         string     `db:"role"`
		IsActive     bool       `db:"is_active"`
		LastLoginAt  *time.Time `db:"last_login_at"`
	}{}
	err := s.DB.Get(&row, `
SELECT id, email, password_hash, full_name, role, is_active, last_login_at
FROM admins
WHERE lower(email) = $1 AND is_active = TRUE
`, email)
	if err != nil || !s.Tokens.VerifyPassword(req.Password, row.PasswordHash) {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	access, expiresAt, err := s.Tokens.CreateAccessToken(row.ID, row.Email, row.Role)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	refresh, err := s.Tokens.CreateRefreshToken(row.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := services.SetLastLogin(s.DB, row.ID); err != nil {
		log.Printf("set last login: %v", err)
	}
	WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		Admin: &AdminDTO{
			ID:          row.ID,
			Email:       row.Email,
			FullName:    row.FullName,
			Role:        row.Role,
			IsActive:    row.IsActive,
			LastLoginAt: formatTimePtr(row.LastLoginAt),
		},
	})
}

func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	token, claims, err := s.Tokens.ParseToken(strings.TrimSpace(req.RefreshToken))
	if err != nil || !token.Valid || claims["typ"] != "refresh" {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	adminID, _ := claims["sub"].(string)
	admin, err := services.FetchActiveAdmin(s.DB, adminID)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	access, expiresAt, err := s.Tokens.CreateAccessToken(admin.ID, admin.Email, admin.Role)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	refresh, err := s.Tokens.CreateRefreshToken(admin.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		Admin: &AdminDTO{
			ID:          admin.ID,
			Email:       admin.Email,
			FullName:    admin.FullName,
			Role:        admin.Role,
			IsActive:    admin.IsActive,
			LastLoginAt: formatTimePtr(admin.LastLoginAt),
		},
	})
}

// Logout is stateless on the server; tokens simply expire. The endpoint
// exists so the client has a uniform call to clear its session against.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	admin, err := services.FetchActiveAdmin(s.DB, CurrentAdminID(r))
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	WriteJSON(w, http.StatusOK, AdminDTO{
		ID:          admin.ID,
		Email:       admin.Email,
		FullName:    admin.FullName,
		Role:        admin.Role,
		IsActive:    admin.IsActive,
		LastLoginAt: formatTimePtr(admin.LastLoginAt),
	})
}

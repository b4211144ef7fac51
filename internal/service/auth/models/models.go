package models

import (
	"strings"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
)

// Request модели

// CredentialsRequest логин и пароль администратора
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NormalizedUsername имя пользователя без пробелов по краям и в нижнем регистре
func (r *CredentialsRequest) NormalizedUsername() string {
	return strings.ToLower(strings.TrimSpace(r.Username))
}

// Response модели

// AdminResponse данные администратора
type AdminResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Confirmed bool   `json:"confirmed"`
}

// LoginResponse ответ на успешный вход
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      AdminResponse `json:"user"`
}

// FromDomainAdmin конвертирует domain модель в DTO
func FromDomainAdmin(a *domain.AdminUser) *AdminResponse {
	if a == nil {
		return nil
	}
	return &AdminResponse{
		ID:        a.ID.String(),
		Username:  a.Username,
		Confirmed: a.Confirmed,
	}
}

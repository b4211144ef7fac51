package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a staff account allowed to use the admin API.
// New sign-ups stay unconfirmed until the owner confirms them in the database.
type AdminUser struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Confirmed    bool
	CreatedAt    time.Time
}

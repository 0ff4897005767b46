package domain

import "time"

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTutor   Role = "TUTOR"
	RoleAdmin   Role = "ADMIN"
)

// Identity is the authenticated user behind a credential.
type Identity struct {
	UserID    string    `json:"userId" validate:"required"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Role      Role      `json:"role" validate:"required,oneof=STUDENT TUTOR ADMIN"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (i Identity) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

package domain

import "time"

const (
	RolePatient = "paciente"
	RoleDoctor  = "medico"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is one of the known identity roles.
func ValidRole(role string) bool {
	switch role {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"telefone,omitempty"`
	Role         string    `json:"tipo"`
	CreatedAt    time.Time `json:"criadoEm"`
}

// Redacted returns a copy of u without the password hash.
func (u *User) Redacted() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// Package domain contains entities without logic, just meta-data.
package domain

import (
	"errors"

	"github.com/google/uuid"
)

const MaxNameLen = 36

var (
	ErrNameEmpty   = errors.New("name empty")
	ErrNameTooLong = errors.New("name too long")
)

type UserID string

// User identifies one client session independently of any room.
type User struct {
	ID UserID `json:"id"`
}

// NewUser is a tiny helper to avoid ad-hoc struct literals in adapters.
func NewUser() *User {
	return &User{ID: UserID(uuid.NewString())}
}

// ValidateName checks a display name before it is bound to a room.
func ValidateName(name string) error {
	if len(name) == 0 {
		return ErrNameEmpty
	}
	if len(name) > MaxNameLen {
		return ErrNameTooLong
	}
	return nil
}

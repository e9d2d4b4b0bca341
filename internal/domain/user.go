package domain

import (
	"time"

	"booking_system/internal/phone"
)

// User is a customer account. Phone is the identity key and must be unique
// at registration; its stored representation is reconciled by phone.Value.
type User struct {
	ID        string      `json:"id"`
	FullName  string      `json:"full_name"`
	Phone     phone.Value `json:"phone"`
	Email     string      `json:"email"`
	Password  string      `json:"-"` // bcrypt hash, never serialized
	Address   string      `json:"address"`
	CreatedAt time.Time   `json:"created_at"`
}

package store

import (
	"context"
	"errors"

	"booking_system/internal/domain"
	"booking_system/internal/phone"
)

var (
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (user phone at registration).
	ErrDuplicate = errors.New("duplicate key")

	// ErrNotFound is returned by single-record lookups with no match.
	// Mutations do NOT return it: update, status patch and delete report
	// success even when no record matched, which existing clients rely on.
	ErrNotFound = errors.New("record not found")
)

// Store is the uniform contract over the two interchangeable backends, a
// MongoDB document store and a MySQL relational store. Every call is a
// single atomic operation against the backing store; no transaction spans
// calls.
type Store interface {
	CreateUser(ctx context.Context, u *domain.User) error
	FindUserByPhone(ctx context.Context, p phone.Value) (*domain.User, error)

	CreateAdmin(ctx context.Context, a *domain.Admin) error
	FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)

	CreateBooking(ctx context.Context, b *domain.Booking) (string, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListBookingsByPhone(ctx context.Context, p phone.Value) ([]domain.Booking, error)
	UpdateBooking(ctx context.Context, id string, upd domain.BookingUpdate) error
	UpdateBookingStatus(ctx context.Context, id, status string) error
	DeleteBooking(ctx context.Context, id string) error

	Close(ctx context.Context) error
}

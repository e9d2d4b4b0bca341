package api_test

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"booking_system/internal/domain"
	"booking_system/internal/phone"
	"booking_system/internal/store"
)

// memStore is an in-memory store.Store used to exercise the handlers
// without a database. It mirrors the contract exactly, including the
// mutation leniency: update, patch and delete succeed with no match.
type memStore struct {
	mu       sync.Mutex
	users    []domain.User
	admins   []domain.Admin
	bookings []domain.Booking
	nextID   int
}

func (m *memStore) id() string {
	m.nextID++
	return strconv.Itoa(m.nextID)
}

func (m *memStore) CreateUser(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if u.Phone.Matches(existing.Phone.String()) {
			return store.ErrDuplicate
		}
	}
	u.ID = m.id()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	m.users = append(m.users, *u)
	return nil
}

func (m *memStore) FindUserByPhone(_ context.Context, p phone.Value) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if p.Matches(u.Phone.String()) {
			found := u
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) CreateAdmin(_ context.Context, a *domain.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.id()
	m.admins = append(m.admins, *a)
	return nil
}

func (m *memStore) FindAdminByUsername(_ context.Context, username string) (*domain.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.Username == username {
			found := a
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) CreateBooking(_ context.Context, b *domain.Booking) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = m.id()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	m.bookings = append(m.bookings, *b)
	return b.ID, nil
}

func (m *memStore) ListBookings(_ context.Context) ([]domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Booking, len(m.bookings))
	copy(out, m.bookings)
	sortNewestFirst(out)
	return out, nil
}

func (m *memStore) ListBookingsByPhone(_ context.Context, p phone.Value) ([]domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Booking
	for _, b := range m.bookings {
		if p.Matches(b.Phone.String()) {
			out = append(out, b)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *memStore) UpdateBooking(_ context.Context, id string, upd domain.BookingUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.bookings {
		if b.ID == id {
			b.CustomerName = upd.CustomerName
			b.Phone = upd.Phone
			b.ServiceType = upd.ServiceType
			b.BookingDate = upd.BookingDate
			b.BookingTime = upd.BookingTime
			b.SubDistrict = upd.SubDistrict
			b.District = upd.District
			b.Province = upd.Province
			b.Postcode = upd.Postcode
			b.AddressDetail = upd.AddressDetail
			b.Notes = upd.Notes
			b.Status = upd.Status
			m.bookings[i] = b
			return nil
		}
	}
	return nil // No match still succeeds
}

func (m *memStore) UpdateBookingStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			return nil
		}
	}
	return nil
}

func (m *memStore) DeleteBooking(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memStore) Close(context.Context) error { return nil }

// sortNewestFirst orders by creation time descending, breaking ties on the
// numeric id so back-to-back inserts in the same instant stay deterministic.
func sortNewestFirst(bs []domain.Booking) {
	sort.SliceStable(bs, func(i, j int) bool {
		if !bs[i].CreatedAt.Equal(bs[j].CreatedAt) {
			return bs[i].CreatedAt.After(bs[j].CreatedAt)
		}
		a, _ := strconv.Atoi(bs[i].ID)
		b, _ := strconv.Atoi(bs[j].ID)
		return a > b
	})
}

// Package sqlstore implements store.Store on MySQL through GORM.
package sqlstore

import (
	"context"
	"errors"
	"time"

	"github.com/araddon/dateparse" // Lenient date parsing
	"github.com/spf13/cast"        // String/number conversions
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library

	"booking_system/internal/domain"
	"booking_system/internal/phone"
	"booking_system/internal/store"
)

// Options control backend-specific read behavior.
type Options struct {
	// FormatDates surfaces booking_date to clients as plain YYYY-MM-DD.
	// The relational deployments always ran with this on; the document
	// store never formats. An explicit option so the difference between
	// backends stays visible instead of being a hidden inconsistency.
	FormatDates bool
}

// Store is the relational adapter. Every method is one SQL statement; there
// are no cross-call transactions.
type Store struct {
	db   *gorm.DB
	opts Options
}

// Open connects to MySQL and returns the adapter.
func Open(dsn string, opts Options) (*Store, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return &Store{db: db, opts: opts}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the schema for all tables.
func Migrate(dsn string) error {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	return db.AutoMigrate(&userRow{}, &adminRow{}, &bookingRow{})
}

type userRow struct {
	ID        uint   `gorm:"primaryKey"`
	FullName  string
	Phone     string `gorm:"size:32;uniqueIndex"` // Unique identity key
	Email     string
	Password  string `gorm:"not null"` // bcrypt hash
	Address   string
	CreatedAt time.Time
}

func (userRow) TableName() string { return "users" }

type adminRow struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string // Hash or legacy plaintext, per deployment policy
	FullName string
	Role     string
}

func (adminRow) TableName() string { return "admins" }

type bookingRow struct {
	ID            uint   `gorm:"primaryKey"`
	CustomerName  string
	Phone         string `gorm:"size:32;index"`
	ServiceType   string
	BookingDate   string // Kept textual; may hold a full timestamp
	BookingTime   string
	SubDistrict   string
	District      string
	Province      string
	Postcode      string
	AddressDetail string
	Notes         string
	Status        string
	ImageURL      *string
	CreatedAt     time.Time `gorm:"index"`
}

func (bookingRow) TableName() string { return "bookings" }

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	row := userRow{
		FullName:  u.FullName,
		Phone:     u.Phone.String(),
		Email:     u.Email,
		Password:  u.Password,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return store.ErrDuplicate
		}
		return err
	}
	u.ID = cast.ToString(row.ID)
	u.CreatedAt = row.CreatedAt
	return nil
}

func (s *Store) FindUserByPhone(ctx context.Context, p phone.Value) (*domain.User, error) {
	var row userRow
	// Match both the textual and the numeric rendering of the phone.
	err := s.db.WithContext(ctx).Where("phone IN ?", p.Forms()).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u := domain.User{
		ID:        cast.ToString(row.ID),
		FullName:  row.FullName,
		Phone:     phone.Parse(row.Phone),
		Email:     row.Email,
		Password:  row.Password,
		Address:   row.Address,
		CreatedAt: row.CreatedAt,
	}
	return &u, nil
}

func (s *Store) CreateAdmin(ctx context.Context, a *domain.Admin) error {
	row := adminRow{
		Username: a.Username,
		Password: cast.ToString(a.Password),
		FullName: a.FullName,
		Role:     a.Role,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return store.ErrDuplicate
		}
		return err
	}
	a.ID = cast.ToString(row.ID)
	return nil
}

func (s *Store) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var row adminRow
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a := domain.Admin{
		ID:       cast.ToString(row.ID),
		Username: row.Username,
		Password: row.Password,
		FullName: row.FullName,
		Role:     row.Role,
	}
	return &a, nil
}

func (s *Store) CreateBooking(ctx context.Context, b *domain.Booking) (string, error) {
	row := bookingRow{
		CustomerName:  b.CustomerName,
		Phone:         b.Phone.String(),
		ServiceType:   b.ServiceType,
		BookingDate:   b.BookingDate,
		BookingTime:   b.BookingTime,
		SubDistrict:   b.SubDistrict,
		District:      b.District,
		Province:      b.Province,
		Postcode:      b.Postcode,
		AddressDetail: b.AddressDetail,
		Notes:         b.Notes,
		Status:        b.Status,
		ImageURL:      b.ImageURL,
		CreatedAt:     b.CreatedAt,
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	b.ID = cast.ToString(row.ID)
	b.CreatedAt = row.CreatedAt
	return b.ID, nil
}

func (s *Store) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var rows []bookingRow
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return s.toBookings(rows), nil
}

func (s *Store) ListBookingsByPhone(ctx context.Context, p phone.Value) ([]domain.Booking, error) {
	var rows []bookingRow
	err := s.db.WithContext(ctx).
		Where("phone IN ?", p.Forms()).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return s.toBookings(rows), nil
}

// UpdateBooking overwrites the full mutable field set. Zero request fields
// clear the stored columns, and an id that matches no row still reports
// success; both behaviors are relied on by existing clients.
func (s *Store) UpdateBooking(ctx context.Context, id string, upd domain.BookingUpdate) error {
	rowID, err := cast.ToUintE(id)
	if err != nil {
		return nil // Unparseable id matches nothing
	}
	updates := map[string]any{
		"customer_name":  upd.CustomerName,
		"phone":          upd.Phone.String(),
		"service_type":   upd.ServiceType,
		"booking_date":   upd.BookingDate,
		"booking_time":   upd.BookingTime,
		"sub_district":   upd.SubDistrict,
		"district":       upd.District,
		"province":       upd.Province,
		"postcode":       upd.Postcode,
		"address_detail": upd.AddressDetail,
		"notes":          upd.Notes,
		"status":         upd.Status,
	}
	return s.db.WithContext(ctx).
		Model(&bookingRow{}).
		Where("id = ?", rowID).
		Updates(updates).Error
}

func (s *Store) UpdateBookingStatus(ctx context.Context, id, status string) error {
	rowID, err := cast.ToUintE(id)
	if err != nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&bookingRow{}).
		Where("id = ?", rowID).
		Update("status", status).Error
}

func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	rowID, err := cast.ToUintE(id)
	if err != nil {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&bookingRow{}, rowID).Error
}

func (s *Store) toBookings(rows []bookingRow) []domain.Booking {
	out := make([]domain.Booking, len(rows))
	for i, r := range rows {
		out[i] = domain.Booking{
			ID:            cast.ToString(r.ID),
			CustomerName:  r.CustomerName,
			Phone:         phone.Parse(r.Phone),
			ServiceType:   r.ServiceType,
			BookingDate:   r.BookingDate,
			BookingTime:   r.BookingTime,
			SubDistrict:   r.SubDistrict,
			District:      r.District,
			Province:      r.Province,
			Postcode:      r.Postcode,
			AddressDetail: r.AddressDetail,
			Notes:         r.Notes,
			Status:        r.Status,
			ImageURL:      r.ImageURL,
			CreatedAt:     r.CreatedAt,
		}
		if s.opts.FormatDates {
			out[i].BookingDate = formatBookingDate(r.BookingDate)
		}
	}
	return out
}

// formatBookingDate reduces a stored booking date to plain YYYY-MM-DD.
// Values that do not parse pass through untouched.
func formatBookingDate(v string) string {
	if v == "" {
		return v
	}
	t, err := dateparse.ParseAny(v)
	if err != nil {
		return v
	}
	return t.Format("2006-01-02")
}

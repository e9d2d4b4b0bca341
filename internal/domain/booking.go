package domain

import (
	"time"

	"booking_system/internal/phone"
)

// Booking statuses. Status is a free string in storage; these are the values
// the clients actually use.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// Booking is a service appointment. Phone associates it with a User by value
// only; nothing enforces that the user exists. ImageURL is nil when the
// customer attached no photo.
type Booking struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	Phone         phone.Value `json:"phone"`
	ServiceType   string      `json:"service_type"`
	BookingDate   string      `json:"booking_date"`
	BookingTime   string      `json:"booking_time"`
	SubDistrict   string      `json:"sub_district"`
	District      string      `json:"district"`
	Province      string      `json:"province"`
	Postcode      string      `json:"postcode"`
	AddressDetail string      `json:"address_detail"`
	Notes         string      `json:"notes"`
	Status        string      `json:"status"`
	ImageURL      *string     `json:"image_url"`
	CreatedAt     time.Time   `json:"created_at"`
}

// BookingUpdate is the full mutable field set for PUT. A zero field
// overwrites the stored one with its empty value; partial updates go through
// the status patch instead.
type BookingUpdate struct {
	CustomerName  string      `json:"customer_name"`
	Phone         phone.Value `json:"phone"`
	ServiceType   string      `json:"service_type"`
	BookingDate   string      `json:"booking_date"`
	BookingTime   string      `json:"booking_time"`
	SubDistrict   string      `json:"sub_district"`
	District      string      `json:"district"`
	Province      string      `json:"province"`
	Postcode      string      `json:"postcode"`
	AddressDetail string      `json:"address_detail"`
	Notes         string      `json:"notes"`
	Status        string      `json:"status"`
}

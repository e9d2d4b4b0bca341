package mongostore

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Legacy documents hold phone, postcode and booking_date as strings, numbers
// or BSON dates interchangeably; every combination must decode and surface
// as text.
func TestLegacyBookingDecode(t *testing.T) {
	when := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("NumericAndDateFields", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{
			"customer_name": "Somchai",
			"phone":         int64(811111111),
			"postcode":      int32(50200),
			"booking_date":  primitive.NewDateTimeFromTime(when),
			"status":        "pending",
			"created_at":    when,
		})
		if err != nil {
			t.Fatal(err)
		}
		var doc bookingDoc
		if err := bson.Unmarshal(raw, &doc); err != nil {
			t.Fatalf("decode of legacy document failed: %v", err)
		}
		b := toBooking(doc)
		if b.Postcode != "50200" {
			t.Errorf("postcode = %q, want %q", b.Postcode, "50200")
		}
		if b.BookingDate != "2024-05-01T10:00:00Z" {
			t.Errorf("booking_date = %q, want %q", b.BookingDate, "2024-05-01T10:00:00Z")
		}
		if !b.Phone.Matches("811111111") {
			t.Errorf("phone = %q", b.Phone.String())
		}
	})

	t.Run("StringFieldsPassThrough", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{
			"phone":        "0811111111",
			"postcode":     "50200",
			"booking_date": "2024-05-01",
		})
		if err != nil {
			t.Fatal(err)
		}
		var doc bookingDoc
		if err := bson.Unmarshal(raw, &doc); err != nil {
			t.Fatal(err)
		}
		b := toBooking(doc)
		if b.Postcode != "50200" || b.BookingDate != "2024-05-01" || b.Phone.String() != "0811111111" {
			t.Errorf("got postcode=%q booking_date=%q phone=%q", b.Postcode, b.BookingDate, b.Phone.String())
		}
	})

	t.Run("MissingFieldsAreEmpty", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"customer_name": "Somchai"})
		if err != nil {
			t.Fatal(err)
		}
		var doc bookingDoc
		if err := bson.Unmarshal(raw, &doc); err != nil {
			t.Fatal(err)
		}
		b := toBooking(doc)
		if b.Postcode != "" || b.BookingDate != "" {
			t.Errorf("absent fields must be empty, got postcode=%q booking_date=%q", b.Postcode, b.BookingDate)
		}
	})
}

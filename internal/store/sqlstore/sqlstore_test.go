package sqlstore

import "testing"

func TestFormatBookingDate(t *testing.T) {
	t.Run("Timestamp", func(t *testing.T) {
		if got := formatBookingDate("2024-05-01T10:00:00Z"); got != "2024-05-01" {
			t.Errorf("got %q, want %q", got, "2024-05-01")
		}
	})

	t.Run("AlreadyPlainDate", func(t *testing.T) {
		if got := formatBookingDate("2024-05-01"); got != "2024-05-01" {
			t.Errorf("got %q, want %q", got, "2024-05-01")
		}
	})

	t.Run("LegacyLongForm", func(t *testing.T) {
		if got := formatBookingDate("May 1, 2024 10:00:00"); got != "2024-05-01" {
			t.Errorf("got %q, want %q", got, "2024-05-01")
		}
	})

	t.Run("UnparseablePassesThrough", func(t *testing.T) {
		if got := formatBookingDate("next tuesday-ish"); got != "next tuesday-ish" {
			t.Errorf("got %q, want passthrough", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := formatBookingDate(""); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}

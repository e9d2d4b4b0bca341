package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library

	"booking_system/internal/domain"
	"booking_system/internal/phone"
	"booking_system/internal/store"
	"booking_system/internal/upload"
	"booking_system/internal/utils"
)

const (
	allBookingsKey = "bookings:all"
	cacheTTL       = 60 * time.Second
)

// phoneCacheKey keys a customer's booking list by the canonical phone form,
// so the string and numeric renderings share one cache entry.
func phoneCacheKey(p phone.Value) string {
	return "bookings:phone:" + p.Canonical()
}

// invalidateBookings drops the cached lists a booking mutation may have
// made stale, for mutations that know the affected phone.
func invalidateBookings(ctx context.Context, rdb *redis.Client, phones ...phone.Value) {
	_ = utils.DeleteCache(ctx, rdb, allBookingsKey)
	for _, p := range phones {
		if !p.IsZero() {
			_ = utils.DeleteCache(ctx, rdb, phoneCacheKey(p))
		}
	}
}

// invalidateAllBookings flushes every booking list, including all per-phone
// entries. Status patches and deletes land here: they know only the booking
// id, not whose list the record is on.
func invalidateAllBookings(ctx context.Context, rdb *redis.Client) {
	_ = utils.DeleteCache(ctx, rdb, allBookingsKey)
	_ = utils.DeleteCacheByPrefix(ctx, rdb, "bookings:phone:")
}

// TestHandler is the health probe the frontend pings on load.
func TestHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Backend is running!"})
	}
}

// ListBookingsHandler returns every booking, newest first.
func ListBookingsHandler(st store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []domain.Booking
		if found, err := utils.GetCache(ctx, rdb, allBookingsKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		bookings, err := st.ListBookings(ctx)
		if err != nil {
			fail(c, http.StatusInternalServerError, kindStorage, err.Error())
			return
		}
		if bookings == nil {
			bookings = []domain.Booking{} // Empty list, not null
		}
		_ = utils.SetCache(ctx, rdb, allBookingsKey, bookings, cacheTTL)
		c.JSON(http.StatusOK, bookings)
	}
}

// MyBookingsHandler returns the bookings whose phone matches the path
// parameter under either stored representation.
func MyBookingsHandler(st store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		p := phone.Parse(c.Param("phone"))
		key := phoneCacheKey(p)
		var cached []domain.Booking
		if found, err := utils.GetCache(ctx, rdb, key, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		bookings, err := st.ListBookingsByPhone(ctx, p)
		if err != nil {
			fail(c, http.StatusInternalServerError, kindStorage, err.Error())
			return
		}
		if bookings == nil {
			bookings = []domain.Booking{}
		}
		_ = utils.SetCache(ctx, rdb, key, bookings, cacheTTL)
		c.JSON(http.StatusOK, bookings)
	}
}

// CreateBookingHandler inserts a booking from a multipart form, storing the
// optional image first. The file write and the insert are two independent
// operations: an insert failure can leave an orphaned file behind, which
// the legacy system accepted and this one does too.
func CreateBookingHandler(st store.Store, rdb *redis.Client, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var imageURL *string
		if fh, err := c.FormFile(upload.Field); err == nil {
			url, err := upload.Save(fh, uploadDir)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"file":  fh.Filename,
					"error": err.Error(),
				}).Error("image save failed")
				fail(c, http.StatusInternalServerError, kindStorage, err.Error())
				return
			}
			imageURL = &url
		}

		booking := domain.Booking{
			CustomerName:  c.PostForm("customer_name"),
			Phone:         phone.Parse(c.PostForm("phone")),
			ServiceType:   c.PostForm("service_type"),
			BookingDate:   c.PostForm("booking_date"),
			BookingTime:   c.PostForm("booking_time"),
			SubDistrict:   c.PostForm("sub_district"),
			District:      c.PostForm("district"),
			Province:      c.PostForm("province"),
			Postcode:      c.PostForm("postcode"),
			AddressDetail: c.PostForm("address_detail"),
			Notes:         c.PostForm("notes"),
			Status:        domain.StatusPending, // New bookings always start pending
			ImageURL:      imageURL,
		}
		id, err := st.CreateBooking(ctx, &booking)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"phone": booking.Phone.String(),
				"error": err.Error(),
			}).Error("booking insert failed")
			fail(c, http.StatusInternalServerError, kindStorage, err.Error())
			return
		}
		invalidateBookings(ctx, rdb, booking.Phone)
		c.JSON(http.StatusOK, gin.H{"message": msgBookingCreated, "id": id})
	}
}

// UpdateBookingHandler overwrites the full mutable field set of a booking.
// Fields missing from the body clear their stored values, and an id with no
// match still reports success; both are preserved legacy behaviors.
func UpdateBookingHandler(st store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var upd domain.BookingUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			fail(c, http.StatusBadRequest, kindValidation, msgMissingFields)
			return
		}
		if err := st.UpdateBooking(ctx, c.Param("id"), upd); err != nil {
			fail(c, http.StatusInternalServerError, kindStorage, err.Error())
			return
		}
		// The overwrite may have moved the booking to a different phone, so
		// the previous owner's cached list is stale too.
		invalidateAllBookings(ctx, rdb)
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": msgBookingUpdated})
	}
}

// StatusRequest carries a status-only patch.
type StatusRequest struct {
	Status string `json:"status"`
}

// PatchStatusHandler updates only the status field of a booking.
func PatchStatusHandler(st store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var req StatusRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
			fail(c, http.StatusBadRequest, kindValidation, msgMissingFields)
			return
		}
		if err := st.UpdateBookingStatus(ctx, c.Param("id"), req.Status); err != nil {
			fail(c, http.StatusInternalServerError, kindStorage, err.Error())
			return
		}
		invalidateAllBookings(ctx, rdb)
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": msgStatusUpdated})
	}
}

// DeleteBookingHandler removes a booking. Deleting an id that no longer
// exists reports success, exactly as before.
func DeleteBookingHandler(st store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := st.DeleteBooking(ctx, c.Param("id")); err != nil {
			fail(c, http.StatusInternalServerError, kindStorage, err.Error())
			return
		}
		invalidateAllBookings(ctx, rdb)
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": msgBookingDeleted})
	}
}

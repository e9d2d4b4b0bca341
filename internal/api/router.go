package api

import (
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client

	"booking_system/internal/password"
	"booking_system/internal/store"
	"booking_system/internal/upload"
)

// NewRouter wires every route onto a gin engine. rdb may be nil to run
// without the list cache.
func NewRouter(st store.Store, rdb *redis.Client, adminVerify password.Verifier, uploadDir string) *gin.Engine {
	r := gin.Default()

	apiGroup := r.Group("/api")
	apiGroup.GET("/test", TestHandler())

	apiGroup.POST("/register", RegisterHandler(st))
	apiGroup.POST("/user-login", UserLoginHandler(st))
	apiGroup.POST("/login", AdminLoginHandler(st, adminVerify))

	apiGroup.GET("/all-bookings", ListBookingsHandler(st, rdb))
	apiGroup.GET("/my-booking/:phone", MyBookingsHandler(st, rdb))
	apiGroup.POST("/booking", CreateBookingHandler(st, rdb, uploadDir))
	apiGroup.PUT("/booking/:id", UpdateBookingHandler(st, rdb))
	apiGroup.PATCH("/booking/:id/status", PatchStatusHandler(st, rdb))
	apiGroup.DELETE("/booking/:id", DeleteBookingHandler(st, rdb))

	// Uploaded images are served read-only from the content directory.
	r.Static(upload.PublicPrefix, uploadDir)

	return r
}

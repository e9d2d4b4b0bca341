package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"booking_system/internal/domain"
	"booking_system/internal/password"
	"booking_system/internal/phone"
	"booking_system/internal/store"
)

// RegisterRequest carries a customer registration. Phone accepts both string
// and number tokens; legacy clients send either.
type RegisterRequest struct {
	FullName string      `json:"fullName"`
	Phone    phone.Value `json:"phone"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Address  string      `json:"address"`
}

// UserLoginRequest authenticates a customer by phone.
type UserLoginRequest struct {
	Phone    phone.Value `json:"phone"`
	Password string      `json:"password"`
}

// AdminLoginRequest authenticates a back-office account by username.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterHandler creates a customer account with a bcrypt-hashed password.
func RegisterHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, kindValidation, msgMissingFields)
			return
		}
		if req.Phone.IsZero() || req.Password == "" {
			fail(c, http.StatusBadRequest, kindValidation, msgMissingFields)
			return
		}
		hash, err := password.Hash(req.Password)
		if err != nil {
			fail(c, http.StatusInternalServerError, kindStorage, err.Error())
			return
		}
		user := domain.User{
			FullName: req.FullName,
			Phone:    req.Phone,
			Email:    req.Email,
			Password: hash,
			Address:  req.Address,
		}
		if err := st.CreateUser(c.Request.Context(), &user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				fail(c, http.StatusBadRequest, kindValidation, msgDuplicatePhone)
				return
			}
			logrus.WithFields(logrus.Fields{
				"phone": req.Phone.String(),
				"error": err.Error(),
			}).Error("register failed")
			fail(c, http.StatusInternalServerError, kindStorage, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": msgRegistered})
	}
}

// UserLoginHandler authenticates a customer. The phone lookup matches both
// stored representations; the password check is always bcrypt.
func UserLoginHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UserLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, kindValidation, msgMissingFields)
			return
		}
		user, err := st.FindUserByPhone(c.Request.Context(), req.Phone)
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusUnauthorized, kindAuth, msgUserNotFound)
			return
		}
		if err != nil {
			fail(c, http.StatusInternalServerError, kindStorage, err.Error())
			return
		}
		if !(password.Hashed{}).Verify(req.Password, user.Password) {
			fail(c, http.StatusUnauthorized, kindAuth, msgBadPassword)
			return
		}
		// No token or session; the client keeps the raw user fields.
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"user": gin.H{
				"id":       user.ID,
				"fullName": user.FullName,
				"phone":    user.Phone,
			},
		})
	}
}

// AdminLoginHandler authenticates an admin under the configured policy:
// bcrypt, or the legacy coerced string equality some deployments still use.
func AdminLoginHandler(st store.Store, verifier password.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, kindValidation, msgMissingFields)
			return
		}
		admin, err := st.FindAdminByUsername(c.Request.Context(), req.Username)
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusUnauthorized, kindAuth, msgAdminLogin)
			return
		}
		if err != nil {
			fail(c, http.StatusInternalServerError, kindStorage, err.Error())
			return
		}
		if !verifier.Verify(req.Password, admin.Password) {
			fail(c, http.StatusUnauthorized, kindAuth, msgAdminLogin)
			return
		}
		// The whole admin record goes back, password field included. That
		// matches the legacy response shape existing frontends parse.
		c.JSON(http.StatusOK, gin.H{"status": "success", "user": admin})
	}
}

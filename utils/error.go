package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Domain errors. Handlers map these onto HTTP statuses:
// validation 400, auth 401, forbidden 403, not found 404, conflict 409.
var (
	ErrInvalidPhone    = errors.New("Invalid phone format")
	ErrMissingFields   = errors.New("Missing required fields")
	ErrNoToken         = errors.New("No token provided")
	ErrInvalidToken    = errors.New("Invalid token")
	ErrInvalidOTP      = errors.New("Invalid OTP")
	ErrForbidden       = errors.New("Forbidden")
	ErrBookingNotFound = errors.New("Booking not found")
	ErrOrderNotFound   = errors.New("Order not found")
	ErrServiceNotFound = errors.New("Service not found")
	ErrBlockNotFound   = errors.New("Blocked date not found")
	ErrDateBlocked     = errors.New("Date already blocked")
	ErrSlotBlocked     = errors.New("Date blocked")
	ErrTimeBlocked     = errors.New("Time blocked")
)

// JSONError sends the standardized error body {"error": message}.
func JSONError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// ErrorHandler is a middleware that catches panics and returns a generic
// 500 without leaking internals.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
			}
		}()
		c.Next()
	}
}

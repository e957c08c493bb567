package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/666-PLAYER-666/hotel-banya/config"
	"github.com/666-PLAYER-666/hotel-banya/database/repository"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

// AuthHandler serves registration, login and OTP verification.
//
// Login issues a usable session token BEFORE the OTP is verified; the
// verify-otp endpoint only supports client-side gating and does not gate API
// access. This is a known authentication gap inherited from the original
// flow and is deliberately left as-is.
type AuthHandler struct {
	Store             repository.Store
	OTP               utils.OTPStore
	adminPasswordHash string
}

// NewAuthHandler builds the handler, hashing the configured admin password
// once up front.
func NewAuthHandler(store repository.Store, otp utils.OTPStore) *AuthHandler {
	hash, err := utils.HashPassword(config.AppConfig.AdminPassword)
	if err != nil {
		utils.GetLogger().Sugar().Fatalf("failed to hash admin password: %v", err)
	}
	return &AuthHandler{Store: store, OTP: otp, adminPasswordHash: hash}
}

// Register creates empty record collections for the phone and issues a
// session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrInvalidPhone)
		return
	}

	phone := utils.NormalizePhone(req.Phone)
	if !utils.IsValidPhone(phone) {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrInvalidPhone)
		return
	}

	token, err := utils.GenerateToken(phone)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	if err := h.Store.EnsureUser(c.Request.Context(), phone); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// Login authenticates the admin by password, or starts the OTP flow for
// everyone else. Both paths return a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		PhoneOrEmail string `json:"phoneOrEmail"`
		Password     string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrInvalidPhone)
		return
	}

	phone := utils.NormalizePhone(req.PhoneOrEmail)
	if !utils.IsValidPhone(phone) {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrInvalidPhone)
		return
	}

	if phone == config.AppConfig.AdminPhone {
		if utils.VerifyPassword(h.adminPasswordHash, req.Password) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin password"})
			return
		}
		token, err := utils.GenerateToken(phone)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err)
			return
		}
		if err := h.Store.EnsureUser(c.Request.Context(), phone); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
		return
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	if err := h.OTP.Put(c.Request.Context(), phone, otp); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	// Delivered out-of-band. There is no SMS gateway wired up, so the code
	// only ever appears in the server log.
	utils.GetLogger().Info("OTP issued", zap.String("phone", phone), zap.String("otp", otp))

	token, err := utils.GenerateToken(phone)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	if err := h.Store.EnsureUser(c.Request.Context(), phone); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "message": "OTP sent to server console"})
}

// VerifyOTP checks and consumes the one-time code for a phone.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
		OTP   string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrInvalidPhone)
		return
	}

	phone := utils.NormalizePhone(req.Phone)
	if !utils.IsValidPhone(phone) {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrInvalidPhone)
		return
	}

	if err := h.OTP.Verify(c.Request.Context(), phone, req.OTP); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, utils.ErrInvalidOTP)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/666-PLAYER-666/hotel-banya/utils"
)

// ContactHandler acknowledges contact form submissions. They are logged,
// not persisted.
func ContactHandler(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}

	utils.GetLogger().Info("contact form submitted",
		zap.String("name", req.Name),
		zap.String("email", req.Email),
		zap.String("message", req.Message),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Contact form received"})
}

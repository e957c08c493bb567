package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/666-PLAYER-666/hotel-banya/database/repository"
	"github.com/666-PLAYER-666/hotel-banya/middleware"
	"github.com/666-PLAYER-666/hotel-banya/models"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

// ReviewHandler serves guest reviews.
type ReviewHandler struct {
	Store repository.Store
}

func NewReviewHandler(store repository.Store) *ReviewHandler {
	return &ReviewHandler{Store: store}
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.Store.Reviews(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Review string `json:"review"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}
	if req.Name == "" || req.Email == "" || req.Review == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}

	review := models.Review{
		Name:   utils.Sanitize(req.Name),
		Email:  utils.Sanitize(req.Email),
		Review: utils.Sanitize(req.Review),
		User:   middleware.SessionPhone(c),
	}
	review, err := h.Store.AddReview(c.Request.Context(), review)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

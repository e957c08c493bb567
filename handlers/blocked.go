package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/666-PLAYER-666/hotel-banya/database/repository"
	"github.com/666-PLAYER-666/hotel-banya/models"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

// BlockedHandler manages the calendar of unavailable slots. Reads are open
// to any authenticated user; mutation is admin-only (enforced in routing).
type BlockedHandler struct {
	Store repository.Store
}

func NewBlockedHandler(store repository.Store) *BlockedHandler {
	return &BlockedHandler{Store: store}
}

func (h *BlockedHandler) List(c *gin.Context) {
	slots, err := h.Store.BlockedSlots(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *BlockedHandler) Create(c *gin.Context) {
	var slot models.BlockedSlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}
	if slot.Service == "" || slot.Date == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}

	if err := h.Store.AddBlockedSlot(c.Request.Context(), slot); err != nil {
		if errors.Is(err, utils.ErrDateBlocked) {
			utils.JSONError(c, http.StatusConflict, err)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func (h *BlockedHandler) Delete(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.ErrBlockNotFound)
		return
	}
	if err := h.Store.RemoveBlockedSlot(c.Request.Context(), index); err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.ErrBlockNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/666-PLAYER-666/hotel-banya/database/repository"
	"github.com/666-PLAYER-666/hotel-banya/middleware"
	"github.com/666-PLAYER-666/hotel-banya/models"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

// OrderHandler serves order submission and status updates.
type OrderHandler struct {
	Store  repository.Store
	Logger *zap.Logger
}

func NewOrderHandler(store repository.Store, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{Store: store, Logger: logger}
}

// List returns the caller's orders; the administrator sees all of them.
func (h *OrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if middleware.IsAdmin(c) {
		orders, err := h.Store.AllOrders(ctx)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}
	orders, err := h.Store.OrdersFor(ctx, middleware.SessionPhone(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Create records a new order with status Pending.
func (h *OrderHandler) Create(c *gin.Context) {
	var req struct {
		Items     []models.OrderItem `json:"items"`
		TotalCost string             `json:"totalCost"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}
	if req.Items == nil || req.TotalCost == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}

	items := make([]models.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.OrderItem{
			Name:     utils.Sanitize(item.Name),
			Cost:     utils.Sanitize(item.Cost),
			Date:     utils.Sanitize(item.Date),
			Duration: item.Duration,
			Menu:     utils.SanitizeAll(item.Menu),
		}
	}

	phone := middleware.SessionPhone(c)
	order := models.Order{
		User:      phone,
		Items:     items,
		TotalCost: utils.Sanitize(req.TotalCost),
		OrderTime: nowISO(),
		Status:    "Pending",
	}

	if err := h.Store.AddOrder(c.Request.Context(), phone, order); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	h.Logger.Debug("saved order", zap.Any("order", order))

	c.JSON(http.StatusCreated, order)
}

// Update changes an order's status. Users address their own collection by
// index; the administrator addresses the flat view, and the entry is
// rewritten in the owner's collection located by (orderTime, totalCost).
func (h *OrderHandler) Update(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.ErrOrderNotFound)
		return
	}

	var upd models.OrderUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}

	ctx := c.Request.Context()
	phone := middleware.SessionPhone(c)

	if !middleware.IsAdmin(c) {
		orders, err := h.Store.OrdersFor(ctx, phone)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err)
			return
		}
		if index < 0 || index >= len(orders) {
			utils.JSONError(c, http.StatusNotFound, utils.ErrOrderNotFound)
			return
		}
		updated := mergeOrder(orders[index], upd)
		if err := h.Store.SetOrder(ctx, phone, index, updated); err != nil {
			utils.JSONError(c, http.StatusNotFound, utils.ErrOrderNotFound)
			return
		}
		c.JSON(http.StatusOK, updated)
		return
	}

	all, err := h.Store.AllOrders(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	if index < 0 || index >= len(all) {
		utils.JSONError(c, http.StatusNotFound, utils.ErrOrderNotFound)
		return
	}
	existing := all[index]
	updated := mergeOrder(existing, upd)

	if err := h.Store.ReplaceOrder(ctx, existing.User, existing.OrderTime, existing.TotalCost, updated); err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.ErrOrderNotFound)
		return
	}
	h.Logger.Debug("updated order", zap.Any("order", updated))

	c.JSON(http.StatusOK, updated)
}

func mergeOrder(o models.Order, upd models.OrderUpdate) models.Order {
	if upd.Status != nil {
		o.Status = *upd.Status
	}
	return o
}

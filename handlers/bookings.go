package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/666-PLAYER-666/hotel-banya/database/repository"
	"github.com/666-PLAYER-666/hotel-banya/middleware"
	"github.com/666-PLAYER-666/hotel-banya/models"
	"github.com/666-PLAYER-666/hotel-banya/services"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

// BookingHandler serves the booking lifecycle: availability checks,
// creation with derived cost, payment, and admin edits.
type BookingHandler struct {
	Store        repository.Store
	Availability services.AvailabilityService
	Pricing      services.PricingService
	Logger       *zap.Logger
}

func NewBookingHandler(store repository.Store, availability services.AvailabilityService, pricing services.PricingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Store: store, Availability: availability, Pricing: pricing, Logger: logger}
}

// List returns the caller's bookings; the administrator sees the union of
// every user's collection.
func (h *BookingHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if middleware.IsAdmin(c) {
		bookings, err := h.Store.AllBookings(ctx)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
		return
	}
	bookings, err := h.Store.BookingsFor(ctx, middleware.SessionPhone(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// Check reports whether a slot is free. It is read-only and does not admit
// the booking; clients call it before Create.
func (h *BookingHandler) Check(c *gin.Context) {
	var req struct {
		Service  string `json:"service"`
		Date     string `json:"date"`
		EndDate  string `json:"endDate"`
		Duration int    `json:"duration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}

	err := h.Availability.Check(c.Request.Context(), req.Service, req.Date, req.EndDate, req.Duration)
	switch {
	case errors.Is(err, utils.ErrTimeBlocked) || errors.Is(err, utils.ErrSlotBlocked):
		utils.JSONError(c, http.StatusConflict, err)
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Available"})
	}
}

// Create records a booking for the caller. An empty cost is derived from
// the service catalog by the pricing service.
func (h *BookingHandler) Create(c *gin.Context) {
	var in models.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}
	if in.Service == "" || in.Date == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}

	h.Logger.Debug("received booking data", zap.Any("input", in))

	ctx := c.Request.Context()
	cost, err := h.Pricing.ComputeCost(ctx, in)
	if err != nil {
		if errors.Is(err, utils.ErrServiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, err)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}

	duration := in.Duration
	if duration == 0 {
		duration = 1
	}
	paymentTime := in.PaymentTime
	if paymentTime == "" {
		paymentTime = nowISO()
	}

	phone := middleware.SessionPhone(c)
	booking := models.Booking{
		User:          phone,
		Service:       utils.Sanitize(in.Service),
		Cost:          cost,
		Date:          utils.Sanitize(in.Date),
		EndDate:       utils.Sanitize(in.EndDate),
		Duration:      duration,
		PaymentTime:   paymentTime,
		IsConfirmed:   in.IsConfirmed,
		IsPaid:        false,
		GuestCount:    in.GuestCount,
		CheckInTime:   utils.Sanitize(in.CheckInTime),
		Comment:       utils.Sanitize(in.Comment),
		BanquetExtras: in.BanquetExtras,
		KitchenMenu:   in.KitchenMenu,
	}

	if err := h.Store.AddBooking(ctx, phone, booking); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	h.Logger.Debug("saved booking", zap.Any("booking", booking))

	c.JSON(http.StatusCreated, booking)
}

// Pay flips isPaid on the index-th booking of the caller's own collection.
// No other field changes; confirmation stays an admin action.
func (h *BookingHandler) Pay(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.ErrBookingNotFound)
		return
	}
	booking, err := h.Store.MarkBookingPaid(c.Request.Context(), middleware.SessionPhone(c), index)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.ErrBookingNotFound)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// AdminUpdate edits a booking addressed by its position in the flat admin
// view. The entry is rewritten in the owner's collection, located by the
// (date, service) pair of the existing record.
func (h *BookingHandler) AdminUpdate(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.ErrBookingNotFound)
		return
	}

	ctx := c.Request.Context()
	all, err := h.Store.AllBookings(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	if index < 0 || index >= len(all) {
		utils.JSONError(c, http.StatusNotFound, utils.ErrBookingNotFound)
		return
	}
	existing := all[index]

	var upd models.BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}
	updated := mergeBooking(existing, upd)

	if err := h.Store.ReplaceBooking(ctx, existing.User, existing.Date, existing.Service, updated); err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.ErrBookingNotFound)
		return
	}
	h.Logger.Debug("updated booking", zap.Any("booking", updated))

	c.JSON(http.StatusOK, updated)
}

// AdminDelete removes every booking in the owner's collection matching the
// (date, service) pair of the entry at the flat index.
func (h *BookingHandler) AdminDelete(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.ErrBookingNotFound)
		return
	}

	ctx := c.Request.Context()
	all, err := h.Store.AllBookings(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	if index < 0 || index >= len(all) {
		utils.JSONError(c, http.StatusNotFound, utils.ErrBookingNotFound)
		return
	}
	target := all[index]

	if err := h.Store.RemoveBookings(ctx, target.User, target.Date, target.Service); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// mergeBooking applies an admin edit over an existing booking. Unset fields
// keep their value; free-text fields are sanitized.
func mergeBooking(b models.Booking, upd models.BookingUpdate) models.Booking {
	if upd.Service != nil {
		b.Service = *upd.Service
	}
	if upd.Cost != nil {
		b.Cost = *upd.Cost
	}
	if upd.Date != nil {
		b.Date = *upd.Date
	}
	if upd.EndDate != nil {
		b.EndDate = *upd.EndDate
	}
	if upd.Duration != nil {
		b.Duration = *upd.Duration
	}
	if upd.PaymentTime != nil {
		b.PaymentTime = *upd.PaymentTime
	}
	if upd.IsConfirmed != nil {
		b.IsConfirmed = *upd.IsConfirmed
	}
	if upd.IsPaid != nil {
		b.IsPaid = *upd.IsPaid
	}
	if upd.GuestCount != nil {
		b.GuestCount = *upd.GuestCount
	}
	if upd.CheckInTime != nil {
		b.CheckInTime = utils.Sanitize(*upd.CheckInTime)
	}
	if upd.Comment != nil {
		b.Comment = utils.Sanitize(*upd.Comment)
	}
	if upd.BanquetExtras != nil {
		b.BanquetExtras = *upd.BanquetExtras
	}
	if upd.KitchenMenu != nil {
		b.KitchenMenu = *upd.KitchenMenu
	}
	return b
}

// nowISO matches the millisecond UTC timestamps the front-end expects.
func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

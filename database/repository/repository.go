package repository

import (
	"context"

	"github.com/666-PLAYER-666/hotel-banya/models"
)

// Store is the key-value storage abstraction behind the API. Booking and
// order collections are keyed by the owner's normalized phone number and
// keep insertion order; flat views concatenate per-user collections in the
// order users were first seen. Implementations must keep per-user mutation
// effectively atomic.
//
// Bookings are addressed inside a collection by (date, service) and orders
// by (orderTime, totalCost); neither is a stable identifier, which is kept
// as documented behavior.
type Store interface {
	// EnsureUser records a phone number and creates its empty booking and
	// order collections if they do not exist yet.
	EnsureUser(ctx context.Context, phone string) error
	// Users returns all known phone numbers in first-seen order.
	Users(ctx context.Context) ([]string, error)

	BookingsFor(ctx context.Context, phone string) ([]models.Booking, error)
	AllBookings(ctx context.Context) ([]models.Booking, error)
	AddBooking(ctx context.Context, phone string, b models.Booking) error
	// MarkBookingPaid flips isPaid on the index-th booking of the owner's
	// collection and returns the updated record.
	MarkBookingPaid(ctx context.Context, phone string, index int) (models.Booking, error)
	// ReplaceBooking overwrites the first booking in the owner's collection
	// matching (date, service).
	ReplaceBooking(ctx context.Context, owner, date, service string, updated models.Booking) error
	// RemoveBookings deletes every booking in the owner's collection
	// matching (date, service).
	RemoveBookings(ctx context.Context, owner, date, service string) error

	OrdersFor(ctx context.Context, phone string) ([]models.Order, error)
	AllOrders(ctx context.Context) ([]models.Order, error)
	AddOrder(ctx context.Context, phone string, o models.Order) error
	// SetOrder overwrites the index-th order of the owner's collection.
	SetOrder(ctx context.Context, phone string, index int, o models.Order) error
	// ReplaceOrder overwrites the first order in the owner's collection
	// matching (orderTime, totalCost).
	ReplaceOrder(ctx context.Context, owner, orderTime, totalCost string, o models.Order) error

	BlockedSlots(ctx context.Context) ([]models.BlockedSlot, error)
	IsBlocked(ctx context.Context, service, date string) (bool, error)
	// AddBlockedSlot rejects duplicate (service, date) pairs with
	// utils.ErrDateBlocked.
	AddBlockedSlot(ctx context.Context, slot models.BlockedSlot) error
	RemoveBlockedSlot(ctx context.Context, index int) error

	Reviews(ctx context.Context) ([]models.Review, error)
	// AddReview assigns the next sequential id and stores the review.
	AddReview(ctx context.Context, r models.Review) (models.Review, error)

	Services(ctx context.Context) (map[string]models.Service, error)
	GetService(ctx context.Context, name string) (models.Service, error)
	SetService(ctx context.Context, name string, svc models.Service) error
}

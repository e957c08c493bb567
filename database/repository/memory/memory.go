// Package memory provides the volatile in-process Store implementation.
// It is the default backend and the one exercised by tests.
package memory

import (
	"context"
	"sync"

	"github.com/666-PLAYER-666/hotel-banya/models"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

// Store keeps all records in maps guarded by a single mutex, which makes
// every operation atomic with respect to concurrent requests.
type Store struct {
	mu        sync.Mutex
	userOrder []string
	bookings  map[string][]models.Booking
	orders    map[string][]models.Order
	blocked   []models.BlockedSlot
	reviews   []models.Review
	services  map[string]models.Service
}

// NewStore returns an empty store seeded with the default service catalog.
func NewStore() *Store {
	return &Store{
		bookings: make(map[string][]models.Booking),
		orders:   make(map[string][]models.Order),
		services: models.DefaultServices(),
	}
}

// ensureUserLocked registers the phone on first touch. Callers must hold mu.
func (s *Store) ensureUserLocked(phone string) {
	if _, ok := s.bookings[phone]; !ok {
		s.bookings[phone] = []models.Booking{}
		s.userOrder = append(s.userOrder, phone)
	}
	if _, ok := s.orders[phone]; !ok {
		s.orders[phone] = []models.Order{}
	}
}

func (s *Store) EnsureUser(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureUserLocked(phone)
	return nil
}

func (s *Store) Users(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.userOrder))
	copy(out, s.userOrder)
	return out, nil
}

func (s *Store) BookingsFor(ctx context.Context, phone string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, len(s.bookings[phone]))
	copy(out, s.bookings[phone])
	return out, nil
}

func (s *Store) AllBookings(ctx context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Booking
	for _, phone := range s.userOrder {
		out = append(out, s.bookings[phone]...)
	}
	if out == nil {
		out = []models.Booking{}
	}
	return out, nil
}

func (s *Store) AddBooking(ctx context.Context, phone string, b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureUserLocked(phone)
	s.bookings[phone] = append(s.bookings[phone], b)
	return nil
}

func (s *Store) MarkBookingPaid(ctx context.Context, phone string, index int) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.bookings[phone]
	if index < 0 || index >= len(list) {
		return models.Booking{}, utils.ErrBookingNotFound
	}
	list[index].IsPaid = true
	return list[index], nil
}

func (s *Store) ReplaceBooking(ctx context.Context, owner, date, service string, updated models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.bookings[owner]
	for i, b := range list {
		if b.Date == date && b.Service == service {
			list[i] = updated
			return nil
		}
	}
	return utils.ErrBookingNotFound
}

func (s *Store) RemoveBookings(ctx context.Context, owner, date, service string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.bookings[owner]
	kept := list[:0:0]
	for _, b := range list {
		if !(b.Date == date && b.Service == service) {
			kept = append(kept, b)
		}
	}
	if kept == nil {
		kept = []models.Booking{}
	}
	s.bookings[owner] = kept
	return nil
}

func (s *Store) OrdersFor(ctx context.Context, phone string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders[phone]))
	copy(out, s.orders[phone])
	return out, nil
}

func (s *Store) AllOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, phone := range s.userOrder {
		out = append(out, s.orders[phone]...)
	}
	if out == nil {
		out = []models.Order{}
	}
	return out, nil
}

func (s *Store) AddOrder(ctx context.Context, phone string, o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureUserLocked(phone)
	s.orders[phone] = append(s.orders[phone], o)
	return nil
}

func (s *Store) SetOrder(ctx context.Context, phone string, index int, o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.orders[phone]
	if index < 0 || index >= len(list) {
		return utils.ErrOrderNotFound
	}
	list[index] = o
	return nil
}

func (s *Store) ReplaceOrder(ctx context.Context, owner, orderTime, totalCost string, o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.orders[owner]
	for i, existing := range list {
		if existing.OrderTime == orderTime && existing.TotalCost == totalCost {
			list[i] = o
			return nil
		}
	}
	return utils.ErrOrderNotFound
}

func (s *Store) BlockedSlots(ctx context.Context) ([]models.BlockedSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.BlockedSlot, len(s.blocked))
	copy(out, s.blocked)
	return out, nil
}

func (s *Store) IsBlocked(ctx context.Context, service, date string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range s.blocked {
		if slot.Service == service && slot.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) AddBlockedSlot(ctx context.Context, slot models.BlockedSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.blocked {
		if existing.Service == slot.Service && existing.Date == slot.Date {
			return utils.ErrDateBlocked
		}
	}
	s.blocked = append(s.blocked, slot)
	return nil
}

func (s *Store) RemoveBlockedSlot(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.blocked) {
		return utils.ErrBlockNotFound
	}
	s.blocked = append(s.blocked[:index], s.blocked[index+1:]...)
	return nil
}

func (s *Store) Reviews(ctx context.Context) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

func (s *Store) AddReview(ctx context.Context, r models.Review) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = len(s.reviews) + 1
	s.reviews = append(s.reviews, r)
	return r, nil
}

func (s *Store) Services(ctx context.Context) (map[string]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]models.Service, len(s.services))
	for name, svc := range s.services {
		out[name] = svc
	}
	return out, nil
}

func (s *Store) GetService(ctx context.Context, name string) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.services[name]
	if !ok {
		return models.Service{}, utils.ErrServiceNotFound
	}
	return svc, nil
}

func (s *Store) SetService(ctx context.Context, name string, svc models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[name]; !ok {
		return utils.ErrServiceNotFound
	}
	s.services[name] = svc
	return nil
}

package memory

import (
	"context"
	"testing"

	"github.com/666-PLAYER-666/hotel-banya/models"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

func TestDuplicateBlockedSlotRejected(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	slot := models.BlockedSlot{Service: models.ServiceSauna, Date: "2025-05-01 12:00"}

	if err := s.AddBlockedSlot(ctx, slot); err != nil {
		t.Fatalf("first AddBlockedSlot: %v", err)
	}
	if err := s.AddBlockedSlot(ctx, slot); err != utils.ErrDateBlocked {
		t.Errorf("second AddBlockedSlot: got %v, want ErrDateBlocked", err)
	}

	// Same date for a different service is a distinct pair.
	other := models.BlockedSlot{Service: models.ServiceBanya, Date: "2025-05-01 12:00"}
	if err := s.AddBlockedSlot(ctx, other); err != nil {
		t.Errorf("different service must not conflict: %v", err)
	}
}

func TestRemoveBlockedSlotByIndex(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	s.AddBlockedSlot(ctx, models.BlockedSlot{Service: models.ServiceSauna, Date: "2025-05-01 12:00"})
	s.AddBlockedSlot(ctx, models.BlockedSlot{Service: models.ServiceSauna, Date: "2025-05-02 12:00"})

	if err := s.RemoveBlockedSlot(ctx, 0); err != nil {
		t.Fatalf("RemoveBlockedSlot: %v", err)
	}
	slots, _ := s.BlockedSlots(ctx)
	if len(slots) != 1 || slots[0].Date != "2025-05-02 12:00" {
		t.Errorf("unexpected slots after removal: %v", slots)
	}

	if err := s.RemoveBlockedSlot(ctx, 5); err != utils.ErrBlockNotFound {
		t.Errorf("out-of-range removal: got %v, want ErrBlockNotFound", err)
	}
}

func TestRemoveBookingsMatchesDateAndService(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	phone := "+79991112233"

	s.AddBooking(ctx, phone, models.Booking{User: phone, Service: models.ServiceSauna, Date: "2025-05-01 12"})
	s.AddBooking(ctx, phone, models.Booking{User: phone, Service: models.ServiceSauna, Date: "2025-05-02 12"})
	s.AddBooking(ctx, phone, models.Booking{User: phone, Service: models.ServiceBanya, Date: "2025-05-01 12"})

	if err := s.RemoveBookings(ctx, phone, "2025-05-01 12", models.ServiceSauna); err != nil {
		t.Fatalf("RemoveBookings: %v", err)
	}

	left, _ := s.BookingsFor(ctx, phone)
	if len(left) != 2 {
		t.Fatalf("got %d bookings left, want 2", len(left))
	}
	for _, b := range left {
		if b.Service == models.ServiceSauna && b.Date == "2025-05-01 12" {
			t.Errorf("matching booking survived removal: %v", b)
		}
	}
}

func TestAllBookingsIsUnionInFirstSeenOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	s.AddBooking(ctx, "+79990000001", models.Booking{User: "+79990000001", Service: models.ServiceSauna, Date: "2025-05-01 12"})
	s.AddBooking(ctx, "+79990000002", models.Booking{User: "+79990000002", Service: models.ServiceBanya, Date: "2025-05-02 12"})
	s.AddBooking(ctx, "+79990000001", models.Booking{User: "+79990000001", Service: models.ServiceKitchen, Date: "2025-05-03 12"})

	all, _ := s.AllBookings(ctx)
	if len(all) != 3 {
		t.Fatalf("got %d bookings, want 3", len(all))
	}
	wantOwners := []string{"+79990000001", "+79990000001", "+79990000002"}
	for i, b := range all {
		if b.User != wantOwners[i] {
			t.Errorf("position %d: owner %s, want %s", i, b.User, wantOwners[i])
		}
	}
}

func TestMarkBookingPaid(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	phone := "+79991112233"
	s.AddBooking(ctx, phone, models.Booking{User: phone, Service: models.ServiceSauna, Date: "2025-05-01 12"})

	b, err := s.MarkBookingPaid(ctx, phone, 0)
	if err != nil {
		t.Fatalf("MarkBookingPaid: %v", err)
	}
	if !b.IsPaid {
		t.Error("returned booking not marked paid")
	}
	// Only isPaid flips; confirmation is untouched.
	if b.IsConfirmed {
		t.Error("payment must not confirm the booking")
	}

	stored, _ := s.BookingsFor(ctx, phone)
	if !stored[0].IsPaid {
		t.Error("stored booking not marked paid")
	}

	if _, err := s.MarkBookingPaid(ctx, phone, 3); err != utils.ErrBookingNotFound {
		t.Errorf("out-of-range pay: got %v, want ErrBookingNotFound", err)
	}
}

func TestReplaceBookingByDateService(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	phone := "+79991112233"
	s.AddBooking(ctx, phone, models.Booking{User: phone, Service: models.ServiceSauna, Date: "2025-05-01 12"})

	updated := models.Booking{User: phone, Service: models.ServiceSauna, Date: "2025-05-01 12", IsConfirmed: true}
	if err := s.ReplaceBooking(ctx, phone, "2025-05-01 12", models.ServiceSauna, updated); err != nil {
		t.Fatalf("ReplaceBooking: %v", err)
	}
	stored, _ := s.BookingsFor(ctx, phone)
	if !stored[0].IsConfirmed {
		t.Error("replacement not applied")
	}

	err := s.ReplaceBooking(ctx, phone, "2030-01-01", models.ServiceSauna, updated)
	if err != utils.ErrBookingNotFound {
		t.Errorf("missing booking: got %v, want ErrBookingNotFound", err)
	}
}

func TestOrdersLifecycle(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	phone := "+79991112233"

	order := models.Order{
		User:      phone,
		Items:     []models.OrderItem{{Name: "Sauna", Cost: "1500 ₽"}},
		TotalCost: "1500 ₽",
		OrderTime: "2025-05-01T10:00:00.000Z",
		Status:    "Pending",
	}
	s.AddOrder(ctx, phone, order)

	order.Status = "Confirmed"
	if err := s.ReplaceOrder(ctx, phone, "2025-05-01T10:00:00.000Z", "1500 ₽", order); err != nil {
		t.Fatalf("ReplaceOrder: %v", err)
	}
	stored, _ := s.OrdersFor(ctx, phone)
	if stored[0].Status != "Confirmed" {
		t.Errorf("status: got %q, want Confirmed", stored[0].Status)
	}

	if err := s.ReplaceOrder(ctx, phone, "wrong-time", "1500 ₽", order); err != utils.ErrOrderNotFound {
		t.Errorf("missing order: got %v, want ErrOrderNotFound", err)
	}
	if err := s.SetOrder(ctx, phone, 4, order); err != utils.ErrOrderNotFound {
		t.Errorf("out-of-range SetOrder: got %v, want ErrOrderNotFound", err)
	}
}

func TestReviewIDsAreSequential(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first, _ := s.AddReview(ctx, models.Review{Name: "a", Email: "a@b", Review: "ok", User: "+79990000001"})
	second, _ := s.AddReview(ctx, models.Review{Name: "b", Email: "b@b", Review: "ok", User: "+79990000002"})
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids: got %d, %d; want 1, 2", first.ID, second.ID)
	}
}

func TestServiceCatalog(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	services, _ := s.Services(ctx)
	if len(services) != 6 {
		t.Fatalf("got %d services, want 6", len(services))
	}

	svc, err := s.GetService(ctx, models.ServiceSauna)
	if err != nil {
		t.Fatalf("GetService: %v", err)
	}
	svc.Price = "1800 ₽/час"
	if err := s.SetService(ctx, models.ServiceSauna, svc); err != nil {
		t.Fatalf("SetService: %v", err)
	}
	got, _ := s.GetService(ctx, models.ServiceSauna)
	if got.Price != "1800 ₽/час" {
		t.Errorf("price after edit: got %q", got.Price)
	}

	if _, err := s.GetService(ctx, "Spaceship"); err != utils.ErrServiceNotFound {
		t.Errorf("unknown service: got %v, want ErrServiceNotFound", err)
	}
	if err := s.SetService(ctx, "Spaceship", svc); err != utils.ErrServiceNotFound {
		t.Errorf("SetService unknown: got %v, want ErrServiceNotFound", err)
	}
}

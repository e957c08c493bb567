package services

import (
	"context"
	"testing"

	"github.com/666-PLAYER-666/hotel-banya/database/repository/memory"
	"github.com/666-PLAYER-666/hotel-banya/models"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

func newPricing() *DefaultPricingService {
	return &DefaultPricingService{Store: memory.NewStore()}
}

func TestComputeCostSuppliedWins(t *testing.T) {
	got, err := newPricing().ComputeCost(context.Background(), models.BookingInput{
		Service: models.ServiceSauna,
		Cost:    "99 ₽",
	})
	if err != nil {
		t.Fatalf("ComputeCost: %v", err)
	}
	// A supplied cost is used verbatim, with no catalog validation.
	if got != "99 ₽" {
		t.Errorf("got %q, want %q", got, "99 ₽")
	}
}

func TestComputeCostBanquet(t *testing.T) {
	// 5000*3 + 500*10 + 3000 (Music) = 23000
	got, err := newPricing().ComputeCost(context.Background(), models.BookingInput{
		Service:       models.ServiceBanquet,
		Duration:      3,
		GuestCount:    10,
		BanquetExtras: []string{"Music"},
	})
	if err != nil {
		t.Fatalf("ComputeCost: %v", err)
	}
	if got != "23000 ₽" {
		t.Errorf("got %q, want %q", got, "23000 ₽")
	}
}

func TestComputeCostBanquetUnknownExtraIsFree(t *testing.T) {
	got, err := newPricing().ComputeCost(context.Background(), models.BookingInput{
		Service:       models.ServiceBanquet,
		Duration:      1,
		GuestCount:    2,
		BanquetExtras: []string{"Fireworks"},
	})
	if err != nil {
		t.Fatalf("ComputeCost: %v", err)
	}
	if got != "6000 ₽" {
		t.Errorf("got %q, want %q", got, "6000 ₽")
	}
}

func TestComputeCostKitchen(t *testing.T) {
	// 1000*2 + 500 + 150 = 2650
	got, err := newPricing().ComputeCost(context.Background(), models.BookingInput{
		Service:     models.ServiceKitchen,
		Duration:    2,
		KitchenMenu: []string{"CheesePlatter", "Coffee"},
	})
	if err != nil {
		t.Fatalf("ComputeCost: %v", err)
	}
	if got != "2650 ₽" {
		t.Errorf("got %q, want %q", got, "2650 ₽")
	}
}

func TestComputeCostRoomRange(t *testing.T) {
	// 2000 * 2 nights
	got, err := newPricing().ComputeCost(context.Background(), models.BookingInput{
		Service: models.ServiceStandardRoom,
		Date:    "2025-06-01",
		EndDate: "2025-06-03",
	})
	if err != nil {
		t.Fatalf("ComputeCost: %v", err)
	}
	if got != "4000 ₽" {
		t.Errorf("got %q, want %q", got, "4000 ₽")
	}
}

func TestComputeCostRoomZeroSpan(t *testing.T) {
	// No clamping: an equal start and end yields zero.
	got, err := newPricing().ComputeCost(context.Background(), models.BookingInput{
		Service: models.ServiceLuxRoom,
		Date:    "2025-06-01",
		EndDate: "2025-06-01",
	})
	if err != nil {
		t.Fatalf("ComputeCost: %v", err)
	}
	if got != "0 ₽" {
		t.Errorf("got %q, want %q", got, "0 ₽")
	}
}

func TestComputeCostSaunaDuration(t *testing.T) {
	got, err := newPricing().ComputeCost(context.Background(), models.BookingInput{
		Service:  models.ServiceSauna,
		Duration: 3,
	})
	if err != nil {
		t.Fatalf("ComputeCost: %v", err)
	}
	if got != "4500 ₽" {
		t.Errorf("got %q, want %q", got, "4500 ₽")
	}
}

func TestComputeCostZeroDurationDefaultsToOne(t *testing.T) {
	got, err := newPricing().ComputeCost(context.Background(), models.BookingInput{
		Service: models.ServiceBanya,
	})
	if err != nil {
		t.Fatalf("ComputeCost: %v", err)
	}
	if got != "2000 ₽" {
		t.Errorf("got %q, want %q", got, "2000 ₽")
	}
}

func TestComputeCostFallbackRawPrice(t *testing.T) {
	// A room without an end date matches no pricing rule and falls back to
	// the raw catalog price string.
	got, err := newPricing().ComputeCost(context.Background(), models.BookingInput{
		Service: models.ServiceStandardRoom,
		Date:    "2025-06-01",
	})
	if err != nil {
		t.Fatalf("ComputeCost: %v", err)
	}
	if got != "2000 ₽/ночь" {
		t.Errorf("got %q, want %q", got, "2000 ₽/ночь")
	}
}

func TestComputeCostBanquetWithoutGuestsFallsBack(t *testing.T) {
	got, err := newPricing().ComputeCost(context.Background(), models.BookingInput{
		Service:  models.ServiceBanquet,
		Duration: 2,
	})
	if err != nil {
		t.Fatalf("ComputeCost: %v", err)
	}
	if got != "5000 ₽/час + 500 ₽/гость" {
		t.Errorf("got %q, want %q", got, "5000 ₽/час + 500 ₽/гость")
	}
}

func TestComputeCostUnknownService(t *testing.T) {
	_, err := newPricing().ComputeCost(context.Background(), models.BookingInput{
		Service: "Spaceship",
	})
	if err != utils.ErrServiceNotFound {
		t.Errorf("expected ErrServiceNotFound, got %v", err)
	}
}

package services

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/666-PLAYER-666/hotel-banya/database/repository"
	"github.com/666-PLAYER-666/hotel-banya/models"
)

// Prices of banquet extras and kitchen menu items, in rubles. Unknown
// entries cost nothing.
var (
	banquetExtraPrices = map[string]float64{
		"Decoration":   2000,
		"Music":        3000,
		"Photographer": 4000,
	}
	kitchenMenuPrices = map[string]float64{
		"CheesePlatter":  500,
		"Bruschetta":     300,
		"GrilledChicken": 800,
		"PastaCarbonara": 600,
		"Lemonade":       200,
		"Coffee":         150,
	}
	perGuestPrice = 500.0
)

// PricingService derives the cost of a booking from the service catalog.
type PricingService interface {
	ComputeCost(ctx context.Context, in models.BookingInput) (string, error)
}

// DefaultPricingService is a concrete implementation reading base prices
// from the catalog.
type DefaultPricingService struct {
	Store repository.Store
}

// ComputeCost returns the price string for a booking. A non-empty supplied
// cost is used verbatim with no validation against the catalog. Otherwise
// the cost derives from the catalog base price:
//
//	Banquet    base*(duration or 1) + 500 per guest + extras
//	Kitchen    base*(duration or 1) + menu items
//	Rooms      base * ceil(days between date and endDate), when endDate set
//	Sauna/Banya base*(duration or 1)
//
// Any other combination falls back to the raw catalog price string. There is
// no clamping: zero or negative spans and durations flow straight through.
func (s *DefaultPricingService) ComputeCost(ctx context.Context, in models.BookingInput) (string, error) {
	if in.Cost != "" {
		return in.Cost, nil
	}

	svc, err := s.Store.GetService(ctx, in.Service)
	if err != nil {
		return "", err
	}
	base := leadingAmount(svc.Price)

	switch {
	case in.Service == models.ServiceBanquet && in.GuestCount != 0:
		total := base*durationOrOne(in.Duration) + perGuestPrice*float64(in.GuestCount)
		for _, extra := range in.BanquetExtras {
			total += banquetExtraPrices[extra]
		}
		return formatRubles(total), nil

	case in.Service == models.ServiceKitchen && in.KitchenMenu != nil:
		total := base * durationOrOne(in.Duration)
		for _, item := range in.KitchenMenu {
			total += kitchenMenuPrices[item]
		}
		return formatRubles(total), nil

	case (in.Service == models.ServiceStandardRoom || in.Service == models.ServiceLuxRoom) && in.EndDate != "":
		return formatRubles(base * daysBetween(in.Date, in.EndDate)), nil

	case in.Service == models.ServiceSauna || in.Service == models.ServiceBanya:
		return formatRubles(base * durationOrOne(in.Duration)), nil
	}

	return svc.Price, nil
}

// leadingAmount parses the numeric amount off the front of a catalog price
// string like "2000 ₽/ночь".
func leadingAmount(price string) float64 {
	fields := strings.Fields(price)
	if len(fields) == 0 {
		return math.NaN()
	}
	amount, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return math.NaN()
	}
	return amount
}

func durationOrOne(duration int) float64 {
	if duration == 0 {
		return 1
	}
	return float64(duration)
}

// daysBetween returns ceil of the day span between two date strings. A span
// of zero or less is not clamped.
func daysBetween(date, endDate string) float64 {
	start, err := parseDay(date)
	if err != nil {
		return math.NaN()
	}
	end, err := parseDay(endDate)
	if err != nil {
		return math.NaN()
	}
	return math.Ceil(end.Sub(start).Hours() / 24)
}

func formatRubles(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + " ₽"
}

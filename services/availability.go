package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/666-PLAYER-666/hotel-banya/database/repository"
	"github.com/666-PLAYER-666/hotel-banya/models"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

// AvailabilityService answers whether a requested slot conflicts with any
// blocked entry. Checks are read-only; admission is not enforced server-side,
// clients are expected to check before booking.
type AvailabilityService interface {
	Check(ctx context.Context, service, date, endDate string, duration int) error
}

// DefaultAvailabilityService is a concrete implementation.
type DefaultAvailabilityService struct {
	Store repository.Store
}

// Check returns nil when the slot is free, utils.ErrTimeBlocked or
// utils.ErrSlotBlocked on a conflict.
//
// Hourly services take date as "YYYY-MM-DD HH" and walk duration hours from
// the start hour. The hour wraps modulo 24 without advancing the calendar
// date: a booking starting at 23:00 for two hours checks 23:00 and 00:00 of
// the SAME date. Stay services with an end date walk every calendar day of
// the range inclusive. Everything else is an exact (service, date) lookup.
func (s *DefaultAvailabilityService) Check(ctx context.Context, service, date, endDate string, duration int) error {
	switch {
	case models.HourlyServices[service]:
		return s.checkHourly(ctx, service, date, duration)
	case endDate != "":
		return s.checkRange(ctx, service, date, endDate)
	default:
		blocked, err := s.Store.IsBlocked(ctx, service, date)
		if err != nil {
			return err
		}
		if blocked {
			return utils.ErrSlotBlocked
		}
		return nil
	}
}

func (s *DefaultAvailabilityService) checkHourly(ctx context.Context, service, date string, duration int) error {
	parts := strings.SplitN(date, " ", 2)
	if len(parts) != 2 {
		return nil
	}
	startHour, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}
	for i := 0; i < duration; i++ {
		stamp := fmt.Sprintf("%s %02d:00", parts[0], (startHour+i)%24)
		blocked, err := s.Store.IsBlocked(ctx, service, stamp)
		if err != nil {
			return err
		}
		if blocked {
			return utils.ErrTimeBlocked
		}
	}
	return nil
}

func (s *DefaultAvailabilityService) checkRange(ctx context.Context, service, date, endDate string) error {
	start, err := parseDay(date)
	if err != nil {
		return nil
	}
	end, err := parseDay(endDate)
	if err != nil {
		return nil
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		blocked, err := s.Store.IsBlocked(ctx, service, d.Format("2006-01-02"))
		if err != nil {
			return err
		}
		if blocked {
			return utils.ErrSlotBlocked
		}
	}
	return nil
}

// parseDay normalizes a date string to midnight, dropping any time part.
func parseDay(date string) (time.Time, error) {
	day := strings.SplitN(date, " ", 2)[0]
	return time.Parse("2006-01-02", day)
}

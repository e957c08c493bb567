package services

import (
	"context"
	"testing"

	"github.com/666-PLAYER-666/hotel-banya/database/repository/memory"
	"github.com/666-PLAYER-666/hotel-banya/models"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

func newAvailability(t *testing.T, blocked ...models.BlockedSlot) *DefaultAvailabilityService {
	t.Helper()
	store := memory.NewStore()
	for _, slot := range blocked {
		if err := store.AddBlockedSlot(context.Background(), slot); err != nil {
			t.Fatalf("AddBlockedSlot(%v): %v", slot, err)
		}
	}
	return &DefaultAvailabilityService{Store: store}
}

func TestCheckHourlyFree(t *testing.T) {
	svc := newAvailability(t, models.BlockedSlot{Service: models.ServiceSauna, Date: "2025-05-01 18:00"})
	if err := svc.Check(context.Background(), models.ServiceSauna, "2025-05-01 10", "", 3); err != nil {
		t.Errorf("expected available, got %v", err)
	}
}

func TestCheckHourlyConflict(t *testing.T) {
	svc := newAvailability(t, models.BlockedSlot{Service: models.ServiceSauna, Date: "2025-05-01 12:00"})
	err := svc.Check(context.Background(), models.ServiceSauna, "2025-05-01 10", "", 3)
	if err != utils.ErrTimeBlocked {
		t.Errorf("expected ErrTimeBlocked, got %v", err)
	}
}

func TestCheckHourlyOtherServiceDoesNotConflict(t *testing.T) {
	svc := newAvailability(t, models.BlockedSlot{Service: models.ServiceBanya, Date: "2025-05-01 12:00"})
	if err := svc.Check(context.Background(), models.ServiceSauna, "2025-05-01 12", "", 1); err != nil {
		t.Errorf("expected available, got %v", err)
	}
}

func TestCheckHourlyWraparound(t *testing.T) {
	// A booking starting at 23:00 for two hours checks 23:00 and 00:00 of
	// the SAME date; hour zero is not rolled to the next day.
	svc := newAvailability(t, models.BlockedSlot{Service: models.ServiceSauna, Date: "2025-05-01 00:00"})
	err := svc.Check(context.Background(), models.ServiceSauna, "2025-05-01 23", "", 2)
	if err != utils.ErrTimeBlocked {
		t.Errorf("expected ErrTimeBlocked on wrapped hour, got %v", err)
	}

	svc = newAvailability(t, models.BlockedSlot{Service: models.ServiceSauna, Date: "2025-05-02 00:00"})
	if err := svc.Check(context.Background(), models.ServiceSauna, "2025-05-01 23", "", 2); err != nil {
		t.Errorf("wrapped hour must not reach the next day, got %v", err)
	}
}

func TestCheckHourlyZeroDuration(t *testing.T) {
	svc := newAvailability(t, models.BlockedSlot{Service: models.ServiceSauna, Date: "2025-05-01 10:00"})
	if err := svc.Check(context.Background(), models.ServiceSauna, "2025-05-01 10", "", 0); err != nil {
		t.Errorf("zero duration checks no hours, got %v", err)
	}
}

func TestCheckRangeInclusive(t *testing.T) {
	// The whole range start..end is checked, both endpoints included.
	for _, day := range []string{"2025-06-01", "2025-06-02", "2025-06-03"} {
		svc := newAvailability(t, models.BlockedSlot{Service: models.ServiceStandardRoom, Date: day})
		err := svc.Check(context.Background(), models.ServiceStandardRoom, "2025-06-01", "2025-06-03", 0)
		if err != utils.ErrSlotBlocked {
			t.Errorf("day %s: expected ErrSlotBlocked, got %v", day, err)
		}
	}

	svc := newAvailability(t, models.BlockedSlot{Service: models.ServiceStandardRoom, Date: "2025-06-04"})
	if err := svc.Check(context.Background(), models.ServiceStandardRoom, "2025-06-01", "2025-06-03", 0); err != nil {
		t.Errorf("block outside range must not conflict, got %v", err)
	}
}

func TestCheckSingleDay(t *testing.T) {
	svc := newAvailability(t, models.BlockedSlot{Service: models.ServiceLuxRoom, Date: "2025-07-10"})
	err := svc.Check(context.Background(), models.ServiceLuxRoom, "2025-07-10", "", 0)
	if err != utils.ErrSlotBlocked {
		t.Errorf("expected ErrSlotBlocked, got %v", err)
	}
	if err := svc.Check(context.Background(), models.ServiceLuxRoom, "2025-07-11", "", 0); err != nil {
		t.Errorf("expected available, got %v", err)
	}
}

func TestCheckMalformedDates(t *testing.T) {
	svc := newAvailability(t)
	// Unparseable input checks nothing and therefore never conflicts.
	if err := svc.Check(context.Background(), models.ServiceSauna, "not a date", "", 2); err != nil {
		t.Errorf("malformed hourly date: got %v", err)
	}
	if err := svc.Check(context.Background(), models.ServiceStandardRoom, "garbage", "2025-06-03", 0); err != nil {
		t.Errorf("malformed range date: got %v", err)
	}
}

package schedule

import (
	"context"
	"testing"
	"time"

	domain "github.com/lucasmonteiro/portfolio-api/internal/domain/schedule"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

func TestGetDayAvailability(t *testing.T) {
	repo := &fakeRepo{booked: map[string][]string{
		"2025-06-15": {"09:00-10:00", "10:00-11:00"},
	}}

	uc := NewGetDayAvailability(repo, "UTC")
	uc.now = func() time.Time {
		return time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	}

	out, err := uc.Execute(context.Background(), "2025-06-15")
	if err != nil {
		t.Fatal(err)
	}

	if out.Date != "2025-06-15" {
		t.Fatalf("unexpected date: %s", out.Date)
	}
	if out.Day != domain.DaySelectable {
		t.Fatalf("day should be selectable, got %s", out.Day)
	}
	if len(out.Booked) != 2 {
		t.Fatalf("expected 2 booked identifiers, got %v", out.Booked)
	}
	if len(out.Slots) != domain.TotalSlots() {
		t.Fatalf("expected full catalog, got %d entries", len(out.Slots))
	}

	available := 0
	for _, s := range out.Slots {
		if s.State == domain.SlotAvailable {
			available++
		}
	}
	if available != 5 {
		t.Fatalf("expected 5 available slots, got %d", available)
	}
}

func TestGetDayAvailability_InvalidDate(t *testing.T) {
	uc := NewGetDayAvailability(&fakeRepo{}, "UTC")

	_, err := uc.Execute(context.Background(), "June 15")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

type periodRepo struct {
	fakeRepo
	apps []models.Appointment
}

func (p *periodRepo) ListBookedSlotsForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range p.apps {
		if !ap.Date.Before(start) && ap.Date.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func TestGetMonthAvailability(t *testing.T) {
	at := func(d string, slot string) models.Appointment {
		date, err := time.Parse("2006-01-02", d)
		if err != nil {
			t.Fatal(err)
		}
		return models.Appointment{Date: date, TimeSlot: slot}
	}

	repo := &periodRepo{}
	for _, slot := range domain.Slots() {
		repo.apps = append(repo.apps, at("2025-06-20", slot))
	}
	repo.apps = append(repo.apps,
		at("2025-06-15", "09:00-10:00"),
		at("2025-06-15", "10:00-11:00"),
		at("2025-07-01", "09:00-10:00"), // outside the requested month
	)

	uc := NewGetMonthAvailability(repo, "UTC")
	uc.now = func() time.Time {
		return time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	}

	out, err := uc.Execute(context.Background(), 2025, 6)
	if err != nil {
		t.Fatal(err)
	}

	if out.Month != "2025-06" {
		t.Fatalf("unexpected month key: %s", out.Month)
	}
	if len(out.Booked) != 2 {
		t.Fatalf("expected 2 days with bookings, got %v", out.Booked)
	}
	if len(out.Booked["2025-06-15"]) != 2 {
		t.Fatalf("expected 2 slots on 2025-06-15, got %v", out.Booked["2025-06-15"])
	}
	if len(out.FullyBooked) != 1 || out.FullyBooked[0] != "2025-06-20" {
		t.Fatalf("expected 2025-06-20 fully booked, got %v", out.FullyBooked)
	}

	// June 2025 starts on a Sunday: no leading blanks, 30 day cells.
	if len(out.Calendar) != 30 {
		t.Fatalf("expected 30 calendar cells, got %d", len(out.Calendar))
	}

	byDate := make(map[string]domain.DayState)
	for _, cell := range out.Calendar {
		if cell.Date != "" {
			byDate[cell.Date] = cell.State
		}
	}
	if byDate["2025-06-09"] != domain.DayPast {
		t.Fatalf("2025-06-09 should be past, got %s", byDate["2025-06-09"])
	}
	if byDate["2025-06-15"] != domain.DaySelectable {
		t.Fatalf("2025-06-15 should be selectable, got %s", byDate["2025-06-15"])
	}
	if byDate["2025-06-20"] != domain.DayFullyBooked {
		t.Fatalf("2025-06-20 should be fully booked, got %s", byDate["2025-06-20"])
	}
}

func TestGetMonthAvailability_InvalidMonth(t *testing.T) {
	uc := NewGetMonthAvailability(&fakeRepo{}, "UTC")

	for _, m := range []int{0, 13, -1} {
		if _, err := uc.Execute(context.Background(), 2025, m); !httperr.IsBusiness(err, "invalid_month") {
			t.Fatalf("month %d: expected invalid_month, got %v", m, err)
		}
	}
}

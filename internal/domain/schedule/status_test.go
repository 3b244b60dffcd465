package schedule

import (
	"testing"
	"time"

	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		check   func(Status) error
		allowed bool
	}{
		{"confirm pending", StatusPending, CanConfirm, true},
		{"confirm confirmed", StatusConfirmed, CanConfirm, false},
		{"confirm cancelled", StatusCancelled, CanConfirm, false},
		{"confirm completed", StatusCompleted, CanConfirm, false},

		{"cancel pending", StatusPending, CanCancel, true},
		{"cancel confirmed", StatusConfirmed, CanCancel, false},
		{"cancel cancelled", StatusCancelled, CanCancel, false},

		{"complete confirmed", StatusConfirmed, CanComplete, true},
		{"complete pending", StatusPending, CanComplete, false},
		{"complete cancelled", StatusCancelled, CanComplete, false},
		{"complete completed", StatusCompleted, CanComplete, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.from)
			if tt.allowed && err != nil {
				t.Fatalf("transition should be allowed, got %v", err)
			}
			if !tt.allowed && err == nil {
				t.Fatal("transition should be rejected")
			}
		})
	}
}

func TestDomainActions_StampTimestamps(t *testing.T) {
	now := time.Date(2025, time.June, 16, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	if err := Confirm(ap, now); err != nil {
		t.Fatal(err)
	}
	if ap.Status != string(StatusConfirmed) || ap.ConfirmedAt == nil || !ap.ConfirmedAt.Equal(now) {
		t.Fatalf("confirm did not stamp: %+v", ap)
	}

	if err := Complete(ap, now.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil {
		t.Fatalf("complete did not stamp: %+v", ap)
	}

	ap2 := &models.Appointment{Status: string(StatusPending)}
	if err := Cancel(ap2, now); err != nil {
		t.Fatal(err)
	}
	if ap2.Status != string(StatusCancelled) || ap2.CancelledAt == nil {
		t.Fatalf("cancel did not stamp: %+v", ap2)
	}

	// A cancelled appointment frees its slot.
	if Occupies(Status(ap2.Status)) {
		t.Fatal("cancelled appointment must not occupy its slot")
	}
	if !Occupies(StatusPending) || !Occupies(StatusConfirmed) || !Occupies(StatusCompleted) {
		t.Fatal("non-cancelled statuses must occupy their slot")
	}
}

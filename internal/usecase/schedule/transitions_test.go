package schedule

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

// storeRepo keeps appointments by id so transition use cases can load
// and persist them.
type storeRepo struct {
	fakeRepo
	byID    map[uint]*models.Appointment
	updated []*models.Appointment
	deleted []uint
}

func newStoreRepo(aps ...*models.Appointment) *storeRepo {
	r := &storeRepo{byID: make(map[uint]*models.Appointment)}
	for _, ap := range aps {
		r.byID[ap.ID] = ap
	}
	return r
}

func (r *storeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ap, nil
}

func (r *storeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.updated = append(r.updated, ap)
	return nil
}

func (r *storeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	if _, ok := r.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func pending(id uint) *models.Appointment {
	return &models.Appointment{
		ID:       id,
		Date:     time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot: "09:00-10:00",
		Name:     "Ana Souza",
		Email:    "ana.souza@example.com",
		Status:   "PENDING",
	}
}

func TestConfirmAppointment(t *testing.T) {
	repo := newStoreRepo(pending(7))
	auditor := &fakeAuditor{}
	uc := NewConfirmAppointment(repo, auditor, "UTC")

	ap, err := uc.Execute(context.Background(), 1, 7)
	if err != nil {
		t.Fatal(err)
	}
	if ap.Status != "CONFIRMED" || ap.ConfirmedAt == nil {
		t.Fatalf("confirm did not apply: %+v", ap)
	}
	if len(repo.updated) != 1 {
		t.Fatal("confirmed appointment must be persisted")
	}
	if len(auditor.events) != 1 || auditor.events[0].Action != "appointment_confirmed" {
		t.Fatalf("expected appointment_confirmed event, got %+v", auditor.events)
	}

	// Second confirm hits the state machine.
	if _, err := uc.Execute(context.Background(), 1, 7); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestCancelAppointment(t *testing.T) {
	repo := newStoreRepo(pending(3))
	auditor := &fakeAuditor{}
	uc := NewCancelAppointment(repo, auditor, "UTC")

	ap, err := uc.Execute(context.Background(), 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if ap.Status != "CANCELLED" || ap.CancelledAt == nil {
		t.Fatalf("cancel did not apply: %+v", ap)
	}
	if auditor.events[0].Action != "appointment_cancelled" {
		t.Fatalf("expected appointment_cancelled event, got %+v", auditor.events)
	}
}

func TestCancelAppointment_ConfirmedRejected(t *testing.T) {
	ap := pending(4)
	ap.Status = "CONFIRMED"
	repo := newStoreRepo(ap)
	uc := NewCancelAppointment(repo, &fakeAuditor{}, "UTC")

	if _, err := uc.Execute(context.Background(), 1, 4); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatal("rejected cancel must not persist")
	}
}

func TestCompleteAppointment(t *testing.T) {
	ap := pending(9)
	ap.Status = "CONFIRMED"
	repo := newStoreRepo(ap)
	auditor := &fakeAuditor{}
	uc := NewCompleteAppointment(repo, auditor, "UTC")

	out, err := uc.Execute(context.Background(), 1, 9)
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != "COMPLETED" || out.CompletedAt == nil {
		t.Fatalf("complete did not apply: %+v", out)
	}
	if auditor.events[0].Action != "appointment_completed" {
		t.Fatalf("expected appointment_completed event, got %+v", auditor.events)
	}
}

func TestTransitions_NotFound(t *testing.T) {
	repo := newStoreRepo()

	if _, err := NewConfirmAppointment(repo, &fakeAuditor{}, "UTC").Execute(context.Background(), 1, 99); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("confirm: expected appointment_not_found, got %v", err)
	}
	if _, err := NewCancelAppointment(repo, &fakeAuditor{}, "UTC").Execute(context.Background(), 1, 99); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("cancel: expected appointment_not_found, got %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	repo := newStoreRepo(pending(2))
	auditor := &fakeAuditor{}
	uc := NewDeleteAppointment(repo, auditor)

	if err := uc.Execute(context.Background(), 1, 2); err != nil {
		t.Fatal(err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 2 {
		t.Fatalf("expected deletion of id 2, got %v", repo.deleted)
	}
	if auditor.events[0].Action != "appointment_deleted" {
		t.Fatalf("expected appointment_deleted event, got %+v", auditor.events)
	}

	if err := uc.Execute(context.Background(), 1, 2); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/lucasmonteiro/portfolio-api/internal/audit"
	domain "github.com/lucasmonteiro/portfolio-api/internal/domain/schedule"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	created   []*models.Appointment
	createErr error

	booked map[string][]string
}

func (f *fakeRepo) CreateBooking(ctx context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = uint(len(f.created) + 1)
	f.created = append(f.created, ap)
	return nil
}

func (f *fakeRepo) ListBookedSlots(ctx context.Context, date time.Time) ([]string, error) {
	return f.booked[date.Format("2006-01-02")], nil
}

func (f *fakeRepo) ListBookedSlotsForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return nil
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	return nil
}

func (f *fakeRepo) ListAppointmentsForDay(ctx context.Context, date time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	return nil, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeNotifier struct {
	received []*models.Appointment
}

func (f *fakeNotifier) BookingReceived(ap *models.Appointment) {
	f.received = append(f.received, ap)
}

type fakeAuditor struct {
	events []audit.Event
}

func (f *fakeAuditor) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

// ======================================================
// HELPERS
// ======================================================

func newBookingUC(repo *fakeRepo, notifier *fakeNotifier, auditor *fakeAuditor, now time.Time) *CreateBooking {
	uc := NewCreateBooking(repo, notifier, auditor, "UTC")
	uc.now = func() time.Time { return now }
	return uc
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		Date:     "2025-06-15",
		TimeSlot: "09:00-10:00",
		Name:     "Ana Souza",
		Email:    "Ana.Souza@Example.com",
		Phone:    " +55 11 99999-0000 ",
		Message:  "Quick intro call",
	}
}

// ======================================================
// TESTS
// ======================================================

func TestCreateBooking_Success(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	auditor := &fakeAuditor{}
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	uc := newBookingUC(repo, notifier, auditor, now)

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}

	if ap.Status != "PENDING" {
		t.Fatalf("new booking must start PENDING, got %s", ap.Status)
	}
	if ap.Reference == "" {
		t.Fatal("booking reference must be assigned")
	}
	if ap.Email != "ana.souza@example.com" {
		t.Fatalf("email must be normalized, got %q", ap.Email)
	}
	if ap.Phone != "+55 11 99999-0000" {
		t.Fatalf("phone must be trimmed, got %q", ap.Phone)
	}
	if ap.Date.Format("2006-01-02") != "2025-06-15" {
		t.Fatalf("wrong date persisted: %s", ap.Date)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted booking, got %d", len(repo.created))
	}
	if len(notifier.received) != 1 {
		t.Fatal("notifier must receive the booking")
	}
	if len(auditor.events) != 1 || auditor.events[0].Action != "appointment_requested" {
		t.Fatalf("expected appointment_requested audit event, got %+v", auditor.events)
	}
}

func TestCreateBooking_Validation(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*CreateBookingInput)
		code   string
	}{
		{"empty name", func(in *CreateBookingInput) { in.Name = "   " }, "name_required"},
		{"bad email", func(in *CreateBookingInput) { in.Email = "not-an-email" }, "invalid_email"},
		{"bad date", func(in *CreateBookingInput) { in.Date = "15/06/2025" }, "invalid_date"},
		{"lunch slot", func(in *CreateBookingInput) { in.TimeSlot = "12:00-13:00" }, "unknown_slot"},
		{"garbage slot", func(in *CreateBookingInput) { in.TimeSlot = "whenever" }, "unknown_slot"},
		{"past day", func(in *CreateBookingInput) { in.Date = "2025-06-01" }, "slot_in_past"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			notifier := &fakeNotifier{}
			auditor := &fakeAuditor{}
			uc := newBookingUC(repo, notifier, auditor, now)

			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}

			if len(repo.created) != 0 {
				t.Fatal("rejected booking must not be persisted")
			}
			if len(notifier.received) != 0 || len(auditor.events) != 0 {
				t.Fatal("rejected booking must not notify or audit")
			}
		})
	}
}

func TestCreateBooking_ElapsedSlotToday(t *testing.T) {
	// Booking today's 09:00-10:00 window at 10:00 sharp is too late;
	// the next window is still open.
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	uc := newBookingUC(&fakeRepo{}, &fakeNotifier{}, &fakeAuditor{}, now)

	in := validInput()
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_in_past") {
		t.Fatalf("expected slot_in_past, got %v", err)
	}

	in.TimeSlot = "10:00-11:00"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("slot starting now must be bookable: %v", err)
	}
}

func TestCreateBooking_ConflictPropagates(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{createErr: httperr.ErrBusiness("slot_taken")}
	notifier := &fakeNotifier{}
	auditor := &fakeAuditor{}
	uc := newBookingUC(repo, notifier, auditor, now)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}
	if len(notifier.received) != 0 || len(auditor.events) != 0 {
		t.Fatal("failed booking must not notify or audit")
	}
}

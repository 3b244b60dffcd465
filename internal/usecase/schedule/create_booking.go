package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/portfolio-api/internal/audit"
	domain "github.com/lucasmonteiro/portfolio-api/internal/domain/schedule"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
	"github.com/lucasmonteiro/portfolio-api/internal/timezone"
	"github.com/lucasmonteiro/portfolio-api/internal/validators"
)

// Notifier delivers booking mail; implemented by the mailer.
type Notifier interface {
	BookingReceived(ap *models.Appointment)
}

// Auditor records admin-visible events; implemented by audit.Dispatcher.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Date     string // YYYY-MM-DD
	TimeSlot string

	Name    string
	Email   string
	Phone   string
	Message string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	notifier Notifier
	audit    Auditor

	loc *time.Location
	now func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
	tz string,
) *CreateBooking {

	loc := timezone.Location(tz)
	return &CreateBooking{
		repo:     repo,
		notifier: notifier,
		audit:    auditor,
		loc:      loc,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}

	email := validators.NormalizeEmail(in.Email)
	if !validators.IsValidEmail(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !domain.IsKnownSlot(in.TimeSlot) {
		return nil, httperr.ErrBusiness("unknown_slot")
	}

	// A slot whose end has passed is unbookable. This covers earlier
	// days as well as today's elapsed windows.
	_, end, ok := domain.SlotBounds(in.TimeSlot, date)
	if !ok || !end.After(uc.now()) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	ap := &models.Appointment{
		Reference: uuid.NewString(),
		Date:      date,
		TimeSlot:  in.TimeSlot,
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Message:   strings.TrimSpace(in.Message),
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.BookingReceived(ap)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_requested",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

package schedule

import (
	"context"
	"time"

	"github.com/lucasmonteiro/portfolio-api/internal/audit"
	domain "github.com/lucasmonteiro/portfolio-api/internal/domain/schedule"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
	"github.com/lucasmonteiro/portfolio-api/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit Auditor
	now   func() time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditor Auditor,
	tz string,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditor,
		now: func() time.Time {
			return timezone.NowIn(tz)
		},
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Complete(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

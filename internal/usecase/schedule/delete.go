package schedule

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lucasmonteiro/portfolio-api/internal/audit"
	domain "github.com/lucasmonteiro/portfolio-api/internal/domain/schedule"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewDeleteAppointment(
	repo domain.Repository,
	auditor Auditor,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: auditor,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) error {

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}

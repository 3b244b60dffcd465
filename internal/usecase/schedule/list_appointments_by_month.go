package schedule

import (
	"context"
	"time"

	domain "github.com/lucasmonteiro/portfolio-api/internal/domain/schedule"
	"github.com/lucasmonteiro/portfolio-api/internal/dto"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/timezone"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByMonth(repo domain.Repository, tz string) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
		loc:  timezone.Location(tz),
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

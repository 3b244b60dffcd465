package schedule

import (
	"context"
	"time"

	domain "github.com/lucasmonteiro/portfolio-api/internal/domain/schedule"
	"github.com/lucasmonteiro/portfolio-api/internal/dto"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
	"github.com/lucasmonteiro/portfolio-api/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByDate(repo domain.Repository, tz string) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		loc:  timezone.Location(tz),
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	dateStr string,
) ([]dto.AppointmentListDTO, error) {

	date, err := time.ParseInLocation("2006-01-02", dateStr, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, date)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:        ap.ID,
			Reference: ap.Reference,
			Date:      ap.Date.Format("2006-01-02"),
			TimeSlot:  ap.TimeSlot,
			Status:    ap.Status,
			Name:      ap.Name,
			Email:     ap.Email,
			Phone:     ap.Phone,
			Message:   ap.Message,
			CreatedAt: ap.CreatedAt,
		})
	}
	return out
}

package schedule

import (
	"context"
	"time"

	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

type Repository interface {
	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------
	ListBookedSlots(
		ctx context.Context,
		date time.Time,
	) ([]string, error)

	ListBookedSlotsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (admin) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		date time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/lucasmonteiro/portfolio-api/internal/domain/schedule"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

const dateLayout = "2006-01-02"

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// CreateBooking inserts the appointment if no active appointment holds
// the same (date, slot). The locked count and the insert run in one
// transaction; the partial unique index on appointments catches the
// remaining race between two concurrent transactions.
func (r *ScheduleGormRepository) CreateBooking(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"date = ? AND time_slot = ? AND status <> ?",
				ap.Date.Format(dateLayout),
				ap.TimeSlot,
				string(domain.StatusCancelled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})

	if isUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ScheduleGormRepository) ListBookedSlots(
	ctx context.Context,
	date time.Time,
) ([]string, error) {

	var slots []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"date = ? AND status <> ?",
			date.Format(dateLayout),
			string(domain.StatusCancelled),
		).
		Order("time_slot ASC").
		Pluck("time_slot", &slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *ScheduleGormRepository) ListBookedSlotsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("date", "time_slot").
		Where(
			"date >= ? AND date < ? AND status <> ?",
			start.Format(dateLayout),
			end.Format(dateLayout),
			string(domain.StatusCancelled),
		).
		Order("date ASC, time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (admin)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ScheduleGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date.Format(dateLayout)).
		Order("time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"date >= ? AND date < ?",
			start.Format(dateLayout),
			end.Format(dateLayout),
		).
		Order("date ASC, time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)

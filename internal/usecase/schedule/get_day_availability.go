package schedule

import (
	"context"
	"time"

	domain "github.com/lucasmonteiro/portfolio-api/internal/domain/schedule"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/timezone"
)

type DayAvailability struct {
	Date   string                    `json:"date"`
	Day    domain.DayState           `json:"day"`
	Booked []string                  `json:"booked"`
	Slots  []domain.SlotAvailability `json:"slots"`
}

type GetDayAvailability struct {
	repo domain.Repository

	loc *time.Location
	now func() time.Time
}

func NewGetDayAvailability(repo domain.Repository, tz string) *GetDayAvailability {
	loc := timezone.Location(tz)
	return &GetDayAvailability{
		repo: repo,
		loc:  loc,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

func (uc *GetDayAvailability) Execute(
	ctx context.Context,
	dateStr string,
) (*DayAvailability, error) {

	date, err := time.ParseInLocation("2006-01-02", dateStr, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	booked, err := uc.repo.ListBookedSlots(ctx, date)
	if err != nil {
		return nil, err
	}

	now := uc.now()

	return &DayAvailability{
		Date:   date.Format("2006-01-02"),
		Day:    domain.ResolveDay(date, domain.CountBooked(booked), now),
		Booked: booked,
		Slots:  domain.ResolveSlots(date, booked, now),
	}, nil
}

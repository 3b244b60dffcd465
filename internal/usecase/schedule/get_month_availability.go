package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	domain "github.com/lucasmonteiro/portfolio-api/internal/domain/schedule"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/timezone"
)

// CalendarCell is one cell of the 7-column month grid. Leading cells
// before day 1 have an empty date so the client renders them blank.
type CalendarCell struct {
	Date  string          `json:"date,omitempty"`
	State domain.DayState `json:"state,omitempty"`
}

type MonthAvailability struct {
	Month string `json:"month"`

	// Calendar is the grid cell sequence: weekday-aligned blanks, then
	// one classified cell per day of the month.
	Calendar []CalendarCell `json:"calendar"`

	// Booked maps ISO date to the occupied slot identifiers of that day.
	Booked map[string][]string `json:"booked"`

	// FullyBooked lists the days with no remaining slot, for disabling
	// in the calendar.
	FullyBooked []string `json:"fully_booked"`
}

type GetMonthAvailability struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewGetMonthAvailability(repo domain.Repository, tz string) *GetMonthAvailability {
	loc := timezone.Location(tz)
	return &GetMonthAvailability{
		repo: repo,
		loc:  loc,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

func (uc *GetMonthAvailability) Execute(
	ctx context.Context,
	year int,
	month int,
) (*MonthAvailability, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

	apps, err := uc.repo.ListBookedSlotsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	booked := make(map[string][]string)
	for _, ap := range apps {
		key := ap.Date.Format("2006-01-02")
		booked[key] = append(booked[key], ap.TimeSlot)
	}

	fullyBooked := make([]string, 0)
	for day, slots := range booked {
		if domain.CountBooked(slots) >= domain.TotalSlots() {
			fullyBooked = append(fullyBooked, day)
		}
	}
	sort.Strings(fullyBooked)

	now := uc.now()

	grid := domain.MonthGrid(year, time.Month(month), uc.loc)
	calendar := make([]CalendarCell, 0, len(grid))
	for _, cell := range grid {
		if cell == nil {
			calendar = append(calendar, CalendarCell{})
			continue
		}
		key := cell.Format("2006-01-02")
		calendar = append(calendar, CalendarCell{
			Date:  key,
			State: domain.ResolveDay(*cell, domain.CountBooked(booked[key]), now),
		})
	}

	return &MonthAvailability{
		Month:       fmt.Sprintf("%04d-%02d", year, month),
		Calendar:    calendar,
		Booked:      booked,
		FullyBooked: fullyBooked,
	}, nil
}

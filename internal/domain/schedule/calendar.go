package schedule

import "time"

// MonthGrid returns the cell sequence for a 7-column calendar of the
// given month: one nil placeholder per weekday preceding day 1
// (Sunday=0), then one cell per day of the month. Pure function of
// (year, month); the caller can recompute it at will.
func MonthGrid(year int, month time.Month, loc *time.Location) []*time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)

	// Day 0 of the next month normalizes to the last day of this one,
	// which keeps leap years correct without a month-length table.
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	leading := int(first.Weekday())

	cells := make([]*time.Time, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, nil)
	}
	for d := 0; d < days; d++ {
		day := first.AddDate(0, 0, d)
		cells = append(cells, &day)
	}

	return cells
}

package schedule

import (
	"testing"
	"time"
)

func TestMonthGrid_LeadingBlanksAndLength(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		year    int
		month   time.Month
		leading int
		days    int
	}{
		{2025, time.June, 0, 30},      // 2025-06-01 is a Sunday
		{2025, time.January, 3, 31},   // Wednesday
		{2024, time.February, 4, 29},  // leap year, Thursday
		{2023, time.February, 3, 28},  // non-leap, Wednesday
		{2024, time.December, 0, 31},  // Sunday
		{2025, time.February, 6, 28},  // Saturday
	}

	for _, tt := range tests {
		cells := MonthGrid(tt.year, tt.month, loc)

		if len(cells) != tt.leading+tt.days {
			t.Fatalf("%d-%02d: expected %d cells, got %d",
				tt.year, tt.month, tt.leading+tt.days, len(cells))
		}

		for i := 0; i < tt.leading; i++ {
			if cells[i] != nil {
				t.Fatalf("%d-%02d: cell %d should be a blank", tt.year, tt.month, i)
			}
		}

		first := cells[tt.leading]
		if first == nil || first.Day() != 1 {
			t.Fatalf("%d-%02d: first day cell wrong: %v", tt.year, tt.month, first)
		}
		if int(first.Weekday()) != tt.leading {
			t.Fatalf("%d-%02d: day 1 weekday %d does not match blank count %d",
				tt.year, tt.month, int(first.Weekday()), tt.leading)
		}

		last := cells[len(cells)-1]
		if last == nil || last.Day() != tt.days {
			t.Fatalf("%d-%02d: last day cell wrong: %v", tt.year, tt.month, last)
		}
	}
}

func TestMonthGrid_SequentialDays(t *testing.T) {
	cells := MonthGrid(2025, time.June, time.UTC)

	day := 0
	for _, c := range cells {
		if c == nil {
			continue
		}
		day++
		if c.Day() != day {
			t.Fatalf("expected day %d, got %d", day, c.Day())
		}
		if c.Month() != time.June || c.Year() != 2025 {
			t.Fatalf("cell outside month: %v", c)
		}
	}
}

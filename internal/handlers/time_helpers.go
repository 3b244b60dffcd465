package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parseYearMonth parses a "2006-01" month query value.
func parseYearMonth(s string) (int, int, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), int(t.Month()), nil
}

// parseDate parses a "2006-01-02" date value.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

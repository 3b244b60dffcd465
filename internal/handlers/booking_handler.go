package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/lucasmonteiro/portfolio-api/internal/domain/schedule"
	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/httpresp"
	ucSchedule "github.com/lucasmonteiro/portfolio-api/internal/usecase/schedule"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// BookingHandler is the public scheduling surface: slot catalog,
// month/day availability and booking submission.
type BookingHandler struct {
	createUC *ucSchedule.CreateBooking
	dayUC    *ucSchedule.GetDayAvailability
	monthUC  *ucSchedule.GetMonthAvailability
}

func NewBookingHandler(
	createUC *ucSchedule.CreateBooking,
	dayUC *ucSchedule.GetDayAvailability,
	monthUC *ucSchedule.GetMonthAvailability,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		dayUC:    dayUC,
		monthUC:  monthUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	TimeSlot string `json:"time_slot" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *BookingHandler) ListSlots(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"slots": domain.Slots(),
		"total": domain.TotalSlots(),
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *BookingHandler) MonthAvailability(c *gin.Context) {
	monthStr := c.Query("month")
	if monthStr == "" {
		httperr.BadRequest(c, "missing_month", "The month query parameter is required (YYYY-MM).")
		return
	}

	year, month, err := parseYearMonth(monthStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Month must be in YYYY-MM format.")
		return
	}

	out, err := h.monthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not load month availability.")
		return
	}

	httpresp.OK(c, out)
}

func (h *BookingHandler) DayAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "The date query parameter is required (YYYY-MM-DD).")
		return
	}

	out, err := h.dayUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Date must be in YYYY-MM-DD format.")
			return
		}

		httperr.Internal(c, "availability_failed", "Could not load day availability.")
		return
	}

	httpresp.OK(c, out)
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucSchedule.CreateBookingInput{
			Date:     req.Date,
			TimeSlot: req.TimeSlot,
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Message:  req.Message,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	// Echo the booked date, slot and email so the client can show a
	// confirmation summary.
	httpresp.Created(c, gin.H{
		"reference": ap.Reference,
		"date":      ap.Date.Format("2006-01-02"),
		"time_slot": ap.TimeSlot,
		"name":      ap.Name,
		"email":     ap.Email,
		"status":    ap.Status,
	})
}

func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "This time slot was just booked by someone else. Please pick another.")
	case httperr.IsBusiness(err, "name_required"):
		httperr.BadRequest(c, "name_required", "Please tell us your name.")
	case httperr.IsBusiness(err, "invalid_email"):
		httperr.BadRequest(c, "invalid_email", "Please provide a valid email address.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Date must be in YYYY-MM-DD format.")
	case httperr.IsBusiness(err, "unknown_slot"):
		httperr.BadRequest(c, "unknown_slot", "The selected time slot does not exist.")
	case httperr.IsBusiness(err, "slot_in_past"):
		httperr.BadRequest(c, "slot_in_past", "The selected time slot is in the past.")
	default:
		httperr.Internal(c, "booking_failed", "Could not create the appointment.")
	}
}

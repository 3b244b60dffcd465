package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lucasmonteiro/portfolio-api/internal/httperr"
	"github.com/lucasmonteiro/portfolio-api/internal/httpresp"
	"github.com/lucasmonteiro/portfolio-api/internal/middleware"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
	ucSchedule "github.com/lucasmonteiro/portfolio-api/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler is the admin surface over bookings: listings and
// status transitions.
type AppointmentHandler struct {
	confirmUC     *ucSchedule.ConfirmAppointment
	cancelUC      *ucSchedule.CancelAppointment
	completeUC    *ucSchedule.CompleteAppointment
	deleteUC      *ucSchedule.DeleteAppointment
	listByDateUC  *ucSchedule.ListAppointmentsByDate
	listByMonthUC *ucSchedule.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	confirmUC *ucSchedule.ConfirmAppointment,
	cancelUC *ucSchedule.CancelAppointment,
	completeUC *ucSchedule.CompleteAppointment,
	deleteUC *ucSchedule.DeleteAppointment,
	listByDateUC *ucSchedule.ListAppointmentsByDate,
	listByMonthUC *ucSchedule.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		confirmUC:     confirmUC,
		cancelUC:      cancelUC,
		completeUC:    completeUC,
		deleteUC:      deleteUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
	}
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "The date query parameter is required (YYYY-MM-DD).")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Date must be in YYYY-MM-DD format.")
			return
		}
		httperr.Internal(c, "list_failed", "Could not list appointments.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
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

	out, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "list_failed", "Could not list appointments.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(adminID, id uint) (*models.Appointment, error) {
		return h.confirmUC.Execute(c.Request.Context(), adminID, id)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(adminID, id uint) (*models.Appointment, error) {
		return h.cancelUC.Execute(c.Request.Context(), adminID, id)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(adminID, id uint) (*models.Appointment, error) {
		return h.completeUC.Execute(c.Request.Context(), adminID, id)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(adminID, id uint) (*models.Appointment, error),
) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := run(adminID, id)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.Conflict(c, "invalid_state", "The appointment status does not allow this transition.")
		default:
			httperr.Internal(c, "transition_failed", "Could not update the appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), adminID, id); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "delete_failed", "Could not delete the appointment.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

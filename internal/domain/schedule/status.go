package schedule

import "github.com/lucasmonteiro/portfolio-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// ===============================
// Validations
// ===============================

// CanConfirm allows PENDING only.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel allows PENDING only. Confirmed appointments are completed or
// left in place; cancellation past confirmation is not part of the
// lifecycle.
func CanCancel(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete allows CONFIRMED only.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

// Occupies reports whether an appointment in this status still blocks
// its (date, slot) pair.
func Occupies(s Status) bool {
	return s != StatusCancelled
}

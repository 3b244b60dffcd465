package dto

import "time"

type AppointmentListDTO struct {
	ID        uint      `json:"id"`
	Reference string    `json:"reference"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"time_slot"`
	Status    string    `json:"status"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

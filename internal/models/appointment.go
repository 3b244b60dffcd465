package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	Date     time.Time `gorm:"type:date;index:idx_appointments_date" json:"date"`
	TimeSlot string    `gorm:"size:11;not null" json:"time_slot"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Message string `gorm:"size:500" json:"message"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

type ContactMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Subject string `gorm:"size:150" json:"subject"`
	Body    string `gorm:"type:text;not null" json:"body"`

	Read      bool       `gorm:"default:false" json:"read"`
	RelayedAt *time.Time `json:"relayed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

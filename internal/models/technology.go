package models

import "time"

type Technology struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Category string `gorm:"size:50" json:"category"`
	IconURL  string `gorm:"size:255" json:"icon_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

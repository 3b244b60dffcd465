package models

import "time"

type Experience struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Role     string `gorm:"size:100;not null" json:"role"`
	Company  string `gorm:"size:100;not null" json:"company"`
	Location string `gorm:"size:100" json:"location"`

	StartDate time.Time  `gorm:"type:date" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date"`
	Current   bool       `gorm:"default:false" json:"current"`

	Summary string `gorm:"type:text" json:"summary"`

	SortOrder int `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

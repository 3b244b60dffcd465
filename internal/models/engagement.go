package models

import "time"

// Engagement is a volunteer or community role, rendered alongside
// professional experience on the public site.
type Engagement struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Role         string `gorm:"size:100;not null" json:"role"`
	Organization string `gorm:"size:100;not null" json:"organization"`
	URL          string `gorm:"size:255" json:"url"`

	StartDate time.Time  `gorm:"type:date" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date"`
	Current   bool       `gorm:"default:false" json:"current"`

	Summary string `gorm:"type:text" json:"summary"`

	SortOrder int `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

type Project struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Summary     string `gorm:"size:255" json:"summary"`
	Description string `gorm:"type:text" json:"description"`

	RepoURL  string `gorm:"size:255" json:"repo_url"`
	LiveURL  string `gorm:"size:255" json:"live_url"`
	CoverURL string `gorm:"size:255" json:"cover_url"`

	Featured  bool `gorm:"default:false" json:"featured"`
	SortOrder int  `gorm:"default:0" json:"sort_order"`

	Technologies []Technology `gorm:"many2many:project_technologies;" json:"technologies"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

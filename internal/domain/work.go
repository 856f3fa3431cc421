package domain

import "time"

// Work represents a parent work (series) characters are attached to.
// Works are managed elsewhere; this backend only reads them.
type Work struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Slug        string    `gorm:"column:slug;type:varchar(50);uniqueIndex" json:"slug"`
	Title       string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Description *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Work) TableName() string { return "works" }

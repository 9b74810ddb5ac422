package model

import (
	"time"
)

type Category struct {
	ID          uint64    `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_category_name" json:"name"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

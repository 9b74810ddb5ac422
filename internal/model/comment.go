package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	ArticleID uint64    `gorm:"not null;index:idx_article_id" json:"article_id"`
	Name      string    `gorm:"type:varchar(64);not null" json:"name"`
	Email     string    `gorm:"type:varchar(128);not null" json:"email"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	Status    int8      `gorm:"not null;default:1" json:"status"` // 1:可见, 2:隐藏
	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

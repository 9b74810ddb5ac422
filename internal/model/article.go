package model

import (
	"time"
)

type Article struct {
	ID          uint64    `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Content     string    `gorm:"type:longtext;not null" json:"content"`
	CategoryID  uint64    `gorm:"not null;index:idx_category_id" json:"category_id"`
	AuthorID    uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	Country     string    `gorm:"type:varchar(64);index:idx_country" json:"country"`
	CoverURL    string    `gorm:"type:varchar(512)" json:"cover_url"`
	IsFeatured  bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_featured"`
	ViewsCount  int64     `gorm:"not null;default:0" json:"views_count"` // 由 trending job 从阅读统计回填
	Status      int8      `gorm:"not null;default:0" json:"status"`      // 0:草稿, 1:已发布, 2:归档
	IsDeleted   bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	PublishedAt time.Time `gorm:"index:idx_published_at" json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联关系
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
	Author   User     `gorm:"foreignKey:AuthorID;references:ID"`
}

func (Article) TableName() string {
	return "articles"
}

// ArticleMeta 阅读统计聚合时需要的文章元数据投影
type ArticleMeta struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Country     string    `json:"country"`
	AuthorName  string    `json:"author_name"`
	PublishedAt time.Time `json:"published_at"`
}

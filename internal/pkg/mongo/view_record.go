package mongo

import (
	"time"
)

// ViewRecord 单篇文章的阅读统计文档，每篇文章至多一条（_id 即文章 ID）
// 三个时间桶都以 时间键 -> 计数 的映射存储，同一键重复阅读只做自增
type ViewRecord struct {
	ArticleID      uint64           `bson:"_id" json:"articleId"`
	ViewCount      int64            `bson:"view_count" json:"viewCount"`
	UniqueVisitors []string         `bson:"unique_visitors,omitempty" json:"-"`
	LastUpdated    time.Time        `bson:"last_updated" json:"lastUpdated"`
	Daily          map[string]int64 `bson:"daily,omitempty" json:"daily"`     // "2024-03-15" -> count
	Weekly         map[string]int64 `bson:"weekly,omitempty" json:"weekly"`   // "2024-11" (ISO 年-周) -> count
	Monthly        map[string]int64 `bson:"monthly,omitempty" json:"monthly"` // "2024-03" -> count
}

// DailyPoint 跨文章按日汇总的一个数据点
type DailyPoint struct {
	Date  string `bson:"_id" json:"date"`
	Count int64  `bson:"count" json:"count"`
}

// ArticleViewCount 文章 ID 与总阅读量的投影，用于全局聚合
type ArticleViewCount struct {
	ArticleID uint64 `bson:"_id" json:"articleId"`
	ViewCount int64  `bson:"view_count" json:"viewCount"`
}

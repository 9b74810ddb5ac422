package dto

// RecordViewDTO 记录一次阅读
type RecordViewDTO struct {
	ArticleID uint64 `json:"article_id" binding:"required"`
	VisitorID string `json:"visitor_id" validate:"omitempty,max=128"`
}

// RecordViewResultDTO 记录阅读后的最新总量
type RecordViewResultDTO struct {
	ViewCount int64 `json:"view_count"`
}

// BucketDTO 单个时间桶
type BucketDTO struct {
	Key   string `json:"key"` // "2024-03-15" / "2024-11" / "2024-03"
	Count int64  `json:"count"`
}

// ArticleStatsDTO 单篇文章的阅读统计
// period 非 all 时只填充对应的桶集合
type ArticleStatsDTO struct {
	ArticleID      uint64       `json:"article_id"`
	Period         string       `json:"period"`
	ViewCount      int64        `json:"view_count,omitempty"`
	UniqueVisitors int          `json:"unique_visitors,omitempty"`
	LastUpdated    string       `json:"last_updated,omitempty"`
	Daily          []*BucketDTO `json:"daily,omitempty"`
	Weekly         []*BucketDTO `json:"weekly,omitempty"`
	Monthly        []*BucketDTO `json:"monthly,omitempty"`
}

// TopArticleDTO 全局排行中的一项
type TopArticleDTO struct {
	ArticleID uint64 `json:"article_id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	ViewCount int64  `json:"view_count"`
}

// GroupCountDTO 按类目/地区聚合的一项
type GroupCountDTO struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// DailyPointDTO 近 30 天按日汇总的一个点
type DailyPointDTO struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// GlobalStatsDTO 全站阅读聚合
type GlobalStatsDTO struct {
	TotalViews  int64            `json:"total_views"`
	TopArticles []*TopArticleDTO `json:"top_articles"`
	ByCategory  []*GroupCountDTO `json:"by_category"`
	ByCountry   []*GroupCountDTO `json:"by_country"`
	Last30Days  []*DailyPointDTO `json:"last_30_days"`
}

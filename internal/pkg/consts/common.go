package consts

const (
	MimePrefixImage = "image"
)

const (
	ArticleStatusDraft     = 0
	ArticleStatusPublished = 1
	ArticleStatusArchived  = 2
)

const (
	CommentStatusVisible = 1
	CommentStatusHidden  = 2
)

const (
	PeriodAll     = "all"
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// DefaultStatsLimit 统计查询默认返回的桶数量
const DefaultStatsLimit = 10

const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
)

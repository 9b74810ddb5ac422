package consts

const (
	GlobalStatsKey        = "views:stats:global:"
	ArticleTrendingKey    = "article:trending"
	CategoryListKey       = "category:list"
	SettingKey            = "setting:"
	NotificationUnreadKey = "notification:unread"
	LoginTokenKey         = "login_token:"
)

const (
	TrendingJobLock = "lock:job:trending"
)

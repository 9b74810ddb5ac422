package dto

// NotificationDTO 后台通知
type NotificationDTO struct {
	ID        string `json:"id"`
	Type      int8   `json:"type"`
	ArticleID uint64 `json:"article_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// NotificationUnreadDTO 未读数
type NotificationUnreadDTO struct {
	UnreadCount int64 `json:"unread_count"`
}

package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification 后台通知模型
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type      int8               `bson:"type" json:"type"`            // 通知类型: 1-新评论, 2-系统消息
	ArticleID uint64             `bson:"article_id" json:"articleId"` // 关联的文章 ID（系统消息可为 0）
	Title     string             `bson:"title" json:"title"`          // 通知标题
	Content   string             `bson:"content" json:"content"`      // 通知正文或评论片段
	IsRead    bool               `bson:"is_read" json:"isRead"`       // 是否已读
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"` // 创建时间
}

const (
	NotificationTypeComment = 1
	NotificationTypeSystem  = 2
)

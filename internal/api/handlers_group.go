package api

import "github.com/Sani1189/the-daily-sunrise-sub000/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ViewHandler         *handler.ViewHandler
	ArticleHandler      *handler.ArticleHandler
	CategoryHandler     *handler.CategoryHandler
	CommentHandler      *handler.CommentHandler
	UserHandler         *handler.UserHandler
	NotificationHandler *handler.NotificationHandler
	SettingHandler      *handler.SettingHandler
	MediaHandler        *handler.MediaHandler
}

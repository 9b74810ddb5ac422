package api

import (
	"net/http"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/middleware"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		viewGroup := apiGroup.Group("/views")
		{
			// 前台阅读上报与统计查询，无需登录
			viewGroup.POST("", group.ViewHandler.RecordView)
			viewGroup.GET("/stats/global", group.ViewHandler.GetGlobalStats)
			viewGroup.GET("/:article_id", group.ViewHandler.GetItemStats)
		}

		articleGroup := apiGroup.Group("/articles")
		{
			articleGroup.GET("", group.ArticleHandler.ListArticles)
			articleGroup.GET("/featured", group.ArticleHandler.ListFeatured)
			articleGroup.GET("/trending", group.ArticleHandler.ListTrending)
			articleGroup.GET("/:id", group.ArticleHandler.GetArticle)

			editorGroup := articleGroup.Group("")
			editorGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin, consts.RoleEditor))
			{
				editorGroup.POST("", group.ArticleHandler.CreateArticle)
				editorGroup.PUT("/:id", group.ArticleHandler.UpdateArticle)
				editorGroup.DELETE("/:id", group.ArticleHandler.DeleteArticle)
			}
		}

		categoryGroup := apiGroup.Group("/categories")
		{
			categoryGroup.GET("", group.CategoryHandler.ListCategories)

			adminGroup := categoryGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.CategoryHandler.CreateCategory)
				adminGroup.PUT("/:id", group.CategoryHandler.UpdateCategory)
				adminGroup.DELETE("/:id", group.CategoryHandler.DeleteCategory)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.POST("", group.CommentHandler.CreateComment)
			commentGroup.GET("/:article_id", group.CommentHandler.ListByArticle)

			adminGroup := commentGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin, consts.RoleEditor))
			{
				adminGroup.DELETE("/item/:id", group.CommentHandler.DeleteComment)
			}
		}

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetProfile)
				authGroup.PUT("/password", group.UserHandler.ChangePassword)
			}

			// 只有管理员能开新账号
			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("/register", group.UserHandler.Register)
			}
		}

		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin, consts.RoleEditor))
		{
			notificationGroup.GET("/list", group.NotificationHandler.GetNotificationList)
			notificationGroup.GET("/unread", group.NotificationHandler.GetUnreadCount)
			notificationGroup.POST("/read/all", group.NotificationHandler.MarkAllAsRead)
			notificationGroup.POST("/read/:id", group.NotificationHandler.MarkAsRead)
		}

		settingGroup := apiGroup.Group("/settings")
		{
			settingGroup.GET("", group.SettingHandler.ListSettings)
			settingGroup.GET("/:key", group.SettingHandler.GetSetting)

			adminGroup := settingGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.PUT("", group.SettingHandler.SaveSetting)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin, consts.RoleEditor))
			mediaGroup.POST("/upload", group.MediaHandler.UploadCover)
		}
	}

	return r
}

package wire

import (
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/config"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/handler"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/job"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/cron"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/kafka"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/mongo"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/repository"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/service"

	"github.com/gin-gonic/gin"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	MongoDB      *mongoDB.Database
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoConn *mongoDB.Database, cfg *config.Config) (*ApplicationContainer, error) {
	articleRepo := repository.NewArticleRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	settingRepo := repository.NewSettingRepo(db)
	viewRepo := mongo.NewViewRepo(mongoConn)
	notificationRepo := mongo.NewNotificationRepo(mongoConn)

	viewStatsService := service.NewViewStatsService(viewRepo, articleRepo)
	articleService := service.NewArticleService(articleRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	commentService := service.NewCommentService(commentRepo, articleRepo, notificationRepo)
	userService := service.NewUserService(userRepo, roleRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	settingService := service.NewSettingService(settingRepo)
	mediaService := service.NewMediaService()

	handlers := &api.HandlersGroup{
		ViewHandler:         handler.NewViewHandler(viewStatsService),
		ArticleHandler:      handler.NewArticleHandler(articleService),
		CategoryHandler:     handler.NewCategoryHandler(categoryService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		UserHandler:         handler.NewUserHandler(userService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		SettingHandler:      handler.NewSettingHandler(settingService),
		MediaHandler:        handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, viewStatsService)
	if err != nil {
		return nil, err
	}

	trendingJob := job.NewTrendingJob(viewRepo, articleRepo)
	cronMgr := cron.NewCronManager(trendingJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		MongoDB:      mongoConn,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}

package job

import (
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/logger"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/mongo"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/redis"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/repository"
	"github.com/google/uuid"
)

const trendingSize = 50

// TrendingJob 定期用阅读统计刷新热度榜，并把总阅读量回填到文章表
type TrendingJob struct {
	viewRepo    mongo.ViewRepo
	articleRepo repository.ArticleRepo
}

func NewTrendingJob(viewRepo mongo.ViewRepo, articleRepo repository.ArticleRepo) *TrendingJob {
	return &TrendingJob{
		viewRepo:    viewRepo,
		articleRepo: articleRepo,
	}
}

func (s *TrendingJob) Run() {
	traceID := "job-trending-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时只允许一个实例刷榜
	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.TrendingJobLock, lockValue, 5*time.Minute, 0)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.TrendingJobLock, lockValue)

	records, err := s.viewRepo.GetTopByViews(ctx, trendingSize)
	if err != nil {
		log.ErrorContext(ctx, "fetch top view records error", "err", err)
		return
	}
	if len(records) == 0 {
		log.InfoContext(ctx, "TrendingJob skipped, no view records yet")
		return
	}

	for _, record := range records {
		member := strconv.FormatUint(record.ArticleID, 10)
		if err = redis.ZAdd(ctx, consts.ArticleTrendingKey, float64(record.ViewCount), member); err != nil {
			log.ErrorContext(ctx, "update trending zset error", "article_id", record.ArticleID, "err", err)
			continue
		}

		// 回填文章表里的冗余计数，列表页不用跨库查
		if err = s.articleRepo.UpdateViewsCount(ctx, record.ArticleID, record.ViewCount); err != nil {
			log.ErrorContext(ctx, "backfill views_count error", "article_id", record.ArticleID, "err", err)
		}
	}

	// 只保留前 trendingSize 名
	if err = redis.ZRemRangeByRank(ctx, consts.ArticleTrendingKey, 0, -int64(trendingSize)-1); err != nil {
		log.ErrorContext(ctx, "trim trending zset error", "err", err)
	}

	log.InfoContext(ctx, "TrendingJob finished", "record_count", len(records))
}

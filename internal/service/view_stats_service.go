package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/dto"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/model"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/mongo"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/redis"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/repository"
	"github.com/goccy/go-json"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
)

const globalStatsCacheTTL = 5 * time.Minute

type ViewStatsService interface {
	// RecordView 记录一次阅读并返回最新总阅读量
	RecordView(ctx context.Context, articleID uint64, visitorID string) (int64, error)
	// GetStatsForItem 获取单篇文章的阅读统计，period ∈ all/daily/weekly/monthly
	GetStatsForItem(ctx context.Context, articleID uint64, period string, limit int) (*dto.ArticleStatsDTO, error)
	// GetGlobalStats 获取全站阅读聚合（排行、类目/地区分布、近30天趋势）
	GetGlobalStats(ctx context.Context, limit int) (*dto.GlobalStatsDTO, error)
}

type viewStatsServiceImpl struct {
	viewRepo    mongo.ViewRepo
	articleRepo repository.ArticleRepo
	now         func() time.Time
}

func NewViewStatsService(viewRepo mongo.ViewRepo, articleRepo repository.ArticleRepo) ViewStatsService {
	return &viewStatsServiceImpl{
		viewRepo:    viewRepo,
		articleRepo: articleRepo,
		now:         time.Now,
	}
}

// RecordView 实现：先经内容库确认文章存在，再对统计文档做单条原子自增。
// 同一文章的并发调用由存储端按文档串行化，不同文章互不阻塞。
// 失败不重试：重放一次非幂等的自增会改变语义，重试与否交给调用方。
func (s *viewStatsServiceImpl) RecordView(ctx context.Context, articleID uint64, visitorID string) (int64, error) {
	if articleID == 0 {
		return 0, ErrParamInvalid
	}

	exists, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return 0, wrapStorage(err)
	}
	if !exists {
		return 0, ErrArticleNotFound
	}

	count, err := s.viewRepo.IncrementView(ctx, articleID, visitorID, s.now())
	if err != nil {
		return 0, wrapStorage(err)
	}
	return count, nil
}

func (s *viewStatsServiceImpl) GetStatsForItem(ctx context.Context, articleID uint64, period string, limit int) (*dto.ArticleStatsDTO, error) {
	if articleID == 0 {
		return nil, ErrParamInvalid
	}
	if limit <= 0 {
		limit = consts.DefaultStatsLimit
	}

	switch period {
	case consts.PeriodAll, consts.PeriodDaily, consts.PeriodWeekly, consts.PeriodMonthly:
	default:
		return nil, ErrParamInvalid
	}

	record, err := s.viewRepo.GetByArticleID(ctx, articleID)
	if err != nil {
		if errors.Is(err, mongoDB.ErrNoDocuments) {
			return nil, ErrStatsNotFound
		}
		return nil, wrapStorage(err)
	}

	res := &dto.ArticleStatsDTO{
		ArticleID: articleID,
		Period:    period,
	}

	switch period {
	case consts.PeriodDaily:
		res.Daily = sortBucketsDesc(record.Daily, limit)
	case consts.PeriodWeekly:
		res.Weekly = sortBucketsDesc(record.Weekly, limit)
	case consts.PeriodMonthly:
		res.Monthly = sortBucketsDesc(record.Monthly, limit)
	case consts.PeriodAll:
		res.ViewCount = record.ViewCount
		// 只暴露去重访客数，不返回访客标识
		res.UniqueVisitors = len(record.UniqueVisitors)
		res.LastUpdated = record.LastUpdated.UTC().Format(time.RFC3339)
		res.Daily = sortBucketsDesc(record.Daily, limit)
		res.Weekly = sortBucketsDesc(record.Weekly, limit)
		res.Monthly = sortBucketsDesc(record.Monthly, limit)
	}

	return res, nil
}

func (s *viewStatsServiceImpl) GetGlobalStats(ctx context.Context, limit int) (*dto.GlobalStatsDTO, error) {
	if limit <= 0 {
		limit = consts.DefaultStatsLimit
	}

	key := consts.GlobalStatsKey + strconv.Itoa(limit)
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var cached dto.GlobalStatsDTO
		if err = json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	}

	top, err := s.viewRepo.GetTopByViews(ctx, int64(limit))
	if err != nil {
		return nil, wrapStorage(err)
	}

	counts, err := s.viewRepo.GetAllViewCounts(ctx)
	if err != nil {
		return nil, wrapStorage(err)
	}

	total, err := s.viewRepo.GetTotalViews(ctx)
	if err != nil {
		return nil, wrapStorage(err)
	}

	series, err := s.viewRepo.GetDailySeriesSince(ctx, s.now().AddDate(0, 0, -30))
	if err != nil {
		return nil, wrapStorage(err)
	}

	ids := make([]uint64, 0, len(counts))
	for _, c := range counts {
		ids = append(ids, c.ArticleID)
	}
	metas, err := s.articleRepo.GetArticleMetaByIDs(ctx, ids)
	if err != nil {
		return nil, wrapStorage(err)
	}

	res := buildGlobalStats(top, counts, metas, series, total)

	if data, err := json.Marshal(res); err == nil {
		_ = redis.SetWithExpiration(ctx, key, data, globalStatsCacheTTL)
	}

	return res, nil
}

// buildGlobalStats 纯聚合逻辑：排行补全元数据，按类目/地区分组求和。
// 元数据缺失（文章已删除）的记录不参与分组，但保留在排行里。
func buildGlobalStats(
	top []*mongo.ViewRecord,
	counts []*mongo.ArticleViewCount,
	metas map[uint64]*model.ArticleMeta,
	series []*mongo.DailyPoint,
	total int64,
) *dto.GlobalStatsDTO {
	res := &dto.GlobalStatsDTO{
		TotalViews:  total,
		TopArticles: make([]*dto.TopArticleDTO, 0, len(top)),
		ByCategory:  make([]*dto.GroupCountDTO, 0),
		ByCountry:   make([]*dto.GroupCountDTO, 0),
		Last30Days:  make([]*dto.DailyPointDTO, 0, len(series)),
	}

	for _, r := range top {
		item := &dto.TopArticleDTO{
			ArticleID: r.ArticleID,
			ViewCount: r.ViewCount,
		}
		if meta, ok := metas[r.ArticleID]; ok {
			item.Title = meta.Title
			item.Category = meta.Category
		}
		res.TopArticles = append(res.TopArticles, item)
	}

	byCategory := make(map[string]int64)
	byCountry := make(map[string]int64)
	for _, c := range counts {
		meta, ok := metas[c.ArticleID]
		if !ok {
			continue
		}
		if meta.Category != "" {
			byCategory[meta.Category] += c.ViewCount
		}
		if meta.Country != "" {
			byCountry[meta.Country] += c.ViewCount
		}
	}
	res.ByCategory = sortGroupsDesc(byCategory)
	res.ByCountry = sortGroupsDesc(byCountry)

	for _, p := range series {
		res.Last30Days = append(res.Last30Days, &dto.DailyPointDTO{Date: p.Date, Count: p.Count})
	}

	return res
}

// sortBucketsDesc 把 时间键->计数 的映射转成按键倒序的切片并截断。
// 三种键（日/ISO周/月）都是零填充定长格式，字典序即时间序。
func sortBucketsDesc(buckets map[string]int64, limit int) []*dto.BucketDTO {
	res := make([]*dto.BucketDTO, 0, len(buckets))
	for key, count := range buckets {
		res = append(res, &dto.BucketDTO{Key: key, Count: count})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Key > res[j].Key
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return res
}

// sortGroupsDesc 分组求和结果按计数倒序，计数相同按键升序保证确定性
func sortGroupsDesc(groups map[string]int64) []*dto.GroupCountDTO {
	res := make([]*dto.GroupCountDTO, 0, len(groups))
	for key, count := range groups {
		res = append(res, &dto.GroupCountDTO{Key: key, Count: count})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		return res[i].Key < res[j].Key
	})
	return res
}

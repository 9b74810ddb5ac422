package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/model"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/mongo"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/util"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
)

// fakeViewRepo 用互斥锁复现存储端的单文档原子自增语义
type fakeViewRepo struct {
	mu      sync.Mutex
	records map[uint64]*mongo.ViewRecord
}

func newFakeViewRepo() *fakeViewRepo {
	return &fakeViewRepo{records: make(map[uint64]*mongo.ViewRecord)}
}

func (f *fakeViewRepo) IncrementView(_ context.Context, articleID uint64, visitorID string, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.records[articleID]
	if !ok {
		r = &mongo.ViewRecord{
			ArticleID: articleID,
			Daily:     make(map[string]int64),
			Weekly:    make(map[string]int64),
			Monthly:   make(map[string]int64),
		}
		f.records[articleID] = r
	}

	r.ViewCount++
	r.Daily[util.DayKey(now)]++
	r.Weekly[util.ISOWeekKey(now)]++
	r.Monthly[util.MonthKey(now)]++
	r.LastUpdated = now.UTC()

	if visitorID != "" {
		seen := false
		for _, v := range r.UniqueVisitors {
			if v == visitorID {
				seen = true
				break
			}
		}
		if !seen {
			r.UniqueVisitors = append(r.UniqueVisitors, visitorID)
		}
	}

	return r.ViewCount, nil
}

func (f *fakeViewRepo) GetByArticleID(_ context.Context, articleID uint64) (*mongo.ViewRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.records[articleID]
	if !ok {
		return nil, mongoDB.ErrNoDocuments
	}
	return r, nil
}

func (f *fakeViewRepo) GetTopByViews(_ context.Context, limit int64) ([]*mongo.ViewRecord, error) {
	return nil, nil
}

func (f *fakeViewRepo) GetAllViewCounts(_ context.Context) ([]*mongo.ArticleViewCount, error) {
	return nil, nil
}

func (f *fakeViewRepo) GetTotalViews(_ context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeViewRepo) GetDailySeriesSince(_ context.Context, _ time.Time) ([]*mongo.DailyPoint, error) {
	return nil, nil
}

type fakeArticleRepo struct {
	repository.ArticleRepo
	existing map[uint64]bool
}

func (f *fakeArticleRepo) Exists(_ context.Context, id uint64) (bool, error) {
	return f.existing[id], nil
}

func newTestService(viewRepo *fakeViewRepo, articleRepo *fakeArticleRepo, now time.Time) *viewStatsServiceImpl {
	return &viewStatsServiceImpl{
		viewRepo:    viewRepo,
		articleRepo: articleRepo,
		now:         func() time.Time { return now },
	}
}

func TestRecordViewSequential(t *testing.T) {
	viewRepo := newFakeViewRepo()
	svc := newTestService(viewRepo, &fakeArticleRepo{existing: map[uint64]bool{1: true}}, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	ctx := context.Background()
	for i := 1; i <= 25; i++ {
		count, err := svc.RecordView(ctx, 1, "")
		require.NoError(t, err)
		assert.Equal(t, int64(i), count)
	}

	record := viewRepo.records[1]
	assert.Equal(t, int64(25), record.ViewCount)
	assert.Equal(t, int64(25), record.Daily["2024-03-15"])
	assert.Equal(t, int64(25), record.Weekly["2024-11"])
	assert.Equal(t, int64(25), record.Monthly["2024-03"])
}

func TestRecordViewConcurrent(t *testing.T) {
	viewRepo := newFakeViewRepo()
	svc := newTestService(viewRepo, &fakeArticleRepo{existing: map[uint64]bool{1: true}}, time.Now())

	const workers = 64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordView(context.Background(), 1, "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers), viewRepo.records[1].ViewCount)
}

func TestRecordViewVisitorDedup(t *testing.T) {
	viewRepo := newFakeViewRepo()
	svc := newTestService(viewRepo, &fakeArticleRepo{existing: map[uint64]bool{1: true}}, time.Now())

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := svc.RecordView(ctx, 1, "visitor-a")
		require.NoError(t, err)
	}
	_, err := svc.RecordView(ctx, 1, "visitor-b")
	require.NoError(t, err)
	// 匿名阅读只计数，不进访客集合
	_, err = svc.RecordView(ctx, 1, "")
	require.NoError(t, err)

	record := viewRepo.records[1]
	assert.Equal(t, int64(7), record.ViewCount)
	assert.Len(t, record.UniqueVisitors, 2)
}

func TestRecordViewArticleMissing(t *testing.T) {
	svc := newTestService(newFakeViewRepo(), &fakeArticleRepo{existing: map[uint64]bool{}}, time.Now())

	_, err := svc.RecordView(context.Background(), 42, "")
	assert.ErrorIs(t, err, ErrArticleNotFound)

	_, err = svc.RecordView(context.Background(), 0, "")
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestRecordViewBucketsAcrossDays(t *testing.T) {
	viewRepo := newFakeViewRepo()
	articleRepo := &fakeArticleRepo{existing: map[uint64]bool{1: true}}

	days := []struct {
		day   time.Time
		views int
	}{
		{time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC), 2},
		{time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC), 1},
		{time.Date(2024, 3, 13, 8, 0, 0, 0, time.UTC), 3},
	}
	for _, d := range days {
		svc := newTestService(viewRepo, articleRepo, d.day)
		for i := 0; i < d.views; i++ {
			_, err := svc.RecordView(context.Background(), 1, "")
			require.NoError(t, err)
		}
	}

	record := viewRepo.records[1]
	assert.Equal(t, int64(6), record.ViewCount)
	assert.Len(t, record.Daily, 3)
	assert.Equal(t, int64(2), record.Daily["2024-03-11"])
	assert.Equal(t, int64(1), record.Daily["2024-03-12"])
	assert.Equal(t, int64(3), record.Daily["2024-03-13"])
	// 三天同属一个 ISO 周和一个月
	assert.Equal(t, map[string]int64{"2024-11": 6}, record.Weekly)
	assert.Equal(t, map[string]int64{"2024-03": 6}, record.Monthly)
}

func TestGetStatsForItemPeriods(t *testing.T) {
	viewRepo := newFakeViewRepo()
	viewRepo.records[1] = &mongo.ViewRecord{
		ArticleID:      1,
		ViewCount:      10,
		UniqueVisitors: []string{"a", "b"},
		LastUpdated:    time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		Daily: map[string]int64{
			"2024-03-13": 3,
			"2024-03-15": 5,
			"2024-03-14": 2,
		},
		Weekly:  map[string]int64{"2024-11": 10},
		Monthly: map[string]int64{"2024-03": 10},
	}
	svc := newTestService(viewRepo, &fakeArticleRepo{}, time.Now())
	ctx := context.Background()

	res, err := svc.GetStatsForItem(ctx, 1, "daily", 0)
	require.NoError(t, err)
	assert.Equal(t, "daily", res.Period)
	require.Len(t, res.Daily, 3)
	// 按日期倒序，最近的在前
	assert.Equal(t, "2024-03-15", res.Daily[0].Key)
	assert.Equal(t, "2024-03-14", res.Daily[1].Key)
	assert.Equal(t, "2024-03-13", res.Daily[2].Key)
	assert.Nil(t, res.Weekly)
	assert.Nil(t, res.Monthly)
	assert.Zero(t, res.ViewCount)

	res, err = svc.GetStatsForItem(ctx, 1, "daily", 2)
	require.NoError(t, err)
	require.Len(t, res.Daily, 2)
	assert.Equal(t, "2024-03-15", res.Daily[0].Key)

	res, err = svc.GetStatsForItem(ctx, 1, "all", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.ViewCount)
	assert.Equal(t, 2, res.UniqueVisitors)
	assert.Equal(t, "2024-03-15T12:00:00Z", res.LastUpdated)
	assert.Len(t, res.Daily, 3)
	assert.Len(t, res.Weekly, 1)
	assert.Len(t, res.Monthly, 1)
}

func TestGetStatsForItemReadOnly(t *testing.T) {
	viewRepo := newFakeViewRepo()
	viewRepo.records[1] = &mongo.ViewRecord{
		ArticleID: 1,
		ViewCount: 3,
		Daily:     map[string]int64{"2024-03-15": 3},
	}
	svc := newTestService(viewRepo, &fakeArticleRepo{}, time.Now())

	first, err := svc.GetStatsForItem(context.Background(), 1, "all", 0)
	require.NoError(t, err)
	second, err := svc.GetStatsForItem(context.Background(), 1, "all", 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(3), viewRepo.records[1].ViewCount)
}

func TestGetStatsForItemErrors(t *testing.T) {
	svc := newTestService(newFakeViewRepo(), &fakeArticleRepo{}, time.Now())
	ctx := context.Background()

	_, err := svc.GetStatsForItem(ctx, 1, "all", 0)
	assert.ErrorIs(t, err, ErrStatsNotFound)

	_, err = svc.GetStatsForItem(ctx, 1, "hourly", 0)
	assert.ErrorIs(t, err, ErrParamInvalid)

	_, err = svc.GetStatsForItem(ctx, 0, "all", 0)
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestBuildGlobalStats(t *testing.T) {
	top := []*mongo.ViewRecord{
		{ArticleID: 1, ViewCount: 100},
		{ArticleID: 3, ViewCount: 40},
	}
	counts := []*mongo.ArticleViewCount{
		{ArticleID: 1, ViewCount: 100},
		{ArticleID: 2, ViewCount: 30},
		{ArticleID: 3, ViewCount: 40},
	}
	metas := map[uint64]*model.ArticleMeta{
		1: {ID: 1, Title: "Budget passes", Category: "politics", Country: "bd"},
		2: {ID: 2, Title: "Cup final", Category: "sports", Country: "uk"},
		// 文章 3 已从内容库删除，无元数据
	}
	series := []*mongo.DailyPoint{
		{Date: "2024-03-14", Count: 7},
		{Date: "2024-03-15", Count: 9},
	}

	res := buildGlobalStats(top, counts, metas, series, 170)

	assert.Equal(t, int64(170), res.TotalViews)

	require.Len(t, res.TopArticles, 2)
	assert.Equal(t, "Budget passes", res.TopArticles[0].Title)
	assert.Equal(t, "politics", res.TopArticles[0].Category)
	// 元数据缺失仍保留在排行里，标题留空
	assert.Equal(t, uint64(3), res.TopArticles[1].ArticleID)
	assert.Empty(t, res.TopArticles[1].Title)

	// 元数据缺失的记录不参与分组求和
	require.Len(t, res.ByCategory, 2)
	assert.Equal(t, "politics", res.ByCategory[0].Key)
	assert.Equal(t, int64(100), res.ByCategory[0].Count)
	assert.Equal(t, "sports", res.ByCategory[1].Key)
	assert.Equal(t, int64(30), res.ByCategory[1].Count)

	require.Len(t, res.ByCountry, 2)
	assert.Equal(t, "bd", res.ByCountry[0].Key)

	require.Len(t, res.Last30Days, 2)
	assert.Equal(t, "2024-03-14", res.Last30Days[0].Date)
	assert.Equal(t, int64(9), res.Last30Days[1].Count)
}

func TestSortGroupsDescTieBreak(t *testing.T) {
	res := sortGroupsDesc(map[string]int64{"sports": 5, "politics": 5, "tech": 9})

	require.Len(t, res, 3)
	assert.Equal(t, "tech", res[0].Key)
	// 计数相同时按键升序，输出稳定
	assert.Equal(t, "politics", res[1].Key)
	assert.Equal(t, "sports", res[2].Key)
}

package mongo

import (
	"context"
	"time"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/util"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ViewRepo interface {
	// IncrementView 原子记录一次阅读并返回最新总阅读量
	IncrementView(ctx context.Context, articleID uint64, visitorID string, now time.Time) (int64, error)
	GetByArticleID(ctx context.Context, articleID uint64) (*ViewRecord, error)
	GetTopByViews(ctx context.Context, limit int64) ([]*ViewRecord, error)
	GetAllViewCounts(ctx context.Context) ([]*ArticleViewCount, error)
	GetTotalViews(ctx context.Context) (int64, error)
	GetDailySeriesSince(ctx context.Context, since time.Time) ([]*DailyPoint, error)
}

type viewRepoImpl struct {
	col *mongo.Collection
}

func NewViewRepo(db *mongo.Database) ViewRepo {
	return &viewRepoImpl{
		col: db.Collection("article_views"),
	}
}

// IncrementView 以单条 upsert 完成计数：$inc 同时命中总量和日/周/月三个桶键，
// 键不存在时由存储端创建，存在时自增，因此同一文章的并发写不会丢失更新。
// visitorID 为空时不追加访客集合。
func (s *viewRepoImpl) IncrementView(ctx context.Context, articleID uint64, visitorID string, now time.Time) (int64, error) {
	update := bson.M{
		"$inc": bson.M{
			"view_count":                    1,
			"daily." + util.DayKey(now):     1,
			"weekly." + util.ISOWeekKey(now): 1,
			"monthly." + util.MonthKey(now): 1,
		},
		"$set": bson.M{"last_updated": now.UTC()},
	}
	if visitorID != "" {
		update["$addToSet"] = bson.M{"unique_visitors": visitorID}
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(bson.M{"view_count": 1})

	var updated struct {
		ViewCount int64 `bson:"view_count"`
	}
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": articleID}, update, opts).Decode(&updated)
	if err != nil {
		return 0, errors.Wrap(err, "increment view record")
	}
	return updated.ViewCount, nil
}

// GetByArticleID 查询单篇文章的统计文档，未找到时透传 mongo.ErrNoDocuments
func (s *viewRepoImpl) GetByArticleID(ctx context.Context, articleID uint64) (*ViewRecord, error) {
	var record ViewRecord
	err := s.col.FindOne(ctx, bson.M{"_id": articleID}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetTopByViews 按总阅读量倒序取前 limit 条，平局按文章 ID 升序保证确定性
func (s *viewRepoImpl) GetTopByViews(ctx context.Context, limit int64) ([]*ViewRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "view_count", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find top view records")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []*ViewRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "decode top view records")
	}
	return records, nil
}

// GetAllViewCounts 只投影 _id 和 view_count，供按类目/地区聚合使用
func (s *viewRepoImpl) GetAllViewCounts(ctx context.Context) ([]*ArticleViewCount, error) {
	opts := options.Find().SetProjection(bson.M{"view_count": 1})

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find view counts")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var counts []*ArticleViewCount
	if err = cursor.All(ctx, &counts); err != nil {
		return nil, errors.Wrap(err, "decode view counts")
	}
	return counts, nil
}

// GetTotalViews 全站总阅读量，集合为空时返回 0
func (s *viewRepoImpl) GetTotalViews(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$view_count"},
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, errors.Wrap(err, "aggregate total views")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var result []struct {
		Total int64 `bson:"total"`
	}
	if err = cursor.All(ctx, &result); err != nil {
		return 0, errors.Wrap(err, "decode total views")
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}

// GetDailySeriesSince 把所有文档的 daily 映射展开后按日期键汇总，
// 日期键是 "2006-01-02" 格式，字典序即时间序，可直接用字符串比较过滤
func (s *viewRepoImpl) GetDailySeriesSince(ctx context.Context, since time.Time) ([]*DailyPoint, error) {
	sinceKey := util.DayKey(since)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$project", Value: bson.M{
			"buckets": bson.M{"$objectToArray": bson.M{"$ifNull": bson.A{"$daily", bson.M{}}}},
		}}},
		bson.D{{Key: "$unwind", Value: "$buckets"}},
		bson.D{{Key: "$match", Value: bson.M{"buckets.k": bson.M{"$gte": sinceKey}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$buckets.k",
			"count": bson.M{"$sum": "$buckets.v"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate daily series")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var series []*DailyPoint
	if err = cursor.All(ctx, &series); err != nil {
		return nil, errors.Wrap(err, "decode daily series")
	}
	return series, nil
}

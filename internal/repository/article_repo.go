package repository

import (
	"context"
	"errors"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/model"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRepo interface {
	CreateArticle(ctx context.Context, article *model.Article) error
	GetArticle(ctx context.Context, id uint64) (*model.Article, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	GetArticleMetaByIDs(ctx context.Context, ids []uint64) (map[uint64]*model.ArticleMeta, error)
	ListPublished(ctx context.Context, categoryID uint64, country string, limit, offset int) ([]*model.Article, error)
	ListFeatured(ctx context.Context, limit int) ([]*model.Article, error)
	UpdateArticle(ctx context.Context, article *model.Article) error
	UpdateViewsCount(ctx context.Context, id uint64, views int64) error
	DeleteArticle(ctx context.Context, id uint64) error
}

type articleRepoImpl struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) ArticleRepo {
	return &articleRepoImpl{db: db}
}

func (s *articleRepoImpl) CreateArticle(ctx context.Context, article *model.Article) error {
	return s.db.WithContext(ctx).Create(article).Error
}

func (s *articleRepoImpl) GetArticle(ctx context.Context, id uint64) (*model.Article, error) {
	var article model.Article
	err := s.db.WithContext(ctx).
		Preload("Category").Preload("Author").
		Where("is_deleted = ?", false).
		First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// Exists 阅读统计记录前的存在性校验，只查主键避免加载正文
func (s *articleRepoImpl) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetArticleMetaByIDs 批量取文章元数据（类目、地区、作者），供全局阅读聚合连接使用
func (s *articleRepoImpl) GetArticleMetaByIDs(ctx context.Context, ids []uint64) (map[uint64]*model.ArticleMeta, error) {
	if len(ids) == 0 {
		return map[uint64]*model.ArticleMeta{}, nil
	}

	var articles []*model.Article
	err := s.db.WithContext(ctx).
		Preload("Category").Preload("Author").
		Where("id IN ?", ids).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	metas := make(map[uint64]*model.ArticleMeta, len(articles))
	for _, a := range articles {
		metas[a.ID] = &model.ArticleMeta{
			ID:          a.ID,
			Title:       a.Title,
			Category:    a.Category.Name,
			Country:     a.Country,
			AuthorName:  a.Author.Nickname,
			PublishedAt: a.PublishedAt,
		}
	}
	return metas, nil
}

func (s *articleRepoImpl) ListPublished(ctx context.Context, categoryID uint64, country string, limit, offset int) ([]*model.Article, error) {
	query := s.db.WithContext(ctx).
		Preload("Category").Preload("Author").
		Where("status = ? AND is_deleted = ?", consts.ArticleStatusPublished, false)

	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if country != "" {
		query = query.Where("country = ?", country)
	}

	var articles []*model.Article
	err := query.Order("published_at DESC").Limit(limit).Offset(offset).Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *articleRepoImpl) ListFeatured(ctx context.Context, limit int) ([]*model.Article, error) {
	var articles []*model.Article
	err := s.db.WithContext(ctx).
		Preload("Category").Preload("Author").
		Where("is_featured = ? AND status = ? AND is_deleted = ?", true, consts.ArticleStatusPublished, false).
		Order("published_at DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// UpdateArticle 整行覆盖，布尔和状态字段回退为零值时也能落库
func (s *articleRepoImpl) UpdateArticle(ctx context.Context, article *model.Article) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(article).Error
}

// UpdateViewsCount trending job 将阅读统计快照回填到文章表
func (s *articleRepoImpl) UpdateViewsCount(ctx context.Context, id uint64, views int64) error {
	return s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", id).
		Update("views_count", views).Error
}

func (s *articleRepoImpl) DeleteArticle(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Article{}).Where("id = ?", id).Update("is_deleted", true).Error
}

package service

import (
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/dto"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/model"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/redis"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/repository"
	"github.com/jinzhu/copier"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, authorID uint64, req *dto.ArticleBaseDTO) (*dto.ArticleDTO, error)
	GetArticle(ctx context.Context, id uint64) (*dto.ArticleDTO, error)
	ListArticles(ctx context.Context, query *dto.ArticleQueryDTO) ([]*dto.ArticleDTO, error)
	ListFeatured(ctx context.Context, limit int) ([]*dto.ArticleDTO, error)
	// ListTrending 读取定时任务维护的热度榜
	ListTrending(ctx context.Context, limit int) ([]*dto.ArticleDTO, error)
	UpdateArticle(ctx context.Context, req *dto.ArticleBaseDTO) (*dto.ArticleDTO, error)
	DeleteArticle(ctx context.Context, id uint64) error
}

type articleServiceImpl struct {
	articleRepo  repository.ArticleRepo
	categoryRepo repository.CategoryRepo
}

func NewArticleService(articleRepo repository.ArticleRepo, categoryRepo repository.CategoryRepo) ArticleService {
	return &articleServiceImpl{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *articleServiceImpl) CreateArticle(ctx context.Context, authorID uint64, req *dto.ArticleBaseDTO) (*dto.ArticleDTO, error) {
	category, err := s.categoryRepo.GetCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	article := &model.Article{}
	if err = copier.Copy(article, req); err != nil {
		return nil, UnExpectedError
	}
	article.ID = 0
	article.AuthorID = authorID
	if article.Status == consts.ArticleStatusPublished {
		article.PublishedAt = time.Now()
	}

	if err = s.articleRepo.CreateArticle(ctx, article); err != nil {
		return nil, wrapStorage(err)
	}

	return s.GetArticle(ctx, article.ID)
}

func (s *articleServiceImpl) GetArticle(ctx context.Context, id uint64) (*dto.ArticleDTO, error) {
	if id == 0 {
		return nil, ErrParamInvalid
	}

	article, err := s.articleRepo.GetArticle(ctx, id)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	return toArticleDTO(article, true), nil
}

func (s *articleServiceImpl) ListArticles(ctx context.Context, query *dto.ArticleQueryDTO) ([]*dto.ArticleDTO, error) {
	var categoryID uint64
	if query.Category != "" {
		category, err := s.categoryRepo.GetCategoryByName(ctx, query.Category)
		if err != nil {
			return nil, wrapStorage(err)
		}
		if category == nil {
			return []*dto.ArticleDTO{}, nil
		}
		categoryID = category.ID
	}

	offset := (query.Page - 1) * query.PageSize
	articles, err := s.articleRepo.ListPublished(ctx, categoryID, query.Country, query.PageSize, offset)
	if err != nil {
		return nil, wrapStorage(err)
	}

	return toArticleDTOList(articles), nil
}

func (s *articleServiceImpl) ListFeatured(ctx context.Context, limit int) ([]*dto.ArticleDTO, error) {
	if limit <= 0 {
		limit = consts.DefaultStatsLimit
	}

	articles, err := s.articleRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, wrapStorage(err)
	}

	return toArticleDTOList(articles), nil
}

// ListTrending 榜单由 trending job 写入 Redis ZSet，这里只做读取和元数据补全。
// 榜单尚未生成时返回空列表而不是错误。
func (s *articleServiceImpl) ListTrending(ctx context.Context, limit int) ([]*dto.ArticleDTO, error) {
	if limit <= 0 {
		limit = consts.DefaultStatsLimit
	}

	members, err := redis.ZRevRange(ctx, consts.ArticleTrendingKey, 0, int64(limit-1))
	if err != nil {
		return nil, wrapStorage(err)
	}

	ids := make([]uint64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			log.WarnContext(ctx, "热度榜成员解析失败", "member", m)
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return []*dto.ArticleDTO{}, nil
	}

	metas, err := s.articleRepo.GetArticleMetaByIDs(ctx, ids)
	if err != nil {
		return nil, wrapStorage(err)
	}

	res := make([]*dto.ArticleDTO, 0, len(ids))
	for _, id := range ids {
		meta, ok := metas[id]
		if !ok {
			continue
		}
		res = append(res, &dto.ArticleDTO{
			ID:          meta.ID,
			Title:       meta.Title,
			Category:    meta.Category,
			Country:     meta.Country,
			AuthorName:  meta.AuthorName,
			PublishedAt: meta.PublishedAt.Format(time.RFC3339),
		})
	}
	return res, nil
}

func (s *articleServiceImpl) UpdateArticle(ctx context.Context, req *dto.ArticleBaseDTO) (*dto.ArticleDTO, error) {
	article, err := s.articleRepo.GetArticle(ctx, req.ID)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	if req.CategoryID != article.CategoryID {
		category, err := s.categoryRepo.GetCategory(ctx, req.CategoryID)
		if err != nil {
			return nil, wrapStorage(err)
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	wasPublished := article.Status == consts.ArticleStatusPublished
	if err = copier.Copy(article, req); err != nil {
		return nil, UnExpectedError
	}
	if !wasPublished && article.Status == consts.ArticleStatusPublished && article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now()
	}

	if err = s.articleRepo.UpdateArticle(ctx, article); err != nil {
		return nil, wrapStorage(err)
	}

	return s.GetArticle(ctx, article.ID)
}

// DeleteArticle 软删除。历史阅读统计保留，全站聚合会因为查不到
// 元数据自动跳过这篇文章。
func (s *articleServiceImpl) DeleteArticle(ctx context.Context, id uint64) error {
	article, err := s.articleRepo.GetArticle(ctx, id)
	if err != nil {
		return wrapStorage(err)
	}
	if article == nil {
		return ErrArticleNotFound
	}

	if err = s.articleRepo.DeleteArticle(ctx, id); err != nil {
		return wrapStorage(err)
	}
	return nil
}

func toArticleDTO(article *model.Article, withContent bool) *dto.ArticleDTO {
	res := &dto.ArticleDTO{}
	_ = copier.Copy(res, article)
	res.Category = article.Category.Name
	res.AuthorName = article.Author.Nickname
	if res.AuthorName == "" {
		res.AuthorName = article.Author.Username
	}
	if !article.PublishedAt.IsZero() {
		res.PublishedAt = article.PublishedAt.Format(time.RFC3339)
	}
	if !withContent {
		res.Content = ""
	}
	return res
}

func toArticleDTOList(articles []*model.Article) []*dto.ArticleDTO {
	res := make([]*dto.ArticleDTO, 0, len(articles))
	for _, article := range articles {
		res = append(res, toArticleDTO(article, false))
	}
	return res
}

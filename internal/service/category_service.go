package service

import (
	"context"
	log "log/slog"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/dto"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/model"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/redis"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/repository"
	"github.com/goccy/go-json"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *dto.CategoryBaseDTO) (*dto.CategoryDTO, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, req *dto.CategoryBaseDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *dto.CategoryBaseDTO) (*dto.CategoryDTO, error) {
	existing, err := s.categoryRepo.GetCategoryByName(ctx, req.Name)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if existing != nil {
		return nil, ErrCategoryExist
	}

	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err = s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, wrapStorage(err)
	}
	s.evictListCache(ctx)

	return toCategoryDTO(category), nil
}

// ListCategories 列表走缓存，分类变更时整体失效
func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	if val, err := redis.GetValue(ctx, consts.CategoryListKey); err == nil && val != "" {
		var cached []*dto.CategoryDTO
		if err = json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, wrapStorage(err)
	}

	res := make([]*dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		res = append(res, toCategoryDTO(category))
	}

	if data, err := json.Marshal(res); err == nil {
		if err = redis.SetWithMidnightExpiration(ctx, consts.CategoryListKey, data); err != nil {
			log.WarnContext(ctx, "分类缓存写入失败", "error", err.Error())
		}
	}
	return res, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, req *dto.CategoryBaseDTO) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetCategory(ctx, req.ID)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name != category.Name {
		existing, err := s.categoryRepo.GetCategoryByName(ctx, req.Name)
		if err != nil {
			return nil, wrapStorage(err)
		}
		if existing != nil {
			return nil, ErrCategoryExist
		}
	}

	category.Name = req.Name
	category.Description = req.Description
	if err = s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		return nil, wrapStorage(err)
	}
	s.evictListCache(ctx)

	return toCategoryDTO(category), nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id uint64) error {
	category, err := s.categoryRepo.GetCategory(ctx, id)
	if err != nil {
		return wrapStorage(err)
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	if err = s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		return wrapStorage(err)
	}
	s.evictListCache(ctx)
	return nil
}

func (s *categoryServiceImpl) evictListCache(ctx context.Context) {
	if err := redis.DeleteKey(ctx, consts.CategoryListKey); err != nil {
		log.WarnContext(ctx, "分类缓存清除失败", "error", err.Error())
	}
}

func toCategoryDTO(category *model.Category) *dto.CategoryDTO {
	return &dto.CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

package repository

import (
	"context"
	"errors"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/model"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id uint64) (*model.Comment, error)
	ListByArticle(ctx context.Context, articleID uint64, limit, offset int) ([]*model.Comment, error)
	CountByArticle(ctx context.Context, articleID uint64) (int64, error)
	DeleteComment(ctx context.Context, id uint64) error
}

type commentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &commentRepoImpl{db: db}
}

func (s *commentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *commentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (s *commentRepoImpl) ListByArticle(ctx context.Context, articleID uint64, limit, offset int) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	err := s.db.WithContext(ctx).
		Where("article_id = ? AND status = ?", articleID, consts.CommentStatusVisible).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *commentRepoImpl) CountByArticle(ctx context.Context, articleID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("article_id = ? AND status = ?", articleID, consts.CommentStatusVisible).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *commentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}

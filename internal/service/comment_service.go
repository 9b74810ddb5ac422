package service

import (
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/dto"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/model"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/mongo"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/redis"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/repository"
	"github.com/jinzhu/copier"
)

const commentSnippetLen = 120

type CommentService interface {
	CreateComment(ctx context.Context, req *dto.CommentBaseDTO) (*dto.CommentDTO, error)
	ListByArticle(ctx context.Context, articleID uint64, page, pageSize int) ([]*dto.CommentDTO, int64, error)
	DeleteComment(ctx context.Context, id uint64) error
}

type commentServiceImpl struct {
	commentRepo      repository.CommentRepo
	articleRepo      repository.ArticleRepo
	notificationRepo mongo.NotificationRepo
}

func NewCommentService(commentRepo repository.CommentRepo, articleRepo repository.ArticleRepo, notificationRepo mongo.NotificationRepo) CommentService {
	return &commentServiceImpl{
		commentRepo:      commentRepo,
		articleRepo:      articleRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, req *dto.CommentBaseDTO) (*dto.CommentDTO, error) {
	article, err := s.articleRepo.GetArticle(ctx, req.ArticleID)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	comment := &model.Comment{}
	if err = copier.Copy(comment, req); err != nil {
		return nil, UnExpectedError
	}

	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, wrapStorage(err)
	}

	// 通知失败不影响评论本身
	notification := &mongo.Notification{
		Type:      mongo.NotificationTypeComment,
		ArticleID: article.ID,
		Title:     fmt.Sprintf("《%s》收到新评论", article.Title),
		Content:   fmt.Sprintf("%s: %s", req.Name, truncateRunes(req.Content, commentSnippetLen)),
	}
	if err = s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		log.WarnContext(ctx, "评论通知写入失败", "article_id", article.ID, "error", err.Error())
	} else if err = redis.DeleteKey(ctx, consts.NotificationUnreadKey); err != nil {
		log.WarnContext(ctx, "未读数缓存清除失败", "error", err.Error())
	}

	return toCommentDTO(comment), nil
}

func (s *commentServiceImpl) ListByArticle(ctx context.Context, articleID uint64, page, pageSize int) ([]*dto.CommentDTO, int64, error) {
	if articleID == 0 {
		return nil, 0, ErrParamInvalid
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	exists, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return nil, 0, wrapStorage(err)
	}
	if !exists {
		return nil, 0, ErrArticleNotFound
	}

	comments, err := s.commentRepo.ListByArticle(ctx, articleID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, wrapStorage(err)
	}
	total, err := s.commentRepo.CountByArticle(ctx, articleID)
	if err != nil {
		return nil, 0, wrapStorage(err)
	}

	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		res = append(res, toCommentDTO(comment))
	}
	return res, total, nil
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, id uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, id)
	if err != nil {
		return wrapStorage(err)
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if err = s.commentRepo.DeleteComment(ctx, id); err != nil {
		return wrapStorage(err)
	}
	return nil
}

// truncateRunes 按字符截断，中文评论不能从多字节序列中间切开
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        comment.ID,
		ArticleID: comment.ArticleID,
		Name:      comment.Name,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}

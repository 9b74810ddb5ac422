package service

import (
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/dto"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/mongo"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/redis"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
)

const unreadCountCacheTTL = time.Minute

type NotificationService interface {
	GetNotificationList(ctx context.Context, page, pageSize int) ([]*dto.NotificationDTO, error)
	GetUnreadCount(ctx context.Context) (*dto.NotificationUnreadDTO, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
}

type notificationServiceImpl struct {
	notificationRepo mongo.NotificationRepo
}

func NewNotificationService(notificationRepo mongo.NotificationRepo) NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *notificationServiceImpl) GetNotificationList(ctx context.Context, page, pageSize int) ([]*dto.NotificationDTO, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	list, err := s.notificationRepo.GetNotificationList(ctx, int64(pageSize), int64((page-1)*pageSize))
	if err != nil {
		return nil, wrapStorage(err)
	}

	res := make([]*dto.NotificationDTO, 0, len(list))
	for _, msg := range list {
		res = append(res, &dto.NotificationDTO{
			ID:        msg.ID.Hex(),
			Type:      msg.Type,
			ArticleID: msg.ArticleID,
			Title:     msg.Title,
			Content:   msg.Content,
			IsRead:    msg.IsRead,
			CreatedAt: msg.CreatedAt.Format(time.RFC3339),
		})
	}
	return res, nil
}

// GetUnreadCount 未读数走短缓存，已读操作和新通知都会清掉它
func (s *notificationServiceImpl) GetUnreadCount(ctx context.Context) (*dto.NotificationUnreadDTO, error) {
	if val, err := redis.GetValue(ctx, consts.NotificationUnreadKey); err == nil && val != "" {
		if count, convErr := strconv.ParseInt(val, 10, 64); convErr == nil {
			return &dto.NotificationUnreadDTO{UnreadCount: count}, nil
		}
	}

	count, err := s.notificationRepo.GetUnreadCount(ctx)
	if err != nil {
		return nil, wrapStorage(err)
	}

	if err = redis.SetWithExpiration(ctx, consts.NotificationUnreadKey, count, unreadCountCacheTTL); err != nil {
		log.WarnContext(ctx, "未读数缓存写入失败", "error", err.Error())
	}
	return &dto.NotificationUnreadDTO{UnreadCount: count}, nil
}

func (s *notificationServiceImpl) MarkAsRead(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrParamInvalid
	}

	if _, err = s.notificationRepo.GetByID(ctx, objectID); err != nil {
		if errors.Is(err, mongoDB.ErrNoDocuments) {
			return ErrNotificationNotFound
		}
		return wrapStorage(err)
	}

	if err = s.notificationRepo.MarkAsRead(ctx, id); err != nil {
		return wrapStorage(err)
	}
	s.evictUnreadCache(ctx)
	return nil
}

func (s *notificationServiceImpl) MarkAllAsRead(ctx context.Context) error {
	if err := s.notificationRepo.MarkAllAsRead(ctx); err != nil {
		return wrapStorage(err)
	}
	s.evictUnreadCache(ctx)
	return nil
}

func (s *notificationServiceImpl) evictUnreadCache(ctx context.Context) {
	if err := redis.DeleteKey(ctx, consts.NotificationUnreadKey); err != nil {
		log.WarnContext(ctx, "未读数缓存清除失败", "error", err.Error())
	}
}

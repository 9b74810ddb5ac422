package kafka

import (
	"context"
	"errors"
	log "log/slog"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/service"
	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// ViewEvent 前端埋点上报的阅读事件
type ViewEvent struct {
	ArticleID uint64 `json:"article_id"`
	VisitorID string `json:"visitor_id"`
}

// ViewsHandler 消费阅读事件并落到阅读统计
type ViewsHandler struct {
	viewStatsSvc service.ViewStatsService
}

func NewViewsHandler(viewStatsSvc service.ViewStatsService) *ViewsHandler {
	return &ViewsHandler{
		viewStatsSvc: viewStatsSvc,
	}
}

func (s *ViewsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("view consumer setup")
	return nil
}

func (s *ViewsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("view consumer cleanup")
	return nil
}

func (s *ViewsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-view consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-view process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ViewsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event ViewEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// 坏消息重试无意义，记录后跳过
		log.ErrorContext(ctx, "unmarshal view event error", "err", err, "value", string(msg.Value))
		return nil
	}

	_, err := s.viewStatsSvc.RecordView(ctx, event.ArticleID, event.VisitorID)
	if err != nil {
		// 文章已删或事件非法时跳过，只有存储故障才交给上层重试
		if errors.Is(err, service.ErrArticleNotFound) || errors.Is(err, service.ErrParamInvalid) {
			log.WarnContext(ctx, "discard view event", "article_id", event.ArticleID, "reason", err.Error())
			return nil
		}
		return err
	}
	return nil
}

package kafka

import (
	"Ladder/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// LinkedinHandler 消费 LinkedIn 同步服务的累计值事件（帖子点赞数、连接数等）
type LinkedinHandler struct {
	activitySvc service.ActivityService
}

func NewLinkedinHandler(activitySvc service.ActivityService) *LinkedinHandler {
	return &LinkedinHandler{activitySvc: activitySvc}
}

func (s *LinkedinHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("linkedin growth consumer setup")
	return nil
}

func (s *LinkedinHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("linkedin growth consumer cleanup")
	return nil
}

func (s *LinkedinHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-linkedin consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-linkedin process batch error", "err", err)
		return err
	}
	return nil
}

func (s *LinkedinHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToGrowthEvent(msg, "linkedin")
	if err != nil {
		return nil
	}
	return recordGrowth(ctx, s.activitySvc, event)
}

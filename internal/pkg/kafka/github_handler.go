package kafka

import (
	"Ladder/internal/service"
	"context"
	"errors"
	log "log/slog"

	"github.com/IBM/sarama"
)

// GithubHandler 消费 GitHub 同步服务的累计值事件（提交数、star 数等）
type GithubHandler struct {
	activitySvc service.ActivityService
}

func NewGithubHandler(activitySvc service.ActivityService) *GithubHandler {
	return &GithubHandler{activitySvc: activitySvc}
}

func (s *GithubHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("github growth consumer setup")
	return nil
}

func (s *GithubHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("github growth consumer cleanup")
	return nil
}

func (s *GithubHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-github consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-github process batch error", "err", err)
		return err
	}
	return nil
}

func (s *GithubHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToGrowthEvent(msg, "github")
	if err != nil {
		// 解析失败的消息重试也救不回来，记日志后丢弃
		return nil
	}
	return recordGrowth(ctx, s.activitySvc, event)
}

// recordGrowth 配置类错误直接丢弃，库和缓存故障交给上层重试
func recordGrowth(ctx context.Context, activitySvc service.ActivityService, event *GrowthEvent) error {
	points, err := activitySvc.RecordGrowthTotal(ctx, event.UserID, event.ActivityKey, event.Total, event.ObservedAt)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) ||
			errors.Is(err, service.ErrActivityDisabled) ||
			errors.Is(err, service.ErrActivityKindMismatch) {
			log.WarnContext(ctx, "growth event dropped", "activity_key", event.ActivityKey, "err", err)
			return nil
		}
		return err
	}
	if points != 0 {
		log.InfoContext(ctx, "growth points awarded",
			"user_id", event.UserID, "activity_key", event.ActivityKey, "points", points)
	}
	return nil
}

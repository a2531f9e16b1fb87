package service

import (
	"Ladder/internal/model"
	"Ladder/internal/pkg/consts"
	mongoPkg "Ladder/internal/pkg/mongo"
	"Ladder/internal/pkg/period"
	"Ladder/internal/pkg/redis"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"Ladder/internal/repository"
)

type BadgeService interface {
	ListBadges(ctx context.Context) ([]*model.Badge, error)
	ListUserBadges(ctx context.Context, userID uint64) ([]*model.UserBadge, error)
	EvaluateWeeklyBadges(ctx context.Context, userID uint64, weeklyTotal int, week period.Week) error
	EvaluateAllTimeBadges(ctx context.Context, userID uint64, allTimeTotal int) error
}

type badgeServiceImpl struct {
	badgeRepo        repository.BadgeRepo
	notificationRepo mongoPkg.NotificationRepo
}

func NewBadgeService(badgeRepo repository.BadgeRepo, notificationRepo mongoPkg.NotificationRepo) BadgeService {
	return &badgeServiceImpl{
		badgeRepo:        badgeRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *badgeServiceImpl) ListBadges(ctx context.Context) ([]*model.Badge, error) {
	return s.badgeRepo.ListAll(ctx)
}

func (s *badgeServiceImpl) ListUserBadges(ctx context.Context, userID uint64) ([]*model.UserBadge, error) {
	return s.badgeRepo.ListUserBadges(ctx, userID)
}

// EvaluateWeeklyBadges 周积分过线即授予，同一周重复评估靠唯一索引去重
func (s *badgeServiceImpl) EvaluateWeeklyBadges(ctx context.Context, userID uint64, weeklyTotal int, week period.Week) error {
	badges, err := s.badgeRepo.ListByScope(ctx, model.BadgeScopeWeekly)
	if err != nil {
		return err
	}
	for _, badge := range badges {
		if weeklyTotal < badge.Threshold {
			continue
		}
		if err := s.award(ctx, userID, badge, week.Label); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateAllTimeBadges 累计徽章终身一次，week_label 固定空串
func (s *badgeServiceImpl) EvaluateAllTimeBadges(ctx context.Context, userID uint64, allTimeTotal int) error {
	badges, err := s.badgeRepo.ListByScope(ctx, model.BadgeScopeAllTime)
	if err != nil {
		return err
	}
	for _, badge := range badges {
		if allTimeTotal < badge.Threshold {
			continue
		}
		if err := s.award(ctx, userID, badge, ""); err != nil {
			return err
		}
	}
	return nil
}

func (s *badgeServiceImpl) award(ctx context.Context, userID uint64, badge *model.Badge, weekLabel string) error {
	awarded, err := s.badgeRepo.AwardBadge(ctx, &model.UserBadge{
		UserID:    userID,
		BadgeID:   badge.ID,
		WeekLabel: weekLabel,
		AwardedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	if !awarded {
		return nil
	}

	err = s.notificationRepo.CreateNotification(ctx, &mongoPkg.NotificationModel{
		ReceiverID: userID,
		Type:       mongoPkg.NotifyTypeBadgeAwarded,
		TargetID:   badge.ID,
		Content:    fmt.Sprintf("恭喜获得徽章「%s」", badge.Name),
		Payload:    map[string]any{"badgeKey": badge.BadgeKey, "weekLabel": weekLabel},
		CreatedAt:  time.Now(),
	})
	if err != nil {
		log.WarnContext(ctx, "发送徽章通知失败", "user_id", userID, "badge_id", badge.ID, "error", err)
	}
	_ = redis.DeleteKey(ctx, consts.NotificationUnreadKey+strconv.FormatUint(userID, 10))
	return nil
}

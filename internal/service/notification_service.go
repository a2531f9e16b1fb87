package service

import (
	"Ladder/internal/pkg/consts"
	mongoPkg "Ladder/internal/pkg/mongo"
	"Ladder/internal/pkg/redis"
	"context"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationService interface {
	GetNotificationList(ctx context.Context, userID uint64, limit, offset int64) ([]*mongoPkg.NotificationModel, error)
	MarkAsRead(ctx context.Context, userID uint64, msgID string) error
	MarkAllAsRead(ctx context.Context, userID uint64) error
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
}

type notificationServiceImpl struct {
	notificationRepo mongoPkg.NotificationRepo
}

func NewNotificationService(notificationRepo mongoPkg.NotificationRepo) NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *notificationServiceImpl) GetNotificationList(ctx context.Context, userID uint64, limit, offset int64) ([]*mongoPkg.NotificationModel, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.notificationRepo.GetNotificationList(ctx, userID, limit, offset)
}

func (s *notificationServiceImpl) MarkAsRead(ctx context.Context, userID uint64, msgID string) error {
	err := s.notificationRepo.MarkAsRead(ctx, userID, msgID)
	if err != nil {
		if err == mongo.ErrNoDocuments || err == mongo.ErrInvalidIndexValue {
			return ErrNotificationNotFound
		}
		return err
	}
	_ = redis.DeleteKey(ctx, consts.NotificationUnreadKey+strconv.FormatUint(userID, 10))
	return nil
}

func (s *notificationServiceImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	if err := s.notificationRepo.MarkAllAsRead(ctx, userID); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, consts.NotificationUnreadKey+strconv.FormatUint(userID, 10))
	return nil
}

// GetUnreadCount 未读数短缓存，写侧用删键兜底一致性
func (s *notificationServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	key := consts.NotificationUnreadKey + strconv.FormatUint(userID, 10)
	cached, err := redis.GetValue(ctx, key)
	if err != nil {
		return 0, err
	}
	if cached != "" {
		if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return count, nil
		}
	}

	count, err := s.notificationRepo.GetUnreadCount(ctx, userID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, strconv.FormatInt(count, 10), time.Minute)
	return count, nil
}

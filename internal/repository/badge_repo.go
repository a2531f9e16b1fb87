package repository

import (
	"Ladder/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepo interface {
	GetByKey(ctx context.Context, key string) (*model.Badge, error)
	ListAll(ctx context.Context) ([]*model.Badge, error)
	ListByScope(ctx context.Context, scope string) ([]*model.Badge, error)
	AwardBadge(ctx context.Context, userBadge *model.UserBadge) (bool, error)
	ListUserBadges(ctx context.Context, userID uint64) ([]*model.UserBadge, error)
}

type badgeRepoImpl struct {
	db *gorm.DB
}

func NewBadgeRepo(db *gorm.DB) BadgeRepo {
	return &badgeRepoImpl{db: db}
}

func (r *badgeRepoImpl) GetByKey(ctx context.Context, key string) (*model.Badge, error) {
	var badge model.Badge
	err := r.db.WithContext(ctx).Where("badge_key = ?", key).First(&badge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &badge, nil
}

func (r *badgeRepoImpl) ListAll(ctx context.Context) ([]*model.Badge, error) {
	badges := make([]*model.Badge, 0)
	if err := r.db.WithContext(ctx).Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *badgeRepoImpl) ListByScope(ctx context.Context, scope string) ([]*model.Badge, error) {
	badges := make([]*model.Badge, 0)
	err := r.db.WithContext(ctx).Where("scope = ?", scope).Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

// AwardBadge 授予徽章，(user, badge, week) 已存在则静默跳过，返回是否新授予
func (r *badgeRepoImpl) AwardBadge(ctx context.Context, userBadge *model.UserBadge) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(userBadge)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *badgeRepoImpl) ListUserBadges(ctx context.Context, userID uint64) ([]*model.UserBadge, error) {
	userBadges := make([]*model.UserBadge, 0)
	err := r.db.WithContext(ctx).Preload("Badge").
		Where("user_id = ?", userID).
		Order("awarded_at DESC").
		Find(&userBadges).Error
	if err != nil {
		return nil, err
	}
	return userBadges, nil
}

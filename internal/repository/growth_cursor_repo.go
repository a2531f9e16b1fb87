package repository

import (
	"Ladder/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GrowthCursorRepo interface {
	Get(ctx context.Context, userID, activityID uint64, weekLabel string) (*model.GrowthCursor, error)
	SaveOrUpdate(ctx context.Context, cursor *model.GrowthCursor) error
}

type growthCursorRepoImpl struct {
	db *gorm.DB
}

func NewGrowthCursorRepo(db *gorm.DB) GrowthCursorRepo {
	return &growthCursorRepoImpl{db: db}
}

func (r *growthCursorRepoImpl) Get(ctx context.Context, userID, activityID uint64, weekLabel string) (*model.GrowthCursor, error) {
	var cursor model.GrowthCursor
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND activity_id = ? AND week_label = ?", userID, activityID, weekLabel).
		First(&cursor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cursor, nil
}

// SaveOrUpdate 采用 Upsert 逻辑，冲突时覆盖最后观测值
func (r *growthCursorRepoImpl) SaveOrUpdate(ctx context.Context, cursor *model.GrowthCursor) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "activity_id"}, {Name: "week_label"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_total", "updated_at"}),
	}).Create(cursor).Error
}

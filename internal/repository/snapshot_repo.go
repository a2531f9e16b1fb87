package repository

import (
	"Ladder/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepo interface {
	SaveBatch(ctx context.Context, snapshots []*model.LeaderboardSnapshot) error
	ListByWeek(ctx context.Context, weekLabel string, limit int) ([]*model.LeaderboardSnapshot, error)
}

type snapshotRepoImpl struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return &snapshotRepoImpl{db: db}
}

// SaveBatch 整周快照落库，同周重跑覆盖旧值
func (r *snapshotRepoImpl) SaveBatch(ctx context.Context, snapshots []*model.LeaderboardSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "week_label"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_points", "rank_position"}),
	}).Create(&snapshots).Error
}

func (r *snapshotRepoImpl) ListByWeek(ctx context.Context, weekLabel string, limit int) ([]*model.LeaderboardSnapshot, error) {
	snapshots := make([]*model.LeaderboardSnapshot, 0)
	query := r.db.WithContext(ctx).
		Where("week_label = ?", weekLabel).
		Order("rank_position ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

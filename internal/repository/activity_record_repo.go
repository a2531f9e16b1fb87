package repository

import (
	"Ladder/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRecordRepo interface {
	Create(ctx context.Context, record *model.ActivityRecord) error
	UpsertAdd(ctx context.Context, record *model.ActivityRecord) error
	GetByUserActivityDate(ctx context.Context, userID, activityID uint64, date time.Time) (*model.ActivityRecord, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]*model.ActivityRecord, error)
	ListAll(ctx context.Context) ([]*model.ActivityRecord, error)
	ListByUsersAndRange(ctx context.Context, userIDs []uint64, activityIDs []uint64, start, end time.Time) ([]*model.ActivityRecord, error)
	ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]*model.ActivityRecord, error)
	ListActiveDates(ctx context.Context, userID uint64, since time.Time) ([]time.Time, error)
}

type activityRecordRepoImpl struct {
	db *gorm.DB
}

func NewActivityRecordRepo(db *gorm.DB) ActivityRecordRepo {
	return &activityRecordRepoImpl{db: db}
}

func (r *activityRecordRepoImpl) Create(ctx context.Context, record *model.ActivityRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// UpsertAdd (user_id, activity_id, activity_date) 冲突时在原值上累加积分
// 增长类活动一天可发放多次（增量可为负），落到同一行
func (r *activityRecordRepoImpl) UpsertAdd(ctx context.Context, record *model.ActivityRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "activity_id"}, {Name: "activity_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"points":     gorm.Expr("points + VALUES(points)"),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(record).Error
}

func (r *activityRecordRepoImpl) GetByUserActivityDate(ctx context.Context, userID, activityID uint64, date time.Time) (*model.ActivityRecord, error) {
	var record model.ActivityRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND activity_id = ? AND activity_date = ?", userID, activityID, date).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ListByRange 取区间内全部记录，按插入顺序返回
// 插入顺序决定了排行榜同分时的先后（先活跃者在前）
func (r *activityRecordRepoImpl) ListByRange(ctx context.Context, start, end time.Time) ([]*model.ActivityRecord, error) {
	records := make([]*model.ActivityRecord, 0)
	err := r.db.WithContext(ctx).
		Where("activity_date >= ? AND activity_date <= ?", start, end).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListAll 全量记录，总榜聚合用
func (r *activityRecordRepoImpl) ListAll(ctx context.Context) ([]*model.ActivityRecord, error) {
	records := make([]*model.ActivityRecord, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *activityRecordRepoImpl) ListByUsersAndRange(ctx context.Context, userIDs []uint64, activityIDs []uint64, start, end time.Time) ([]*model.ActivityRecord, error) {
	records := make([]*model.ActivityRecord, 0)
	query := r.db.WithContext(ctx).
		Where("activity_date >= ? AND activity_date <= ?", start, end)
	if len(userIDs) > 0 {
		query = query.Where("user_id IN ?", userIDs)
	}
	if len(activityIDs) > 0 {
		query = query.Where("activity_id IN ?", activityIDs)
	}
	err := query.Order("id ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *activityRecordRepoImpl) ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]*model.ActivityRecord, error) {
	records := make([]*model.ActivityRecord, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND activity_date >= ? AND activity_date <= ?", userID, start, end).
		Order("activity_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListActiveDates 用户自 since 起有记录的日期（去重、升序），连续打卡统计用
func (r *activityRecordRepoImpl) ListActiveDates(ctx context.Context, userID uint64, since time.Time) ([]time.Time, error) {
	dates := make([]time.Time, 0)
	err := r.db.WithContext(ctx).
		Model(&model.ActivityRecord{}).
		Distinct("activity_date").
		Where("user_id = ? AND activity_date >= ?", userID, since).
		Order("activity_date ASC").
		Pluck("activity_date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

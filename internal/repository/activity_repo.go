package repository

import (
	"Ladder/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ActivityRepo interface {
	GetByKey(ctx context.Context, key string) (*model.Activity, error)
	GetByID(ctx context.Context, id uint64) (*model.Activity, error)
	ListEnabled(ctx context.Context) ([]*model.Activity, error)
	Create(ctx context.Context, activity *model.Activity) error
	Update(ctx context.Context, activity *model.Activity) error
}

type activityRepoImpl struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) ActivityRepo {
	return &activityRepoImpl{db: db}
}

func (r *activityRepoImpl) GetByKey(ctx context.Context, key string) (*model.Activity, error) {
	var activity model.Activity
	err := r.db.WithContext(ctx).Where("activity_key = ?", key).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Activity, error) {
	var activity model.Activity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepoImpl) ListEnabled(ctx context.Context) ([]*model.Activity, error) {
	activities := make([]*model.Activity, 0)
	err := r.db.WithContext(ctx).Where("enabled = 1").Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepoImpl) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepoImpl) Update(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

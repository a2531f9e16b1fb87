package repository

import (
	"Ladder/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CareerTaskRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.CareerTask, error)
	GetByKey(ctx context.Context, key string) (*model.CareerTask, error)
	ListActive(ctx context.Context, category string) ([]*model.CareerTask, error)
	Create(ctx context.Context, task *model.CareerTask) error
	Update(ctx context.Context, task *model.CareerTask) error
}

type careerTaskRepoImpl struct {
	db *gorm.DB
}

func NewCareerTaskRepo(db *gorm.DB) CareerTaskRepo {
	return &careerTaskRepoImpl{db: db}
}

func (r *careerTaskRepoImpl) GetByID(ctx context.Context, id uint64) (*model.CareerTask, error) {
	var task model.CareerTask
	err := r.db.WithContext(ctx).Preload("Activity").Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *careerTaskRepoImpl) GetByKey(ctx context.Context, key string) (*model.CareerTask, error) {
	var task model.CareerTask
	err := r.db.WithContext(ctx).Preload("Activity").Where("task_key = ?", key).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// ListActive 按分类取上架任务，category 为空取全部
func (r *careerTaskRepoImpl) ListActive(ctx context.Context, category string) ([]*model.CareerTask, error) {
	tasks := make([]*model.CareerTask, 0)
	query := r.db.WithContext(ctx).Preload("Activity").Where("active = 1")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *careerTaskRepoImpl) Create(ctx context.Context, task *model.CareerTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *careerTaskRepoImpl) Update(ctx context.Context, task *model.CareerTask) error {
	return r.db.WithContext(ctx).Save(task).Error
}

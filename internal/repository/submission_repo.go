package repository

import (
	"Ladder/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type SubmissionRepo interface {
	Create(ctx context.Context, submission *model.TaskSubmission) error
	GetByID(ctx context.Context, id uint64) (*model.TaskSubmission, error)
	GetByUserTaskDate(ctx context.Context, userID, taskID uint64, date time.Time) (*model.TaskSubmission, error)
	ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.TaskSubmission, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*model.TaskSubmission, error)
	UpdateStatus(ctx context.Context, id uint64, status string, reviewerID *uint64) error
}

type submissionRepoImpl struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) SubmissionRepo {
	return &submissionRepoImpl{db: db}
}

func (r *submissionRepoImpl) Create(ctx context.Context, submission *model.TaskSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepoImpl) GetByID(ctx context.Context, id uint64) (*model.TaskSubmission, error) {
	var submission model.TaskSubmission
	err := r.db.WithContext(ctx).Preload("Task").Preload("Task.Activity").
		Where("id = ?", id).First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

// GetByUserTaskDate 当天是否已提交过该任务
func (r *submissionRepoImpl) GetByUserTaskDate(ctx context.Context, userID, taskID uint64, date time.Time) (*model.TaskSubmission, error) {
	var submission model.TaskSubmission
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND task_id = ? AND created_at >= ? AND created_at < ?",
			userID, taskID, date, date.AddDate(0, 0, 1)).
		First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepoImpl) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.TaskSubmission, error) {
	submissions := make([]*model.TaskSubmission, 0)
	err := r.db.WithContext(ctx).Preload("Task").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepoImpl) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*model.TaskSubmission, error) {
	submissions := make([]*model.TaskSubmission, 0)
	err := r.db.WithContext(ctx).Preload("Task").
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepoImpl) UpdateStatus(ctx context.Context, id uint64, status string, reviewerID *uint64) error {
	updates := map[string]interface{}{
		"status":      status,
		"reviewer_id": reviewerID,
		"reviewed_at": time.Now(),
	}
	return r.db.WithContext(ctx).
		Model(&model.TaskSubmission{}).
		Where("id = ?", id).
		Updates(updates).Error
}

package model

import (
	"time"
)

const (
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusVerified  = "verified"
	SubmissionStatusRejected  = "rejected"
)

// TaskSubmission 任务提交，附证据文件（对象存储 key）
type TaskSubmission struct {
	ID             uint64  `gorm:"primaryKey"`
	UserID         uint64  `gorm:"not null;index:idx_submission_user"`
	TaskID         uint64  `gorm:"not null;index:idx_submission_task"`
	EvidenceObject *string `gorm:"type:varchar(255);column:evidence_object"`
	EvidenceURL    *string `gorm:"type:varchar(500);column:evidence_url"`
	Note           *string `gorm:"type:varchar(500)"`
	Status         string  `gorm:"type:varchar(20);not null;default:submitted"`
	ReviewerID     *uint64
	ReviewedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Task CareerTask `gorm:"foreignKey:TaskID;references:ID"`
}

func (TaskSubmission) TableName() string {
	return "task_submissions"
}

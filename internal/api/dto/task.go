package dto

import "time"

type CareerTaskDTO struct {
	ID          uint64  `json:"id"`
	TaskKey     string  `json:"task_key"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
	Points      int     `json:"points"`
	Active      bool    `json:"active"`
}

// SubmitTaskDTO multipart 表单提交，证据文件走文件域
type SubmitTaskDTO struct {
	TaskKey string  `form:"task_key" validate:"required"`
	Note    *string `form:"note" validate:"omitempty,max=500"`
}

type ReviewSubmissionDTO struct {
	Approve bool `json:"approve"`
}

type SubmissionDTO struct {
	ID          uint64     `json:"id"`
	TaskID      uint64     `json:"task_id"`
	TaskKey     string     `json:"task_key,omitempty"`
	Title       string     `json:"title,omitempty"`
	EvidenceURL *string    `json:"evidence_url,omitempty"`
	Note        *string    `json:"note,omitempty"`
	Status      string     `json:"status"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

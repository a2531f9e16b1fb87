package model

import (
	"time"
)

const (
	TaskCategoryResume   = "resume"
	TaskCategoryLinkedin = "linkedin"
	TaskCategoryGithub   = "github"
	TaskCategoryJobs     = "jobs"
)

// CareerTask 求职任务目录，完成后按关联活动计分
type CareerTask struct {
	ID          uint64  `gorm:"primaryKey"`
	TaskKey     string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_task_key;column:task_key"`
	Title       string  `gorm:"type:varchar(200);not null"`
	Description *string `gorm:"type:text"`
	Category    string  `gorm:"type:varchar(20);not null"`
	ActivityID  uint64  `gorm:"not null"`
	Active      bool    `gorm:"type:tinyint(1);default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Activity Activity `gorm:"foreignKey:ActivityID;references:ID"`
}

func (CareerTask) TableName() string {
	return "career_tasks"
}

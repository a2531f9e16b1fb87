package dto

import "time"

type ActivityDTO struct {
	ID            uint64  `json:"id"`
	ActivityKey   string  `json:"activity_key"`
	Name          string  `json:"name"`
	Kind          string  `json:"kind"`
	Points        int     `json:"points"`
	PointsPerUnit int     `json:"points_per_unit"`
	DailyCap      *int    `json:"daily_cap,omitempty"`
	Description   *string `json:"description,omitempty"`
	Enabled       bool    `json:"enabled"`
}

type CreateActivityDTO struct {
	ActivityKey   string  `json:"activity_key" validate:"required,min=1,max=100"`
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	Kind          string  `json:"kind" validate:"required,oneof=milestone growth"`
	Points        int     `json:"points" validate:"min=0"`
	PointsPerUnit int     `json:"points_per_unit" validate:"min=0"`
	DailyCap      *int    `json:"daily_cap,omitempty" validate:"omitempty,min=1"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=255"`
}

type UpdateActivityDTO struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Points        *int    `json:"points,omitempty" validate:"omitempty,min=0"`
	PointsPerUnit *int    `json:"points_per_unit,omitempty" validate:"omitempty,min=0"`
	DailyCap      *int    `json:"daily_cap,omitempty" validate:"omitempty,min=1"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=255"`
	Enabled       *bool   `json:"enabled,omitempty"`
}

// MilestoneReportDTO 里程碑完成上报
type MilestoneReportDTO struct {
	ActivityKey string     `json:"activity_key" validate:"required"`
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
}

// GrowthReportDTO 增长类累计值上报
type GrowthReportDTO struct {
	ActivityKey   string     `json:"activity_key" validate:"required"`
	ObservedTotal int        `json:"observed_total" validate:"min=0"`
	ObservedAt    *time.Time `json:"observed_at,omitempty"`
}

type AwardResultDTO struct {
	Awarded bool `json:"awarded"`
	Points  int  `json:"points"`
}

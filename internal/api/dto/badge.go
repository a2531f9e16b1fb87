package dto

import "time"

type BadgeDTO struct {
	ID          uint64  `json:"id"`
	BadgeKey    string  `json:"badge_key"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Scope       string  `json:"scope"`
	Threshold   int     `json:"threshold"`
	IconURL     *string `json:"icon_url,omitempty"`
}

type UserBadgeDTO struct {
	Badge     BadgeDTO  `json:"badge"`
	WeekLabel string    `json:"week_label,omitempty"`
	AwardedAt time.Time `json:"awarded_at"`
}

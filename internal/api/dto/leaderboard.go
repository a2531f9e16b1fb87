package dto

// LeaderboardQueryDTO 榜单查询参数，week 为空取当前周
type LeaderboardQueryDTO struct {
	Week  string `form:"week"`
	Limit int    `form:"limit"`
}

type WeeklyTotalDTO struct {
	WeekLabel   string `json:"week_label"`
	TotalPoints int    `json:"total_points"`
	Streak      int    `json:"streak"`
}

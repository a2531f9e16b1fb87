package handler

import (
	"Ladder/internal/api/dto"
	"Ladder/internal/pkg/period"
	"Ladder/internal/pkg/response"
	"Ladder/internal/pkg/util"
	"Ladder/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardSvc service.LeaderboardService
	activitySvc    service.ActivityService
}

func NewLeaderboardHandler(leaderboardSvc service.LeaderboardService, activitySvc service.ActivityService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardSvc: leaderboardSvc,
		activitySvc:    activitySvc,
	}
}

// GetWeeklyLeaderboard week 为空默认当前周
func (s *LeaderboardHandler) GetWeeklyLeaderboard(c *gin.Context) {
	var query dto.LeaderboardQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	entries, err := s.leaderboardSvc.WeeklyLeaderboard(c.Request.Context(), query.Week, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

func (s *LeaderboardHandler) GetAllTimeLeaderboard(c *gin.Context) {
	var query dto.LeaderboardQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	entries, err := s.leaderboardSvc.AllTimeLeaderboard(c.Request.Context(), query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

func (s *LeaderboardHandler) GetInstituteLeaderboard(c *gin.Context) {
	instituteID := util.StrToUint64(c.Param("institute_id"))
	if instituteID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var query dto.LeaderboardQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	entries, err := s.leaderboardSvc.InstituteLeaderboard(c.Request.Context(), instituteID, query.Week, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

// GetHistoryLeaderboard 查历史周的快照榜单
func (s *LeaderboardHandler) GetHistoryLeaderboard(c *gin.Context) {
	weekLabel := c.Param("week")
	var query dto.LeaderboardQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	entries, err := s.leaderboardSvc.HistoricalLeaderboard(c.Request.Context(), weekLabel, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

// GetMyWeeklyTotal 个人当前周合计与连续打卡天数
func (s *LeaderboardHandler) GetMyWeeklyTotal(c *gin.Context) {
	userID := c.GetUint64("user_id")
	total, err := s.leaderboardSvc.UserWeeklyTotal(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	streak, err := s.activitySvc.GetUserStreak(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.WeeklyTotalDTO{
		WeekLabel:   period.Label(time.Now()),
		TotalPoints: total,
		Streak:      streak,
	})
}

// GetMyWeeklyBreakdown 个人当前周积分按活动细分
func (s *LeaderboardHandler) GetMyWeeklyBreakdown(c *gin.Context) {
	userID := c.GetUint64("user_id")
	breakdown, err := s.leaderboardSvc.UserWeeklyBreakdown(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, breakdown)
}

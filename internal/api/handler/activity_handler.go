package handler

import (
	"Ladder/internal/api/dto"
	"Ladder/internal/model"
	"Ladder/internal/pkg/response"
	"Ladder/internal/pkg/util"
	"Ladder/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type ActivityHandler struct {
	activitySvc service.ActivityService
}

func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

func (s *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := s.activitySvc.ListEnabledActivities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	dtos := make([]*dto.ActivityDTO, 0, len(activities))
	for _, activity := range activities {
		activityDTO := &dto.ActivityDTO{}
		if err := copier.Copy(activityDTO, activity); err != nil {
			response.Error(c, service.UnExpectedError)
			return
		}
		dtos = append(dtos, activityDTO)
	}
	response.Success(c, dtos)
}

// ReportMilestone 上报里程碑完成，当天重复上报 awarded=false
func (s *ActivityHandler) ReportMilestone(c *gin.Context) {
	var reportDTO dto.MilestoneReportDTO
	if err := c.ShouldBind(&reportDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&reportDTO); err != nil {
		response.Error(c, err)
		return
	}

	occurredAt := time.Now()
	if reportDTO.OccurredAt != nil {
		occurredAt = *reportDTO.OccurredAt
	}
	userID := c.GetUint64("user_id")
	awarded, err := s.activitySvc.AwardMilestone(c.Request.Context(), userID, reportDTO.ActivityKey, occurredAt)
	if err != nil {
		response.Error(c, err)
		return
	}

	points := 0
	if awarded {
		activity, err := s.activitySvc.GetActivityByKey(c.Request.Context(), reportDTO.ActivityKey)
		if err == nil && activity != nil {
			points = activity.Points
		}
	}
	response.Success(c, dto.AwardResultDTO{Awarded: awarded, Points: points})
}

// ReportGrowth 上报增长类累计值，返回本次折算的积分增量
func (s *ActivityHandler) ReportGrowth(c *gin.Context) {
	var reportDTO dto.GrowthReportDTO
	if err := c.ShouldBind(&reportDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&reportDTO); err != nil {
		response.Error(c, err)
		return
	}

	observedAt := time.Now()
	if reportDTO.ObservedAt != nil {
		observedAt = *reportDTO.ObservedAt
	}
	userID := c.GetUint64("user_id")
	points, err := s.activitySvc.RecordGrowthTotal(c.Request.Context(), userID, reportDTO.ActivityKey, reportDTO.ObservedTotal, observedAt)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.AwardResultDTO{Awarded: points != 0, Points: points})
}

func (s *ActivityHandler) CreateActivity(c *gin.Context) {
	var createDTO dto.CreateActivityDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	activity := &model.Activity{
		ActivityKey:   createDTO.ActivityKey,
		Name:          createDTO.Name,
		Kind:          createDTO.Kind,
		Points:        createDTO.Points,
		PointsPerUnit: createDTO.PointsPerUnit,
		DailyCap:      createDTO.DailyCap,
		Description:   createDTO.Description,
		Enabled:       true,
	}
	if err := s.activitySvc.CreateActivity(c.Request.Context(), activity); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]uint64{"id": activity.ID})
}

func (s *ActivityHandler) UpdateActivity(c *gin.Context) {
	id := util.StrToUint64(c.Param("activity_id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var updateDTO dto.UpdateActivityDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.activitySvc.UpdateActivity(c.Request.Context(), id, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ActivityHandler) GetMyStreak(c *gin.Context) {
	userID := c.GetUint64("user_id")
	streak, err := s.activitySvc.GetUserStreak(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int{"streak": streak})
}

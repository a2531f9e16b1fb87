package handler

import (
	"Ladder/internal/api/dto"
	"Ladder/internal/pkg/response"
	"Ladder/internal/pkg/util"
	"Ladder/internal/service"

	"github.com/gin-gonic/gin"
)

type InstituteHandler struct {
	instituteSvc service.InstituteService
}

func NewInstituteHandler(instituteSvc service.InstituteService) *InstituteHandler {
	return &InstituteHandler{instituteSvc: instituteSvc}
}

func (s *InstituteHandler) CreateInstitute(c *gin.Context) {
	var createDTO dto.CreateInstituteDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	institute, err := s.instituteSvc.CreateInstitute(c.Request.Context(), createDTO.Name, createDTO.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.InstituteDTO{ID: institute.ID, Name: institute.Name, Code: institute.Code})
}

func (s *InstituteHandler) JoinInstitute(c *gin.Context) {
	var joinDTO dto.JoinInstituteDTO
	if err := c.ShouldBind(&joinDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&joinDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	institute, err := s.instituteSvc.JoinByCode(c.Request.Context(), userID, joinDTO.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.InstituteDTO{ID: institute.ID, Name: institute.Name})
}

func (s *InstituteHandler) GetMyInstitute(c *gin.Context) {
	userID := c.GetUint64("user_id")
	institute, err := s.instituteSvc.GetUserInstitute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if institute == nil {
		response.Success(c, nil)
		return
	}
	response.Success(c, dto.InstituteDTO{ID: institute.ID, Name: institute.Name})
}

// GetWeeklySummary 机构看板
func (s *InstituteHandler) GetWeeklySummary(c *gin.Context) {
	instituteID := util.StrToUint64(c.Param("institute_id"))
	if instituteID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	summary, err := s.instituteSvc.WeeklySummary(c.Request.Context(), instituteID, c.Query("week"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}

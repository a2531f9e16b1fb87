package handler

import (
	"Ladder/internal/api/dto"
	"Ladder/internal/model"
	"Ladder/internal/pkg/response"
	"Ladder/internal/pkg/util"
	"Ladder/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxEvidenceSize = 10 << 20

type TaskHandler struct {
	taskSvc service.TaskService
}

func NewTaskHandler(taskSvc service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

func (s *TaskHandler) ListTasks(c *gin.Context) {
	category := c.Query("category")
	tasks, err := s.taskSvc.ListTasks(c.Request.Context(), category)
	if err != nil {
		response.Error(c, err)
		return
	}
	dtos := make([]*dto.CareerTaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, toCareerTaskDTO(task))
	}
	response.Success(c, dtos)
}

// SubmitTask multipart 提交，证据文件可选
func (s *TaskHandler) SubmitTask(c *gin.Context) {
	var submitDTO dto.SubmitTaskDTO
	if err := c.ShouldBind(&submitDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&submitDTO); err != nil {
		response.Error(c, err)
		return
	}

	var evidence *service.EvidenceFile
	file, err := c.FormFile("evidence")
	if err == nil && file != nil {
		if file.Size > maxEvidenceSize {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		reader, err := file.Open()
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		defer func() { _ = reader.Close() }()

		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") && contentType != "application/pdf" {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		evidence = &service.EvidenceFile{
			Reader:      reader,
			Size:        file.Size,
			ContentType: contentType,
			Filename:    file.Filename,
		}
	}

	userID := c.GetUint64("user_id")
	submission, err := s.taskSvc.SubmitTask(c.Request.Context(), userID, submitDTO.TaskKey, evidence, submitDTO.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toSubmissionDTO(submission))
}

func (s *TaskHandler) ListMySubmissions(c *gin.Context) {
	userID := c.GetUint64("user_id")
	limit, offset := pageParams(c)
	submissions, err := s.taskSvc.ListUserSubmissions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toSubmissionDTOs(submissions))
}

func (s *TaskHandler) ListPendingSubmissions(c *gin.Context) {
	limit, offset := pageParams(c)
	submissions, err := s.taskSvc.ListPendingSubmissions(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toSubmissionDTOs(submissions))
}

func (s *TaskHandler) ReviewSubmission(c *gin.Context) {
	submissionID := util.StrToUint64(c.Param("submission_id"))
	if submissionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var reviewDTO dto.ReviewSubmissionDTO
	if err := c.ShouldBind(&reviewDTO); err != nil {
		response.Error(c, err)
		return
	}
	reviewerID := c.GetUint64("user_id")
	if err := s.taskSvc.ReviewSubmission(c.Request.Context(), reviewerID, submissionID, reviewDTO.Approve); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// AutoVerify 触发外部核验
func (s *TaskHandler) AutoVerify(c *gin.Context) {
	submissionID := util.StrToUint64(c.Param("submission_id"))
	if submissionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	verified, err := s.taskSvc.AutoVerifySubmission(c.Request.Context(), submissionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"verified": verified})
}

func pageParams(c *gin.Context) (int, int) {
	limit := int(util.StrToUint64(c.DefaultQuery("limit", "20")))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := int(util.StrToUint64(c.DefaultQuery("offset", "0")))
	return limit, offset
}

func toCareerTaskDTO(task *model.CareerTask) *dto.CareerTaskDTO {
	return &dto.CareerTaskDTO{
		ID:          task.ID,
		TaskKey:     task.TaskKey,
		Title:       task.Title,
		Description: task.Description,
		Category:    task.Category,
		Points:      task.Activity.Points,
		Active:      task.Active,
	}
}

func toSubmissionDTO(submission *model.TaskSubmission) *dto.SubmissionDTO {
	submissionDTO := &dto.SubmissionDTO{
		ID:          submission.ID,
		TaskID:      submission.TaskID,
		EvidenceURL: submission.EvidenceURL,
		Note:        submission.Note,
		Status:      submission.Status,
		ReviewedAt:  submission.ReviewedAt,
		CreatedAt:   submission.CreatedAt,
	}
	if submission.Task.ID != 0 {
		submissionDTO.TaskKey = submission.Task.TaskKey
		submissionDTO.Title = submission.Task.Title
	}
	return submissionDTO
}

func toSubmissionDTOs(submissions []*model.TaskSubmission) []*dto.SubmissionDTO {
	dtos := make([]*dto.SubmissionDTO, 0, len(submissions))
	for _, submission := range submissions {
		dtos = append(dtos, toSubmissionDTO(submission))
	}
	return dtos
}

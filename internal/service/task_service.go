package service

import (
	"Ladder/internal/model"
	"Ladder/internal/pkg/consts"
	"Ladder/internal/pkg/minio"
	mongoPkg "Ladder/internal/pkg/mongo"
	"Ladder/internal/pkg/period"
	"Ladder/internal/pkg/redis"
	"Ladder/internal/repository"
	"context"
	"fmt"
	"io"
	log "log/slog"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// EvidenceFile 任务提交附带的证据文件
type EvidenceFile struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}

type TaskService interface {
	ListTasks(ctx context.Context, category string) ([]*model.CareerTask, error)
	SubmitTask(ctx context.Context, userID uint64, taskKey string, evidence *EvidenceFile, note *string) (*model.TaskSubmission, error)
	ReviewSubmission(ctx context.Context, reviewerID, submissionID uint64, approve bool) error
	AutoVerifySubmission(ctx context.Context, submissionID uint64) (bool, error)
	ListUserSubmissions(ctx context.Context, userID uint64, limit, offset int) ([]*model.TaskSubmission, error)
	ListPendingSubmissions(ctx context.Context, limit, offset int) ([]*model.TaskSubmission, error)
}

type taskServiceImpl struct {
	careerTaskRepo   repository.CareerTaskRepo
	submissionRepo   repository.SubmissionRepo
	activityService  ActivityService
	verifyClient     VerifyClient
	notificationRepo mongoPkg.NotificationRepo
}

func NewTaskService(
	careerTaskRepo repository.CareerTaskRepo,
	submissionRepo repository.SubmissionRepo,
	activityService ActivityService,
	verifyClient VerifyClient,
	notificationRepo mongoPkg.NotificationRepo,
) TaskService {
	return &taskServiceImpl{
		careerTaskRepo:   careerTaskRepo,
		submissionRepo:   submissionRepo,
		activityService:  activityService,
		verifyClient:     verifyClient,
		notificationRepo: notificationRepo,
	}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, category string) ([]*model.CareerTask, error) {
	return s.careerTaskRepo.ListActive(ctx, category)
}

// SubmitTask 同一天重复提交同一任务不报错，返回已有记录
func (s *taskServiceImpl) SubmitTask(ctx context.Context, userID uint64, taskKey string, evidence *EvidenceFile, note *string) (*model.TaskSubmission, error) {
	task, err := s.careerTaskRepo.GetByKey(ctx, taskKey)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if !task.Active {
		return nil, ErrTaskInactive
	}

	today := period.Midnight(time.Now())
	exist, err := s.submissionRepo.GetByUserTaskDate(ctx, userID, task.ID, today)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return exist, nil
	}

	submission := &model.TaskSubmission{
		UserID: userID,
		TaskID: task.ID,
		Note:   note,
		Status: model.SubmissionStatusSubmitted,
	}
	if evidence != nil {
		objectName := fmt.Sprintf("evidence/%d/%s%s", userID, uuid.NewString(), path.Ext(evidence.Filename))
		key, err := minio.UploadFile(ctx, objectName, evidence.Reader, evidence.Size, evidence.ContentType)
		if err != nil {
			return nil, err
		}
		url := minio.GetPublicURL(key)
		submission.EvidenceObject = &key
		submission.EvidenceURL = &url
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		if submission.EvidenceObject != nil {
			_ = minio.DeleteFile(ctx, *submission.EvidenceObject)
		}
		return nil, err
	}
	return submission, nil
}

// ReviewSubmission 人工审核，通过即按任务关联活动计分
func (s *taskServiceImpl) ReviewSubmission(ctx context.Context, reviewerID, submissionID uint64, approve bool) error {
	submission, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission == nil {
		return ErrSubmissionNotFound
	}
	if submission.Status != model.SubmissionStatusSubmitted {
		return ErrSubmissionReviewed
	}
	return s.settle(ctx, submission, approve, &reviewerID, "")
}

// AutoVerifySubmission 走外部核验服务，核验结论直接定状态
func (s *taskServiceImpl) AutoVerifySubmission(ctx context.Context, submissionID uint64) (bool, error) {
	submission, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return false, err
	}
	if submission == nil {
		return false, ErrSubmissionNotFound
	}
	if submission.Status != model.SubmissionStatusSubmitted {
		return false, ErrSubmissionReviewed
	}

	req := &VerifyRequest{
		TaskKey: submission.Task.TaskKey,
		UserID:  submission.UserID,
	}
	if submission.EvidenceURL != nil {
		req.EvidenceURL = *submission.EvidenceURL
	}
	if submission.Note != nil {
		req.Note = *submission.Note
	}
	verified, reason, err := s.verifyClient.VerifySubmission(ctx, req)
	if err != nil {
		return false, err
	}
	if err := s.settle(ctx, submission, verified, nil, reason); err != nil {
		return false, err
	}
	return verified, nil
}

func (s *taskServiceImpl) settle(ctx context.Context, submission *model.TaskSubmission, approve bool, reviewerID *uint64, reason string) error {
	status := model.SubmissionStatusRejected
	if approve {
		status = model.SubmissionStatusVerified
	}
	if err := s.submissionRepo.UpdateStatus(ctx, submission.ID, status, reviewerID); err != nil {
		return err
	}

	if approve {
		// 当天重复核验同一活动时发放会被里程碑闸门挡住，核验本身照常成功
		_, err := s.activityService.AwardMilestoneByID(ctx, submission.UserID, submission.Task.ActivityID, time.Now())
		if err != nil {
			return err
		}
	}
	s.notifyReview(ctx, submission, approve, reason)
	return nil
}

func (s *taskServiceImpl) notifyReview(ctx context.Context, submission *model.TaskSubmission, approve bool, reason string) {
	notifyType := mongoPkg.NotifyTypeTaskVerified
	content := fmt.Sprintf("任务「%s」核验通过", submission.Task.Title)
	if !approve {
		notifyType = mongoPkg.NotifyTypeTaskRejected
		content = fmt.Sprintf("任务「%s」未通过核验", submission.Task.Title)
		if reason != "" {
			content += "：" + reason
		}
	}
	err := s.notificationRepo.CreateNotification(ctx, &mongoPkg.NotificationModel{
		ReceiverID: submission.UserID,
		Type:       notifyType,
		TargetID:   submission.ID,
		Content:    content,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		log.WarnContext(ctx, "发送核验通知失败", "submission_id", submission.ID, "error", err)
	}
	_ = redis.DeleteKey(ctx, consts.NotificationUnreadKey+strconv.FormatUint(submission.UserID, 10))
}

func (s *taskServiceImpl) ListUserSubmissions(ctx context.Context, userID uint64, limit, offset int) ([]*model.TaskSubmission, error) {
	return s.submissionRepo.ListByUser(ctx, userID, limit, offset)
}

func (s *taskServiceImpl) ListPendingSubmissions(ctx context.Context, limit, offset int) ([]*model.TaskSubmission, error) {
	return s.submissionRepo.ListByStatus(ctx, model.SubmissionStatusSubmitted, limit, offset)
}

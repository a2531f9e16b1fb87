package service

import (
	"Ladder/internal/api/dto"
	"Ladder/internal/model"
	"Ladder/internal/pkg/consts"
	mongoPkg "Ladder/internal/pkg/mongo"
	"Ladder/internal/pkg/period"
	"Ladder/internal/pkg/redis"
	"Ladder/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type ActivityService interface {
	ListEnabledActivities(ctx context.Context) ([]*model.Activity, error)
	GetActivityByKey(ctx context.Context, key string) (*model.Activity, error)
	CreateActivity(ctx context.Context, activity *model.Activity) error
	UpdateActivity(ctx context.Context, id uint64, updateDTO *dto.UpdateActivityDTO) error
	AwardMilestone(ctx context.Context, userID uint64, activityKey string, occurredAt time.Time) (bool, error)
	AwardMilestoneByID(ctx context.Context, userID, activityID uint64, occurredAt time.Time) (bool, error)
	RecordGrowthTotal(ctx context.Context, userID uint64, activityKey string, observedTotal int, observedAt time.Time) (int, error)
	GetUserStreak(ctx context.Context, userID uint64) (int, error)
}

type activityServiceImpl struct {
	activityRepo       repository.ActivityRepo
	activityRecordRepo repository.ActivityRecordRepo
	growthCursorRepo   repository.GrowthCursorRepo
	notificationRepo   mongoPkg.NotificationRepo
}

func NewActivityService(
	activityRepo repository.ActivityRepo,
	activityRecordRepo repository.ActivityRecordRepo,
	growthCursorRepo repository.GrowthCursorRepo,
	notificationRepo mongoPkg.NotificationRepo,
) ActivityService {
	return &activityServiceImpl{
		activityRepo:       activityRepo,
		activityRecordRepo: activityRecordRepo,
		growthCursorRepo:   growthCursorRepo,
		notificationRepo:   notificationRepo,
	}
}

func (s *activityServiceImpl) ListEnabledActivities(ctx context.Context) ([]*model.Activity, error) {
	return s.activityRepo.ListEnabled(ctx)
}

func (s *activityServiceImpl) GetActivityByKey(ctx context.Context, key string) (*model.Activity, error) {
	activity, err := s.activityRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

func (s *activityServiceImpl) CreateActivity(ctx context.Context, activity *model.Activity) error {
	exist, err := s.activityRepo.GetByKey(ctx, activity.ActivityKey)
	if err != nil {
		return err
	}
	if exist != nil {
		return ErrParamInvalid
	}
	return s.activityRepo.Create(ctx, activity)
}

// UpdateActivity 只覆盖请求里带的字段
func (s *activityServiceImpl) UpdateActivity(ctx context.Context, id uint64, updateDTO *dto.UpdateActivityDTO) error {
	exist, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if exist == nil {
		return ErrActivityNotFound
	}

	if updateDTO.Name != nil {
		exist.Name = *updateDTO.Name
	}
	if updateDTO.Points != nil {
		exist.Points = *updateDTO.Points
	}
	if updateDTO.PointsPerUnit != nil {
		exist.PointsPerUnit = *updateDTO.PointsPerUnit
	}
	if updateDTO.DailyCap != nil {
		exist.DailyCap = updateDTO.DailyCap
	}
	if updateDTO.Description != nil {
		exist.Description = updateDTO.Description
	}
	if updateDTO.Enabled != nil {
		exist.Enabled = *updateDTO.Enabled
	}
	return s.activityRepo.Update(ctx, exist)
}

func (s *activityServiceImpl) AwardMilestone(ctx context.Context, userID uint64, activityKey string, occurredAt time.Time) (bool, error) {
	activity, err := s.activityRepo.GetByKey(ctx, activityKey)
	if err != nil {
		return false, err
	}
	if activity == nil {
		return false, ErrActivityNotFound
	}
	return s.awardMilestone(ctx, userID, activity, occurredAt)
}

func (s *activityServiceImpl) AwardMilestoneByID(ctx context.Context, userID, activityID uint64, occurredAt time.Time) (bool, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return false, err
	}
	if activity == nil {
		return false, ErrActivityNotFound
	}
	return s.awardMilestone(ctx, userID, activity, occurredAt)
}

// awardMilestone 里程碑发放：同一用户同一活动同一天只记一次
// 重复触发返回 false 而不是错误，调用方照常走成功流程
func (s *activityServiceImpl) awardMilestone(ctx context.Context, userID uint64, activity *model.Activity, occurredAt time.Time) (bool, error) {
	if !activity.Enabled {
		return false, ErrActivityDisabled
	}
	if activity.Kind != model.ActivityKindMilestone {
		return false, ErrActivityKindMismatch
	}

	day := period.Midnight(occurredAt)
	lockKey := consts.ActivityAwardLock + strconv.FormatUint(userID, 10) + ":" + strconv.FormatUint(activity.ID, 10) + ":" + day.Format("2006-01-02")
	newUUID, err := uuid.NewUUID()
	if err != nil {
		return false, err
	}
	lock, err := redis.TryLock(ctx, lockKey, newUUID.String(), time.Minute, 3)
	if err != nil {
		return false, err
	}
	if !lock {
		return false, UnExpectedError
	}
	defer redis.UnLock(ctx, lockKey, newUUID.String())

	record, err := s.activityRecordRepo.GetByUserActivityDate(ctx, userID, activity.ID, day)
	if err != nil {
		return false, err
	}
	if record != nil {
		return false, nil
	}

	err = s.activityRecordRepo.Create(ctx, &model.ActivityRecord{
		UserID:       userID,
		ActivityID:   activity.ID,
		Points:       activity.Points,
		ActivityDate: day,
	})
	if err != nil {
		return false, err
	}

	s.markDirty(ctx, userID)
	s.notifyPoints(ctx, userID, activity, activity.Points)
	return true, nil
}

// RecordGrowthTotal 增长类发放：对比本周最后观测值，按差值折算积分
// 差值没有上限也不设日内次数限制，负增长照样冲销积分
func (s *activityServiceImpl) RecordGrowthTotal(ctx context.Context, userID uint64, activityKey string, observedTotal int, observedAt time.Time) (int, error) {
	activity, err := s.activityRepo.GetByKey(ctx, activityKey)
	if err != nil {
		return 0, err
	}
	if activity == nil {
		return 0, ErrActivityNotFound
	}
	if !activity.Enabled {
		return 0, ErrActivityDisabled
	}
	if activity.Kind != model.ActivityKindGrowth {
		return 0, ErrActivityKindMismatch
	}

	lockKey := consts.GrowthCursorLock + strconv.FormatUint(userID, 10) + ":" + strconv.FormatUint(activity.ID, 10)
	newUUID, err := uuid.NewUUID()
	if err != nil {
		return 0, err
	}
	lock, err := redis.TryLock(ctx, lockKey, newUUID.String(), time.Minute, 3)
	if err != nil {
		return 0, err
	}
	if !lock {
		return 0, UnExpectedError
	}
	defer redis.UnLock(ctx, lockKey, newUUID.String())

	week := period.Current(observedAt)
	cursor, err := s.growthCursorRepo.Get(ctx, userID, activity.ID, week.Label)
	if err != nil {
		return 0, err
	}
	lastTotal := 0
	if cursor != nil {
		lastTotal = cursor.LastTotal
	}

	delta := observedTotal - lastTotal
	points := delta * activity.PointsPerUnit
	if delta != 0 {
		err = s.activityRecordRepo.UpsertAdd(ctx, &model.ActivityRecord{
			UserID:       userID,
			ActivityID:   activity.ID,
			Points:       points,
			ActivityDate: period.Midnight(observedAt),
		})
		if err != nil {
			return 0, err
		}
	}

	err = s.growthCursorRepo.SaveOrUpdate(ctx, &model.GrowthCursor{
		UserID:     userID,
		ActivityID: activity.ID,
		WeekLabel:  week.Label,
		LastTotal:  observedTotal,
	})
	if err != nil {
		return 0, err
	}

	if points != 0 {
		s.markDirty(ctx, userID)
		s.notifyPoints(ctx, userID, activity, points)
	}
	return points, nil
}

// GetUserStreak 连续活跃天数，从今天（或昨天）往前数
func (s *activityServiceImpl) GetUserStreak(ctx context.Context, userID uint64) (int, error) {
	key := consts.UserStreakKey + strconv.FormatUint(userID, 10)
	cached, err := redis.GetValue(ctx, key)
	if err != nil {
		return 0, err
	}
	if cached != "" {
		streak, err := strconv.Atoi(cached)
		if err == nil {
			return streak, nil
		}
	}

	since := period.Midnight(time.Now()).AddDate(0, 0, -consts.StreakLookbackDays)
	dates, err := s.activityRecordRepo.ListActiveDates(ctx, userID, since)
	if err != nil {
		return 0, err
	}
	streak := countStreak(dates, time.Now())

	_ = redis.SetWithExpiration(ctx, key, strconv.Itoa(streak), time.Hour)
	return streak, nil
}

// countStreak 今天没打卡不中断（还有机会），昨天断了才归零
func countStreak(dates []time.Time, now time.Time) int {
	active := make(map[string]bool, len(dates))
	for _, d := range dates {
		active[period.Midnight(d).Format("2006-01-02")] = true
	}

	day := period.Midnight(now)
	if !active[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for active[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// markDirty 标记用户积分有变动，等后台任务重算榜单和缓存
func (s *activityServiceImpl) markDirty(ctx context.Context, userID uint64) {
	if err := redis.SAdd(ctx, consts.LeaderboardDirtyKey, strconv.FormatUint(userID, 10)); err != nil {
		log.WarnContext(ctx, "标记脏用户失败", "user_id", userID, "error", err)
	}
	_ = redis.DeleteKey(ctx, consts.UserWeeklyTotalKey+strconv.FormatUint(userID, 10))
}

func (s *activityServiceImpl) notifyPoints(ctx context.Context, userID uint64, activity *model.Activity, points int) {
	notifyType := mongoPkg.NotifyTypePointsAwarded
	content := fmt.Sprintf("完成「%s」获得 %d 积分", activity.Name, points)
	if points < 0 {
		notifyType = mongoPkg.NotifyTypePointsDeducted
		content = fmt.Sprintf("「%s」数据回落，扣减 %d 积分", activity.Name, -points)
	}
	err := s.notificationRepo.CreateNotification(ctx, &mongoPkg.NotificationModel{
		ReceiverID: userID,
		Type:       notifyType,
		TargetID:   activity.ID,
		Content:    content,
		Payload:    map[string]any{"activityKey": activity.ActivityKey, "points": points},
		CreatedAt:  time.Now(),
	})
	if err != nil {
		log.WarnContext(ctx, "发送积分通知失败", "user_id", userID, "activity_id", activity.ID, "error", err)
	}
	_ = redis.DeleteKey(ctx, consts.NotificationUnreadKey+strconv.FormatUint(userID, 10))
}

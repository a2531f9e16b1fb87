package service

import (
	"Ladder/internal/model"
	"Ladder/internal/pkg/consts"
	"Ladder/internal/pkg/redis"
	"Ladder/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// InstituteSummary 机构周维度看板数据
type InstituteSummary struct {
	InstituteID   uint64  `json:"instituteId"`
	Name          string  `json:"name"`
	WeekLabel     string  `json:"weekLabel"`
	MemberCount   int     `json:"memberCount"`
	ActiveMembers int     `json:"activeMembers"`
	TotalPoints   int     `json:"totalPoints"`
	AvgPoints     float64 `json:"avgPoints"`
}

type InstituteService interface {
	CreateInstitute(ctx context.Context, name, code string) (*model.Institute, error)
	JoinByCode(ctx context.Context, userID uint64, code string) (*model.Institute, error)
	GetUserInstitute(ctx context.Context, userID uint64) (*model.Institute, error)
	WeeklySummary(ctx context.Context, instituteID uint64, weekLabel string) (*InstituteSummary, error)
}

type instituteServiceImpl struct {
	instituteRepo      repository.InstituteRepo
	activityRepo       repository.ActivityRepo
	activityRecordRepo repository.ActivityRecordRepo
}

func NewInstituteService(
	instituteRepo repository.InstituteRepo,
	activityRepo repository.ActivityRepo,
	activityRecordRepo repository.ActivityRecordRepo,
) InstituteService {
	return &instituteServiceImpl{
		instituteRepo:      instituteRepo,
		activityRepo:       activityRepo,
		activityRecordRepo: activityRecordRepo,
	}
}

func (s *instituteServiceImpl) CreateInstitute(ctx context.Context, name, code string) (*model.Institute, error) {
	exist, err := s.instituteRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrParamInvalid
	}
	institute := &model.Institute{Name: name, Code: code}
	if err := s.instituteRepo.Create(ctx, institute); err != nil {
		return nil, err
	}
	return institute, nil
}

// JoinByCode 重复加入同一机构不报错，唯一索引兜底
func (s *instituteServiceImpl) JoinByCode(ctx context.Context, userID uint64, code string) (*model.Institute, error) {
	institute, err := s.instituteRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if institute == nil {
		return nil, ErrInstituteCodeInvalid
	}
	if err := s.instituteRepo.AddMember(ctx, institute.ID, userID); err != nil {
		return nil, err
	}
	_ = redis.DeleteKey(ctx, consts.InstituteSummaryKey+strconv.FormatUint(institute.ID, 10))
	return institute, nil
}

func (s *instituteServiceImpl) GetUserInstitute(ctx context.Context, userID uint64) (*model.Institute, error) {
	instituteID, err := s.instituteRepo.GetInstituteIDByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if instituteID == 0 {
		return nil, nil
	}
	return s.instituteRepo.GetByID(ctx, instituteID)
}

// WeeklySummary 机构看板：成员数、周活跃数、周总分、人均分
func (s *instituteServiceImpl) WeeklySummary(ctx context.Context, instituteID uint64, weekLabel string) (*InstituteSummary, error) {
	institute, err := s.instituteRepo.GetByID(ctx, instituteID)
	if err != nil {
		return nil, err
	}
	if institute == nil {
		return nil, ErrInstituteNotFound
	}

	week, err := resolveWeek(weekLabel)
	if err != nil {
		return nil, err
	}

	key := consts.InstituteSummaryKey + strconv.FormatUint(instituteID, 10) + ":" + week.Label
	cached, err := redis.GetValue(ctx, key)
	if err != nil {
		return nil, err
	}
	if cached != "" {
		var summary InstituteSummary
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
		log.WarnContext(ctx, "机构看板缓存反序列化失败，回源重算", "key", key)
	}

	memberIDs, err := s.instituteRepo.ListMemberIDs(ctx, instituteID)
	if err != nil {
		return nil, err
	}

	summary := &InstituteSummary{
		InstituteID: instituteID,
		Name:        institute.Name,
		WeekLabel:   week.Label,
		MemberCount: len(memberIDs),
	}
	if len(memberIDs) > 0 {
		records, err := s.activityRecordRepo.ListByUsersAndRange(ctx, memberIDs, nil, week.Start, week.End)
		if err != nil {
			return nil, err
		}
		caps, err := s.memberCaps(ctx)
		if err != nil {
			return nil, err
		}
		totals := SumByUser(records, caps)
		for _, t := range totals {
			summary.TotalPoints += t.Total
			if t.Total > 0 {
				summary.ActiveMembers++
			}
		}
		summary.AvgPoints = float64(summary.TotalPoints) / float64(len(memberIDs))
	}

	if data, err := json.Marshal(summary); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(data), time.Minute*5)
	}
	return summary, nil
}

func (s *instituteServiceImpl) memberCaps(ctx context.Context) (map[uint64]int, error) {
	activities, err := s.activityRepo.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	caps := make(map[uint64]int)
	for _, a := range activities {
		if a.DailyCap != nil {
			caps[a.ID] = *a.DailyCap
		}
	}
	return caps, nil
}

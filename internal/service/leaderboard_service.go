package service

import (
	"Ladder/internal/api/config"
	"Ladder/internal/model"
	"Ladder/internal/pkg/consts"
	"Ladder/internal/pkg/period"
	"Ladder/internal/pkg/redis"
	"Ladder/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"
)

type LeaderboardService interface {
	WeeklyLeaderboard(ctx context.Context, weekLabel string, limit int) ([]LeaderboardEntry, error)
	AllTimeLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	InstituteLeaderboard(ctx context.Context, instituteID uint64, weekLabel string, limit int) ([]LeaderboardEntry, error)
	UserWeeklyTotal(ctx context.Context, userID uint64) (int, error)
	UserWeeklyBreakdown(ctx context.Context, userID uint64) ([]ActivityBreakdown, error)
	UserAllTimeTotal(ctx context.Context, userID uint64) (int, error)
	AggregateWeek(ctx context.Context, week period.Week) ([]UserTotal, error)
	SnapshotWeek(ctx context.Context, weekLabel string, limit int) ([]LeaderboardEntry, error)
	HistoricalLeaderboard(ctx context.Context, weekLabel string, limit int) ([]LeaderboardEntry, error)
}

type leaderboardServiceImpl struct {
	activityRepo       repository.ActivityRepo
	activityRecordRepo repository.ActivityRecordRepo
	userRepo           repository.UserRepo
	instituteRepo      repository.InstituteRepo
	snapshotRepo       repository.SnapshotRepo
	sfGroup            singleflight.Group
}

func NewLeaderboardService(
	activityRepo repository.ActivityRepo,
	activityRecordRepo repository.ActivityRecordRepo,
	userRepo repository.UserRepo,
	instituteRepo repository.InstituteRepo,
	snapshotRepo repository.SnapshotRepo,
) LeaderboardService {
	return &leaderboardServiceImpl{
		activityRepo:       activityRepo,
		activityRecordRepo: activityRecordRepo,
		userRepo:           userRepo,
		instituteRepo:      instituteRepo,
		snapshotRepo:       snapshotRepo,
	}
}

// resolveWeek 空标签取当前周，显式标签必须合法
func resolveWeek(weekLabel string) (period.Week, error) {
	if weekLabel == "" {
		return period.Current(time.Now()), nil
	}
	week, err := period.FromLabel(weekLabel)
	if err != nil {
		return period.Week{}, ErrWeekLabelInvalid
	}
	return week, nil
}

func (s *leaderboardServiceImpl) clampLimit(limit int) int {
	cfg := config.Cfg.Leaderboard
	if limit <= 0 {
		return cfg.DefaultLimit
	}
	if cfg.MaxLimit > 0 && limit > cfg.MaxLimit {
		return cfg.MaxLimit
	}
	return limit
}

func (s *leaderboardServiceImpl) WeeklyLeaderboard(ctx context.Context, weekLabel string, limit int) ([]LeaderboardEntry, error) {
	week, err := resolveWeek(weekLabel)
	if err != nil {
		return nil, err
	}
	limit = s.clampLimit(limit)

	key := consts.LeaderboardWeeklyKey + week.Label + ":" + strconv.Itoa(limit)
	return s.cachedLeaderboard(ctx, key, func() ([]LeaderboardEntry, error) {
		totals, err := s.AggregateWeek(ctx, week)
		if err != nil {
			return nil, err
		}
		return s.rankWithProfiles(ctx, totals, limit)
	})
}

func (s *leaderboardServiceImpl) AllTimeLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	limit = s.clampLimit(limit)

	key := consts.LeaderboardAllTimeKey + ":" + strconv.Itoa(limit)
	return s.cachedLeaderboard(ctx, key, func() ([]LeaderboardEntry, error) {
		records, err := s.activityRecordRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		caps, err := s.dailyCaps(ctx)
		if err != nil {
			return nil, err
		}
		return s.rankWithProfiles(ctx, SumByUser(records, caps), limit)
	})
}

func (s *leaderboardServiceImpl) InstituteLeaderboard(ctx context.Context, instituteID uint64, weekLabel string, limit int) ([]LeaderboardEntry, error) {
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
	limit = s.clampLimit(limit)

	key := consts.LeaderboardWeeklyKey + week.Label + ":inst:" + strconv.FormatUint(instituteID, 10) + ":" + strconv.Itoa(limit)
	return s.cachedLeaderboard(ctx, key, func() ([]LeaderboardEntry, error) {
		memberIDs, err := s.instituteRepo.ListMemberIDs(ctx, instituteID)
		if err != nil {
			return nil, err
		}
		if len(memberIDs) == 0 {
			return []LeaderboardEntry{}, nil
		}
		records, err := s.activityRecordRepo.ListByUsersAndRange(ctx, memberIDs, nil, week.Start, week.End)
		if err != nil {
			return nil, err
		}
		caps, err := s.dailyCaps(ctx)
		if err != nil {
			return nil, err
		}
		return s.rankWithProfiles(ctx, SumByUser(records, caps), limit)
	})
}

// UserWeeklyTotal 当前周个人合计，用户无记录时是 0 而不是错误
func (s *leaderboardServiceImpl) UserWeeklyTotal(ctx context.Context, userID uint64) (int, error) {
	key := consts.UserWeeklyTotalKey + strconv.FormatUint(userID, 10)
	cached, err := redis.GetValue(ctx, key)
	if err != nil {
		return 0, err
	}
	if cached != "" {
		if total, err := strconv.Atoi(cached); err == nil {
			return total, nil
		}
	}

	week := period.Current(time.Now())
	records, err := s.activityRecordRepo.ListByUserAndRange(ctx, userID, week.Start, week.End)
	if err != nil {
		return 0, err
	}
	caps, err := s.dailyCaps(ctx)
	if err != nil {
		return 0, err
	}
	total := TotalOf(SumByUser(records, caps), userID)

	_ = redis.SetWithExpiration(ctx, key, strconv.Itoa(total), s.cacheTTL())
	return total, nil
}

// ActivityBreakdown 个人周积分按活动细分
type ActivityBreakdown struct {
	ActivityID   uint64 `json:"activityId"`
	ActivityKey  string `json:"activityKey"`
	ActivityName string `json:"activityName"`
	TotalPoints  int    `json:"totalPoints"`
}

// UserWeeklyBreakdown 当前周个人积分的活动明细
func (s *leaderboardServiceImpl) UserWeeklyBreakdown(ctx context.Context, userID uint64) ([]ActivityBreakdown, error) {
	week := period.Current(time.Now())
	records, err := s.activityRecordRepo.ListByUserAndRange(ctx, userID, week.Start, week.End)
	if err != nil {
		return nil, err
	}
	activities, err := s.activityRepo.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	caps := make(map[uint64]int)
	names := make(map[uint64]*model.Activity, len(activities))
	for _, a := range activities {
		names[a.ID] = a
		if a.DailyCap != nil {
			caps[a.ID] = *a.DailyCap
		}
	}

	breakdown := make([]ActivityBreakdown, 0)
	for _, t := range SumByUserActivity(records, caps) {
		if t.UserID != userID {
			continue
		}
		item := ActivityBreakdown{ActivityID: t.ActivityID, TotalPoints: t.Total}
		if a, ok := names[t.ActivityID]; ok {
			item.ActivityKey = a.ActivityKey
			item.ActivityName = a.Name
		}
		breakdown = append(breakdown, item)
	}
	return breakdown, nil
}

// UserAllTimeTotal 个人累计总分，徽章评估用
func (s *leaderboardServiceImpl) UserAllTimeTotal(ctx context.Context, userID uint64) (int, error) {
	records, err := s.activityRecordRepo.ListByUserAndRange(ctx, userID, time.Time{}, period.Midnight(time.Now()))
	if err != nil {
		return 0, err
	}
	caps, err := s.dailyCaps(ctx)
	if err != nil {
		return 0, err
	}
	return TotalOf(SumByUser(records, caps), userID), nil
}

// AggregateWeek 周区间的每用户合计，查库失败返回空结果和错误，不返回残缺数据
func (s *leaderboardServiceImpl) AggregateWeek(ctx context.Context, week period.Week) ([]UserTotal, error) {
	records, err := s.activityRecordRepo.ListByRange(ctx, week.Start, week.End)
	if err != nil {
		return nil, err
	}
	caps, err := s.dailyCaps(ctx)
	if err != nil {
		return nil, err
	}
	return SumByUser(records, caps), nil
}

// SnapshotWeek 把某周榜单定格落库，返回写入的条目
func (s *leaderboardServiceImpl) SnapshotWeek(ctx context.Context, weekLabel string, limit int) ([]LeaderboardEntry, error) {
	week, err := resolveWeek(weekLabel)
	if err != nil {
		return nil, err
	}

	totals, err := s.AggregateWeek(ctx, week)
	if err != nil {
		return nil, err
	}
	entries, err := s.rankWithProfiles(ctx, totals, limit)
	if err != nil {
		return nil, err
	}

	snapshots := make([]*model.LeaderboardSnapshot, 0, len(entries))
	for _, e := range entries {
		snapshots = append(snapshots, &model.LeaderboardSnapshot{
			WeekLabel:    week.Label,
			UserID:       e.UserID,
			TotalPoints:  e.TotalPoints,
			RankPosition: e.RankPosition,
		})
	}
	if err := s.snapshotRepo.SaveBatch(ctx, snapshots); err != nil {
		return nil, err
	}
	return entries, nil
}

// HistoricalLeaderboard 读已定格的周快照，不重算，周标签必填
func (s *leaderboardServiceImpl) HistoricalLeaderboard(ctx context.Context, weekLabel string, limit int) ([]LeaderboardEntry, error) {
	if _, err := period.FromLabel(weekLabel); err != nil {
		return nil, ErrWeekLabelInvalid
	}
	limit = s.clampLimit(limit)

	snapshots, err := s.snapshotRepo.ListByWeek(ctx, weekLabel, limit)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(snapshots))
	for _, snap := range snapshots {
		userIDs = append(userIDs, snap.UserID)
	}
	profiles, err := s.loadProfiles(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(snapshots))
	for _, snap := range snapshots {
		entry := LeaderboardEntry{
			UserID:       snap.UserID,
			DisplayName:  consts.UnknownDisplayName,
			Username:     consts.UnknownUsername,
			TotalPoints:  snap.TotalPoints,
			RankPosition: snap.RankPosition,
		}
		if p, ok := profiles[snap.UserID]; ok {
			if p.DisplayName != "" {
				entry.DisplayName = p.DisplayName
			}
			if p.Username != "" {
				entry.Username = p.Username
			}
			entry.AvatarURL = p.AvatarURL
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// cachedLeaderboard 缓存优先，未命中时用 singleflight 合并并发重算
func (s *leaderboardServiceImpl) cachedLeaderboard(ctx context.Context, key string, build func() ([]LeaderboardEntry, error)) ([]LeaderboardEntry, error) {
	cached, err := redis.GetValue(ctx, key)
	if err != nil {
		return nil, err
	}
	if cached != "" {
		var entries []LeaderboardEntry
		if err := json.Unmarshal([]byte(cached), &entries); err == nil {
			return entries, nil
		}
		log.WarnContext(ctx, "排行榜缓存反序列化失败，回源重算", "key", key)
	}

	result, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		entries, err := build()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(entries)
		if err == nil {
			_ = redis.SetWithExpiration(ctx, key, string(data), s.cacheTTL())
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]LeaderboardEntry), nil
}

func (s *leaderboardServiceImpl) cacheTTL() time.Duration {
	ttl := config.Cfg.Leaderboard.CacheTTL
	if ttl <= 0 {
		ttl = 60
	}
	return time.Duration(ttl) * time.Second
}

// dailyCaps 活动ID -> 日上限，没配上限的活动不进映射
func (s *leaderboardServiceImpl) dailyCaps(ctx context.Context) (map[uint64]int, error) {
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

func (s *leaderboardServiceImpl) rankWithProfiles(ctx context.Context, totals []UserTotal, limit int) ([]LeaderboardEntry, error) {
	userIDs := make([]uint64, 0, len(totals))
	for _, t := range totals {
		if t.Total > 0 {
			userIDs = append(userIDs, t.UserID)
		}
	}
	profiles, err := s.loadProfiles(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	return RankTop(totals, limit, profiles), nil
}

// loadProfiles 资料查不到不算错，Rank 环节会用兜底文案
func (s *leaderboardServiceImpl) loadProfiles(ctx context.Context, userIDs []uint64) (map[uint64]ProfileInfo, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	users, err := s.userRepo.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	profiles := make(map[uint64]ProfileInfo, len(users))
	for _, u := range users {
		info := ProfileInfo{
			DisplayName: u.Profile.DisplayName,
			AvatarURL:   u.Profile.AvatarURL,
		}
		if u.Username != nil {
			info.Username = *u.Username
		}
		profiles[u.ID] = info
	}
	return profiles, nil
}

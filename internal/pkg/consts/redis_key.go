package consts

const (
	UserSimpleInfoKey      = "user:simple:info:"
	LeaderboardWeeklyKey   = "leaderboard:weekly:"
	LeaderboardAllTimeKey  = "leaderboard:alltime"
	LeaderboardDirtyKey    = "leaderboard:dirty"
	UserWeeklyTotalKey     = "user:weekly:total:"
	UserStreakKey          = "user:streak:"
	InstituteSummaryKey    = "institute:summary:"
	NotificationUnreadKey  = "notification:unread:"
)

const (
	ActivityAwardLock = "lock:activity:award:"
	GrowthCursorLock  = "lock:growth:cursor:"
	SnapshotJobLock   = "lock:job:snapshot"
)

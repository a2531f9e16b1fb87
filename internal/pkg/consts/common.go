package consts

const (
	RoleUser           = "USER"
	RoleInstituteAdmin = "INSTITUTE_ADMIN"
	RoleAdmin          = "ADMIN"
)

const (
	DefaultAvatarURL = "default_avatar.png"

	// UnknownDisplayName 资料缺失时排行榜条目的兜底展示名
	UnknownDisplayName = "Unknown User"
	UnknownUsername    = "unknown"

	// StreakLookbackDays 连续打卡最多往回数的天数
	StreakLookbackDays = 90
)

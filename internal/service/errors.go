package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserBan                 = errors.New("用户已被封禁")
	ErrUserExist               = errors.New("用户已存在")
	ErrUserEmailExist          = errors.New("邮箱已注册")
	ErrUserUsernameExist       = errors.New("用户名已存在")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrActivityNotFound        = errors.New("活动不存在")
	ErrActivityDisabled        = errors.New("活动未启用")
	ErrActivityKindMismatch    = errors.New("活动类型不匹配")
	ErrTaskNotFound            = errors.New("任务不存在")
	ErrTaskInactive            = errors.New("任务已下架")
	ErrSubmissionNotFound      = errors.New("提交记录不存在")
	ErrSubmissionReviewed      = errors.New("提交已核验过")
	ErrBadgeNotFound           = errors.New("徽章不存在")
	ErrInstituteNotFound       = errors.New("机构不存在")
	ErrInstituteCodeInvalid    = errors.New("机构邀请码无效")
	ErrWeekLabelInvalid        = errors.New("周标签格式错误")
	ErrNotificationNotFound    = errors.New("通知不存在")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserBan:                 Unauthorized,
	ErrUserExist:               BadRequest,
	ErrUserEmailExist:          BadRequest,
	ErrUserUsernameExist:       BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrActivityNotFound:        NotFound,
	ErrActivityDisabled:        BadRequest,
	ErrActivityKindMismatch:    BadRequest,
	ErrTaskNotFound:            NotFound,
	ErrTaskInactive:            BadRequest,
	ErrSubmissionNotFound:      NotFound,
	ErrSubmissionReviewed:      BadRequest,
	ErrBadgeNotFound:           NotFound,
	ErrInstituteNotFound:       NotFound,
	ErrInstituteCodeInvalid:    BadRequest,
	ErrWeekLabelInvalid:        BadRequest,
	ErrNotificationNotFound:    NotFound,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}

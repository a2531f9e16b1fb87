package dto

// CredentialDTO 登录凭据，用户名或邮箱二选一
type CredentialDTO struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password string  `json:"password" validate:"required"`
}

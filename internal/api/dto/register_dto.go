package dto

type RegisterDTO struct {
	Username    string  `json:"username" validate:"required,min=3,max=50"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Password    string  `json:"password" validate:"required,min=8,max=72"`
	DisplayName string  `json:"display_name" validate:"required,min=1,max=50"`
}

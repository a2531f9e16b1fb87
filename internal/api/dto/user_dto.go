package dto

import "time"

type UserDTO struct {
	UserID      *uint64    `json:"user_id,omitempty"`
	Username    *string    `json:"username,omitempty"`
	Email       *string    `json:"email,omitempty"`
	DisplayName *string    `json:"display_name,omitempty" validate:"omitempty,min=1,max=50"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	Headline    *string    `json:"headline,omitempty" validate:"omitempty,max=100"`
	Bio         *string    `json:"bio,omitempty" validate:"omitempty,max=500"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

package dto

type CreateInstituteDTO struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Code string `json:"code" validate:"required,min=4,max=50"`
}

type JoinInstituteDTO struct {
	Code string `json:"code" validate:"required"`
}

type InstituteDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

package repository

import (
	"Ladder/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InstituteRepo interface {
	Create(ctx context.Context, institute *model.Institute) error
	GetByID(ctx context.Context, id uint64) (*model.Institute, error)
	GetByCode(ctx context.Context, code string) (*model.Institute, error)
	AddMember(ctx context.Context, instituteID, userID uint64) error
	ListMemberIDs(ctx context.Context, instituteID uint64) ([]uint64, error)
	GetInstituteIDByUserID(ctx context.Context, userID uint64) (uint64, error)
}

type instituteRepoImpl struct {
	db *gorm.DB
}

func NewInstituteRepo(db *gorm.DB) InstituteRepo {
	return &instituteRepoImpl{db: db}
}

func (r *instituteRepoImpl) Create(ctx context.Context, institute *model.Institute) error {
	return r.db.WithContext(ctx).Create(institute).Error
}

func (r *instituteRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Institute, error) {
	var institute model.Institute
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&institute).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &institute, nil
}

func (r *instituteRepoImpl) GetByCode(ctx context.Context, code string) (*model.Institute, error) {
	var institute model.Institute
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&institute).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &institute, nil
}

func (r *instituteRepoImpl) AddMember(ctx context.Context, instituteID, userID uint64) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.InstituteMember{InstituteID: instituteID, UserID: userID}).Error
}

func (r *instituteRepoImpl) ListMemberIDs(ctx context.Context, instituteID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := r.db.WithContext(ctx).
		Model(&model.InstituteMember{}).
		Where("institute_id = ?", instituteID).
		Order("id ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetInstituteIDByUserID 用户未加入任何机构时返回 0
func (r *instituteRepoImpl) GetInstituteIDByUserID(ctx context.Context, userID uint64) (uint64, error) {
	var member model.InstituteMember
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return member.InstituteID, nil
}

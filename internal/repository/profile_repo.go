package repository

import (
	"context"
	"errors"

	"autocatalog/internal/entity"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByCPF(ctx context.Context, cpf string) (*entity.Profile, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*entity.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByCPF(ctx context.Context, cpf string) (*entity.Profile, error) {
	return r.findByField(ctx, "cpf", cpf)
}

func (r *profileRepository) FindByCNPJ(ctx context.Context, cnpj string) (*entity.Profile, error) {
	return r.findByField(ctx, "cnpj", cnpj)
}

func (r *profileRepository) findByField(ctx context.Context, column, value string) (*entity.Profile, error) {
	var profile entity.Profile
	err := r.db.WithContext(ctx).
		Where(column+" = ?", value).
		First(&profile).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

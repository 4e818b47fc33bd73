package repository

import (
	"context"
	"errors"

	"autocatalog/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SellerRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Seller, error)
}

type sellerRepository struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Seller, error) {
	var seller entity.Seller
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&seller).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

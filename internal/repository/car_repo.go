package repository

import (
	"context"
	"errors"

	"autocatalog/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrAvailableLimitReached is returned by CreateWithQuota when the creator
// already owns the maximum number of AVAILABLE cars.
var ErrAvailableLimitReached = errors.New("available listing limit reached")

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	// CreateWithQuota inserts the car only if the creator currently owns fewer
	// than maxAvailable cars with status AVAILABLE. The count and the insert run
	// in one transaction holding a row lock on the creator's user row, so two
	// concurrent creates by the same actor serialize instead of both passing
	// the count check.
	CreateWithQuota(ctx context.Context, car *entity.Car, maxAvailable int64) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error)
	Update(ctx context.Context, car *entity.Car) error
	ListAvailable(ctx context.Context) ([]entity.Car, error)
}

type carRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *entity.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *carRepository) CreateWithQuota(ctx context.Context, car *entity.Car, maxAvailable int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner entity.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", car.CreatedByID).
			First(&owner).Error; err != nil {
			return err
		}

		var count int64
		err := tx.Model(&entity.Car{}).
			Where("created_by_id = ? AND status = ?", car.CreatedByID, entity.CarStatusAvailable).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count >= maxAvailable {
			return ErrAvailableLimitReached
		}

		return tx.Create(car).Error
	})
}

func (r *carRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	var car entity.Car
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("id = ?", id).
		First(&car).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) Update(ctx context.Context, car *entity.Car) error {
	return r.db.WithContext(ctx).Save(car).Error
}

func (r *carRepository) ListAvailable(ctx context.Context) ([]entity.Car, error) {
	var cars []entity.Car
	err := r.db.WithContext(ctx).
		Where("status = ?", entity.CarStatusAvailable).
		Order("created_at DESC").
		Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

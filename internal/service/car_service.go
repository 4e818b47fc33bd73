package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"autocatalog/internal/dto"
	"autocatalog/internal/entity"
	"autocatalog/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IndividualSellerQuota is the maximum number of simultaneously AVAILABLE
// listings an individual seller may own.
const IndividualSellerQuota = 2

type CarService struct {
	cars     repository.CarRepository
	sellers  repository.SellerRepository
	stores   repository.StoreRepository
	authz    *AuthorizationService
	validate *validator.Validate
	clock    Clock
}

func NewCarService(
	cars repository.CarRepository,
	sellers repository.SellerRepository,
	stores repository.StoreRepository,
	authz *AuthorizationService,
	validate *validator.Validate,
	clock Clock,
) *CarService {
	return &CarService{
		cars:     cars,
		sellers:  sellers,
		stores:   stores,
		authz:    authz,
		validate: validate,
		clock:    clock,
	}
}

// Create persists a new AVAILABLE listing owned by the actor. Store owners and
// affiliated sellers publish into their store's inventory; individual sellers
// are subject to the active-listing quota. The role gate runs before payload
// validation, so an actor who may not publish at all sees forbidden, not a
// schema complaint.
func (s *CarService) Create(ctx context.Context, claims SessionClaims, input dto.CarRequest) (*entity.Car, error) {
	switch claims.Role {
	case entity.RoleAdmin, entity.RoleStore, entity.RoleSeller, entity.RoleIndividualSeller:
	default:
		return nil, ErrForbidden
	}

	if err := s.validatePayload(input); err != nil {
		return nil, err
	}

	car, err := carFromRequest(input)
	if err != nil {
		return nil, err
	}
	car.CreatedByID = claims.UserID
	car.Status = entity.CarStatusAvailable

	switch claims.Role {
	case entity.RoleStore:
		store, err := s.stores.FindByUserID(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		if store != nil {
			car.StoreID = &store.ID
		}
	case entity.RoleSeller:
		seller, err := s.sellers.FindByUserID(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		if seller != nil {
			storeID := seller.StoreID
			car.StoreID = &storeID
		}
	}

	if claims.Role == entity.RoleIndividualSeller {
		err := s.cars.CreateWithQuota(ctx, car, IndividualSellerQuota)
		if errors.Is(err, repository.ErrAvailableLimitReached) {
			return nil, ErrQuotaExceeded
		}
		if err != nil {
			return nil, err
		}
		return car, nil
	}

	if err := s.cars.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// Update replaces the editable fields of an existing listing. The car must
// exist before any permission check runs, and the payload is validated only
// after both; ownership, status, and store attribution are never changed here.
func (s *CarService) Update(ctx context.Context, claims SessionClaims, carID uuid.UUID, input dto.CarRequest) (*entity.Car, error) {
	car, err := s.cars.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, ErrNotFound
	}

	allowed, err := s.authz.CanEditCar(ctx, claims, car)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrForbidden
	}

	if err := s.validatePayload(input); err != nil {
		return nil, err
	}
	if err := applyRequest(car, input); err != nil {
		return nil, err
	}

	if err := s.cars.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *CarService) Get(ctx context.Context, carID uuid.UUID) (*entity.Car, error) {
	car, err := s.cars.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, ErrNotFound
	}
	return car, nil
}

func (s *CarService) ListAvailable(ctx context.Context) ([]entity.Car, error) {
	return s.cars.ListAvailable(ctx)
}

// validatePayload checks the listing payload. It runs only after the actor has
// cleared the role or permission gate, so a missing car or a forbidden actor
// wins over a malformed body.
func (s *CarService) validatePayload(input dto.CarRequest) error {
	if s.validate != nil {
		if err := s.validate.Struct(input); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
	}
	return s.checkYear(input.Year)
}

// The year upper bound depends on the current date, which struct tags cannot
// express; next year's models are allowed.
func (s *CarService) checkYear(year int) error {
	now := time.Now()
	if s.clock != nil {
		now = s.clock.Now()
	}
	if year < 1900 || year > now.Year()+1 {
		return &FieldError{Field: "year", Message: "year out of range"}
	}
	return nil
}

func carFromRequest(input dto.CarRequest) (*entity.Car, error) {
	car := &entity.Car{}
	if err := applyRequest(car, input); err != nil {
		return nil, err
	}
	return car, nil
}

func applyRequest(car *entity.Car, input dto.CarRequest) error {
	images, err := json.Marshal(input.Images)
	if err != nil {
		return err
	}

	car.Model = input.Model
	car.Brand = input.Brand
	car.Year = input.Year
	car.Version = input.Version
	car.Color = input.Color
	car.Mileage = input.Mileage
	car.Price = input.Price

	car.FuelType = entity.FuelType(input.FuelType)
	car.Transmission = entity.Transmission(input.Transmission)
	car.Doors = input.Doors
	car.PlateStart = input.PlateStart
	car.Engine = input.Engine
	car.EnginePower = input.EnginePower
	car.Direction = entity.DirectionType(input.Direction)
	car.DriveType = entity.DriveType(input.DriveType)
	car.Roof = entity.RoofType(input.Roof)

	car.AirConditioning = input.AirConditioning
	car.ElectricWindows = input.ElectricWindows
	car.LeatherSeats = input.LeatherSeats
	car.MediaCenter = input.MediaCenter
	car.ReverseCamera = input.ReverseCamera
	car.ParkingSensor = input.ParkingSensor
	car.Alarm = input.Alarm
	car.ABSBrakes = input.ABSBrakes
	car.OwnerManual = input.OwnerManual
	car.BackupKey = input.BackupKey
	car.LicensingUpToDate = input.LicensingUpToDate

	car.Airbags = input.Airbags
	car.OwnersCount = input.OwnersCount

	car.Wheels = input.Wheels
	car.Tires = input.Tires
	car.Suspension = input.Suspension
	car.PaintCondition = input.PaintCondition
	car.CollisionHistory = input.CollisionHistory
	car.DocumentSituation = input.DocumentSituation

	car.Images = datatypes.JSON(images)
	return nil
}

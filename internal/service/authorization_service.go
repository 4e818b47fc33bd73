package service

import (
	"context"

	"autocatalog/internal/entity"
	"autocatalog/internal/repository"
)

// AuthorizationService decides whether an actor may mutate a listing. It only
// reads; the caller turns a false result into a forbidden response.
type AuthorizationService struct {
	sellers repository.SellerRepository
	stores  repository.StoreRepository
}

func NewAuthorizationService(sellers repository.SellerRepository, stores repository.StoreRepository) *AuthorizationService {
	return &AuthorizationService{sellers: sellers, stores: stores}
}

// CanEditCar evaluates an ordered rule list, stopping at the first match:
//  1. the actor created the car
//  2. the actor is an admin
//  3. the actor is a seller affiliated to the car's store
//  4. the actor owns the car's store
//
// The first two rules need no lookup, so they run first.
func (s *AuthorizationService) CanEditCar(ctx context.Context, claims SessionClaims, car *entity.Car) (bool, error) {
	if car.CreatedByID == claims.UserID {
		return true, nil
	}
	if claims.Role == entity.RoleAdmin {
		return true, nil
	}
	if car.StoreID == nil {
		return false, nil
	}

	switch claims.Role {
	case entity.RoleSeller:
		seller, err := s.sellers.FindByUserID(ctx, claims.UserID)
		if err != nil {
			return false, err
		}
		return seller != nil && seller.StoreID == *car.StoreID, nil
	case entity.RoleStore:
		store, err := s.stores.FindByUserID(ctx, claims.UserID)
		if err != nil {
			return false, err
		}
		return store != nil && store.ID == *car.StoreID, nil
	}
	return false, nil
}

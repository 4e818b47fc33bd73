package repository

import (
	"context"

	"gorm.io/gorm"
)

// RegistrationStores bundles the repositories a registration transaction
// writes through. Inside RunInTx every repository is bound to the same
// database transaction.
type RegistrationStores struct {
	Users    UserRepository
	Profiles ProfileRepository
	Stores   StoreRepository
}

// RegistrationTx runs fn as one atomic unit: either every write fn performs
// is committed, or none is.
type RegistrationTx interface {
	RunInTx(ctx context.Context, fn func(stores RegistrationStores) error) error
}

type gormRegistrationTx struct {
	db *gorm.DB
}

func NewRegistrationTx(db *gorm.DB) RegistrationTx {
	return &gormRegistrationTx{db: db}
}

func (t *gormRegistrationTx) RunInTx(ctx context.Context, fn func(stores RegistrationStores) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(RegistrationStores{
			Users:    NewUserRepository(tx),
			Profiles: NewProfileRepository(tx),
			Stores:   NewStoreRepository(tx),
		})
	})
}

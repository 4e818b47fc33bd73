package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"autocatalog/internal/entity"
	"autocatalog/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		copied := user
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context, limit, offset int) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]entity.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	if offset > 0 {
		if offset >= len(users) {
			return nil, nil
		}
		users = users[offset:]
	}
	if limit > 0 && limit < len(users) {
		users = users[:limit]
	}
	return users, nil
}

func (f *fakeUserRepo) snapshot() map[uuid.UUID]entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := make(map[uuid.UUID]entity.User, len(f.users))
	for id, user := range f.users {
		snap[id] = user
	}
	return snap
}

func (f *fakeUserRepo) restore(snap map[uuid.UUID]entity.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = snap
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]entity.Profile)}
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.profiles[profile.ID] = *profile
	return nil
}

func (f *fakeProfileRepo) FindByCPF(_ context.Context, cpf string) (*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, profile := range f.profiles {
		if profile.CPF != nil && *profile.CPF == cpf {
			copied := profile
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) FindByCNPJ(_ context.Context, cnpj string) (*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, profile := range f.profiles {
		if profile.CNPJ != nil && *profile.CNPJ == cnpj {
			copied := profile
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) snapshot() map[uuid.UUID]entity.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := make(map[uuid.UUID]entity.Profile, len(f.profiles))
	for id, profile := range f.profiles {
		snap[id] = profile
	}
	return snap
}

func (f *fakeProfileRepo) restore(snap map[uuid.UUID]entity.Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles = snap
}

type fakeStoreRepo struct {
	mu         sync.Mutex
	stores     map[uuid.UUID]entity.Store
	failCreate error
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: make(map[uuid.UUID]entity.Store)}
}

func (f *fakeStoreRepo) Create(_ context.Context, store *entity.Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return f.failCreate
	}
	if store.ID == uuid.Nil {
		store.ID = uuid.New()
	}
	f.stores[store.ID] = *store
	return nil
}

func (f *fakeStoreRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, store := range f.stores {
		if store.UserID == userID {
			copied := store
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) snapshot() map[uuid.UUID]entity.Store {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := make(map[uuid.UUID]entity.Store, len(f.stores))
	for id, store := range f.stores {
		snap[id] = store
	}
	return snap
}

func (f *fakeStoreRepo) restore(snap map[uuid.UUID]entity.Store) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stores = snap
}

type fakeSellerRepo struct {
	mu        sync.Mutex
	byUser    map[uuid.UUID]entity.Seller
	findCalls int
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{byUser: make(map[uuid.UUID]entity.Seller)}
}

func (f *fakeSellerRepo) add(userID, storeID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byUser[userID] = entity.Seller{ID: uuid.New(), UserID: userID, StoreID: storeID}
}

func (f *fakeSellerRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Seller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	if seller, ok := f.byUser[userID]; ok {
		copied := seller
		return &copied, nil
	}
	return nil, nil
}

type fakeCarRepo struct {
	mu   sync.Mutex
	cars map[uuid.UUID]entity.Car
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{cars: make(map[uuid.UUID]entity.Car)}
}

func (f *fakeCarRepo) Create(_ context.Context, car *entity.Car) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insert(car)
	return nil
}

func (f *fakeCarRepo) CreateWithQuota(_ context.Context, car *entity.Car, maxAvailable int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, existing := range f.cars {
		if existing.CreatedByID == car.CreatedByID && existing.Status == entity.CarStatusAvailable {
			count++
		}
	}
	if count >= maxAvailable {
		return repository.ErrAvailableLimitReached
	}
	f.insert(car)
	return nil
}

func (f *fakeCarRepo) insert(car *entity.Car) {
	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}
	now := time.Now()
	car.CreatedAt = now
	car.UpdatedAt = now
	f.cars[car.ID] = *car
}

func (f *fakeCarRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if car, ok := f.cars[id]; ok {
		copied := car
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeCarRepo) Update(_ context.Context, car *entity.Car) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	car.UpdatedAt = time.Now()
	f.cars[car.ID] = *car
	return nil
}

func (f *fakeCarRepo) ListAvailable(_ context.Context) ([]entity.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cars []entity.Car
	for _, car := range f.cars {
		if car.Status == entity.CarStatusAvailable {
			cars = append(cars, car)
		}
	}
	sort.Slice(cars, func(i, j int) bool {
		return cars[i].CreatedAt.After(cars[j].CreatedAt)
	})
	return cars, nil
}

func (f *fakeCarRepo) availableCountFor(userID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, car := range f.cars {
		if car.CreatedByID == userID && car.Status == entity.CarStatusAvailable {
			count++
		}
	}
	return count
}

// fakeRegistrationTx snapshots the backing fakes before running fn and
// restores them if fn fails, mimicking a rolled back transaction.
type fakeRegistrationTx struct {
	users    *fakeUserRepo
	profiles *fakeProfileRepo
	stores   *fakeStoreRepo
}

func (t *fakeRegistrationTx) RunInTx(_ context.Context, fn func(stores repository.RegistrationStores) error) error {
	userSnap := t.users.snapshot()
	profileSnap := t.profiles.snapshot()
	storeSnap := t.stores.snapshot()

	err := fn(repository.RegistrationStores{
		Users:    t.users,
		Profiles: t.profiles,
		Stores:   t.stores,
	})
	if err != nil {
		t.users.restore(userSnap)
		t.profiles.restore(profileSnap)
		t.stores.restore(storeSnap)
	}
	return err
}

type fakeAuditLogRepo struct {
	mu   sync.Mutex
	logs []entity.AuditLog
}

func (f *fakeAuditLogRepo) Log(_ context.Context, log *entity.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, *log)
	return nil
}

type staticTokenIssuer struct{}

func (staticTokenIssuer) Issue(userID uuid.UUID, role entity.Role) (string, time.Duration, error) {
	return "token-" + userID.String() + "-" + string(role), 24 * time.Hour, nil
}

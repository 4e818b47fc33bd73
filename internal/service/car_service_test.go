package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"autocatalog/internal/dto"
	"autocatalog/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func carRequest() dto.CarRequest {
	return dto.CarRequest{
		Model:   "Corolla",
		Brand:   "Toyota",
		Year:    2022,
		Version: "XEi 2.0",
		Color:   "Prata",
		Mileage: 35000,
		Price:   112900,

		FuelType:     "FLEX",
		Transmission: "AUTOMATIC",
		Doors:        4,
		PlateStart:   "ABC",
		Engine:       "2.0 16V",
		EnginePower:  "177cv",
		Direction:    "ELECTRIC",
		DriveType:    "FWD",
		Roof:         "NONE",

		AirConditioning:   true,
		ElectricWindows:   true,
		MediaCenter:       true,
		ReverseCamera:     true,
		Alarm:             true,
		ABSBrakes:         true,
		LicensingUpToDate: true,

		Airbags:     4,
		OwnersCount: 1,

		Wheels:            "Liga leve 17",
		Tires:             "Novos",
		Suspension:        "Original",
		PaintCondition:    "Boa",
		CollisionHistory:  "Nenhum",
		DocumentSituation: "Regular",

		Images: []string{"https://cdn.example.com/cars/corolla-1.jpg"},
	}
}

type carFixture struct {
	svc     *CarService
	cars    *fakeCarRepo
	sellers *fakeSellerRepo
	stores  *fakeStoreRepo
}

func newCarFixture() carFixture {
	cars := newFakeCarRepo()
	sellers := newFakeSellerRepo()
	stores := newFakeStoreRepo()
	authz := NewAuthorizationService(sellers, stores)
	clock := fixedClock{now: time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)}
	return carFixture{
		svc:     NewCarService(cars, sellers, stores, authz, validator.New(), clock),
		cars:    cars,
		sellers: sellers,
		stores:  stores,
	}
}

func TestCreateCarForbiddenForBuyers(t *testing.T) {
	f := newCarFixture()

	claims := SessionClaims{UserID: uuid.New(), Role: entity.RoleBuyer}
	_, err := f.svc.Create(context.Background(), claims, carRequest())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateCarYearBounds(t *testing.T) {
	f := newCarFixture()
	claims := SessionClaims{UserID: uuid.New(), Role: entity.RoleAdmin}

	for _, year := range []int{1899, 2025} {
		req := carRequest()
		req.Year = year
		_, err := f.svc.Create(context.Background(), claims, req)
		var fieldErr *FieldError
		if !errors.As(err, &fieldErr) || fieldErr.Field != "year" {
			t.Fatalf("year %d: expected year FieldError, got %v", year, err)
		}
	}

	// next year's models are fine
	req := carRequest()
	req.Year = 2024
	if _, err := f.svc.Create(context.Background(), claims, req); err != nil {
		t.Fatalf("year 2024 should be accepted: %v", err)
	}
}

func TestCreateCarRoundTrip(t *testing.T) {
	f := newCarFixture()
	actorID := uuid.New()
	claims := SessionClaims{UserID: actorID, Role: entity.RoleIndividualSeller}

	created, err := f.svc.Create(context.Background(), claims, carRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	fetched, err := f.svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched.Status != entity.CarStatusAvailable {
		t.Fatalf("new cars must be AVAILABLE, got %s", fetched.Status)
	}
	if fetched.CreatedByID != actorID {
		t.Fatalf("car must be owned by the actor")
	}
	if fetched.Model != "Corolla" || fetched.Brand != "Toyota" || fetched.Price != 112900 {
		t.Fatalf("fetched car does not match submitted payload: %+v", fetched)
	}
	if fetched.FuelType != entity.FuelFlex || fetched.Transmission != entity.TransmissionAutomatic {
		t.Fatalf("enum fields not preserved")
	}

	response, err := dto.CarResponseFromEntity(fetched)
	if err != nil {
		t.Fatalf("response conversion failed: %v", err)
	}
	if len(response.Images) != 1 || response.Images[0] != "https://cdn.example.com/cars/corolla-1.jpg" {
		t.Fatalf("images not preserved: %+v", response.Images)
	}
}

func TestCreateCarQuotaForIndividualSellers(t *testing.T) {
	f := newCarFixture()
	actorID := uuid.New()
	claims := SessionClaims{UserID: actorID, Role: entity.RoleIndividualSeller}

	if _, err := f.svc.Create(context.Background(), claims, carRequest()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := f.svc.Create(context.Background(), claims, carRequest()); err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	_, err := f.svc.Create(context.Background(), claims, carRequest())
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded at the third listing, got %v", err)
	}
	if got := f.cars.availableCountFor(actorID); got != 2 {
		t.Fatalf("expected 2 available cars, got %d", got)
	}
}

func TestCreateCarQuotaIgnoresSoldListings(t *testing.T) {
	f := newCarFixture()
	actorID := uuid.New()
	claims := SessionClaims{UserID: actorID, Role: entity.RoleIndividualSeller}

	first, err := f.svc.Create(context.Background(), claims, carRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := f.svc.Create(context.Background(), claims, carRequest()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// a sold listing frees quota
	sold, _ := f.cars.FindByID(context.Background(), first.ID)
	sold.Status = entity.CarStatusSold
	_ = f.cars.Update(context.Background(), sold)

	if _, err := f.svc.Create(context.Background(), claims, carRequest()); err != nil {
		t.Fatalf("create after sale should succeed: %v", err)
	}
}

func TestCreateCarQuotaUnderConcurrency(t *testing.T) {
	f := newCarFixture()
	actorID := uuid.New()
	claims := SessionClaims{UserID: actorID, Role: entity.RoleIndividualSeller}

	if _, err := f.svc.Create(context.Background(), claims, carRequest()); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.svc.Create(context.Background(), claims, carRequest())
		}()
	}
	wg.Wait()

	if got := f.cars.availableCountFor(actorID); got > 2 {
		t.Fatalf("quota breached under concurrency: %d available cars", got)
	}
}

func TestCreateCarNoQuotaForOtherRoles(t *testing.T) {
	f := newCarFixture()
	storeOwnerID := uuid.New()
	storeID := uuid.New()
	f.stores.stores[storeID] = entity.Store{ID: storeID, UserID: storeOwnerID}
	claims := SessionClaims{UserID: storeOwnerID, Role: entity.RoleStore}

	for i := 0; i < 5; i++ {
		if _, err := f.svc.Create(context.Background(), claims, carRequest()); err != nil {
			t.Fatalf("store create %d failed: %v", i, err)
		}
	}
}

func TestCreateCarStampsStoreAttribution(t *testing.T) {
	f := newCarFixture()
	storeOwnerID := uuid.New()
	storeID := uuid.New()
	f.stores.stores[storeID] = entity.Store{ID: storeID, UserID: storeOwnerID}

	sellerID := uuid.New()
	f.sellers.add(sellerID, storeID)

	ownerCar, err := f.svc.Create(context.Background(), SessionClaims{UserID: storeOwnerID, Role: entity.RoleStore}, carRequest())
	if err != nil {
		t.Fatalf("owner create failed: %v", err)
	}
	if ownerCar.StoreID == nil || *ownerCar.StoreID != storeID {
		t.Fatalf("store owner's car must carry the store id")
	}

	sellerCar, err := f.svc.Create(context.Background(), SessionClaims{UserID: sellerID, Role: entity.RoleSeller}, carRequest())
	if err != nil {
		t.Fatalf("seller create failed: %v", err)
	}
	if sellerCar.StoreID == nil || *sellerCar.StoreID != storeID {
		t.Fatalf("seller's car must carry the affiliated store id")
	}
}

func TestUpdateCarNotFoundBeforeAuthorization(t *testing.T) {
	f := newCarFixture()
	claims := SessionClaims{UserID: uuid.New(), Role: entity.RoleSeller}

	_, err := f.svc.Update(context.Background(), claims, uuid.New(), carRequest())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if f.sellers.findCalls != 0 {
		t.Fatalf("authorization lookups must not run for a missing car")
	}
}

func TestUpdateCarForbiddenForStrangers(t *testing.T) {
	f := newCarFixture()

	car, err := f.svc.Create(context.Background(), SessionClaims{UserID: uuid.New(), Role: entity.RoleIndividualSeller}, carRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = f.svc.Update(context.Background(), SessionClaims{UserID: uuid.New(), Role: entity.RoleBuyer}, car.ID, carRequest())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateCarRejectsInvalidPayload(t *testing.T) {
	f := newCarFixture()
	claims := SessionClaims{UserID: uuid.New(), Role: entity.RoleAdmin}

	req := carRequest()
	req.Model = ""
	_, err := f.svc.Create(context.Background(), claims, req)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// the role gate runs first: a buyer with the same broken payload is forbidden
	_, err = f.svc.Create(context.Background(), SessionClaims{UserID: uuid.New(), Role: entity.RoleBuyer}, req)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for buyers, got %v", err)
	}
}

func TestUpdateCarMissingWinsOverInvalidPayload(t *testing.T) {
	f := newCarFixture()
	claims := SessionClaims{UserID: uuid.New(), Role: entity.RoleAdmin}

	req := carRequest()
	req.Model = ""
	_, err := f.svc.Update(context.Background(), claims, uuid.New(), req)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCarForbiddenWinsOverInvalidPayload(t *testing.T) {
	f := newCarFixture()

	car, err := f.svc.Create(context.Background(), SessionClaims{UserID: uuid.New(), Role: entity.RoleIndividualSeller}, carRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	req := carRequest()
	req.Model = ""
	_, err = f.svc.Update(context.Background(), SessionClaims{UserID: uuid.New(), Role: entity.RoleSeller}, car.ID, req)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// once the actor is permitted the broken payload is what fails
	_, err = f.svc.Update(context.Background(), SessionClaims{UserID: car.CreatedByID, Role: entity.RoleIndividualSeller}, car.ID, req)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for the owner, got %v", err)
	}
}

func TestUpdateCarReplacesEditableFieldsOnly(t *testing.T) {
	f := newCarFixture()
	actorID := uuid.New()
	claims := SessionClaims{UserID: actorID, Role: entity.RoleIndividualSeller}

	car, err := f.svc.Create(context.Background(), claims, carRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	req := carRequest()
	req.Price = 99900
	req.Color = "Preto"
	updated, err := f.svc.Update(context.Background(), claims, car.ID, req)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price != 99900 || updated.Color != "Preto" {
		t.Fatalf("editable fields not replaced: %+v", updated)
	}
	if updated.CreatedByID != actorID {
		t.Fatalf("update must not change ownership")
	}
	if updated.Status != entity.CarStatusAvailable {
		t.Fatalf("update must not change status")
	}
}

func TestListAvailableOrdersNewestFirst(t *testing.T) {
	f := newCarFixture()
	claims := SessionClaims{UserID: uuid.New(), Role: entity.RoleAdmin}

	first, _ := f.svc.Create(context.Background(), claims, carRequest())
	time.Sleep(2 * time.Millisecond)
	second, _ := f.svc.Create(context.Background(), claims, carRequest())
	time.Sleep(2 * time.Millisecond)
	third, _ := f.svc.Create(context.Background(), claims, carRequest())

	// sold cars never show up
	sold, _ := f.cars.FindByID(context.Background(), second.ID)
	sold.Status = entity.CarStatusSold
	_ = f.cars.Update(context.Background(), sold)

	cars, err := f.svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(cars) != 2 {
		t.Fatalf("expected 2 available cars, got %d", len(cars))
	}
	if cars[0].ID != third.ID || cars[1].ID != first.ID {
		t.Fatalf("cars not ordered by createdAt descending")
	}
}

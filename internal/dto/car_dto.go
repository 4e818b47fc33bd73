package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"autocatalog/internal/entity"
)

type CarRequest struct {
	Model   string  `json:"model" validate:"required"`
	Brand   string  `json:"brand" validate:"required"`
	Year    int     `json:"year" validate:"required"`
	Version string  `json:"version" validate:"required"`
	Color   string  `json:"color" validate:"required"`
	Mileage int     `json:"mileage" validate:"min=0"`
	Price   float64 `json:"price" validate:"min=0"`

	FuelType     string `json:"fuelType" validate:"required,oneof=GASOLINE ETHANOL FLEX DIESEL ELECTRIC HYBRID"`
	Transmission string `json:"transmission" validate:"required,oneof=MANUAL AUTOMATIC CVT"`
	Doors        int    `json:"doors" validate:"required,min=2,max=5"`
	PlateStart   string `json:"plateStart" validate:"required,len=3"`
	Engine       string `json:"engine" validate:"required"`
	EnginePower  string `json:"enginePower" validate:"required"`
	Direction    string `json:"direction" validate:"required,oneof=MECHANICAL HYDRAULIC ELECTRIC"`
	DriveType    string `json:"driveType" validate:"required,oneof=FWD RWD AWD"`
	Roof         string `json:"roof" validate:"required,oneof=NONE SUNROOF PANORAMIC"`

	AirConditioning   bool `json:"airConditioning"`
	ElectricWindows   bool `json:"electricWindows"`
	LeatherSeats      bool `json:"leatherSeats"`
	MediaCenter       bool `json:"mediaCenter"`
	ReverseCamera     bool `json:"reverseCamera"`
	ParkingSensor     bool `json:"parkingSensor"`
	Alarm             bool `json:"alarm"`
	ABSBrakes         bool `json:"absBrakes"`
	OwnerManual       bool `json:"ownerManual"`
	BackupKey         bool `json:"backupKey"`
	LicensingUpToDate bool `json:"licensingUpToDate"`

	Airbags     int `json:"airbags" validate:"min=0"`
	OwnersCount int `json:"ownersCount" validate:"required,min=1"`

	Wheels            string `json:"wheels" validate:"required"`
	Tires             string `json:"tires" validate:"required"`
	Suspension        string `json:"suspension" validate:"required"`
	PaintCondition    string `json:"paintCondition" validate:"required"`
	CollisionHistory  string `json:"collisionHistory" validate:"required"`
	DocumentSituation string `json:"documentSituation" validate:"required"`

	Images []string `json:"images" validate:"required,min=1,dive,url"`
}

type CarCreatorResponse struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type CarResponse struct {
	ID string `json:"id"`

	Model   string  `json:"model"`
	Brand   string  `json:"brand"`
	Year    int     `json:"year"`
	Version string  `json:"version"`
	Color   string  `json:"color"`
	Mileage int     `json:"mileage"`
	Price   float64 `json:"price"`

	FuelType     string `json:"fuelType"`
	Transmission string `json:"transmission"`
	Doors        int    `json:"doors"`
	PlateStart   string `json:"plateStart"`
	Engine       string `json:"engine"`
	EnginePower  string `json:"enginePower"`
	Direction    string `json:"direction"`
	DriveType    string `json:"driveType"`
	Roof         string `json:"roof"`

	AirConditioning   bool `json:"airConditioning"`
	ElectricWindows   bool `json:"electricWindows"`
	LeatherSeats      bool `json:"leatherSeats"`
	MediaCenter       bool `json:"mediaCenter"`
	ReverseCamera     bool `json:"reverseCamera"`
	ParkingSensor     bool `json:"parkingSensor"`
	Alarm             bool `json:"alarm"`
	ABSBrakes         bool `json:"absBrakes"`
	OwnerManual       bool `json:"ownerManual"`
	BackupKey         bool `json:"backupKey"`
	LicensingUpToDate bool `json:"licensingUpToDate"`

	Airbags     int `json:"airbags"`
	OwnersCount int `json:"ownersCount"`

	Wheels            string `json:"wheels"`
	Tires             string `json:"tires"`
	Suspension        string `json:"suspension"`
	PaintCondition    string `json:"paintCondition"`
	CollisionHistory  string `json:"collisionHistory"`
	DocumentSituation string `json:"documentSituation"`

	Images []string `json:"images"`

	Status      string              `json:"status"`
	CreatedByID string              `json:"createdById"`
	CreatedBy   *CarCreatorResponse `json:"createdBy,omitempty"`
	StoreID     *string             `json:"storeId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func CarResponseFromEntity(car *entity.Car) (CarResponse, error) {
	var images []string
	if len(car.Images) > 0 {
		if err := json.Unmarshal(car.Images, &images); err != nil {
			return CarResponse{}, fmt.Errorf("car %s: decode images: %w", car.ID, err)
		}
	}

	response := CarResponse{
		ID:      car.ID.String(),
		Model:   car.Model,
		Brand:   car.Brand,
		Year:    car.Year,
		Version: car.Version,
		Color:   car.Color,
		Mileage: car.Mileage,
		Price:   car.Price,

		FuelType:     string(car.FuelType),
		Transmission: string(car.Transmission),
		Doors:        car.Doors,
		PlateStart:   car.PlateStart,
		Engine:       car.Engine,
		EnginePower:  car.EnginePower,
		Direction:    string(car.Direction),
		DriveType:    string(car.DriveType),
		Roof:         string(car.Roof),

		AirConditioning:   car.AirConditioning,
		ElectricWindows:   car.ElectricWindows,
		LeatherSeats:      car.LeatherSeats,
		MediaCenter:       car.MediaCenter,
		ReverseCamera:     car.ReverseCamera,
		ParkingSensor:     car.ParkingSensor,
		Alarm:             car.Alarm,
		ABSBrakes:         car.ABSBrakes,
		OwnerManual:       car.OwnerManual,
		BackupKey:         car.BackupKey,
		LicensingUpToDate: car.LicensingUpToDate,

		Airbags:     car.Airbags,
		OwnersCount: car.OwnersCount,

		Wheels:            car.Wheels,
		Tires:             car.Tires,
		Suspension:        car.Suspension,
		PaintCondition:    car.PaintCondition,
		CollisionHistory:  car.CollisionHistory,
		DocumentSituation: car.DocumentSituation,

		Images: images,

		Status:      string(car.Status),
		CreatedByID: car.CreatedByID.String(),

		CreatedAt: car.CreatedAt,
		UpdatedAt: car.UpdatedAt,
	}

	if car.CreatedBy != nil {
		response.CreatedBy = &CarCreatorResponse{
			Name: car.CreatedBy.Name,
			Role: string(car.CreatedBy.Role),
		}
	}
	if car.StoreID != nil {
		storeID := car.StoreID.String()
		response.StoreID = &storeID
	}
	return response, nil
}

func CarResponsesFromEntities(cars []entity.Car) ([]CarResponse, error) {
	responses := make([]CarResponse, 0, len(cars))
	for i := range cars {
		response, err := CarResponseFromEntity(&cars[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, nil
}

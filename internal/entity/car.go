package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CarStatus string

const (
	CarStatusAvailable CarStatus = "AVAILABLE"
	CarStatusSold      CarStatus = "SOLD"
)

type FuelType string

const (
	FuelGasoline FuelType = "GASOLINE"
	FuelEthanol  FuelType = "ETHANOL"
	FuelFlex     FuelType = "FLEX"
	FuelDiesel   FuelType = "DIESEL"
	FuelElectric FuelType = "ELECTRIC"
	FuelHybrid   FuelType = "HYBRID"
)

type Transmission string

const (
	TransmissionManual    Transmission = "MANUAL"
	TransmissionAutomatic Transmission = "AUTOMATIC"
	TransmissionCVT       Transmission = "CVT"
)

type DirectionType string

const (
	DirectionMechanical DirectionType = "MECHANICAL"
	DirectionHydraulic  DirectionType = "HYDRAULIC"
	DirectionElectric   DirectionType = "ELECTRIC"
)

type DriveType string

const (
	DriveFWD DriveType = "FWD"
	DriveRWD DriveType = "RWD"
	DriveAWD DriveType = "AWD"
)

type RoofType string

const (
	RoofNone      RoofType = "NONE"
	RoofSunroof   RoofType = "SUNROOF"
	RoofPanoramic RoofType = "PANORAMIC"
)

type Car struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	Model   string  `gorm:"type:varchar(255);not null"`
	Brand   string  `gorm:"type:varchar(255);not null"`
	Year    int     `gorm:"not null"`
	Version string  `gorm:"type:varchar(255);not null"`
	Color   string  `gorm:"type:varchar(64);not null"`
	Mileage int     `gorm:"not null"`
	Price   float64 `gorm:"type:numeric(12,2);not null"`

	FuelType     FuelType      `gorm:"type:fuel_type;not null"`
	Transmission Transmission  `gorm:"type:transmission;not null"`
	Doors        int           `gorm:"not null"`
	PlateStart   string        `gorm:"type:varchar(3);not null"`
	Engine       string        `gorm:"type:varchar(64);not null"`
	EnginePower  string        `gorm:"type:varchar(64);not null"`
	Direction    DirectionType `gorm:"type:direction_type;not null"`
	DriveType    DriveType     `gorm:"type:drive_type;not null"`
	Roof         RoofType      `gorm:"type:roof_type;not null"`

	AirConditioning   bool `gorm:"not null"`
	ElectricWindows   bool `gorm:"not null"`
	LeatherSeats      bool `gorm:"not null"`
	MediaCenter       bool `gorm:"not null"`
	ReverseCamera     bool `gorm:"not null"`
	ParkingSensor     bool `gorm:"not null"`
	Alarm             bool `gorm:"not null"`
	ABSBrakes         bool `gorm:"not null"`
	OwnerManual       bool `gorm:"not null"`
	BackupKey         bool `gorm:"not null"`
	LicensingUpToDate bool `gorm:"not null"`

	Airbags     int `gorm:"not null"`
	OwnersCount int `gorm:"not null"`

	Wheels            string `gorm:"type:varchar(255);not null"`
	Tires             string `gorm:"type:varchar(255);not null"`
	Suspension        string `gorm:"type:varchar(255);not null"`
	PaintCondition    string `gorm:"type:varchar(255);not null"`
	CollisionHistory  string `gorm:"type:varchar(255);not null"`
	DocumentSituation string `gorm:"type:varchar(255);not null"`

	Images datatypes.JSON `gorm:"not null"`

	Status CarStatus `gorm:"type:car_status;default:'AVAILABLE';not null"`

	CreatedByID uuid.UUID  `gorm:"type:uuid;index;not null"`
	CreatedBy   *User      `gorm:"foreignKey:CreatedByID"`
	StoreID     *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

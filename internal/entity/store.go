package entity

import (
	"time"

	"github.com/google/uuid"
)

type Store struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(255);not null;default:''"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Sellers []Seller
	Cars    []Car `gorm:"foreignKey:StoreID"`
}

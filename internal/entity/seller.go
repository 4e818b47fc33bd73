package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seller links a SELLER-role user to the single store that employs them.
type Seller struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	StoreID uuid.UUID `gorm:"type:uuid;index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the identity document of a user. Exactly one of CPF or CNPJ
// is filled depending on the user's role.
type Profile struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	CPF  *string `gorm:"type:varchar(14);uniqueIndex"`
	CNPJ *string `gorm:"type:varchar(18);uniqueIndex"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

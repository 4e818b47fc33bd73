package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleStore            Role = "STORE"
	RoleSeller           Role = "SELLER"
	RoleIndividualSeller Role = "INDIVIDUAL_SELLER"
	RoleBuyer            Role = "BUYER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStore, RoleSeller, RoleIndividualSeller, RoleBuyer:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	Role         Role      `gorm:"type:user_role;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Profile *Profile
	Store   *Store
	Seller  *Seller
}

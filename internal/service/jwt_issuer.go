package service

import (
	"time"

	"autocatalog/internal/entity"
	"autocatalog/internal/utils"

	"github.com/google/uuid"
)

type JWTTokenIssuer struct {
	Manager *utils.JWTManager
}

func (j JWTTokenIssuer) Issue(userID uuid.UUID, role entity.Role) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, ErrInvalidToken
	}
	return j.Manager.Issue(userID.String(), string(role))
}

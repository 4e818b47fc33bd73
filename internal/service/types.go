package service

import (
	"context"
	"io"
	"time"

	"autocatalog/internal/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionClaims is the verified identity of the actor behind a request.
type SessionClaims struct {
	UserID uuid.UUID
	Role   entity.Role
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

type TokenIssuer interface {
	Issue(userID uuid.UUID, role entity.Role) (string, time.Duration, error)
}

type EmailSender interface {
	SendWelcomeEmail(ctx context.Context, email string, name string) error
}

type BlobStore interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"autocatalog/internal/dto"
	"autocatalog/internal/entity"
	"autocatalog/internal/repository"
	"autocatalog/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type LoginResult struct {
	User      *entity.User
	Token     string
	ExpiresIn time.Duration
}

type AuthService struct {
	users     repository.UserRepository
	auditLogs repository.AuditLogRepository

	passwordHash PasswordHasher
	tokens       TokenIssuer
	logger       *logrus.Logger
}

func NewAuthService(
	users repository.UserRepository,
	auditLogs repository.AuditLogRepository,
	passwordHash PasswordHasher,
	tokens TokenIssuer,
	logger *logrus.Logger,
) *AuthService {
	return &AuthService{
		users:        users,
		auditLogs:    auditLogs,
		passwordHash: passwordHash,
		tokens:       tokens,
		logger:       logger,
	}
}

// Login verifies the credentials and issues a signed session token carrying
// the user's id and role. Failures never reveal which part of the credential
// was wrong.
func (s *AuthService) Login(ctx context.Context, input dto.LoginRequest, ipAddress *string) (*LoginResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// burn the same bcrypt cost as a real compare
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		s.audit(ctx, nil, ipAddress, entity.LoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if !s.passwordHash.Verify(user.PasswordHash, input.Password) {
		s.audit(ctx, &user.ID, ipAddress, entity.LoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	token, ttl, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, &user.ID, ipAddress, entity.LoginSuccess, nil)
	return &LoginResult{User: user, Token: token, ExpiresIn: ttl}, nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context, limit, offset int) ([]entity.User, error) {
	return s.users.List(ctx, limit, offset)
}

func (s *AuthService) audit(
	ctx context.Context,
	userID *uuid.UUID,
	ipAddress *string,
	action entity.AuditAction,
	metadata map[string]any,
) {
	if s.auditLogs == nil {
		return
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return
		}
		payload = datatypes.JSON(bytes)
	}

	log := &entity.AuditLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	}
	if err := s.auditLogs.Log(ctx, log); err != nil && s.logger != nil {
		s.logger.WithError(err).Warn("audit log write failed")
	}
}

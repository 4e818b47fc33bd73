package service

import (
	"context"
	"strings"

	"autocatalog/internal/dto"
	"autocatalog/internal/entity"
	"autocatalog/internal/repository"
	"autocatalog/internal/utils"

	"github.com/sirupsen/logrus"
)

type RegistrationService struct {
	users     repository.UserRepository
	profiles  repository.ProfileRepository
	tx        repository.RegistrationTx
	auditLogs repository.AuditLogRepository

	passwordHash PasswordHasher
	emailSender  EmailSender
	logger       *logrus.Logger
}

func NewRegistrationService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	tx repository.RegistrationTx,
	auditLogs repository.AuditLogRepository,
	passwordHash PasswordHasher,
	emailSender EmailSender,
	logger *logrus.Logger,
) *RegistrationService {
	return &RegistrationService{
		users:        users,
		profiles:     profiles,
		tx:           tx,
		auditLogs:    auditLogs,
		passwordHash: passwordHash,
		emailSender:  emailSender,
		logger:       logger,
	}
}

// Register creates a User, its Profile, and (for stores) its Store as one
// transaction. Uniqueness of email, cpf, and cnpj is pre-checked in that order
// so the reported conflict is deterministic.
func (s *RegistrationService) Register(ctx context.Context, input dto.RegisterRequest) (*entity.User, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	role := entity.Role(input.Role)
	if !role.Valid() {
		return nil, &FieldError{Field: "role", Message: "unknown role"}
	}

	cpf := strings.TrimSpace(input.CPF)
	cnpj := strings.TrimSpace(input.CNPJ)
	storeName := strings.TrimSpace(input.StoreName)

	switch role {
	case entity.RoleStore:
		if cnpj == "" {
			return nil, &FieldError{Field: "cnpj", Message: "cnpj is required for stores"}
		}
		if storeName == "" {
			return nil, &FieldError{Field: "storeName", Message: "store name is required for stores"}
		}
	case entity.RoleIndividualSeller, entity.RoleBuyer:
		if cpf == "" {
			return nil, &FieldError{Field: "cpf", Message: "cpf is required for this role"}
		}
	default:
		// SELLER accounts are created by their store; ADMIN accounts are
		// provisioned out of band. Neither self-registers.
		return nil, &FieldError{Field: "role", Message: "role cannot self-register"}
	}

	email := utils.NormalizeEmail(input.Email)

	existingUser, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, &DuplicateFieldError{Field: "email"}
	}

	if cpf != "" {
		existingProfile, err := s.profiles.FindByCPF(ctx, cpf)
		if err != nil {
			return nil, err
		}
		if existingProfile != nil {
			return nil, &DuplicateFieldError{Field: "cpf"}
		}
	}

	if cnpj != "" {
		existingProfile, err := s.profiles.FindByCNPJ(ctx, cnpj)
		if err != nil {
			return nil, err
		}
		if existingProfile != nil {
			return nil, &DuplicateFieldError{Field: "cnpj"}
		}
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	err = s.tx.RunInTx(ctx, func(stores repository.RegistrationStores) error {
		if err := stores.Users.Create(ctx, user); err != nil {
			return err
		}

		profile := &entity.Profile{UserID: user.ID}
		if cpf != "" {
			profile.CPF = &cpf
		}
		if cnpj != "" {
			profile.CNPJ = &cnpj
		}
		if err := stores.Profiles.Create(ctx, profile); err != nil {
			return err
		}

		if role == entity.RoleStore {
			store := &entity.Store{
				UserID:  user.ID,
				Name:    storeName,
				Address: strings.TrimSpace(input.StoreAddress),
			}
			if err := stores.Stores.Create(ctx, store); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.auditLogs != nil {
		log := &entity.AuditLog{UserID: &user.ID, Action: entity.Registered}
		if err := s.auditLogs.Log(ctx, log); err != nil && s.logger != nil {
			s.logger.WithError(err).Warn("audit log write failed")
		}
	}

	if s.emailSender != nil {
		if err := s.emailSender.SendWelcomeEmail(ctx, user.Email, user.Name); err != nil && s.logger != nil {
			s.logger.WithError(err).WithField("email", user.Email).Warn("welcome email failed")
		}
	}

	return user, nil
}

package auth

import (
	"context"
	"strings"
	"time"

	"lawroute/models"
	"lawroute/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// sessionDuration is how long issued tokens remain valid.
const sessionDuration = 24 * time.Hour

func (s *DefaultAuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" {
		return nil, utils.Validationf("name and email are required")
	}
	if len(in.Password) < 8 {
		return nil, utils.Validationf("password must be at least 8 characters")
	}
	role, ok := models.ParseRole(in.Role)
	if !ok {
		return nil, utils.Validationf("role must be one of: citizen, lawyer, authority, admin")
	}
	// Admin accounts are provisioned out of band, never self-registered.
	if role == models.RoleAdmin {
		return nil, utils.Forbidden("Admin accounts cannot be self-registered.")
	}

	existing, err := s.Accounts.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.Conflict("An account with this email already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acc := &models.Account{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	switch role {
	case models.RoleLawyer:
		expertise := in.Expertise
		if expertise == "" {
			expertise = "general"
		}
		if !models.ValidExpertise(expertise) {
			return nil, utils.Validationf("expertise must be one of the known expertise areas")
		}
		if err := s.Accounts.Create(acc); err != nil {
			return nil, err
		}
		profile := &models.LawyerProfile{
			ID:        uuid.NewString(),
			AccountID: acc.ID,
			Expertise: expertise,
			IsFree:    in.IsFree,
		}
		profile.EnsureSections()
		if err := s.Profiles.Create(profile); err != nil {
			return nil, err
		}
	case models.RoleAuthority:
		// Check the category claim before the account exists so a
		// rejected registration leaves nothing behind.
		if !models.ValidCategory(in.ManagedCategory) {
			return nil, utils.Validationf("managedCategory must be one of the known categories")
		}
		if _, err := s.Directory.Route(in.ManagedCategory); err == nil {
			return nil, utils.Conflict("An authority already manages this category.")
		} else if !utils.IsKind(err, utils.KindNotFound) {
			return nil, err
		}
		if err := s.Accounts.Create(acc); err != nil {
			return nil, err
		}
		if _, err := s.Directory.Register(acc.ID, in.ManagedCategory); err != nil {
			return nil, err
		}
	default:
		if err := s.Accounts.Create(acc); err != nil {
			return nil, err
		}
	}

	return s.mintSession(ctx, acc)
}

func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	acc, err := s.Accounts.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, utils.Unauthenticated("Invalid email or password.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, utils.Unauthenticated("Invalid email or password.")
	}
	return s.mintSession(ctx, acc)
}

func (s *DefaultAuthService) Revoke(ctx context.Context, accountID string) error {
	if err := s.Accounts.UpdateTokenHash(accountID, ""); err != nil {
		return err
	}
	if err := utils.RevokeAuthSession(ctx, accountID); err != nil {
		utils.GetLogger().Warn("Failed to evict auth session from cache",
			zap.String("accountID", accountID), zap.Error(err))
	}
	return nil
}

// mintSession issues a token, records its hash on the account, and primes
// the auth cache so the middleware can validate without a DB round trip.
func (s *DefaultAuthService) mintSession(ctx context.Context, acc *models.Account) (*Session, error) {
	token, err := utils.GenerateToken(acc.ID, string(acc.Role), sessionDuration)
	if err != nil {
		return nil, err
	}
	tokenHash := utils.HashToken(token)
	if err := s.Accounts.UpdateTokenHash(acc.ID, tokenHash); err != nil {
		return nil, err
	}
	acc.TokenHash = tokenHash
	if err := utils.CacheAuthSession(ctx, acc.ID, tokenHash); err != nil {
		utils.GetLogger().Warn("Failed to cache auth session",
			zap.String("accountID", acc.ID), zap.Error(err))
	}
	return &Session{Token: token, Account: acc}, nil
}

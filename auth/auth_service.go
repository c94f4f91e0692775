package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/booth33/studio-backend/credit"
)

//go:generate mockgen -source=auth_service.go -destination=mocks/mock_auth_service.go -package=mocks

type ProfileRepository interface {
	InsertProfile(ctx context.Context, profile Profile) (Profile, error)
	GetProfileByID(ctx context.Context, id string) (Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (Profile, error)
}

// Rewarder grants the referral bonus when a referred signup completes.
type Rewarder interface {
	GrantReferralBonus(ctx context.Context, userID, referredUserID string) (credit.Transaction, error)
}

type Service struct {
	repo     ProfileRepository
	rewarder Rewarder
	secret   string
	expire   time.Duration
}

func NewService(repo ProfileRepository, rewarder Rewarder, secret string, expire time.Duration) *Service {
	return &Service{repo: repo, rewarder: rewarder, secret: secret, expire: expire}
}

// Register creates a member account. When referredBy names an existing
// profile, that referrer receives a credit bonus; a failed grant never
// fails the signup.
func (s *Service) Register(ctx context.Context, username, email, password, referredBy string) (Profile, error) {
	_, err := s.repo.GetProfileByUsername(ctx, username)

	if err == nil {
		return Profile{}, ErrUsernameTaken
	}

	if !errors.Is(err, ErrProfileNotFound) {
		return Profile{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := Profile{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleMember,
	}

	var referrer Profile

	if referredBy != "" {
		referrer, err = s.repo.GetProfileByUsername(ctx, referredBy)

		if err != nil && !errors.Is(err, ErrProfileNotFound) {
			return Profile{}, err
		}

		profile.ReferredBy = referrer.ID
	}

	created, err := s.repo.InsertProfile(ctx, profile)

	if err != nil {
		return Profile{}, err
	}

	if referrer.ID != "" {
		s.rewarder.GrantReferralBonus(ctx, referrer.ID, created.ID)
	}

	return created, nil
}

// Login checks the password and issues a signed access token.
func (s *Service) Login(ctx context.Context, username, password string) (string, Profile, error) {
	profile, err := s.repo.GetProfileByUsername(ctx, username)

	if errors.Is(err, ErrProfileNotFound) {
		return "", Profile{}, ErrInvalidCredentials
	}

	if err != nil {
		return "", Profile{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return "", Profile{}, ErrInvalidCredentials
	}

	token, err := CreateAccessToken(profile, s.secret, s.expire)

	if err != nil {
		return "", Profile{}, err
	}

	return token, profile, nil
}

func (s *Service) VerifyToken(tokenString string) (User, error) {
	claims, err := ParseAccessToken(tokenString, s.secret)

	if err != nil {
		return User{}, err
	}

	return User{
		ID:       claims.Subject,
		Username: claims.Username,
		Admin:    claims.Role == string(RoleAdmin),
	}, nil
}

func (s *Service) FindProfileByID(ctx context.Context, id string) (Profile, error) {
	return s.repo.GetProfileByID(ctx, id)
}

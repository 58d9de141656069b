package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YairBetsalel/tutor-path-finder/internal/auth"
	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

// AccountService handles registration, sign-in and token rotation.
type AccountService struct {
	userRepo    UserRepository
	profileRepo ProfileRepository
	roleRepo    RoleRepository
	refreshRepo RefreshSessionRepository
	logger      *zap.Logger

	jwtSecret       string
	jwtIssuer       string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	now             func() time.Time
}

func NewAccountService(
	userRepo UserRepository,
	profileRepo ProfileRepository,
	roleRepo RoleRepository,
	refreshRepo RefreshSessionRepository,
	logger *zap.Logger,
	jwtSecret, jwtIssuer string,
	accessTokenTTL, refreshTokenTTL time.Duration,
) *AccountService {
	return &AccountService{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		roleRepo:        roleRepo,
		refreshRepo:     refreshRepo,
		logger:          logger,
		jwtSecret:       jwtSecret,
		jwtIssuer:       jwtIssuer,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		now:             time.Now,
	}
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=8"`
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	Role      model.Role `json:"role" validate:"required"`
}

// AuthResult bundles the signed-in actor with a fresh token pair.
type AuthResult struct {
	User         *model.User `json:"user"`
	Role         model.Role  `json:"role"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

// Register creates the account, its profile (with a stable avatar color
// picked from the palette) and its role claim. Admin accounts are not
// self-registerable.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if !input.Role.IsValid() || input.Role == model.RoleAdmin {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        strings.TrimSpace(strings.ToLower(input.Email)),
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	profile := &model.Profile{
		ID:           user.ID,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		AvatarColor:  model.AvatarPalette[rand.Intn(len(model.AvatarPalette))],
		AvatarLetter: avatarLetter(input.FirstName),
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	if err := s.roleRepo.Assign(ctx, user.ID, input.Role); err != nil {
		return nil, fmt.Errorf("assign role: %w", err)
	}

	s.logger.Info("Account registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(input.Role)),
	)

	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (s *AccountService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := s.roleRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	}
	if role == "" {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user, role)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued.
func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	session, err := s.refreshRepo.GetByTokenHash(ctx, auth.HashToken(refreshToken))
	if err != nil {
		return nil, fmt.Errorf("get refresh session: %w", err)
	}
	if session == nil || session.RevokedAt != nil || session.ExpiresAt.Before(s.now().UTC()) {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidRefreshToken
	}

	role, err := s.roleRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	}
	if role == "" {
		return nil, ErrInvalidRefreshToken
	}

	if err := s.refreshRepo.Revoke(ctx, session.ID, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("revoke refresh session: %w", err)
	}

	return s.issueTokens(ctx, user, role)
}

// Logout revokes every live refresh session of the account.
func (s *AccountService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.refreshRepo.RevokeAllForUser(ctx, userID, s.now().UTC()); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *AccountService) issueTokens(ctx context.Context, user *model.User, role model.Role) (*AuthResult, error) {
	accessToken, err := auth.NewAccessToken(s.jwtSecret, s.jwtIssuer, s.accessTokenTTL, user.ID, role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	refreshToken, err := auth.NewRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	session := &model.RefreshSession{
		UserID:    user.ID,
		TokenHash: auth.HashToken(refreshToken),
		ExpiresAt: s.now().UTC().Add(s.refreshTokenTTL),
	}
	if err := s.refreshRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store refresh session: %w", err)
	}

	return &AuthResult{
		User:         user,
		Role:         role,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// avatarLetter picks the profile's avatar initial.
func avatarLetter(firstName string) string {
	for _, r := range strings.TrimSpace(firstName) {
		return string(unicode.ToUpper(r))
	}
	return "S"
}

package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"cusco-tours/internal/domain/user"
	"cusco-tours/internal/infra"
	"cusco-tours/internal/infra/kvstore"
	"cusco-tours/internal/pkg/errs"
	"cusco-tours/internal/pkg/jwt"
	"cusco-tours/internal/pkg/password"
	"cusco-tours/internal/usecase/queries"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Name      string
	Email     string
	TokenPair *TokenPair
}

// profileSnapshot is the signed-in user mirror kept in the profile store's
// user slot while a session is active.
type profileSnapshot struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type AuthCommands interface {
	Register(ctx context.Context, name, email, plainPassword, phone string) (uuid.UUID, error)
	Login(ctx context.Context, profileID uuid.UUID, email, plainPassword string) (*LoginResult, error)
	Logout(ctx context.Context, profileID uuid.UUID) error
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	store      kvstore.Store
	jwtService *jwt.Service
}

func NewAuthCommands(
	userRepo UserRepository,
	readStore queries.UserReadStore,
	store kvstore.Store,
	jwtService *jwt.Service,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		store:      store,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, name, email, plainPassword, phone string) (uuid.UUID, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return uuid.Nil, err
	}
	passwordVO, err := user.NewPassword(plainPassword)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(passwordVO.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser, err := user.NewUser(name, emailVO, hash, phone)
	if err != nil {
		return uuid.Nil, err
	}

	if err := a.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, err
	}

	return newUser.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, profileID uuid.UUID, email, plainPassword string) (*LoginResult, error) {
	found, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch, to prevent user enumeration.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(found.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !found.IsActive() {
		return nil, ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(found.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(found.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, found.ID()); err != nil {
		slog.Warn("failed to update last login", "user_id", found.ID(), "error", err.Error())
		// Not critical; the login still succeeds.
	}

	snapshot := profileSnapshot{
		ID:    found.ID(),
		Name:  found.Name(),
		Email: found.Email().Value(),
	}
	if err := a.store.Set(ctx, profileID, kvstore.SlotUser, snapshot); err != nil {
		slog.Warn("failed to mirror user snapshot", "profile_id", profileID, "error", err.Error())
	}

	return &LoginResult{
		UserID: found.ID(),
		Name:   found.Name(),
		Email:  found.Email().Value(),
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) Logout(ctx context.Context, profileID uuid.UUID) error {
	return a.store.Remove(ctx, profileID, kvstore.SlotUser)
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// The user must still exist and be active.
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

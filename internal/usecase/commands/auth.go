package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"booking-engine/internal/domain/auth"
	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/user"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/pkg/jwt"
	"booking-engine/internal/pkg/password"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"
)

var (
	ErrInvalidCredentials  = errs.Mark(errs.New("invalid email or password"), errs.ErrUnauthenticated)
	ErrUserInactive        = errs.Mark(errs.New("user inactive"), errs.ErrForbidden)
	ErrEmailRegistered     = errs.Mark(errs.New("email already registered"), errs.ErrDuplicate)
	ErrTokenGeneration     = errs.New("token generation failed")
	ErrTokenValidation     = errs.Mark(errs.New("token validation failed"), errs.ErrUnauthenticated)
	ErrPasswordHashFailure = errs.New("password hashing failed")
)

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

type AuthResult struct {
	UserID    uuid.UUID
	Email     string
	FullName  string
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	hasher     *password.Hasher
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, hasher *password.Hasher) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		hasher:     hasher,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	v := &booking.Validator{}
	email, err := user.NewEmail(in.Email)
	v.Check("email", err)
	_, err = user.NewPassword(in.Password)
	v.Check("password", err)
	fullName, err := user.NewFullName(in.FullName)
	v.Check("full_name", err)
	var phone *string
	if in.Phone != "" {
		if p, err := booking.NewPhone(in.Phone); v.Check("phone", err) {
			s := p.String()
			phone = &s
		}
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	hash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashFailure)
	}
	u := user.NewUser(email, hash, fullName, phone, user.RoleCustomer)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailRegistered
		}
		return nil, err
	}

	pair, err := a.issue(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		UserID:    u.ID(),
		Email:     email.Value(),
		FullName:  fullName,
		Role:      u.Role(),
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		// malformed input reads the same as a wrong password
		return nil, ErrInvalidCredentials
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	pair, err := a.issue(userView.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userView.ID)
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", userView.ID, "error", err.Error())
	}

	return &AuthResult{
		UserID:    userView.ID,
		Email:     userView.Email,
		FullName:  userView.FullName,
		Role:      role,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// the user may have been disabled since the token was issued
	userView, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenValidation
		}
		return nil, err
	}
	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	return a.issue(claims.UserID, role)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer and timing as a wrong password to prevent user enumeration
			_ = a.hasher.CompareDummy(credentials.Password().Value())
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	if err := a.hasher.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userView, nil
}

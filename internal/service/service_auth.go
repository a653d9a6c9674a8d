package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/internal/validators"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the session
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users
	// and to store the current session token.
	userRepository store.UserRepository

	validator validators.Validator

	// passwordHashCost is the bcrypt cost applied at registration.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the optional "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewSocialValidator(),
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// Name, email and password must be non-empty. The password is hashed with
// bcrypt before the user is persisted with an empty following list.
//
// Returns the persisted user (including the password hash) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - ErrEmailAlreadyTaken if another account uses the same email.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:     request.Email,
		Name:      request.Name,
		Password:  hash,
		Following: []uuid.UUID{},
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, fmt.Errorf("%w: %w", ErrEmailAlreadyTaken, err)
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrUserNotFound if no account has the given email.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.ComparePassword(foundUser.Password, request.Password) {
		log.Error().
			Str("id", foundUser.ID.String()).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed session token for the given user and stores it
// as the user's only active session, replacing any earlier one.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Name, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.userRepository.UpdateSessionToken(ctx, user.ID, token.SignedString); err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("storing session token failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature) is
// normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token parsing failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate validates tokenString and confirms that it is the session
// token currently stored for its owner. A later login replaces the stored
// token, so earlier tokens fail with ErrSessionIsNotActive.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Token{}, err
	}

	user, err := a.userRepository.FindUserBySession(ctx, token.UserID, tokenString)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrSessionIsNotActive
		}
		logger.FromContext(ctx).Err(err).Str("user_id", token.UserID.String()).Msg("session lookup failed")
		return models.Token{}, fmt.Errorf("session lookup failed: %w", err)
	}

	token.Name = user.Name
	return token, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence, bcrypt for password
// hashing and a RevocationList for logout.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// revocationList holds tokens invalidated by logout.
	revocationList store.RevocationList

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor applied when hashing new passwords.
	bcryptCost int

	// now is the clock used for issuing and verifying tokens.
	now func() time.Time

	// dummyHash is compared against when the email is unknown, so both
	// login failures cost one bcrypt comparison.
	dummyHash     string
	dummyHashOnce sync.Once

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, revocationList store.RevocationList, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		revocationList: revocationList,
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is trimmed and lower-cased before it is stored, the password is
// hashed with bcrypt. Uniqueness of the email is left to the repository, so
// of two concurrent registrations with one email exactly one succeeds.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		log.Error().Str("func", "*authService.RegisterUser").Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if !errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("func", "*authService.RegisterUser").Str("email", email).Msg("user creation ended with error")
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Unknown email and wrong password are reported the same way, as
// ErrInvalidCredentials. Repository failures other than "not found" are
// returned wrapped.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = utils.CheckPassword(a.getDummyHash(), req.Password)
		log.Debug().Str("func", "*authService.Login").Msg("unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			log.Err(err).Str("func", "*authService.Login").Str("user_id", foundUser.UserID).Msg("stored hash is malformed")
		}
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.UserID, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong algorithm, bad signature, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate checks the revocation list first and then verifies the token.
//
// Returns ErrTokenRevoked, ErrTokenIsExpiredOrInvalid or a wrapped
// store.ErrRevocationUnavailable when the list cannot be consulted.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Principal, error) {
	revoked, err := a.revocationList.IsRevoked(ctx, tokenString)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Authenticate").Msg("revocation lookup failed")
		return models.Principal{}, fmt.Errorf("revocation lookup failed: %w", err)
	}
	if revoked {
		return models.Principal{}, ErrTokenRevoked
	}

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Principal{}, err
	}

	return models.Principal{
		UserID:    token.UserID,
		Token:     token.SignedString,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// Logout revokes the token the principal authenticated with.
func (a *authService) Logout(ctx context.Context, principal models.Principal) error {
	if principal.Token == "" {
		return ErrInvalidDataProvided
	}

	if err := a.revocationList.Revoke(ctx, principal.Token, principal.ExpiresAt); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*authService.Logout").
			Str("user_id", principal.UserID).
			Msg("token revocation failed")
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}

func (a *authService) getDummyHash() string {
	a.dummyHashOnce.Do(func() {
		a.dummyHash, _ = utils.HashPassword("dummy-password", a.bcryptCost)
	})
	return a.dummyHash
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

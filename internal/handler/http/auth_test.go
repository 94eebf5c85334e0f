package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ─── register ────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	validBody := models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"}

	tests := []struct {
		name        string
		body        any
		registerErr error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "created",
			body:        validBody,
			wantStatus:  http.StatusCreated,
			wantMessage: "User signed up successfully",
		},
		{
			name:        "invalid json",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidJSON,
		},
		{
			name:        "trailing data after document",
			body:        `{"name":"Alice"} {}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidJSON,
		},
		{
			name:        "duplicate email",
			body:        validBody,
			registerErr: fmt.Errorf("create user: %w", store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email already exists",
		},
		{
			name:        "storage failure",
			body:        validBody,
			registerErr: errors.New("connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			var got models.RegisterRequest
			env.auth.registerFn = func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
				got = req
				if tt.registerErr != nil {
					return models.User{}, tt.registerErr
				}
				return models.User{UserID: testUserID, Name: req.Name, Email: req.Email}, nil
			}

			rr := env.do(t, http.MethodPost, "/api/auth/register", tt.body, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, messageOf(t, rr))
			assert.NotContains(t, rr.Body.String(), "connection reset", "internal details must not leak")
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, validBody, got)
				assert.NotContains(t, rr.Body.String(), "token")
			}
		})
	}
}

func TestRegister_ValidationIssues(t *testing.T) {
	env := newTestEnv(t)

	// the validation wrapper is the real one so the response carries the
	// exact issues the client renders
	env.handler.services.AuthService = service.NewAuthValidationService().Wrap(env.auth)
	env.auth.registerFn = func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
		t.Fatal("inner service must not be reached")
		return models.User{}, nil
	}

	rr := env.do(t, http.MethodPost, "/api/auth/register",
		models.RegisterRequest{Name: "Al", Email: "not-an-email", Password: "12345"}, "")

	require.Equal(t, http.StatusBadRequest, rr.Code)

	resp := decodeBody[models.ValidationErrorResponse](t, rr)
	assert.Equal(t, app.MsgValidationFailed, resp.Error)
	assert.Equal(t, []models.ValidationIssue{
		{Field: "name", Message: "must be at least 3 characters"},
		{Field: "email", Message: "must be a valid email address"},
		{Field: "password", Message: "must be at least 6 characters"},
	}, resp.Issues)
}

// ─── login ───────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	user := models.User{UserID: testUserID, Name: "Alice", Email: "alice@example.com"}
	validBody := models.LoginRequest{Email: "alice@example.com", Password: "secret1"}

	t.Run("success returns token and user summary", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.loginFn = func(ctx context.Context, req models.LoginRequest) (models.User, error) {
			assert.Equal(t, validBody, req)
			return user, nil
		}
		env.auth.createTokenFn = func(ctx context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, user.UserID, u.UserID)
			return models.Token{SignedString: "signed.jwt.token", UserID: u.UserID}, nil
		}

		rr := env.do(t, http.MethodPost, "/api/auth/login", validBody, "")

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.Equal(t, models.LoginResponse{
			Token:   "signed.jwt.token",
			UserID:  user.UserID,
			Name:    user.Name,
			Email:   user.Email,
			Message: "User signed in successfully",
		}, decodeBody[models.LoginResponse](t, rr))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.loginFn = func(ctx context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		}

		rr := env.do(t, http.MethodPost, "/api/auth/login", validBody, "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid email or password", messageOf(t, rr))
	})

	t.Run("token creation failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.loginFn = func(ctx context.Context, req models.LoginRequest) (models.User, error) {
			return user, nil
		}
		env.auth.createTokenFn = func(ctx context.Context, u models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		}

		rr := env.do(t, http.MethodPost, "/api/auth/login", validBody, "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, app.MsgInternalServerError, messageOf(t, rr))
	})

	t.Run("invalid json", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, http.MethodPost, "/api/auth/login", "not json", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgInvalidJSON, messageOf(t, rr))
	})

	t.Run("validation failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.handler.services.AuthService = service.NewAuthValidationService().Wrap(env.auth)

		rr := env.do(t, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "alice@example.com"}, "")

		require.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeBody[models.ValidationErrorResponse](t, rr)
		assert.Equal(t, []models.ValidationIssue{
			{Field: "password", Message: "must be at least 6 characters"},
		}, resp.Issues)
	})
}

// ─── logout ──────────────────────────────────────────────────────────────────

func TestLogout(t *testing.T) {
	t.Run("revokes the presented token", func(t *testing.T) {
		env := newTestEnv(t)

		var got models.Principal
		env.auth.logoutFn = func(ctx context.Context, principal models.Principal) error {
			got = principal
			return nil
		}

		rr := env.do(t, http.MethodPost, "/api/auth/logout", nil, testToken)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "User signed out successfully", messageOf(t, rr))
		assert.Equal(t, testUserID, got.UserID)
		assert.Equal(t, testToken, got.Token)
	})

	t.Run("requires authentication", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.logoutFn = func(ctx context.Context, principal models.Principal) error {
			t.Fatal("logout must not be reached")
			return nil
		}

		rr := env.do(t, http.MethodPost, "/api/auth/logout", nil, "")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Unauthorized", messageOf(t, rr))
	})

	t.Run("revocation list unavailable", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.logoutFn = func(ctx context.Context, principal models.Principal) error {
			return fmt.Errorf("revoke token: %w", store.ErrRevocationUnavailable)
		}

		rr := env.do(t, http.MethodPost, "/api/auth/logout", nil, testToken)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, app.MsgInternalServerError, messageOf(t, rr))
	})
}

// ─── error mapping ───────────────────────────────────────────────────────────

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"no fields to update", validators.ErrNoFieldsToUpdate, http.StatusBadRequest, "At least one field must be provided for update"},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, "Invalid data provided"},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest, "Invalid email or password"},
		{"expired token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Unauthorized"},
		{"revoked token", service.ErrTokenRevoked, http.StatusUnauthorized, "Unauthorized"},
		{"duplicate email", store.ErrEmailAlreadyExists, http.StatusBadRequest, "Email already exists"},
		{"wrapped not found", fmt.Errorf("update: %w", store.ErrTaskNotFound), http.StatusNotFound, "Content not found"},
		{"unsupported type", validators.ErrUnsupportedType, http.StatusInternalServerError, app.MsgInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, tt.wantMessage, resp.message)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "secret-key"

var testNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("user-123", 30*time.Minute, testSignKey, testNow)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "user-123", token.UserID)
	assert.Equal(t, testNow.Add(30*time.Minute), token.ExpiresAt)

	claims, err := token.ParsedClaims()
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, testNow, claims.IssuedAt.Time)
	assert.Empty(t, claims.Subject)
	assert.Empty(t, claims.Issuer)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty user id", "", time.Hour, "key"},
		{"zero duration", "u", 0, "key"},
		{"negative duration", "u", -time.Second, "key"},
		{"empty key", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.userID, tt.duration, tt.key, testNow)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_ValidUntilExpiry(t *testing.T) {
	genToken, err := GenerateJWTToken("user-456", 30*time.Minute, testSignKey, testNow)
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{name: "at issuance", at: testNow},
		{name: "one second before expiry", at: testNow.Add(30*time.Minute - time.Second)},
		{name: "one second after expiry", at: testNow.Add(30*time.Minute + time.Second), wantErr: true},
		{name: "an hour later", at: testNow.Add(time.Hour), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ValidateAndParseJWTToken(genToken.SignedString, testSignKey, tt.at)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-456", parsed.UserID)
			assert.Equal(t, genToken.SignedString, parsed.SignedString)
		})
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, err := GenerateJWTToken("u", time.Hour, "correct-key", testNow)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", testNow)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := &models.TokenClaims{
		UserID: "u",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tokenString := range map[string]string{"HS512": hs512, "none": none} {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tokenString, testSignKey, testNow)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.TokenClaims{UserID: "u"}).
		SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(tokenString, testSignKey, testNow)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_EmptyUserID(t *testing.T) {
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(tokenString, testSignKey, testNow)
	assert.ErrorIs(t, err, ErrEmptyUserIDClaim)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testNow)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

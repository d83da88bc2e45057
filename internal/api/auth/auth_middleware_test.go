package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

func signClaims(t *testing.T, claims types.Claims, secret string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func validClaims(userID string) types.Claims {
	now := time.Now()
	return types.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testJWT.Issuer,
			Audience:  jwt.ClaimStrings{testJWT.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.NewString()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Authenticate(discardLogger(), testJWT)(next)

	expired := validClaims(userID)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	wrongIssuer := validClaims(userID)
	wrongIssuer.Issuer = "someone-else"
	wrongAudience := validClaims(userID)
	wrongAudience.Audience = jwt.ClaimStrings{"other-app"}
	noExpiry := validClaims(userID)
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"valid", "Bearer " + signClaims(t, validClaims(userID), testJWT.SecretKey), http.StatusNoContent, ""},
		{"lower case scheme", "bearer " + signClaims(t, validClaims(userID), testJWT.SecretKey), http.StatusNoContent, ""},
		{"missing header", "", http.StatusUnauthorized, "Access token required"},
		{"wrong scheme", "Token abc", http.StatusUnauthorized, "Authorization header format must be Bearer {token}"},
		{"malformed", "Bearer not.a.jwt", http.StatusUnauthorized, "Malformed token"},
		{"expired", "Bearer " + signClaims(t, expired, testJWT.SecretKey), http.StatusUnauthorized, "Token has expired"},
		{"no expiry", "Bearer " + signClaims(t, noExpiry, testJWT.SecretKey), http.StatusUnauthorized, "Invalid or expired token"},
		{"bad signature", "Bearer " + signClaims(t, validClaims(userID), "another-secret"), http.StatusUnauthorized, "Invalid token signature"},
		{"no user", "Bearer " + signClaims(t, validClaims(""), testJWT.SecretKey), http.StatusUnauthorized, "Invalid token"},
		{"wrong issuer", "Bearer " + signClaims(t, wrongIssuer, testJWT.SecretKey), http.StatusUnauthorized, "Invalid token issuer"},
		{"wrong audience", "Bearer " + signClaims(t, wrongAudience, testJWT.SecretKey), http.StatusUnauthorized, "Invalid token audience"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, userID, seen)
				return
			}
			assert.Empty(t, seen)
			assert.Equal(t, tt.wantError, decodeResponse(t, rr)["error"])
		})
	}
}

func TestAuthenticate_AcceptsServiceTokens(t *testing.T) {
	repo := new(MockUserRepo)
	s := newTestAuthService(repo)
	s.now = time.Now
	user := &types.UserProfile{ID: uuid.New(), Username: "traveler_01", Email: "traveler@example.com"}

	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	var seen string
	handler := Authenticate(discardLogger(), testJWT)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetUserIDFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, user.ID.String(), seen)
}

func TestAuthenticate_PanicsWithoutSecret(t *testing.T) {
	cfg := testJWT
	cfg.SecretKey = ""
	assert.Panics(t, func() {
		Authenticate(discardLogger(), cfg)
	})
}

package auth_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketvault/internal/auth"
	"ticketvault/internal/domain"
)

var alice = domain.Identity{Email: "a@x.com", Name: "Alice", Image: "https://img/a.png"}

func TestJWT_RoundTrip(t *testing.T) {
	token, err := auth.IssueToken("secret", "ticketvault", alice, time.Hour)
	require.NoError(t, err)

	got, err := auth.NewJWTVerifier("secret", "ticketvault").Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, alice, got)
}

func TestJWT_Rejects(t *testing.T) {
	valid, err := auth.IssueToken("secret", "ticketvault", alice, time.Hour)
	require.NoError(t, err)
	expired, err := auth.IssueToken("secret", "ticketvault", alice, -time.Minute)
	require.NoError(t, err)
	noEmail, err := auth.IssueToken("secret", "ticketvault", domain.Identity{Name: "x"}, time.Hour)
	require.NoError(t, err)
	unsigned := auth.GenerateEmulatorToken("", "uid", alice)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com", "iss": "ticketvault",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		verifier *auth.JWTVerifier
		token    string
	}{
		{"WrongSecret", auth.NewJWTVerifier("other", "ticketvault"), valid},
		{"WrongIssuer", auth.NewJWTVerifier("secret", "someone-else"), valid},
		{"Expired", auth.NewJWTVerifier("secret", "ticketvault"), expired},
		{"MissingEmail", auth.NewJWTVerifier("secret", "ticketvault"), noEmail},
		{"AlgNone", auth.NewJWTVerifier("secret", "ticketvault"), unsigned},
		{"NoExpiry", auth.NewJWTVerifier("secret", "ticketvault"), noExpiry},
		{"Garbage", auth.NewJWTVerifier("secret", "ticketvault"), "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.verifier.Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestIssueToken_EmptySecret(t *testing.T) {
	_, err := auth.IssueToken("", "ticketvault", alice, time.Hour)
	assert.Error(t, err)
}

// MockIDTokenVerifier implements auth.IDTokenVerifier.
type MockIDTokenVerifier struct {
	VerifyIDTokenFunc func(ctx context.Context, idToken string) (*fbauth.Token, error)
}

func (m *MockIDTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error) {
	return m.VerifyIDTokenFunc(ctx, idToken)
}

func TestFirebaseVerifier(t *testing.T) {
	v := auth.NewFirebaseVerifier(&MockIDTokenVerifier{
		VerifyIDTokenFunc: func(ctx context.Context, idToken string) (*fbauth.Token, error) {
			switch idToken {
			case "good":
				return &fbauth.Token{UID: "u1", Claims: map[string]interface{}{
					"email": "a@x.com", "name": "Alice", "picture": "https://img/a.png",
				}}, nil
			case "anonymous":
				return &fbauth.Token{UID: "u2", Claims: map[string]interface{}{}}, nil
			default:
				return nil, errors.New("signature mismatch")
			}
		},
	})

	got, err := v.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	_, err = v.Verify(context.Background(), "anonymous")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = v.Verify(context.Background(), "forged")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestGenerateEmulatorToken(t *testing.T) {
	token := auth.GenerateEmulatorToken("", "admin_user", alice)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	assert.Empty(t, parts[2])

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, auth.DefaultProjectID, payload["aud"])
	assert.Equal(t, "https://securetoken.google.com/"+auth.DefaultProjectID, payload["iss"])
	assert.Equal(t, "admin_user", payload["sub"])
	assert.Equal(t, "a@x.com", payload["email"])
	assert.Equal(t, "Alice", payload["name"])
}

// MockUserAdmin implements auth.UserAdmin.
type MockUserAdmin struct {
	GetUserFunc    func(ctx context.Context, uid string) (*fbauth.UserRecord, error)
	CreateUserFunc func(ctx context.Context, user *fbauth.UserToCreate) (*fbauth.UserRecord, error)
}

func (m *MockUserAdmin) GetUser(ctx context.Context, uid string) (*fbauth.UserRecord, error) {
	return m.GetUserFunc(ctx, uid)
}

func (m *MockUserAdmin) CreateUser(ctx context.Context, user *fbauth.UserToCreate) (*fbauth.UserRecord, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user)
	}
	return &fbauth.UserRecord{}, nil
}

func TestEnsureEmulatorUser_ExistingUser(t *testing.T) {
	created := false
	admin := &MockUserAdmin{
		GetUserFunc: func(ctx context.Context, uid string) (*fbauth.UserRecord, error) {
			return &fbauth.UserRecord{}, nil
		},
		CreateUserFunc: func(ctx context.Context, user *fbauth.UserToCreate) (*fbauth.UserRecord, error) {
			created = true
			return nil, nil
		},
	}

	ok, err := auth.EnsureEmulatorUser(context.Background(), admin, "admin_user", alice)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, created)
}

func TestEnsureEmulatorUser_EmulatorDown(t *testing.T) {
	admin := &MockUserAdmin{
		GetUserFunc: func(ctx context.Context, uid string) (*fbauth.UserRecord, error) {
			return nil, errors.New("connection refused")
		},
	}

	_, err := auth.EnsureEmulatorUser(context.Background(), admin, "admin_user", alice)
	assert.Error(t, err)
}

func TestIdentityContext(t *testing.T) {
	_, ok := auth.FromContext(context.Background())
	assert.False(t, ok)

	got, ok := auth.FromContext(auth.NewContext(context.Background(), alice))
	require.True(t, ok)
	assert.Equal(t, alice, got)
}

package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"

	"ticketvault/internal/domain"
)

const DefaultProjectID = "local-project-id"

// GenerateEmulatorToken creates an unsigned JWT accepted by the Firebase Auth Emulator.
func GenerateEmulatorToken(projectID, uid string, id domain.Identity) string {
	if projectID == "" {
		projectID = DefaultProjectID
	}

	header := `{"alg":"none","typ":"JWT"}`
	payload := map[string]interface{}{
		"iss":       "https://securetoken.google.com/" + projectID,
		"aud":       projectID,
		"auth_time": 1,
		"user_id":   uid,
		"sub":       uid,
		"iat":       1,
		"exp":       9999999999, // Never expire
		"email":     id.Email,
	}
	if id.Name != "" {
		payload["name"] = id.Name
	}
	if id.Image != "" {
		payload["picture"] = id.Image
	}

	pBytes, _ := json.Marshal(payload)
	enc := base64.RawURLEncoding

	// Format: Header.Payload.Signature (empty for none alg)
	return enc.EncodeToString([]byte(header)) + "." + enc.EncodeToString(pBytes) + "."
}

// UserAdmin is the part of *fbauth.Client needed to provision emulator users.
type UserAdmin interface {
	GetUser(ctx context.Context, uid string) (*fbauth.UserRecord, error)
	CreateUser(ctx context.Context, user *fbauth.UserToCreate) (*fbauth.UserRecord, error)
}

// EnsureEmulatorUser creates uid in the Auth Emulator unless it exists. It
// reports whether a user was created.
func EnsureEmulatorUser(ctx context.Context, client UserAdmin, uid string, id domain.Identity) (bool, error) {
	if _, err := client.GetUser(ctx, uid); err == nil {
		return false, nil
	} else if !fbauth.IsUserNotFound(err) {
		return false, fmt.Errorf("get user %s: %w", uid, err)
	}

	params := (&fbauth.UserToCreate{}).
		UID(uid).
		Email(id.Email).
		EmailVerified(true).
		Password("admin123")
	if id.Name != "" {
		params = params.DisplayName(id.Name)
	}

	if _, err := client.CreateUser(ctx, params); err != nil {
		return false, fmt.Errorf("create user %s: %w", uid, err)
	}
	return true, nil
}

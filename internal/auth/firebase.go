package auth

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"

	"ticketvault/internal/domain"
)

// IDTokenVerifier is the part of *fbauth.Client used here.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier accepts Firebase Auth ID tokens. Against the Auth
// Emulator the client also accepts unsigned tokens.
type FirebaseVerifier struct {
	client IDTokenVerifier
}

func NewFirebaseVerifier(client IDTokenVerifier) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (domain.Identity, error) {
	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	email := claim(tok.Claims, "email")
	if email == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}
	return domain.Identity{
		Email: email,
		Name:  claim(tok.Claims, "name"),
		Image: claim(tok.Claims, "picture"),
	}, nil
}

func claim(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}

// Command token prints a bearer token for calling the listing API locally.
package main

import (
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/pflag"

	"ticketvault/internal/auth"
	"ticketvault/internal/config"
	"ticketvault/internal/domain"
)

func main() {
	flags := pflag.NewFlagSet("token", pflag.ExitOnError)
	provider := flags.String("provider", "", "jwt or firebase (defaults to AUTH_PROVIDER)")
	email := flags.String("email", "admin@localhost.com", "caller email")
	name := flags.String("name", "", "caller display name")
	uid := flags.String("uid", "admin_user", "Firebase uid")
	ttl := flags.Duration("ttl", 24*time.Hour, "lifetime of a jwt token")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *provider == "" {
		*provider = cfg.Auth.Provider
	}

	id := domain.Identity{Email: *email, Name: *name}
	var token string
	switch *provider {
	case config.ProviderJWT:
		token, err = auth.IssueToken(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, id, *ttl)
	case config.ProviderFirebase:
		token = auth.GenerateEmulatorToken(cfg.Firestore.ProjectID, *uid, id)
	default:
		err = fmt.Errorf("unknown provider %q", *provider)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bearer %s\n", token)
}

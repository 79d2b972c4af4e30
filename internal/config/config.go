// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverMemory    = "memory"
	DriverRedis     = "redis"
	DriverFirestore = "firestore"
	DriverMongo     = "mongo"

	ProviderJWT      = "jwt"
	ProviderFirebase = "firebase"

	EnvDevelopment = "development"
	EnvProduction  = "production"

	DefaultJWTSecret = "dev-secret"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Firestore FirestoreConfig
	MongoDB   MongoDBConfig
	Auth      AuthConfig
}

type AppConfig struct {
	Env      string
	LogLevel string
}

type ServerConfig struct {
	Host              string
	Port              int
	CORSAllowedOrigin string
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type StorageConfig struct {
	Driver  string
	Timeout time.Duration
	Seed    bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

type FirestoreConfig struct {
	ProjectID  string
	DatabaseID string
	Collection string
}

type MongoDBConfig struct {
	URI        string
	Database   string
	Collection string
}

type AuthConfig struct {
	Provider  string
	JWTSecret string
	JWTIssuer string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags reads configuration from environment variables, letting the
// --host, --port and --storage flags override them when set.
func LoadWithFlags(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	// Cloud Functions and Cloud Run announce the port through PORT.
	if err := v.BindEnv("server.port", "SERVER_PORT", "PORT"); err != nil {
		return nil, err
	}

	if flags != nil {
		for key, name := range map[string]string{
			"server.host":    "host",
			"server.port":    "port",
			"storage.driver": "storage",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := bind(v)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", EnvDevelopment)
	v.SetDefault("app.log_level", "info")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.cors_allowed_origin", "*")

	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.timeout", "5s")
	v.SetDefault("storage.seed", true)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key", "ticketVaultEvents")

	v.SetDefault("firestore.project_id", "local-project-id")
	v.SetDefault("firestore.database_id", "ticketvault")
	v.SetDefault("firestore.collection", "events")

	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "ticketvault")
	v.SetDefault("mongodb.collection", "events")

	v.SetDefault("auth.provider", ProviderJWT)
	v.SetDefault("auth.jwt_secret", DefaultJWTSecret)
	v.SetDefault("auth.jwt_issuer", "ticketvault")
}

func bind(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      strings.ToLower(v.GetString("app.env")),
			LogLevel: v.GetString("app.log_level"),
		},
		Server: ServerConfig{
			Host:              v.GetString("server.host"),
			Port:              v.GetInt("server.port"),
			CORSAllowedOrigin: v.GetString("server.cors_allowed_origin"),
		},
		Storage: StorageConfig{
			Driver:  strings.ToLower(v.GetString("storage.driver")),
			Timeout: v.GetDuration("storage.timeout"),
			Seed:    v.GetBool("storage.seed"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			Key:      v.GetString("redis.key"),
		},
		Firestore: FirestoreConfig{
			ProjectID:  v.GetString("firestore.project_id"),
			DatabaseID: v.GetString("firestore.database_id"),
			Collection: v.GetString("firestore.collection"),
		},
		MongoDB: MongoDBConfig{
			URI:        v.GetString("mongodb.uri"),
			Database:   v.GetString("mongodb.database"),
			Collection: v.GetString("mongodb.collection"),
		},
		Auth: AuthConfig{
			Provider:  strings.ToLower(v.GetString("auth.provider")),
			JWTSecret: v.GetString("auth.jwt_secret"),
			JWTIssuer: v.GetString("auth.jwt_issuer"),
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverRedis, DriverFirestore, DriverMongo:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Auth.Provider {
	case ProviderJWT, ProviderFirebase:
	default:
		return fmt.Errorf("unknown auth provider %q", c.Auth.Provider)
	}

	if c.Storage.Timeout <= 0 {
		return fmt.Errorf("storage timeout must be positive, got %s", c.Storage.Timeout)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.IsProduction() && c.Auth.Provider == ProviderJWT &&
		(c.Auth.JWTSecret == "" || c.Auth.JWTSecret == DefaultJWTSecret) {
		return fmt.Errorf("AUTH_JWT_SECRET must be set in production")
	}

	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.App.Env == EnvProduction
}

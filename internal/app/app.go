// Package app assembles the listing service from configuration: storage
// backend, identity verifier, store, query service and HTTP handler.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	_ "ticketvault/docs"
	"ticketvault/internal/auth"
	"ticketvault/internal/config"
	"ticketvault/internal/repository"
	"ticketvault/internal/service"
	"ticketvault/internal/store"
	"ticketvault/internal/transport"
)

// App is a fully wired listing service.
type App struct {
	Store   *store.Store
	handler http.Handler
	log     *zap.Logger
	closers []func(context.Context) error
}

// New connects to the configured backend and builds the HTTP handler. When
// seeding is enabled the sample inventory is written into an empty store.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{log: log}

	repo, err := a.openRepository(ctx, cfg)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}

	verifier, err := newVerifier(ctx, cfg)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("init %s auth: %w", cfg.Auth.Provider, err)
	}

	a.Store = store.New(repo,
		store.WithLogger(log),
		store.WithTimeout(cfg.Storage.Timeout),
	)

	if cfg.Storage.Seed {
		if _, err := a.Store.Seed(ctx, store.SeedInventory()); err != nil {
			a.Close(ctx)
			return nil, fmt.Errorf("seed listings: %w", err)
		}
	}

	router := transport.NewRouter(a.Store, service.NewQueryService(a.Store), log)
	api := transport.Chain(router, transport.ChainOptions{
		Verifier:      verifier,
		Logger:        log,
		AllowedOrigin: cfg.Server.CORSAllowedOrigin,
		Production:    cfg.IsProduction(),
	})
	docs := httpSwagger.Handler(httpSwagger.DeepLinking(false))

	a.handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/swagger/") {
			docs(w, r)
			return
		}
		api.ServeHTTP(w, r)
	})

	log.Info("Listing service ready",
		zap.String("storage", cfg.Storage.Driver),
		zap.String("auth", cfg.Auth.Provider),
		zap.String("env", cfg.App.Env),
	)
	return a, nil
}

// Handler returns the root handler, Swagger UI included.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Close releases backend connections.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) openRepository(ctx context.Context, cfg *config.Config) (repository.ListingRepository, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return repository.NewMemoryRepository(), nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis at %s: %w", cfg.Redis.Addr, err)
		}
		return repository.NewRedisRepository(client, cfg.Redis.Key), nil

	case config.DriverFirestore:
		client, err := firestore.NewClientWithDatabase(ctx, cfg.Firestore.ProjectID, cfg.Firestore.DatabaseID)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })
		return repository.NewFirestoreRepository(client, cfg.Firestore.Collection), nil

	case config.DriverMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return nil, fmt.Errorf("ping mongodb: %w", err)
		}
		repo := repository.NewMongoRepository(client, cfg.MongoDB.Database, cfg.MongoDB.Collection)
		if err := repository.EnsureIndexes(ctx, repo); err != nil {
			return nil, err
		}
		return repo, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func newVerifier(ctx context.Context, cfg *config.Config) (auth.Verifier, error) {
	switch cfg.Auth.Provider {
	case config.ProviderJWT:
		return auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer), nil

	case config.ProviderFirebase:
		fb, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firestore.ProjectID})
		if err != nil {
			return nil, fmt.Errorf("error initializing firebase app: %w", err)
		}
		client, err := fb.Auth(ctx)
		if err != nil {
			return nil, fmt.Errorf("error getting auth client: %w", err)
		}
		return auth.NewFirebaseVerifier(client), nil
	}
	return nil, fmt.Errorf("unknown auth provider %q", cfg.Auth.Provider)
}

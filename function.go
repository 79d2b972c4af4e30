package function

import (
	"context"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"go.uber.org/zap"

	"ticketvault/internal/app"
	"ticketvault/internal/config"
	"ticketvault/internal/logger"
)

// @title TicketVault Listing API
// @version 1.0
// @description Event ticket listings: browse, search and manage the listings you sell.

// @host 127.0.0.1:5000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func init() {
	functions.HTTP("ListingFunction", ListingFunction)
}

var (
	mu      sync.Mutex
	handler http.Handler
)

// Setup builds the service from cfg and installs it as the function
// handler. Callers that skip Setup get a service configured from the
// environment on the first request.
func Setup(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app.App, error) {
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	mu.Lock()
	handler = a.Handler()
	mu.Unlock()
	return a, nil
}

// ListingFunction is the HTTP entry point registered with the Functions
// Framework.
func ListingFunction(w http.ResponseWriter, r *http.Request) {
	current().ServeHTTP(w, r)
}

func current() http.Handler {
	mu.Lock()
	defer mu.Unlock()
	if handler != nil {
		return handler
	}

	cfg, err := config.Load()
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("Failed to load config", zap.Error(err))
	}
	log, err := logger.New(cfg.App)
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("Failed to create logger", zap.Error(err))
	}
	a, err := app.New(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize listing service", zap.Error(err))
	}
	handler = a.Handler()
	return handler
}

package function

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ticketvault/internal/config"
)

func TestListingFunction_ServesInstalledApp(t *testing.T) {
	cfg := &config.Config{
		App:     config.AppConfig{Env: config.EnvDevelopment, LogLevel: "info"},
		Server:  config.ServerConfig{Port: 5000, CORSAllowedOrigin: "*"},
		Storage: config.StorageConfig{Driver: config.DriverMemory, Timeout: time.Second, Seed: true},
		Auth:    config.AuthConfig{Provider: config.ProviderJWT, JWTSecret: "test-secret", JWTIssuer: "ticketvault"},
	}
	a, err := Setup(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	rec := httptest.NewRecorder()
	ListingFunction(rec, httptest.NewRequest(http.MethodGet, "/events/1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Taylor Swift - Eras Tour")
}

package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketvault/internal/app"
	"ticketvault/internal/auth"
	"ticketvault/internal/config"
	"ticketvault/internal/domain"
)

const (
	testAdminUID  = "admin_user"
	testProjectID = "local-project-id"
)

// setupEmulatorApp wires the service to the Firestore and Auth emulators.
func setupEmulatorApp(t *testing.T) (http.Handler, domain.Identity) {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" || os.Getenv("FIREBASE_AUTH_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST and FIREBASE_AUTH_EMULATOR_HOST not set")
	}
	ctx := context.Background()

	fb, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: testProjectID})
	require.NoError(t, err)
	client, err := fb.Auth(ctx)
	require.NoError(t, err)

	admin := domain.Identity{Email: "admin@test.local", Name: "Integration Test Admin"}
	_, err = auth.EnsureEmulatorUser(ctx, client, testAdminUID, admin)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Storage.Driver = config.DriverFirestore
	cfg.Storage.Seed = false
	cfg.Storage.Timeout = 10 * time.Second
	cfg.Auth.Provider = config.ProviderFirebase
	cfg.Firestore = config.FirestoreConfig{
		ProjectID:  testProjectID,
		Collection: fmt.Sprintf("events_it_%d", time.Now().UnixNano()),
	}

	a, err := app.New(ctx, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })

	return a.Handler(), admin
}

func TestEmulator_GuestAccess(t *testing.T) {
	h, _ := setupEmulatorApp(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Public-Preview", rec.Header().Get("X-Access-Type"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/events/", bytes.NewReader([]byte(`{"title":"Hack"}`))))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEmulator_AuthenticatedLifecycle(t *testing.T) {
	h, admin := setupEmulatorApp(t)
	bearer := "Bearer " + auth.GenerateEmulatorToken(testProjectID, testAdminUID, admin)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
		req.Header.Set("Authorization", bearer)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodPost, "/events", `{
		"title": "Emulator Night", "date": "2025-06-01", "venue": "Hall",
		"location": "Warsaw", "category": "Concert", "price": 100,
		"originalPrice": 120, "availableTickets": 2, "description": "integration"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data domain.EventListing `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.Data.ID)
	assert.Equal(t, admin.Email, created.Data.SellerEmail)

	rec = do(http.MethodGet, "/events/by-seller/ADMIN@test.local", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Emulator Night")

	rec = do(http.MethodPut, "/events/1", `{"price": 90}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"price":90`)

	rec = do(http.MethodDelete, "/events/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodGet, "/events/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

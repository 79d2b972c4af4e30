package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	// Load .env before anything reads the environment.
	_ "github.com/joho/godotenv/autoload"

	firebase "firebase.google.com/go/v4"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	function "ticketvault"
	"ticketvault/internal/auth"
	"ticketvault/internal/config"
	"ticketvault/internal/domain"
	"ticketvault/internal/logger"
)

// main starts the Functions Framework server. Only needed when running locally.
func main() {
	flags := pflag.NewFlagSet("server", pflag.ExitOnError)
	flags.String("host", "", "interface to listen on (empty for all)")
	flags.Int("port", 5000, "port to listen on")
	flags.String("storage", config.DriverMemory, "storage driver: memory, redis, firestore or mongo")
	adminUID := flags.String("emulator-uid", "admin_user", "Auth Emulator user to provision")
	adminEmail := flags.String("emulator-email", "admin@localhost.com", "email of the Auth Emulator user")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.LoadWithFlags(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	a, err := function.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize listing service", zap.Error(err))
	}
	defer a.Close(ctx)

	// Provision a user in the Auth Emulator so its tokens verify.
	if os.Getenv("FIREBASE_AUTH_EMULATOR_HOST") != "" {
		id := domain.Identity{Email: *adminEmail, Name: "Local Admin"}
		go createLocalAdminUser(cfg.Firestore.ProjectID, *adminUID, id, log)
	}

	local := cfg.Server
	if local.Host == "" {
		local.Host = "127.0.0.1"
	}
	log.Info("Server starting",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("url", "http://"+local.Addr()),
		zap.String("swagger", "http://"+local.Addr()+"/swagger/index.html"),
	)

	if err := funcframework.StartHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatal("funcframework.StartHostPort", zap.Error(err))
	}
}

func createLocalAdminUser(projectID, uid string, id domain.Identity, log *zap.Logger) {
	// Give the server and emulator a moment to settle.
	time.Sleep(1 * time.Second)

	ctx := context.Background()
	log = log.With(zap.String("uid", uid))

	fb, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		log.Warn("Failed to init firebase app", zap.Error(err))
		return
	}
	client, err := fb.Auth(ctx)
	if err != nil {
		log.Warn("Failed to get auth client", zap.Error(err))
		return
	}

	created, err := auth.EnsureEmulatorUser(ctx, client, uid, id)
	switch {
	case err != nil:
		log.Warn("Failed to create emulator user (emulator might be down)", zap.Error(err))
	case created:
		log.Info("Created emulator user", zap.String("email", id.Email))
	default:
		log.Info("Emulator user already exists")
	}

	token := auth.GenerateEmulatorToken(projectID, uid, id)
	fmt.Printf("ADMIN TOKEN (paste into Swagger 'Authorize'):\nBearer %s\n", token)
}

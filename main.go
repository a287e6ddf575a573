package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	api "github.com/rpupo63/ideaboard-backend/api"
	"github.com/rpupo63/ideaboard-backend/config"
	"github.com/rpupo63/ideaboard-backend/database"
	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/rpupo63/ideaboard-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	env := config.New()
	settings := config.Load(env)
	setupLogger(settings.Debug)

	if settings.AnthropicKeyParameter != "" && !settings.AIEnabled() {
		settings = resolveAIKey(settings)
	}

	db, err := database.Open(settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		log.Fatal().Err(err).Msg("Error testing database connection")
	}

	// If generating models, run generation and exit
	if strings.ToLower(getEnv(env, "GENERATE_MODELS", "false")) == "true" {
		fmt.Println("Generating models and query helpers...")
		models.GenerateModels(db)
		return
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Error migrating database")
	}

	advisor, err := services.NewAdvisor(settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing AI advisor")
	}

	errChannel := make(chan error, 2)

	server, err := api.NewServer(settings, database.New(db), advisor)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// setupLogger uses a console writer at debug level for development and JSON at info level otherwise
func setupLogger(debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// resolveAIKey reads the AI credential from SSM Parameter Store
func resolveAIKey(settings config.Settings) config.Settings {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := config.NewParameterStore(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Could not create SSM client, AI features disabled")
		return settings
	}
	return config.ResolveAIKey(ctx, settings, store)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of key from the environment map or a fallback value.
func getEnv(env map[string]string, key, fallback string) string {
	return config.GetString(env, key, fallback)
}

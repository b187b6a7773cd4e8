package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	completionURLEnvKey = "COMPLETION_API_URL"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	sessionTTLEnvKey    = "SESSION_TTL_HOURS"

	// Proxy endpoint that forwards chat messages to the generation model.
	defaultCompletionURL = "https://dev.wenivops.co.kr/services/openai-api"
)

type App struct {
	Port            string
	CompletionURL   string
	DBConnectionURL string
	SessionTTLHours int
}

func NewApp() (App, error) {
	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	completionURL, ok := os.LookupEnv(completionURLEnvKey)
	if !ok {
		completionURL = defaultCompletionURL
	}

	// empty means the in-memory store
	dbConn := os.Getenv(dbConnEnvKey)

	ttlHours := 0
	if raw, ok := os.LookupEnv(sessionTTLEnvKey); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return App{}, fmt.Errorf("invalid %s value %q", sessionTTLEnvKey, raw)
		}
		ttlHours = parsed
	}

	return App{
		Port:            port,
		CompletionURL:   completionURL,
		DBConnectionURL: dbConn,
		SessionTTLHours: ttlHours,
	}, nil
}

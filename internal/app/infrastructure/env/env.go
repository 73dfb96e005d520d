package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment is the process configuration. BOT_TOKEN and OWNER_ID are
// required, everything else has a workable default.
type Environment struct {
	BotToken   string
	OwnerID    int64
	DataFile   string
	LogLevel   string
	GinMode    string
	ListenAddr string
	AuthToken  string
}

// New reads an optional .env file, then the environment.
func New() (*Environment, error) {
	_ = godotenv.Load()

	e := &Environment{
		DataFile:   getEnv("DATA_FILE", "data.json"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		GinMode:    getEnv("GIN_MODE", "release"),
		ListenAddr: getEnv("LISTEN_ADDR", ":8880"),
		AuthToken:  os.Getenv("AUTH_TOKEN"),
	}

	e.BotToken = os.Getenv("BOT_TOKEN")
	if e.BotToken == "" {
		return nil, errors.New("BOT_TOKEN is required")
	}

	ownerStr := os.Getenv("OWNER_ID")
	if ownerStr == "" {
		return nil, errors.New("OWNER_ID is required")
	}

	ownerID, err := strconv.ParseInt(ownerStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse OWNER_ID: %w", err)
	}
	e.OwnerID = ownerID

	return e, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

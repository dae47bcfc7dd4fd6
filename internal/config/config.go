package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string

	GCPProjectID      string
	YNABSecretID      string
	YNABSecretVersion string
	// YNABSecrets is the raw directory JSON; when set the secret store is not used.
	YNABSecrets   string
	DirectoryFile string

	YNABAPIURL  string
	YNABTimeout time.Duration
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	env := Config{
		Port:              "8080",
		LogLevel:          "info",
		YNABSecretID:      "ynab",
		YNABSecretVersion: "latest",
		YNABAPIURL:        "https://api.ynab.com/v1",
		YNABTimeout:       30 * time.Second,
	}

	envPort := os.Getenv("PORT")
	envLogLevel := os.Getenv("LOG_LEVEL")
	envSecretID := os.Getenv("YNAB_SECRET_ID")
	envSecretVersion := os.Getenv("YNAB_SECRET_VERSION")
	envAPIURL := os.Getenv("YNAB_API_URL")
	envTimeout := os.Getenv("YNAB_TIMEOUT_SECONDS")

	env.GCPProjectID = os.Getenv("GCP_PROJECT_ID")
	env.YNABSecrets = os.Getenv("YNAB_SECRETS")
	env.DirectoryFile = os.Getenv("DIRECTORY_FILE")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	if len(envSecretID) != 0 {
		env.YNABSecretID = envSecretID
	}

	if len(envSecretVersion) != 0 {
		env.YNABSecretVersion = envSecretVersion
	}

	if len(envAPIURL) != 0 {
		env.YNABAPIURL = envAPIURL
	}

	if len(envTimeout) != 0 {
		seconds, err := strconv.Atoi(envTimeout)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid YNAB_TIMEOUT_SECONDS: %q", envTimeout)
		}
		env.YNABTimeout = time.Duration(seconds) * time.Second
	}

	return &env, nil
}

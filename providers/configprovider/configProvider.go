package configprovider

import (
	"hostel/providers"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type EnvConfigProvider struct {
	apiBaseURL  string
	httpTimeout int
	mockAPIPort string
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.apiBaseURL = os.Getenv("HOSTEL_API_BASE_URL")
	if e.apiBaseURL == "" {
		e.apiBaseURL = "http://localhost:8000/api"
	}

	e.httpTimeout = 30
	if raw := os.Getenv("HOSTEL_HTTP_TIMEOUT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			e.httpTimeout = parsed
		}
	}

	e.mockAPIPort = os.Getenv("MOCKAPI_PORT")
	if e.mockAPIPort == "" {
		e.mockAPIPort = "8000"
	}
	return nil
}

func (e *EnvConfigProvider) GetAPIBaseURL() string {
	return e.apiBaseURL
}

func (e *EnvConfigProvider) GetHTTPTimeoutSeconds() int {
	return e.httpTimeout
}

func (e *EnvConfigProvider) GetMockAPIPort() string {
	return e.mockAPIPort
}

// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultGenerationModel = "google-gla:gemini-2.0-flash"

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string

	// Generation
	GenerationModel string
	GeminiAPIKey    string
	OpenAIAPIKey    string

	// Amadeus
	AmadeusAPIKey    string
	AmadeusAPISecret string
	AmadeusBaseURL   string

	// Eventbrite
	EventbriteToken string
	EventbriteURL   string

	// OpenStreetMap
	NominatimURL string
	OverpassURL  string
	UserAgent    string

	// Transport
	HTTPTimeout    time.Duration
	GeocodeTimeout time.Duration

	// Persistence
	AirportsPostgresDSN string
	AirportsFile        string
	MongoURI            string
	MongoDB             string
	MongoUser           string
	MongoPassword       string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 120)) * time.Second,
		CORSOrigins:  getEnvAsList("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"),

		GenerationModel: getEnv("GENERATION_MODEL", getEnv("PYDANTIC_AI_MODEL", defaultGenerationModel)),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", "")),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),

		AmadeusAPIKey:    getEnv("AMADEUS_API_KEY", ""),
		AmadeusAPISecret: getEnv("AMADEUS_API_SECRET", ""),
		AmadeusBaseURL:   amadeusBaseURL(getEnv("AMADEUS_ENV", "test")),

		EventbriteToken: getEnv("EVENTBRITE_TOKEN", ""),
		EventbriteURL:   getEnv("EVENTBRITE_URL", "https://www.eventbriteapi.com/v3/events/search/"),

		NominatimURL: getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		OverpassURL:  getEnv("OVERPASS_URL", "http://overpass-api.de/api/interpreter"),
		UserAgent:    getEnv("USER_AGENT", "travel_planner_agent"),

		HTTPTimeout:    time.Duration(getEnvAsInt("HTTP_TIMEOUT", 30)) * time.Second,
		GeocodeTimeout: time.Duration(getEnvAsInt("GEOCODE_TIMEOUT", 10)) * time.Second,

		AirportsPostgresDSN: getEnv("AIRPORTS_POSTGRES_DSN", ""),
		AirportsFile:        getEnv("AIRPORTS_FILE", ""),
		MongoURI:            getEnv("MONGODB_DSN", ""),
		MongoDB:             getEnv("MONGO_DB", "travel_agent"),
		MongoUser:           getEnv("MONGO_USER", ""),
		MongoPassword:       getEnv("MONGO_PASSWORD", ""),
	}

	return config, nil
}

// HasFlightCredentials reports whether both Amadeus credentials are set.
// Missing credentials are not a config error; the flight search degrades.
func (c *Config) HasFlightCredentials() bool {
	return c.AmadeusAPIKey != "" && c.AmadeusAPISecret != ""
}

func amadeusBaseURL(env string) string {
	if env == "production" || env == "prod" {
		return "https://api.amadeus.com"
	}
	return "https://test.api.amadeus.com"
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, defaultValue), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

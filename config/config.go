package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int
	Mongo      MongoConfig
	Auth       AuthConfig
	External   ExternalConfig
	Storage    StorageConfig
	Events     EventsConfig
}

type MongoConfig struct {
	URI    string
	DBName string
}

type AuthConfig struct {
	// JWTSecret must be set; the server refuses to start without it.
	JWTSecret string
	// TokenTTLMinutes is the access token lifetime (default 1440, one day).
	TokenTTLMinutes int
}

type ExternalConfig struct {
	OpenWeatherKey string
	OpenTripMapKey string
}

// StorageConfig selects the object storage backend for package media.
// An empty Backend disables uploads.
type StorageConfig struct {
	Backend string // "minio" or "gcs"
	Minio   MinioConfig
	GCS     GCSConfig
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

type GCSConfig struct {
	Bucket          string
	CredentialsFile string
}

// EventsConfig selects the booking-event broker. An empty Backend
// disables publishing.
type EventsConfig struct {
	Backend   string // "rabbitmq" or "pubsub"
	AMQPURL   string
	ProjectID string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	return Config{
		ServerPort: getEnvInt("SERVER_PORT", 8080),
		Mongo: MongoConfig{
			URI:    getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
			DBName: getEnv("MONGO_DB", "tripsync"),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", ""),
			TokenTTLMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 1440),
		},
		External: ExternalConfig{
			OpenWeatherKey: getEnv("OPENWEATHER_KEY", ""),
			OpenTripMapKey: getEnv("OPENTRIPMAP_KEY", ""),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", ""),
			Minio: MinioConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", "tripsync-media"),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
				PublicURL: getEnv("MINIO_PUBLIC_URL", ""),
			},
			GCS: GCSConfig{
				Bucket:          getEnv("GCS_BUCKET", ""),
				CredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
			},
		},
		Events: EventsConfig{
			Backend:   getEnv("EVENTS_BACKEND", ""),
			AMQPURL:   getEnv("AMQP_URL", ""),
			ProjectID: getEnv("GCP_PROJECT_ID", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		return valueStr == "true" || valueStr == "1"
	}
	return defaultValue
}

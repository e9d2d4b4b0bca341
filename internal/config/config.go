package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort string // HTTP listen port

	StoreBackend string // "mongo" or "mysql"

	MongoURI string // MongoDB connection string
	MongoDB  string // MongoDB database name

	DBUser     string // MySQL user
	DBPassword string // MySQL password
	DBHost     string // MySQL host
	DBPort     string // MySQL port
	DBName     string // MySQL database name

	RedisAddr string // Redis server address; empty disables caching
	RedisPass string // Redis password
	RedisDB   int    // Redis database number

	UploadDir string // Directory for uploaded booking images

	AdminAuthPolicy string // Admin password policy: "plain" or "bcrypt"
	FormatDates     bool   // Surface booking_date as YYYY-MM-DD (relational backend)
	IsProd          bool   // Is production environment
}

// get reads an environment variable with a fallback default.
func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort: get("APP_PORT", "3000"),

		StoreBackend: get("STORE_BACKEND", "mongo"),

		MongoURI: get("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:  get("MONGO_DB", "test_db"),

		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "3306"),
		DBName:     os.Getenv("DB_NAME"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASS"),
		RedisDB:   redisDB,

		UploadDir: get("UPLOAD_DIR", "./uploads"),

		AdminAuthPolicy: get("ADMIN_AUTH_POLICY", "plain"),
		FormatDates:     os.Getenv("FORMAT_BOOKING_DATES") == "true",
		IsProd:          os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the MySQL connection string for the relational backend.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

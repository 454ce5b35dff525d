package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvProduction = "production"
)

type Config struct {
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	SQLitePath      string
	ServerPort      string
	LogLevel        string
	AppEnv          string
	SeedData        bool
	ShutdownTimeout time.Duration
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "trivia")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SQLITE_PATH", "trivia.db")
	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SEED_DATA", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		DBDriver:        v.GetString("DB_DRIVER"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBUser:          v.GetString("DB_USER"),
		DBPassword:      v.GetString("DB_PASSWORD"),
		DBName:          v.GetString("DB_NAME"),
		DBSSLMode:       v.GetString("DB_SSLMODE"),
		SQLitePath:      v.GetString("SQLITE_PATH"),
		ServerPort:      v.GetString("SERVER_PORT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		AppEnv:          v.GetString("APP_ENV"),
		SeedData:        v.GetBool("SEED_DATA"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
}

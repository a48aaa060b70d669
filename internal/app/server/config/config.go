package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
}

type DB struct {
	Driver      string
	DatabaseURI string
}

type Server struct {
	RunAddress      string
	MaxUploadBytes  int64
	CORSOrigins     []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type Logger struct {
	LogLevel string
}

// MustLoad reads an optional .env file and then the process environment.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return Load(viper.New())
}

// Load builds a Config from v, falling back to defaults for unset keys.
func Load(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("database_uri", "data.db")
	v.SetDefault("run_address", ":5050")
	v.SetDefault("max_upload_bytes", int64(32<<20))
	v.SetDefault("cors_origins", "*")
	v.SetDefault("read_timeout", 30*time.Second)
	v.SetDefault("write_timeout", 60*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("log_level", "info")

	return &Config{
		Env: v.GetString("app_env"),
		DB: DB{
			Driver:      strings.ToLower(v.GetString("db_driver")),
			DatabaseURI: v.GetString("database_uri"),
		},
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			MaxUploadBytes:  v.GetInt64("max_upload_bytes"),
			CORSOrigins:     splitList(v.GetString("cors_origins")),
			ReadTimeout:     v.GetDuration("read_timeout"),
			WriteTimeout:    v.GetDuration("write_timeout"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Logger: Logger{LogLevel: v.GetString("log_level")},
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Artifact   ArtifactConfig
	Kubernetes KubernetesConfig
	Session    SessionConfig
	SQLite     SQLiteConfig
	Database   DatabaseConfig
	CORS       CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LoggerConfig struct {
	Level  string
	Format string
}

type ArtifactConfig struct {
	ModelURL      string
	VectorizerURL string
	FetchTimeout  time.Duration
	MaxBytes      int64
}

type KubernetesConfig struct {
	Enabled        bool
	InCluster      bool
	KubeConfigPath string
}

type SessionConfig struct {
	Backend      string
	CookieName   string
	TTL          time.Duration
	SecureCookie bool
}

type SQLiteConfig struct {
	Path string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type CORSConfig struct {
	AllowedOrigins []string
}

const (
	SessionBackendMemory   = "memory"
	SessionBackendSQLite   = "sqlite"
	SessionBackendPostgres = "postgres"
)

func Load() (*Config, error) {
	// A missing .env is fine; real environment variables take precedence.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	// No default artifact locations: without them the service starts degraded.
	v.SetDefault("ARTIFACT_MODEL_URL", "")
	v.SetDefault("ARTIFACT_VECTORIZER_URL", "")
	v.SetDefault("ARTIFACT_FETCH_TIMEOUT", "60s")
	v.SetDefault("ARTIFACT_MAX_BYTES", 64<<20)
	v.SetDefault("KUBERNETES_ENABLED", false)
	v.SetDefault("KUBERNETES_IN_CLUSTER", false)
	v.SetDefault("KUBERNETES_KUBECONFIG", "")
	v.SetDefault("SESSION_BACKEND", SessionBackendMemory)
	v.SetDefault("SESSION_COOKIE_NAME", "phishing_session")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_SECURE_COOKIE", false)
	v.SetDefault("SQLITE_PATH", "sessions.db")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_NAME", "phishing")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Env
	v.AutomaticEnv()

	fetchTimeout, err := time.ParseDuration(v.GetString("ARTIFACT_FETCH_TIMEOUT"))
	if err != nil {
		fetchTimeout = 60 * time.Second
	}
	sessionTTL, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 24 * time.Hour
	}
	connLifetime, err := time.ParseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"))
	if err != nil {
		connLifetime = 30 * time.Minute
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Artifact: ArtifactConfig{
			ModelURL:      v.GetString("ARTIFACT_MODEL_URL"),
			VectorizerURL: v.GetString("ARTIFACT_VECTORIZER_URL"),
			FetchTimeout:  fetchTimeout,
			MaxBytes:      v.GetInt64("ARTIFACT_MAX_BYTES"),
		},
		Kubernetes: KubernetesConfig{
			Enabled:        v.GetBool("KUBERNETES_ENABLED"),
			InCluster:      v.GetBool("KUBERNETES_IN_CLUSTER"),
			KubeConfigPath: v.GetString("KUBERNETES_KUBECONFIG"),
		},
		Session: SessionConfig{
			Backend:      strings.ToLower(v.GetString("SESSION_BACKEND")),
			CookieName:   v.GetString("SESSION_COOKIE_NAME"),
			TTL:          sessionTTL,
			SecureCookie: v.GetBool("SESSION_SECURE_COOKIE"),
		},
		SQLite: SQLiteConfig{
			Path: v.GetString("SQLITE_PATH"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connLifetime,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	switch cfg.Session.Backend {
	case SessionBackendMemory, SessionBackendSQLite, SessionBackendPostgres:
	default:
		return nil, fmt.Errorf("unknown SESSION_BACKEND %q", cfg.Session.Backend)
	}

	return cfg, nil
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

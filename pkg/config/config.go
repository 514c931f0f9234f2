package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Security  SecurityConfig
	Upload    UploadConfig
	Ratings   RatingsConfig
	RateLimit RateLimitConfig
	Admin     AdminSeedConfig
	Log       LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// IsProduction indica si la app corre en producción.
func (c AppConfig) IsProduction() bool { return c.Env == "production" }

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	AutoMigrate bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig secretos y vigencias del par access/refresh.
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
	Audience      string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SecurityConfig parámetros de hashing.
type SecurityConfig struct {
	BcryptCost int
}

// UploadConfig almacenamiento local de fotos de tiendas.
type UploadConfig struct {
	Dir       string
	MaxBytes  int64
	URLPrefix string
}

// RatingsConfig estado inicial de las calificaciones nuevas ("approved" o "pending").
type RatingsConfig struct {
	DefaultStatus string
}

// RateLimitConfig limitador por cliente. RPS <= 0 lo desactiva.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// AdminSeedConfig credenciales del administrador creado al arrancar si no existe.
type AdminSeedConfig struct {
	Email    string
	Password string
	Name     string
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := getString(v, "APP_ENV", "development")

	accessTTL, err := parseDuration(getString(v, "JWT_EXPIRES_IN", "15m"))
	if err != nil {
		return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}
	refreshTTL, err := parseDuration(getString(v, "JWT_REFRESH_EXPIRES_IN", "7d"))
	if err != nil {
		return nil, fmt.Errorf("JWT_REFRESH_EXPIRES_IN: %w", err)
	}

	port := getInt(v, "HTTP_PORT", 0)
	if port == 0 {
		port = getInt(v, "PORT", 5000)
	}

	// En producción se limita por defecto; en desarrollo no.
	defaultRPS := "0"
	if env == "production" {
		defaultRPS = "5"
	}
	rps, err := strconv.ParseFloat(getString(v, "RATE_LIMIT_RPS", defaultRPS), 64)
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:  env,
			Name: getString(v, "APP_NAME", "store-rating-api"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "store_rating"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 10),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			AccessSecret:  getString(v, "JWT_SECRET", ""),
			RefreshSecret: getString(v, "JWT_REFRESH_SECRET", ""),
			AccessTTL:     accessTTL,
			RefreshTTL:    refreshTTL,
			Issuer:        getString(v, "JWT_ISSUER", "store-rating-platform"),
			Audience:      getString(v, "JWT_AUDIENCE", "store-rating-users"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        port,
			CORSOrigins: splitList(getString(v, "CORS_ORIGINS", "http://localhost:3000,http://localhost:3002,http://127.0.0.1:3000,http://127.0.0.1:3002")),
		},
		Security: SecurityConfig{
			BcryptCost: clamp(getInt(v, "BCRYPT_SALT_ROUNDS", 12), 4, 31),
		},
		Upload: UploadConfig{
			Dir:       getString(v, "UPLOAD_DIR", "uploads"),
			MaxBytes:  int64(getInt(v, "UPLOAD_MAX_BYTES", 5*1024*1024)),
			URLPrefix: strings.TrimRight(getString(v, "UPLOAD_URL_PREFIX", "/uploads"), "/"),
		},
		Ratings: RatingsConfig{
			DefaultStatus: getString(v, "RATINGS_DEFAULT_STATUS", "approved"),
		},
		RateLimit: RateLimitConfig{
			RPS:   rps,
			Burst: getInt(v, "RATE_LIMIT_BURST", 20),
		},
		Admin: AdminSeedConfig{
			Email:    getString(v, "ADMIN_EMAIL", "admin@storereview.com"),
			Password: getString(v, "ADMIN_PASSWORD", "Admin@123456"),
			Name:     getString(v, "ADMIN_NAME", "System Administrator"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
		return errors.New("JWT_SECRET y JWT_REFRESH_SECRET son obligatorios")
	}
	if c.Ratings.DefaultStatus != "approved" && c.Ratings.DefaultStatus != "pending" {
		return fmt.Errorf("RATINGS_DEFAULT_STATUS inválido: %q", c.Ratings.DefaultStatus)
	}
	if c.DB.MaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS inválido: %d", c.DB.MaxConns)
	}
	return nil
}

// parseDuration acepta duraciones Go ("15m", "1h") y días ("7d").
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("duración inválida %q", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(v.GetString(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

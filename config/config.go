package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"footballclub/logger"
	"footballclub/models"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port           string `koanf:"port"`
	BindAddress    string `koanf:"bind_address"`
	GinMode        string `koanf:"gin_mode"`
	DBHost         string `koanf:"db_host" validate:"required"`
	DBPort         string `koanf:"db_port" validate:"required"`
	DBUser         string `koanf:"db_user" validate:"required"`
	DBPassword     string `koanf:"db_password" validate:"required"`
	DBName         string `koanf:"db_name" validate:"required"`
	DBSSLMode      string `koanf:"db_sslmode"`
	DBMaxOpenConns int    `koanf:"db_max_open_conns" validate:"gte=0"`
	JWTSecret      string `koanf:"secret_key" validate:"required"`
	TokenTTLMin    int    `koanf:"token_ttl_minutes" validate:"gte=0"`
	LogLevel       string `koanf:"log_level"`
	LogFormat      string `koanf:"log_format" validate:"omitempty,oneof=console json"`
	AuthUsers      string `koanf:"auth_users"`

	Credentials []models.Credential `koanf:"-"`
}

// knownKeys are the environment variables Load reads, lowercased.
var knownKeys = map[string]bool{
	"port": true, "bind_address": true, "gin_mode": true,
	"db_host": true, "db_port": true, "db_user": true, "db_password": true,
	"db_name": true, "db_sslmode": true, "db_max_open_conns": true,
	"secret_key": true, "token_ttl_minutes": true,
	"log_level": true, "log_format": true, "auth_users": true,
}

// Load reads the configuration from the environment, after loading an
// optional dotenv file named by ENV_FILE (default load_dotenv.env) and .env.
// Missing required values are reported together in the returned error.
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if !knownKeys[key] {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.applyDefaults()

	if err := validate(cfg); err != nil {
		return nil, err
	}

	creds, err := ParseCredentials(cfg.AuthUsers)
	if err != nil {
		return nil, err
	}
	cfg.Credentials = creds

	return cfg, nil
}

func loadDotenv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = "load_dotenv.env"
	}

	for _, p := range []string{path, ".env"} {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "8000"
	}
	if c.BindAddress == "" {
		c.BindAddress = "127.0.0.1"
	}
	if c.DBSSLMode == "" {
		c.DBSSLMode = "disable"
	}
	if c.DBMaxOpenConns == 0 {
		c.DBMaxOpenConns = 10
	}
	if c.TokenTTLMin == 0 {
		c.TokenTTLMin = 30
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "console"
	}
}

func validate(cfg *Config) error {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.ToUpper(f.Tag.Get("koanf"))
	})

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}

	var msgs []string
	if len(missing) > 0 {
		msgs = append(msgs, "missing required variables: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		msgs = append(msgs, "invalid variables: "+strings.Join(invalid, ", "))
	}
	return errors.New("config: " + strings.Join(msgs, "; "))
}

// ParseCredentials decodes AUTH_USERS: comma separated
// username:bcrypt_hash:role entries.
func ParseCredentials(raw string) ([]models.Credential, error) {
	var creds []models.Credential
	seen := map[string]bool{}

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("config: AUTH_USERS entry %q must be username:hash:role", entry)
		}

		if _, err := bcrypt.Cost([]byte(parts[1])); err != nil {
			return nil, fmt.Errorf("config: AUTH_USERS entry for %q is not a bcrypt hash: %w", parts[0], err)
		}

		role := models.Role(parts[2])
		if !role.Valid() {
			return nil, fmt.Errorf("config: AUTH_USERS entry for %q has unknown role %q", parts[0], parts[2])
		}
		if seen[parts[0]] {
			return nil, fmt.Errorf("config: AUTH_USERS lists %q twice", parts[0])
		}
		seen[parts[0]] = true

		creds = append(creds, models.Credential{
			Username:     parts[0],
			PasswordHash: parts[1],
			Role:         role,
		})
	}

	return creds, nil
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMin) * time.Minute
}

func (c *Config) Addr() string {
	return c.BindAddress + ":" + c.Port
}

func InitDB(cfg *Config, log zerolog.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)

	return db, nil
}

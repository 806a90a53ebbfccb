package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"petcare_backend/pkg/utils"

	"gopkg.in/yaml.v3"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	DefaultAdminPhone = "111-111-1111"

	// DefaultJWTSecret is only acceptable while authorization is not enforced.
	DefaultJWTSecret = "change-me-petcare-secret"
)

// Config is the full runtime configuration of the server.
type Config struct {
	Port  string `yaml:"port"`
	Store string `yaml:"store"`

	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Otel     OtelConfig     `yaml:"otel"`

	ServeWeb bool `yaml:"serve_web"`
}

type DatabaseConfig struct {
	Host         string `yaml:"host"`
	Port         string `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Name         string `yaml:"name"`
	SSLMode      string `yaml:"sslmode"`
	SchemaPath   string `yaml:"schema_path"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

// DSN renders a lib/pq keyword/value connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// AllowAll reports whether any origin is accepted.
func (c CORSConfig) AllowAll() bool {
	if len(c.AllowedOrigins) == 0 {
		return true
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"`
	TokenTTL       time.Duration `yaml:"token_ttl"`
	Enforce        bool          `yaml:"enforce"`
	AdminPhone     string        `yaml:"admin_phone"`
	AdminPhoneHash string        `yaml:"admin_phone_hash"`
	LoginRateLimit int           `yaml:"login_rate_limit"`
	LoginWindow    time.Duration `yaml:"login_rate_window"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type KafkaConfig struct {
	Brokers      []string `yaml:"brokers"`
	BookingTopic string   `yaml:"booking_topic"`
}

type OtelConfig struct {
	Enabled      bool    `yaml:"enabled"`
	OTLPEndpoint string  `yaml:"endpoint"`
	SampleRatio  float64 `yaml:"sampling_ratio"`
}

// Default returns the configuration used when neither a file nor the environment set a key.
func Default() Config {
	return Config{
		Port:  "8080",
		Store: StorePostgres,
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         "5432",
			User:         "petcare_user",
			Password:     "petcare_password",
			Name:         "petcare_db",
			SSLMode:      "disable",
			MaxOpenConns: 10,
		},
		CORS: CORSConfig{AllowedOrigins: []string{"*"}},
		Log:  LogConfig{Level: "info"},
		Auth: AuthConfig{
			JWTSecret:      DefaultJWTSecret,
			TokenTTL:       utils.DefaultAccessTokenTTL,
			AdminPhone:     DefaultAdminPhone,
			LoginRateLimit: 10,
			LoginWindow:    time.Minute,
		},
		Kafka: KafkaConfig{BookingTopic: "petcare.bookings"},
		Otel: OtelConfig{
			OTLPEndpoint: "localhost:4317",
			SampleRatio:  1,
		},
	}
}

// Load reads CONFIG_FILE when set, then applies environment overrides and validates the result.
func Load() (Config, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := errors.Join(cfg.applyEnv(), cfg.Validate()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides c from the environment. Malformed typed values are
// collected rather than ignored so startup fails on them.
func (c *Config) applyEnv() error {
	var errs []error
	readBool := func(key string, dst *bool) {
		v, err := utils.GetenvBool(key, *dst)
		if err != nil {
			errs = append(errs, err)
		}
		*dst = v
	}
	readInt := func(key string, dst *int) {
		v, err := utils.GetenvInt(key, *dst)
		if err != nil {
			errs = append(errs, err)
		}
		*dst = v
	}
	readDuration := func(key string, dst *time.Duration) {
		v, err := utils.GetenvDuration(key, *dst)
		if err != nil {
			errs = append(errs, err)
		}
		*dst = v
	}

	c.Port = utils.Getenv("PORT", c.Port)
	c.Store = strings.ToLower(utils.Getenv("STORE", c.Store))

	c.Database.Host = utils.Getenv("DB_HOST", c.Database.Host)
	c.Database.Port = utils.Getenv("DB_PORT", c.Database.Port)
	c.Database.User = utils.Getenv("DB_USER", c.Database.User)
	c.Database.Password = utils.Getenv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = utils.Getenv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = utils.Getenv("DB_SSLMODE", c.Database.SSLMode)
	c.Database.SchemaPath = utils.Getenv("DB_SCHEMA_PATH", c.Database.SchemaPath)
	readInt("DB_MAX_OPEN_CONNS", &c.Database.MaxOpenConns)

	if origins := utils.SplitList(os.Getenv("CORS_ALLOWED_ORIGINS")); len(origins) > 0 {
		c.CORS.AllowedOrigins = origins
	}

	c.Log.Level = utils.Getenv("LOG_LEVEL", c.Log.Level)
	readBool("LOG_PRETTY", &c.Log.Pretty)

	c.Auth.JWTSecret = utils.Getenv("JWT_SECRET", c.Auth.JWTSecret)
	readDuration("JWT_TTL", &c.Auth.TokenTTL)
	readBool("AUTH_ENFORCE", &c.Auth.Enforce)
	c.Auth.AdminPhone = utils.Getenv("ADMIN_PHONE", c.Auth.AdminPhone)
	c.Auth.AdminPhoneHash = utils.Getenv("ADMIN_PHONE_HASH", c.Auth.AdminPhoneHash)
	readInt("LOGIN_RATE_LIMIT", &c.Auth.LoginRateLimit)
	readDuration("LOGIN_RATE_WINDOW", &c.Auth.LoginWindow)

	c.Redis.Addr = utils.Getenv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = utils.Getenv("REDIS_PASSWORD", c.Redis.Password)

	if brokers := utils.SplitList(os.Getenv("KAFKA_BROKERS")); len(brokers) > 0 {
		c.Kafka.Brokers = brokers
	}
	c.Kafka.BookingTopic = utils.Getenv("KAFKA_BOOKING_TOPIC", c.Kafka.BookingTopic)

	readBool("OTEL_ENABLED", &c.Otel.Enabled)
	c.Otel.OTLPEndpoint = utils.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT", c.Otel.OTLPEndpoint)
	ratio, err := utils.GetenvFloat("OTEL_SAMPLING_RATIO", c.Otel.SampleRatio)
	if err != nil {
		errs = append(errs, err)
	}
	c.Otel.SampleRatio = ratio

	readBool("SERVE_WEB", &c.ServeWeb)

	return errors.Join(errs...)
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	var errs []error

	p, err := strconv.Atoi(c.Port)
	if err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a valid TCP port (got %q)", c.Port))
	}
	switch c.Store {
	case StorePostgres, StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE must be %q or %q (got %q)", StorePostgres, StoreMemory, c.Store))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	} else if c.Auth.Enforce && c.Auth.JWTSecret == DefaultJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be changed from the built-in default when AUTH_ENFORCE is on"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.Auth.AdminPhone == "" && c.Auth.AdminPhoneHash == "" {
		errs = append(errs, errors.New("one of ADMIN_PHONE or ADMIN_PHONE_HASH must be set"))
	}
	if c.Auth.LoginRateLimit < 0 {
		errs = append(errs, errors.New("LOGIN_RATE_LIMIT must not be negative"))
	}
	if c.Auth.LoginWindow <= 0 {
		errs = append(errs, errors.New("LOGIN_RATE_WINDOW must be positive"))
	}
	if c.Otel.SampleRatio < 0 || c.Otel.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("OTEL_SAMPLING_RATIO must be within [0,1] (got %v)", c.Otel.SampleRatio))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.BookingTopic == "" {
		errs = append(errs, errors.New("KAFKA_BOOKING_TOPIC must be set when KAFKA_BROKERS is"))
	}

	return errors.Join(errs...)
}

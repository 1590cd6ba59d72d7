package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort              = "3003"
	defaultUserServiceURL    = "http://localhost:3001"
	defaultProductServiceURL = "http://localhost:3002"

	defaultRequestTimeout   = 10 * time.Second
	defaultRateLimiterQPS   = 100
	defaultRateLimiterBurst = 100
	defaultPprofPort        = "6060"

	defaultPostgresHost    = "localhost"
	defaultPostgresPort    = "5432"
	defaultPostgresUser    = "postgres"
	defaultPostgresPass    = "postgres"
	defaultPostgresDB      = "orderdb"
	defaultPostgresSSLMode = "disable"

	defaultOrdersStatusGaugeInterval = 30 * time.Second

	defaultKafkaTopic         = "order.status.changed"
	defaultKafkaSaramaVersion = "3.6.0"
	defaultKafkaSendTimeout   = 2 * time.Second
)

type (
	Tasks struct {
		OrdersStatusGaugeInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill
		RateLimiterBurst int           // middleware rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
	}

	// Database: если задан URL, остальные поля для подключения не используются.
	Database struct {
		URL         string
		Host        string
		Port        string
		User        string
		Password    string
		DBName      string
		SSLMode     string
		AutoMigrate bool
	}

	Collaborators struct {
		UserServiceURL    string
		ProductServiceURL string
	}

	// Kafka: пустой Brokers отключает публикацию событий.
	Kafka struct {
		Brokers     string
		Topic       string
		SendTimeout time.Duration // верхняя граница ожидания публикации на пути запроса
		Sarama      Sarama
	}

	Sarama struct {
		Version string
	}

	Config struct {
		Tasks         Tasks
		Server        HTTPServer
		Database      Database
		Collaborators Collaborators
		Kafka         Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func (k Kafka) Enabled() bool {
	return len(k.BrokerList()) > 0
}

func (k Kafka) BrokerList() []string {
	var brokers []string
	for _, broker := range strings.Split(k.Brokers, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func loadFromEnv() (*Config, error) {
	gaugeInterval, err := osGetEnvDuration("BACKGROUND_ORDERS_STATUS_GAUGE_INTERVAL", defaultOrdersStatusGaugeInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kafkaSendTimeout, err := osGetEnvDuration("KAFKA_SEND_TIMEOUT", defaultKafkaSendTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS", defaultRateLimiterQPS)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST", defaultRateLimiterBurst)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED", false)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	autoMigrate, err := osGetBool("POSTGRES_AUTO_MIGRATE", true)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OrdersStatusGaugeInterval: gaugeInterval,
		},
		Server: HTTPServer{
			Port:             osGetString("PORT", defaultPort),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        osGetString("PPROF_PORT", defaultPprofPort),
		},
		Database: Database{
			URL:         os.Getenv("DATABASE_URL"),
			Host:        osGetString("POSTGRES_HOST", defaultPostgresHost),
			Port:        osGetString("POSTGRES_PORT", defaultPostgresPort),
			User:        osGetString("POSTGRES_USER", defaultPostgresUser),
			Password:    osGetString("POSTGRES_PASSWORD", defaultPostgresPass),
			DBName:      osGetString("POSTGRES_DB", defaultPostgresDB),
			SSLMode:     osGetString("POSTGRES_SSLMODE", defaultPostgresSSLMode),
			AutoMigrate: autoMigrate,
		},
		Collaborators: Collaborators{
			UserServiceURL:    strings.TrimRight(osGetString("USER_SERVICE_URL", defaultUserServiceURL), "/"),
			ProductServiceURL: strings.TrimRight(osGetString("PRODUCT_SERVICE_URL", defaultProductServiceURL), "/"),
		},
		Kafka: Kafka{
			Brokers:     os.Getenv("KAFKA_BROKERS"),
			Topic:       osGetString("KAFKA_TOPIC", defaultKafkaTopic),
			SendTimeout: kafkaSendTimeout,
			Sarama: Sarama{
				Version: osGetString("KAFKA_SARAMA_VERSION", defaultKafkaSaramaVersion),
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS must be positive")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateServiceURL("USER_SERVICE_URL", cfg.Collaborators.UserServiceURL); err != nil {
		return err
	}
	if err := validateServiceURL("PRODUCT_SERVICE_URL", cfg.Collaborators.ProductServiceURL); err != nil {
		return err
	}

	if cfg.Database.URL == "" {
		if cfg.Database.Host == "" {
			return errors.New("POSTGRES_HOST is required")
		}
		if cfg.Database.DBName == "" {
			return errors.New("POSTGRES_DB is required")
		}
	}

	if cfg.Tasks.OrdersStatusGaugeInterval <= 0 {
		return errors.New("BACKGROUND_ORDERS_STATUS_GAUGE_INTERVAL must be positive")
	}

	if cfg.Kafka.Enabled() {
		if cfg.Kafka.Topic == "" {
			return errors.New("KAFKA_TOPIC is required")
		}
		if cfg.Kafka.Sarama.Version == "" {
			return errors.New("KAFKA_SARAMA_VERSION is required")
		}
	}

	if cfg.Kafka.SendTimeout <= 0 {
		return errors.New("KAFKA_SEND_TIMEOUT must be positive")
	}

	return nil
}

func validateServiceURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s=%q: %w", name, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must contain a host, got %q", name, raw)
	}
	return nil
}

func osGetString(s, def string) string {
	val := os.Getenv(s)
	if val == "" {
		return def
	}
	return val
}

func osGetInt(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string, def bool) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

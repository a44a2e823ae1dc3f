package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		PackagesGaugeInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	GRPC struct {
		HealthPort string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr           string
		Password       string
		DB             int
		PricingTTL     time.Duration
		IdempotencyTTL time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PackageStatusChanged PackageStatusChanged
	}

	PackageStatusChanged struct {
		ProcessTimeout  time.Duration
		TrackingBaseURL string
	}

	Auth struct {
		JWTSecret  string
		TokenTTL   time.Duration
		Issuer     string
		LoginRate  float64 // attempts per second per client
		LoginBurst int
	}

	Payment struct {
		LatencyMin  time.Duration
		LatencyMax  time.Duration
		SuccessRate float64
	}

	Marketplace struct {
		MinDeposit    int64
		AdminPhone    string
		AdminPassword string
	}

	Config struct {
		Tasks       Tasks
		Server      HTTPServer
		GRPC        GRPC
		Database    Database
		Redis       Redis
		Kafka       Kafka
		Auth        Auth
		Payment     Payment
		Marketplace Marketplace
	}
)

const (
	defaultTokenTTL        = 24 * time.Hour
	defaultIssuer          = "marketplace"
	defaultLoginRate       = 0.2
	defaultLoginBurst      = 5
	defaultPaymentLatency  = 2500 * time.Millisecond
	defaultSuccessRate     = 0.9
	defaultMinDeposit      = 5000
	defaultPricingTTL      = 5 * time.Minute
	defaultIdempotencyTTL  = 24 * time.Hour
	defaultTrackingBaseURL = "https://expedi-cargo.ci/track"
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

// LoadDatabase reads only the database section; the migrator needs nothing else.
func LoadDatabase() (*Database, error) {
	db := loadDatabase()
	if err := validateDatabase(&db); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &db, nil
}

func loadDatabase() Database {
	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func loadFromEnv() (*Config, error) {
	gaugeInterval, err := osGetEnvDuration("BACKGROUND_PACKAGES_GAUGE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	packageStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PACKAGE_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pricingTTL, err := osGetEnvDuration("REDIS_PRICING_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	idempotencyTTL, err := osGetEnvDuration("REDIS_IDEMPOTENCY_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tokenTTL, err := osGetEnvDuration("AUTH_TOKEN_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	loginRate, err := osGetFloat("AUTH_LOGIN_RATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	loginBurst, err := osGetInt("AUTH_LOGIN_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	latencyMin, err := osGetEnvDuration("PAYMENT_LATENCY_MIN")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	latencyMax, err := osGetEnvDuration("PAYMENT_LATENCY_MAX")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	successRate, err := osGetFloat("PAYMENT_SUCCESS_RATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minDeposit, err := osGetInt64("MARKETPLACE_MIN_DEPOSIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := &Config{
		Tasks: Tasks{
			PackagesGaugeInterval: gaugeInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		GRPC: GRPC{
			HealthPort: os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: loadDatabase(),
		Redis: Redis{
			Addr:           os.Getenv("REDIS_ADDR"),
			Password:       os.Getenv("REDIS_PASSWORD"),
			DB:             redisDB,
			PricingTTL:     pricingTTL,
			IdempotencyTTL: idempotencyTTL,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PackageStatusChanged: PackageStatusChanged{
					ProcessTimeout:  packageStatusChangedTimeout,
					TrackingBaseURL: os.Getenv("TRACKING_BASE_URL"),
				},
			},
		},
		Auth: Auth{
			JWTSecret:  os.Getenv("AUTH_JWT_SECRET"),
			TokenTTL:   tokenTTL,
			Issuer:     os.Getenv("AUTH_ISSUER"),
			LoginRate:  loginRate,
			LoginBurst: loginBurst,
		},
		Payment: Payment{
			LatencyMin:  latencyMin,
			LatencyMax:  latencyMax,
			SuccessRate: successRate,
		},
		Marketplace: Marketplace{
			MinDeposit:    minDeposit,
			AdminPhone:    os.Getenv("ADMIN_PHONE"),
			AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		},
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills the business knobs that have a documented default.
// Connection settings have none and are checked by validateConfig.
func applyDefaults(cfg *Config) {
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = defaultIssuer
	}
	if cfg.Auth.LoginRate == 0 {
		cfg.Auth.LoginRate = defaultLoginRate
	}
	if cfg.Auth.LoginBurst == 0 {
		cfg.Auth.LoginBurst = defaultLoginBurst
	}
	if cfg.Payment.LatencyMin == 0 && cfg.Payment.LatencyMax == 0 {
		cfg.Payment.LatencyMin = defaultPaymentLatency
		cfg.Payment.LatencyMax = defaultPaymentLatency
	}
	if cfg.Payment.SuccessRate == 0 {
		cfg.Payment.SuccessRate = defaultSuccessRate
	}
	if cfg.Marketplace.MinDeposit == 0 {
		cfg.Marketplace.MinDeposit = defaultMinDeposit
	}
	if cfg.Redis.PricingTTL == 0 {
		cfg.Redis.PricingTTL = defaultPricingTTL
	}
	if cfg.Redis.IdempotencyTTL == 0 {
		cfg.Redis.IdempotencyTTL = defaultIdempotencyTTL
	}
	if cfg.Kafka.Handlers.PackageStatusChanged.TrackingBaseURL == "" {
		cfg.Kafka.Handlers.PackageStatusChanged.TrackingBaseURL = defaultTrackingBaseURL
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if cfg.GRPC.HealthPort == "" {
		return errors.New("GRPC_HEALTH_PORT is required")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Tasks.PackagesGaugeInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PACKAGES_GAUGE_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.PackageStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PACKAGE_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	if len(cfg.Auth.JWTSecret) < 32 {
		return errors.New("AUTH_JWT_SECRET is required and must be at least 32 bytes")
	}

	if cfg.Payment.LatencyMax < cfg.Payment.LatencyMin {
		return errors.New("PAYMENT_LATENCY_MAX must not be lower than PAYMENT_LATENCY_MIN")
	}
	if cfg.Payment.SuccessRate < 0 || cfg.Payment.SuccessRate > 1 {
		return errors.New("PAYMENT_SUCCESS_RATE must be within [0, 1]")
	}

	if cfg.Marketplace.MinDeposit < 0 {
		return errors.New("MARKETPLACE_MIN_DEPOSIT must not be negative")
	}
	if (cfg.Marketplace.AdminPhone == "") != (cfg.Marketplace.AdminPassword == "") {
		return errors.New("ADMIN_PHONE and ADMIN_PASSWORD must be set together")
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64(s string) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int64 format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

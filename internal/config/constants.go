package config

import "time"

// Server and logging defaults
const (
	DefaultPort        = "8080"
	DefaultLogDir      = "logs"
	DefaultServiceName = "mindquest"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
)

// Database defaults
const (
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "mindquest"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)

// Event delivery defaults
const (
	DefaultEventMaxRetries     = 3
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)

// HTTP rate limit defaults
const (
	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40
)

// Engine tuning defaults
const (
	DefaultRebalanceSchedule = "@daily"
	DefaultRebalanceWorkers  = 4
)

// EnvironmentProduction is the ENVIRONMENT value that turns insecure defaults into warnings
const EnvironmentProduction = "prod"

// ExampleAPIKey is the placeholder shipped in .env.example
const ExampleAPIKey = "generate_with_openssl_rand_hex_32"

// Error messages
const (
	ErrMsgInvalidPort           = "invalid PORT value"
	ErrMsgAPIKeyRequired        = "API_KEY environment variable must be set for security"
	ErrMsgInvalidEngineConfig   = "invalid engine configuration"
	ErrMsgSchemaVersionMissing  = "ENV_SCHEMA_VERSION is not set - please update your .env file"
	ErrMsgSchemaVersionMismatch = "ENV_SCHEMA_VERSION mismatch - your .env file may be outdated"
	ErrMsgMissingEnvVars        = "missing required environment variables"
)

// Configuration warnings
const (
	WarnMsgDefaultDBPassword          = "DB_PASSWORD is the default value in a production environment"
	WarnMsgExampleAPIKey              = "API_KEY is the example value - generate one with: openssl rand -hex 32"
	WarnMsgRateLimitDisabled          = "RATE_LIMIT_RPS is not positive - per-IP rate limiting is disabled"
	WarnMsgInvalidTrustedProxy        = "TRUSTED_PROXIES entry is not an IP address and will never match"
	WarnMsgNotifierDisabled           = "DISCORD_WEBHOOK_URL is not set - chat notifications are disabled"
	WarnMsgRetentionShorterThanWindow = "HISTORY_RETENTION_DAYS is shorter than ECONOMY_WINDOW - rebalances will see partial windows"
)

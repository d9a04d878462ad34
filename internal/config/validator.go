package config

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// ExpectedEnvSchemaVersion is the .env layout this build reads
const ExpectedEnvSchemaVersion = "2.0"

// RequiredEnvVars must be present even though most settings have defaults
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

var engineValidator = newEngineValidator()

func newEngineValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("cronspec", func(fl validator.FieldLevel) bool {
		_, err := cron.ParseStandard(fl.Field().String())
		return err == nil
	})
	return v
}

// ValidateEnv checks the .env schema version and the variables that have no default
func ValidateEnv() error {
	switch schemaVersion := os.Getenv("ENV_SCHEMA_VERSION"); schemaVersion {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("%s (expected: %s)", ErrMsgSchemaVersionMissing, ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("%s: expected %s, got %s", ErrMsgSchemaVersionMismatch, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %s", ErrMsgMissingEnvVars, strings.Join(missing, ", "))
	}
	return nil
}

// Warnings reports settings that load fine but are probably mistakes
func (c *Config) Warnings() []string {
	var warnings []string

	if c.Environment == EnvironmentProduction && c.DBPassword == DefaultDBPassword {
		warnings = append(warnings, WarnMsgDefaultDBPassword)
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}
	if c.RateLimitRPS <= 0 {
		warnings = append(warnings, WarnMsgRateLimitDisabled)
	}
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			warnings = append(warnings, fmt.Sprintf("%s: %q", WarnMsgInvalidTrustedProxy, proxy))
		}
	}
	if c.DiscordWebhookURL == "" {
		warnings = append(warnings, WarnMsgNotifierDisabled)
	}
	if c.Engine.RetentionDays < c.Engine.EconomyWindow {
		warnings = append(warnings, fmt.Sprintf("%s (%d < %d)", WarnMsgRetentionShorterThanWindow,
			c.Engine.RetentionDays, c.Engine.EconomyWindow))
	}
	return warnings
}

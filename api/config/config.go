package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/tbeaudouin05/stripe-facade/api/services/stripe/app"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	StripeSecretKey string
	// Description template for new customers; {user_id} is substituted.
	CustomerDescription string
	// Single-fixed-plan deployments subscribe to this plan when none is given.
	FixedPlanID string
	// When true, customer and plan updates are rejected as not implemented.
	RestrictedUpdates bool
	// Optional: base URL for running remote HTTP integration tests (e.g., https://api.example.com)
	IntegrationBaseURL string
	// Server ports
	HTTPPort string
	GRPCPort string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" && currentDir != "." {
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			err = godotenv.Load(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		currentDir = filepath.Dir(currentDir)
	}

	vars := []struct {
		name     string
		envVar   string
		display  string
		required bool
	}{
		{"StripeSecretKey", "STRIPE_SECRET_KEY", "Stripe Secret Key", true},
		{"CustomerDescription", "CUSTOMER_DESCRIPTION", "Customer Description", false},
		{"FixedPlanID", "FIXED_PLAN_ID", "Fixed Plan ID", false},
		{"RestrictedUpdates", "RESTRICTED_UPDATES", "Restricted Updates", false},
		// Optional integration base URL for remote tests
		{"IntegrationBaseURL", "INTEGRATION_BASE_URL", "Integration Base URL", false},
		// Optional server ports
		{"HTTPPort", "PORT", "HTTP Port", false},
		{"GRPCPort", "GRPC_PORT", "gRPC Port", false},
	}

	for _, v := range vars {
		value := os.Getenv(v.envVar)
		if v.required && value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", v.display)
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		switch configField.Kind() {
		case reflect.Bool:
			if value == "" {
				continue
			}
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("invalid boolean for %s: %q", v.display, value)
			}
			configField.SetBool(b)
		default:
			configField.SetString(value)
		}
	}

	// Defaults
	if config.CustomerDescription == "" {
		config.CustomerDescription = app.DefaultCustomerDescription
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.GRPCPort == "" {
		config.GRPCPort = "50051"
	}

	return config, nil
}

// ServiceOptions translates the configuration into facade construction options.
func (c *Config) ServiceOptions() []app.Option {
	opts := []app.Option{app.WithCustomerDescription(c.CustomerDescription)}
	if c.FixedPlanID != "" {
		opts = append(opts, app.WithFixedPlan(c.FixedPlanID))
	}
	if c.RestrictedUpdates {
		opts = append(opts, app.WithRestrictedUpdates())
	}
	return opts
}

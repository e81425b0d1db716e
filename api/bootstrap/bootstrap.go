package bootstrap

import (
    "fmt"
    "log/slog"
    "sync"

    "github.com/tbeaudouin05/stripe-facade/api/config"
    stripeapp "github.com/tbeaudouin05/stripe-facade/api/services/stripe/app"
    stripegw "github.com/tbeaudouin05/stripe-facade/api/services/stripe/gateway/stripe"
)

var stripeService stripeapp.Service
var initOnce sync.Once
var initErr error

// Init loads config, builds the key-bound Stripe gateway and wires the facade.
func Init() error {
    // If a service has already been injected (e.g., tests), do not override it.
    if stripeService != nil {
        return nil
    }
    var err error
    if config.AppConfig == nil {
        config.AppConfig, err = config.LoadConfig()
        if err != nil {
            return fmt.Errorf("failed to load config: %w", err)
        }
    }

    g, err := stripegw.New(config.AppConfig.StripeSecretKey)
    if err != nil {
        return fmt.Errorf("failed to create stripe gateway: %w", err)
    }

    stripeService = stripeapp.NewService(g, config.AppConfig.ServiceOptions()...)
    slog.Info("stripe service initialized",
        "fixed_plan", config.AppConfig.FixedPlanID != "",
        "restricted_updates", config.AppConfig.RestrictedUpdates)
    return nil
}

func GetStripeService() stripeapp.Service { return stripeService }

// SetStripeService allows tests to inject a stub implementation.
func SetStripeService(s stripeapp.Service) { stripeService = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
    initOnce.Do(func() {
        initErr = Init()
    })
    return initErr
}

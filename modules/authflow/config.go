package authflow

import "time"

// Config is the application-level configuration for the auth flow, loaded
// from the environment via pkg/config.
type Config struct {
	// AuthBaseURL is the base URL of the backend auth service.
	AuthBaseURL string `env:"AUTHFLOW_BASE_URL,required"`

	// StorageKey overrides the credential-store key the session persists
	// under.
	StorageKey string `env:"AUTHFLOW_STORAGE_KEY" envDefault:"ballers.session"`

	// RefreshInterval is how often the background refresher inspects the
	// session expiry.
	RefreshInterval time.Duration `env:"AUTHFLOW_REFRESH_INTERVAL" envDefault:"30s"`

	// RefreshLead is how long before expiry a refresh is attempted.
	RefreshLead time.Duration `env:"AUTHFLOW_REFRESH_LEAD" envDefault:"5m"`
}

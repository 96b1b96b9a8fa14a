package config

import (
	"time"
)

const (
	defaultCollectionURL  = "http://localhost:8080/api/users"
	defaultRequestTimeout = 15 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the semantic version string of the running client.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// CollectionURL is the base URL of the remote user collection resource.
	CollectionURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the client-facing view of the merged configuration.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig loads the shared structured configuration and projects it
// onto the client view, filling in the default collection URL and request
// timeout when the corresponding settings are absent.
//
// Returns an error if any configuration source fails to load or the final
// client config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	structured, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		App: ClientApp{
			Version: structured.App.Version,
		},
		Adapter: ClientAdapter{
			CollectionURL:  structured.Adapter.CollectionURL,
			RequestTimeout: structured.Adapter.RequestTimeout,
		},
	}

	if cfg.Adapter.CollectionURL == "" {
		cfg.Adapter.CollectionURL = defaultCollectionURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}

	return cfg, cfg.validate()
}

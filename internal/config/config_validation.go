package config

import "time"

// Defaults applied to fields left unset by every configuration source.
const (
	defaultHTTPAddress       = ":8080"
	defaultRequestTimeout    = 30 * time.Second
	defaultTMDBBaseURL       = "https://api.themoviedb.org/3"
	defaultTMDBTimeout       = 10 * time.Second
	defaultCORSOrigin        = "http://localhost:3000"
	defaultRegisterRateLimit = 60 // requests per minute per client address
)

// applyDefaults fills in default values for optional fields that remained
// zero after all sources were merged.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.CORSAllowedOrigin == "" {
		cfg.Server.CORSAllowedOrigin = defaultCORSOrigin
	}
	if cfg.Server.RegisterRateLimit == 0 {
		cfg.Server.RegisterRateLimit = defaultRegisterRateLimit
	}
	if cfg.TMDB.BaseURL == "" {
		cfg.TMDB.BaseURL = defaultTMDBBaseURL
	}
	if cfg.TMDB.RequestTimeout == 0 {
		cfg.TMDB.RequestTimeout = defaultTMDBTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The TMDB API key is deliberately not required here: the search endpoint
// reports a missing key per request, matching the public API contract.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.ResolveDSN() == "" {
		return ErrInvalidStorageConfigs
	}
	// applyDefaults only rescues zero; a negative limit would reject every
	// registration
	if cfg.Server.RegisterRateLimit < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

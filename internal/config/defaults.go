package config

import "time"

const (
	defaultHTTPAddress      = ":3000"
	defaultRequestTimeout   = 30 * time.Second
	defaultShutdownTimeout  = 5 * time.Second
	defaultRateLimit        = 100
	defaultRateLimitWindow  = 15 * time.Minute
	defaultTokenDuration    = 365 * 24 * time.Hour
	defaultPasswordHashCost = 10
	defaultMaxOpenConns     = 10
	defaultLogLevel         = "debug"
	defaultVersion          = "N/A"
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
			Version:          defaultVersion,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: defaultMaxOpenConns},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			RateLimit: RateLimit{
				Requests: defaultRateLimit,
				Window:   defaultRateLimitWindow,
			},
			CORS: CORS{AllowedOrigins: []string{"*"}},
		},
	}
}

package config

import "time"

// Default configuration values applied when no other source provides one.
//
// DefaultTokenSignKey exists so the service starts out of the box during
// local development. Production deployments are expected to override it;
// main logs a warning when the default key is in use.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDatabaseDSN    = "users.db"
	DefaultTokenSignKey   = "local-development-sign-key"
	DefaultTokenIssuer    = "go-user-api"
	DefaultTokenAudience  = "go-user-api"
	DefaultTokenDuration  = 6 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  DefaultTokenSignKey,
			TokenIssuer:   DefaultTokenIssuer,
			TokenAudience: DefaultTokenAudience,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: DefaultDatabaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

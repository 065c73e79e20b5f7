package config

import "time"

// defaults returns the values used when no source sets a field.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "debug",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    4,
				MaxIdleConns:    1,
				ConnMaxIdleTime: 10 * time.Second,
				ConnectTimeout:  10 * time.Second,
			},
		},
		Server: Server{
			Mode:           ModeHTTP,
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Identity: Identity{
			RequestTimeout: 10 * time.Second,
		},
	}
}

package config

import (
	"casamento/pkg/config"
)

func init() {
	config.Add("redis", func() map[string]interface{} {
		return map[string]interface{}{
			"host":     config.Env("REDIS_HOST", "127.0.0.1"),
			"port":     config.Env("REDIS_PORT", "6379"),
			"username": config.Env("REDIS_USERNAME", ""),
			"password": config.Env("REDIS_PASSWORD", ""),

			// General storage, including the rate limiter
			"database": config.Env("REDIS_MAIN_DB", 1),

			// Auth sessions live in their own database
			"session_database": config.Env("REDIS_SESSION_DB", 2),
		}
	})
}

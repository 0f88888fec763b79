package config

import "casamento/pkg/config"

func init() {
	config.Add("app", func() map[string]interface{} {
		return map[string]interface{}{

			// Application name
			"name": config.Env("APP_NAME", "Casamento"),

			// Environment: local, testing or production
			"env": config.Env("APP_ENV", "production"),

			// Debug mode
			"debug": config.Env("APP_DEBUG", false),

			// HTTP port
			"port": config.Env("APP_PORT", "3000"),

			// Timezone used for timestamps in logs
			"timezone": config.Env("TIMEZONE", "America/Sao_Paulo"),

			// Base URL of the public site; confirmation links point here
			"url": config.Env("APP_URL", "http://localhost:3000"),
		}
	})
}

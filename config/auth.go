package config

import (
	"casamento/pkg/config"
)

func init() {
	config.Add("auth", func() map[string]interface{} {
		return map[string]interface{}{

			// Session lifetime; each authenticated request slides it forward
			"session_ttl_minutes": config.Env("AUTH_SESSION_TTL_MINUTES", 60*24*7),

			// Social login provider. Leave the client credentials empty to
			// disable it.
			"oauth": map[string]interface{}{
				"provider":      config.Env("OAUTH_PROVIDER", "google"),
				"token_url":     config.Env("OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token"),
				"userinfo_url":  config.Env("OAUTH_USERINFO_URL", "https://openidconnect.googleapis.com/v1/userinfo"),
				"client_id":     config.Env("OAUTH_CLIENT_ID", ""),
				"client_secret": config.Env("OAUTH_CLIENT_SECRET", ""),
				"redirect_url":  config.Env("OAUTH_REDIRECT_URL", ""),
			},
		}
	})
}

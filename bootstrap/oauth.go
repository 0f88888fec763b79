package bootstrap

import (
	"casamento/pkg/logger"
	"casamento/pkg/oauth"
)

// SetupOAuth builds the social-login client. A nil return means the
// provider is not configured and social login stays disabled; the API still
// works with credential logins.
func SetupOAuth() *oauth.Service {
	service := oauth.NewServiceFromConfig()
	if service == nil {
		logger.InfoString("OAuth", "Setup", "provider not configured, social login disabled")
		return nil
	}
	logger.InfoString("OAuth", "Setup", "social login enabled")
	return service
}

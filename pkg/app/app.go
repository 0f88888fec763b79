// Package app provides small helpers tied to the application environment.
package app

import (
	"time"

	"casamento/pkg/config"
)

// IsLocal reports whether the app runs in the local environment.
func IsLocal() bool {
	return config.Get("app.env") == "local"
}

// IsProduction reports whether the app runs in production.
func IsProduction() bool {
	return config.Get("app.env") == "production"
}

// IsTesting reports whether the app runs under the testing environment.
func IsTesting() bool {
	return config.Get("app.env") == "testing"
}

// TimenowInTimezone returns the current time in the configured timezone
// (app.timezone, e.g. America/Sao_Paulo).
func TimenowInTimezone() time.Time {
	timezone, _ := time.LoadLocation(config.GetString("app.timezone"))
	return time.Now().In(timezone)
}

// Package config registers the application configuration sections.
package config

// Initialize exists to force this package's init functions to run; each
// file here registers one configuration section.
func Initialize() {
}

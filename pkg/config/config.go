// Package config manages application configuration.
//
// Sections register themselves from the top-level config directory via Add,
// values come from the environment (optionally an .env file) with sane
// defaults, and reads go through viper.
package config

import (
	"os"

	"github.com/spf13/cast"
	viperlib "github.com/spf13/viper"
)

// viper instance owned by this package; nothing else should touch it.
var viper *viperlib.Viper

// ConfigFunc builds one configuration section lazily, so that Env lookups
// happen after the .env file has been loaded.
type ConfigFunc func() map[string]interface{}

// ConfigFuncs holds the registered section loaders, keyed by section name.
var ConfigFuncs map[string]ConfigFunc

func init() {
	viper = viperlib.New()
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	ConfigFuncs = make(map[string]ConfigFunc)
}

// InitConfig loads the .env file (".env.<envSuffix>" when a suffix is given
// and the file exists) and then materializes every registered section.
func InitConfig(envSuffix string) {
	loadEnv(envSuffix)
	loadConfig()
}

func loadConfig() {
	for name, fn := range ConfigFuncs {
		viper.Set(name, fn())
	}
}

func loadEnv(envSuffix string) {
	envPath := ".env"
	if len(envSuffix) > 0 {
		filepath := ".env." + envSuffix
		if _, err := os.Stat(filepath); err == nil {
			envPath = filepath
		}
	}

	viper.SetConfigName(envPath)
	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine, everything has defaults; anything else
		// (unreadable file, bad syntax) should stop the boot.
		if _, ok := err.(viperlib.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				panic(err)
			}
		}
	}
	viper.WatchConfig()
}

// Env reads an environment variable, with an optional default value.
func Env(envName string, defaultValue ...interface{}) interface{} {
	if len(defaultValue) > 0 {
		return internalGet(envName, defaultValue[0])
	}
	return internalGet(envName)
}

// Add registers a configuration section.
func Add(name string, configFn ConfigFunc) {
	ConfigFuncs[name] = configFn
}

// Get reads a configuration value as string, e.g. Get("app.name").
func Get(path string, defaultValue ...interface{}) string {
	return GetString(path, defaultValue...)
}

func internalGet(path string, defaultValue ...interface{}) interface{} {
	if !viper.IsSet(path) || isEmpty(viper.Get(path)) {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return nil
	}
	return viper.Get(path)
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}

// GetString reads a string value from the configuration.
func GetString(path string, defaultValue ...interface{}) string {
	return cast.ToString(internalGet(path, defaultValue...))
}

// GetInt reads an int value from the configuration.
func GetInt(path string, defaultValue ...interface{}) int {
	return cast.ToInt(internalGet(path, defaultValue...))
}

// GetInt64 reads an int64 value from the configuration.
func GetInt64(path string, defaultValue ...interface{}) int64 {
	return cast.ToInt64(internalGet(path, defaultValue...))
}

// GetFloat64 reads a float64 value from the configuration.
func GetFloat64(path string, defaultValue ...interface{}) float64 {
	return cast.ToFloat64(internalGet(path, defaultValue...))
}

// GetBool reads a bool value from the configuration.
func GetBool(path string, defaultValue ...interface{}) bool {
	return cast.ToBool(internalGet(path, defaultValue...))
}

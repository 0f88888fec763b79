package bootstrap

import (
	"casamento/pkg/config"
	"casamento/pkg/logger"
)

// SetupLogger initializes the logging system from the log.* configuration.
func SetupLogger() {
	logger.InitLogger(
		config.GetString("log.filename"),
		config.GetInt("log.max_size"),
		config.GetInt("log.max_backup"),
		config.GetInt("log.max_age"),
		config.GetBool("log.compress"),
		config.GetString("log.type"),
		config.GetString("log.level"),
	)
}

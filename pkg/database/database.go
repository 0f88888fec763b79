// Package database holds the shared GORM connection.
package database

import (
	"database/sql"

	"casamento/pkg/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the shared *gorm.DB handle.
var DB *gorm.DB

// SQLDB exposes the underlying *sql.DB for pool tuning.
var SQLDB *sql.DB

// Connect opens the database connection. TranslateError is enabled so driver
// uniqueness violations surface as gorm.ErrDuplicatedKey and can be turned
// into a proper conflict response instead of a 500.
func Connect(dbConfig gorm.Dialector, _logger gormlogger.Interface) {
	var err error
	DB, err = gorm.Open(dbConfig, &gorm.Config{
		Logger:         _logger,
		TranslateError: true,
	})
	if err != nil {
		logger.ErrorString("Database", "Connect", err.Error())
		panic(err)
	}

	SQLDB, err = DB.DB()
	if err != nil {
		logger.ErrorString("Database", "SQLDB", err.Error())
		panic(err)
	}
}

// AutoMigrate migrates every registered table.
func AutoMigrate(tables []interface{}) error {
	return DB.AutoMigrate(tables...)
}

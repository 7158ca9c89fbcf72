// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"net/url"
	"slices"
	"strings"
	"time"
)

type DatabaseType string

const (
	MySQL      DatabaseType = "mysql"
	PostgreSQL DatabaseType = "postgres"
	SQLite     DatabaseType = "sqlite3"
)

var allowedDatabaseType = []DatabaseType{MySQL, PostgreSQL, SQLite}

type DatabaseConfig struct {
	Type                 string        `json:"type" yaml:"type"`
	DBType               DatabaseType  `json:"-" yaml:"-"`
	Database             string        `json:"database" yaml:"database"`
	Host                 string        `json:"host" yaml:"host"`
	Port                 int           `json:"port" yaml:"port"`
	Username             string        `json:"username" yaml:"username"`
	Password             string        `json:"password" yaml:"password"`
	EnableSSL            bool          `json:"enable_ssl" yaml:"enable_ssl"`
	TimeZone             string        `json:"time_zone" yaml:"time_zone"`
	ConnectIdleTimeout   string        `json:"connect_idle_timeout" yaml:"connect_idle_timeout"`
	ConnectIdleDuration  time.Duration `json:"-" yaml:"-"`
	QueryTimeout         string        `json:"query_timeout" yaml:"query_timeout"`
	QueryDuration        time.Duration `json:"-" yaml:"-"`
	ServerMaxConnections int           `json:"server_max_connections" yaml:"server_max_connections"`
}

func defaultDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Type:                 "sqlite3",
		Database:             "airport.db",
		TimeZone:             "UTC",
		ConnectIdleTimeout:   "1h",
		QueryTimeout:         "5s",
		ServerMaxConnections: 32,
	}
}

func (config *DatabaseConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	config.DBType = DatabaseType(config.Type)
	if !slices.Contains(allowedDatabaseType, config.DBType) {
		return ValidFailF("database type %s is not allowed, support database is %v, please check the configuration file", config.DBType, allowedDatabaseType)
	}
	if config.Database == "" {
		return ValidFail(errors.New("invalid json field database.database, cannot be empty"))
	}
	if config.DBType != SQLite {
		if config.Host == "" {
			return ValidFail(errors.New("invalid json field database.host, cannot be empty"))
		}
		if config.Port <= 0 || config.Port > 65535 {
			return ValidFailF("invalid json field database.port %d", config.Port)
		}
	}
	if config.TimeZone == "" {
		config.TimeZone = "UTC"
	}

	if duration, err := time.ParseDuration(config.ConnectIdleTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field database.connect_idle_timeout"), err)
	} else {
		config.ConnectIdleDuration = duration
	}

	if duration, err := time.ParseDuration(config.QueryTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field database.query_timeout"), err)
	} else {
		config.QueryDuration = duration
	}

	if config.ServerMaxConnections <= 0 {
		return ValidFail(errors.New("invalid json field database.server_max_connections, value must larger than 0"))
	}
	return ValidPass()
}

func (config *DatabaseConfig) GetConnection(logger log.LoggerInterface) gorm.Dialector {
	switch config.DBType {
	case MySQL:
		return mySQLConnection(logger, config)
	case PostgreSQL:
		return postgreSQLConnection(logger, config)
	case SQLite:
		return sqliteConnection(logger, config)
	default:
		return nil
	}
}

func mySQLConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=%s&tls=%t",
		url.QueryEscape(db.Username),
		url.QueryEscape(db.Password),
		db.Host,
		db.Port,
		db.Database,
		url.QueryEscape(db.TimeZone),
		db.EnableSSL,
	)
	logger.DebugF("Mysql connection to %s:%d/%s", db.Host, db.Port, db.Database)
	return mysql.Open(dsn)
}

func postgreSQLConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	sslMode := "disable"
	if db.EnableSSL {
		sslMode = "require"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		db.Host,
		db.Username,
		db.Password,
		db.Database,
		db.Port,
		sslMode,
		db.TimeZone,
	)
	logger.DebugF("PostgreSQL connection to %s:%d/%s", db.Host, db.Port, db.Database)
	return postgres.Open(dsn)
}

// SQLiteDSN turns on foreign key enforcement, which sqlite leaves off per connection
func SQLiteDSN(database string) string {
	if strings.Contains(database, "_foreign_keys") {
		return database
	}
	separator := "?"
	if strings.Contains(database, "?") {
		separator = "&"
	}
	return database + separator + "_foreign_keys=on"
}

func sqliteConnection(_ log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	return sqlite.Open(SQLiteDSN(db.Database))
}

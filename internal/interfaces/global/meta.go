// Package global
package global

import (
	"flag"
)

var (
	DebugMode      = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath = flag.String("config", "./config.json", "Path to configuration file")
	EnvFilePath    = flag.String("env", ".env", "Path to dotenv file with secret overrides")
)

const (
	AppVersion    = "1.0.0"
	ConfigVersion = "1.0.0"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	EnvDatabasePassword = "AIRPORT_DATABASE_PASSWORD"
	EnvJwtSecret        = "AIRPORT_JWT_SECRET"
	EnvStoreAccessKey   = "AIRPORT_STORE_ACCESS_KEY"
	EnvRedisPassword    = "AIRPORT_REDIS_PASSWORD"
	EnvEmailPassword    = "AIRPORT_EMAIL_PASSWORD"

	JwtIssuer = "AirportBooking"

	// MediaUrlPrefix is where locally stored uploads are served from
	MediaUrlPrefix = "/media"
)

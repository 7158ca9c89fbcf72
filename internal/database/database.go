// Package database
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DBCloseCallback struct {
	logger log.LoggerInterface
	db     *gorm.DB
}

func NewDBCloseCallback(logger log.LoggerInterface, db *gorm.DB) *DBCloseCallback {
	return &DBCloseCallback{logger: logger, db: db}
}

func (dc *DBCloseCallback) Invoke(_ context.Context) error {
	dc.logger.Info("Closing database connection")
	db, err := dc.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

func utcNow() time.Time { return time.Now().UTC() }

// mysqlTableOptions makes unique columns compare byte for byte, the default mysql collation
// would treat "Poland" and "poland" as the same name
const mysqlTableOptions = "DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin"

// migrationSession carries the table options of the dialect; they apply to tables created by
// AutoMigrate, existing mysql tables keep their collation
func migrationSession(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "mysql" {
		return db.Set("gorm:table_options", mysqlTableOptions)
	}
	return db
}

// OpenDatabase opens the dialector and migrates every model. Timestamps are always written in UTC
// and storage errors are translated so unique violations surface as gorm.ErrDuplicatedKey.
func OpenDatabase(connection gorm.Dialector, debug bool, prepareStmt bool) (*gorm.DB, error) {
	connectionConfig := gorm.Config{
		TranslateError: true,
		NowFunc:        utcNow,
		PrepareStmt:    prepareStmt,
	}
	connectionConfig.DefaultTransactionTimeout = 5 * time.Second

	if debug {
		connectionConfig.Logger = logger.Default.LogMode(logger.Error)
	} else {
		connectionConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(connection, &connectionConfig)
	if err != nil {
		return nil, fmt.Errorf("error occured while connecting to database: %v", err)
	}

	if err = migrationSession(db).Migrator().AutoMigrate(operation.Models()...); err != nil {
		return nil, fmt.Errorf("error occured while migrating database: %v", err)
	}
	return db, nil
}

func ConnectDatabase(lg log.LoggerInterface, config *c.Config, debug bool) (*DBCloseCallback, *operation.DatabaseOperations, error) {
	connection := config.Database.GetConnection(lg)
	if connection == nil {
		return nil, nil, errors.New("unsupported database type")
	}

	db, err := OpenDatabase(connection, debug, config.Database.DBType != c.SQLite)
	if err != nil {
		return nil, nil, err
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating database pool: %v", err)
	}

	if config.Database.DBType == c.SQLite {
		// sqlite allows one writer at a time, so a single connection serializes transactions
		dbPool.SetMaxOpenConns(1)
	} else {
		maxOpenConnections := config.Database.ServerMaxConnections * 4 / 5 // 不超过数据库最大连接的80%
		maxIdleConnections := maxOpenConnections / 5                       // 空闲连接约为最大连接的20%
		dbPool.SetMaxIdleConns(maxIdleConnections)
		dbPool.SetMaxOpenConns(maxOpenConnections)
	}
	dbPool.SetConnMaxLifetime(config.Database.ConnectIdleDuration)

	if err = dbPool.Ping(); err != nil {
		return nil, nil, fmt.Errorf("error occured while pinging database: %v", err)
	}
	lg.Info("Database initialized and connection established")

	return NewDBCloseCallback(lg, db), NewOperations(db, config.Database.QueryDuration, config.Server.General), nil
}

// NewOperations wires every gorm backed operation onto one handle
func NewOperations(db *gorm.DB, queryTimeout time.Duration, general *c.GeneralConfig) *operation.DatabaseOperations {
	return operation.NewDatabaseOperations(
		NewUserOperation(db, queryTimeout, general),
		NewCountryOperation(db, queryTimeout),
		NewCityOperation(db, queryTimeout),
		NewAirportOperation(db, queryTimeout),
		NewRouteOperation(db, queryTimeout),
		NewAirplaneTypeOperation(db, queryTimeout),
		NewAirplaneOperation(db, queryTimeout),
		NewCrewOperation(db, queryTimeout),
		NewFlightOperation(db, queryTimeout),
		NewOrderOperation(db, queryTimeout),
		NewAuditLogOperation(db, queryTimeout),
	)
}

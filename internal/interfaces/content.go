// Package interfaces
package interfaces

import (
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"github.com/half-nothing/airport-booking/internal/interfaces/service"
)

// ApplicationContent carries every process-wide handle; nothing is reached through package globals
type ApplicationContent struct {
	configManager ConfigManagerInterface
	cleaner       CleanerInterface
	logger        log.LoggerInterface
	operations    *operation.DatabaseOperations
	flightCache   service.FlightCacheInterface
	publisher     service.EventPublisherInterface
}

func NewApplicationContent(
	configManager ConfigManagerInterface,
	cleaner CleanerInterface,
	logger log.LoggerInterface,
	db *operation.DatabaseOperations,
	flightCache service.FlightCacheInterface,
	publisher service.EventPublisherInterface,
) *ApplicationContent {
	return &ApplicationContent{
		configManager: configManager,
		cleaner:       cleaner,
		logger:        logger,
		operations:    db,
		flightCache:   flightCache,
		publisher:     publisher,
	}
}

func (app *ApplicationContent) ConfigManager() ConfigManagerInterface {
	return app.configManager
}

func (app *ApplicationContent) Cleaner() CleanerInterface { return app.cleaner }

func (app *ApplicationContent) Logger() log.LoggerInterface { return app.logger }

func (app *ApplicationContent) Operations() *operation.DatabaseOperations { return app.operations }

func (app *ApplicationContent) FlightCache() service.FlightCacheInterface { return app.flightCache }

func (app *ApplicationContent) Publisher() service.EventPublisherInterface { return app.publisher }

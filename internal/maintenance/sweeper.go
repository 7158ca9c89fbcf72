// Package maintenance
package maintenance

import (
	"context"
	"sync"
	"time"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"github.com/half-nothing/airport-booking/internal/interfaces/service"
)

// Sweeper deactivates departed flights, periodically and on demand
type Sweeper struct {
	logger          log.LoggerInterface
	config          *c.MaintenanceConfig
	flightOperation operation.FlightOperationInterface
	flightCache     service.FlightCacheInterface
	publisher       service.EventPublisherInterface
	now             func() time.Time

	sweepLock sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewSweeper(
	logger log.LoggerInterface,
	config *c.MaintenanceConfig,
	flightOperation operation.FlightOperationInterface,
	flightCache service.FlightCacheInterface,
	publisher service.EventPublisherInterface,
) *Sweeper {
	return &Sweeper{
		logger:          logger,
		config:          config,
		flightOperation: flightOperation,
		flightCache:     flightCache,
		publisher:       publisher,
		now:             time.Now,
	}
}

// Sweep runs one pass; concurrent calls are serialized
func (sweeper *Sweeper) Sweep() ([]uint, time.Time, error) {
	sweeper.sweepLock.Lock()
	defer sweeper.sweepLock.Unlock()

	sweptAt := sweeper.now().UTC()
	flightIds, err := sweeper.flightOperation.DeactivateDepartedFlights(sweptAt)
	if err != nil {
		sweeper.logger.ErrorF("Fail to deactivate departed flights, %v", err)
		return nil, sweptAt, err
	}
	if len(flightIds) == 0 {
		sweeper.logger.Debug("No departed flights to deactivate")
		return flightIds, sweptAt, nil
	}
	sweeper.flightCache.Invalidate()
	sweeper.publisher.Publish(service.EventFlightDeactivated, sweptAt.Format(time.RFC3339), &service.FlightsDeactivatedEvent{
		FlightIds: flightIds,
		SweptAt:   sweptAt,
	})
	sweeper.logger.InfoF("Deactivated %d departed flights: %v", len(flightIds), flightIds)
	return flightIds, sweptAt, nil
}

// Start launches the periodic sweep, a no-op when maintenance is disabled
func (sweeper *Sweeper) Start(ctx context.Context) {
	if !sweeper.config.Enabled {
		sweeper.logger.Info("Flight sweeper disabled")
		return
	}
	ctx, sweeper.cancel = context.WithCancel(ctx)
	sweeper.done = make(chan struct{})
	if sweeper.config.SweepOnStartup {
		_, _, _ = sweeper.Sweep()
	}
	sweeper.logger.InfoF("Flight sweeper running every %v", sweeper.config.SweepDuration)
	go sweeper.run(ctx)
}

func (sweeper *Sweeper) run(ctx context.Context) {
	defer close(sweeper.done)
	ticker := time.NewTicker(sweeper.config.SweepDuration)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _, _ = sweeper.Sweep()
		}
	}
}

// ShutdownCallback stops the loop and waits for a running sweep to finish
func (sweeper *Sweeper) ShutdownCallback() global.Callable {
	return global.CallableFunc(func(ctx context.Context) error {
		if sweeper.cancel == nil {
			return nil
		}
		sweeper.logger.Info("Stopping flight sweeper")
		sweeper.cancel()
		select {
		case <-sweeper.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}

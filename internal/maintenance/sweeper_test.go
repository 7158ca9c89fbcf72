package maintenance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFlights struct {
	operation.FlightOperationInterface
	mu    sync.Mutex
	ids   []uint
	err   error
	calls []time.Time
}

func (s *stubFlights) DeactivateDepartedFlights(now time.Time) ([]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, now)
	ids := s.ids
	s.ids = nil
	return ids, s.err
}

func (s *stubFlights) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type countingCache struct {
	service.FlightCacheInterface
	invalidations int
}

func (c *countingCache) Invalidate() { c.invalidations++ }

type recordingPublisher struct {
	events []string
	last   interface{}
}

func (p *recordingPublisher) Publish(event string, _ string, payload interface{}) {
	p.events = append(p.events, event)
	p.last = payload
}

func (p *recordingPublisher) ShutdownCallback() global.Callable {
	return global.CallableFunc(func(context.Context) error { return nil })
}

func newTestSweeper(flights *stubFlights, config *c.MaintenanceConfig) (*Sweeper, *countingCache, *recordingPublisher) {
	cache := &countingCache{}
	publisher := &recordingPublisher{}
	sweeper := NewSweeper(log.NewNullLogger(), config, flights, cache, publisher)
	sweeper.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return sweeper, cache, publisher
}

func TestSweepDeactivates(t *testing.T) {
	flights := &stubFlights{ids: []uint{3, 5}}
	sweeper, cache, publisher := newTestSweeper(flights, &c.MaintenanceConfig{})

	ids, sweptAt, err := sweeper.Sweep()
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 5}, ids)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), sweptAt)
	assert.Equal(t, 1, cache.invalidations)
	assert.Equal(t, []string{service.EventFlightDeactivated}, publisher.events)
	event, ok := publisher.last.(*service.FlightsDeactivatedEvent)
	require.True(t, ok)
	assert.Equal(t, []uint{3, 5}, event.FlightIds)
}

func TestSweepIsQuietWhenNothingDeparted(t *testing.T) {
	flights := &stubFlights{}
	sweeper, cache, publisher := newTestSweeper(flights, &c.MaintenanceConfig{})

	ids, _, err := sweeper.Sweep()
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Zero(t, cache.invalidations)
	assert.Empty(t, publisher.events)
}

func TestSweepReportsStorageErrors(t *testing.T) {
	flights := &stubFlights{err: errors.New("database is locked")}
	sweeper, cache, _ := newTestSweeper(flights, &c.MaintenanceConfig{})

	_, _, err := sweeper.Sweep()
	assert.Error(t, err)
	assert.Zero(t, cache.invalidations)
}

func TestStartSweepsOnStartupAndStops(t *testing.T) {
	flights := &stubFlights{ids: []uint{1}}
	sweeper, _, _ := newTestSweeper(flights, &c.MaintenanceConfig{
		Enabled:        true,
		SweepDuration:  10 * time.Millisecond,
		SweepOnStartup: true,
	})

	sweeper.Start(context.Background())
	assert.GreaterOrEqual(t, flights.callCount(), 1)
	assert.Eventually(t, func() bool { return flights.callCount() >= 3 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.ShutdownCallback().Invoke(ctx))
	stopped := flights.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, flights.callCount())
}

func TestStartDisabled(t *testing.T) {
	flights := &stubFlights{}
	sweeper, _, _ := newTestSweeper(flights, &c.MaintenanceConfig{Enabled: false})

	sweeper.Start(context.Background())
	assert.Zero(t, flights.callCount())
	assert.NoError(t, sweeper.ShutdownCallback().Invoke(context.Background()))
}

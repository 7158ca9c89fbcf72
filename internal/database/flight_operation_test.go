// Package database
package database

import (
	"errors"
	"testing"
	"time"

	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestScheduleFlightAirplaneOverlap(t *testing.T) {
	_, f := newFixture(t)
	flightOperation := f.ops.FlightOperation()

	first, err := flightOperation.ScheduleFlight(f.schedule(f.airplane, 0, 2, f.pilot, f.stewardess))
	require.NoError(t, err)
	assert.True(t, first.IsActive)
	assert.Len(t, first.Crew, 2)
	assert.Equal(t, 2*time.Hour, first.Duration())

	_, err = flightOperation.ScheduleFlight(f.schedule(f.airplane, 1, 3, f.pilot2, f.stewardess2))
	require.ErrorIs(t, err, operation.ErrSchedulingConflict)
	var conflict *operation.SchedulingConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, operation.ConflictAirplane, conflict.Resource)
	assert.Equal(t, f.airplane.ID, conflict.ResourceId)
	assert.Equal(t, first.ID, conflict.FlightId)

	// touching windows share no instant
	second, err := flightOperation.ScheduleFlight(f.schedule(f.airplane, 2, 4, f.pilot2, f.stewardess2))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

// conflict candidates must come from a locking read, a plain read under mysql repeatable read
// answers from a snapshot that misses flights committed while we waited for the airplane lock
func TestConflictQueriesAreLockingReads(t *testing.T) {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "airport:airport@tcp(127.0.0.1:3306)/airport?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	window := operation.TimeWindow{Departure: time.Unix(0, 0).UTC(), Arrival: time.Unix(7200, 0).UTC()}

	queries := map[string]*gorm.DB{
		"airplane": airplaneConflictQuery(db, 1, window),
		"crew":     crewConflictQuery(db, 1, window),
	}
	for name, query := range queries {
		candidates := make([]*operation.Flight, 0)
		sql := query.Find(&candidates).Statement.SQL.String()
		assert.Contains(t, sql, "FOR SHARE OF `flights`", name)
	}
}

func TestScheduleFlightCrewOverlap(t *testing.T) {
	_, f := newFixture(t)
	flightOperation := f.ops.FlightOperation()
	f.flight(t)

	_, err := flightOperation.ScheduleFlight(f.schedule(f.airplane2, 1, 3, f.pilot2, f.stewardess))
	var conflict *operation.SchedulingConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, operation.ConflictCrewMember, conflict.Resource)
	assert.Equal(t, f.stewardess.ID, conflict.ResourceId)
	assert.Equal(t, "Mira Lenz", conflict.ResourceName)

	_, err = flightOperation.ScheduleFlight(f.schedule(f.airplane2, 1, 3, f.pilot2, f.stewardess2))
	assert.NoError(t, err)
}

func TestScheduleFlightValidation(t *testing.T) {
	_, f := newFixture(t)
	flightOperation := f.ops.FlightOperation()

	_, err := flightOperation.ScheduleFlight(f.schedule(f.airplane, 2, 2, f.pilot, f.stewardess))
	assert.ErrorIs(t, err, operation.ErrInvalidTimeWindow)

	_, err = flightOperation.ScheduleFlight(f.schedule(f.airplane, 3, 1, f.pilot, f.stewardess))
	assert.ErrorIs(t, err, operation.ErrInvalidTimeWindow)

	_, err = flightOperation.ScheduleFlight(f.schedule(f.airplane, 0, 2))
	assert.ErrorIs(t, err, operation.ErrMissingCrew)

	_, err = flightOperation.ScheduleFlight(f.schedule(f.airplane, 0, 2, f.pilot))
	var composition *operation.CrewCompositionError
	require.True(t, errors.As(err, &composition))
	assert.Equal(t, []operation.CrewPosition{operation.Stewardess}, composition.Missing)

	schedule := f.schedule(f.airplane, 0, 2, f.pilot, f.stewardess)
	schedule.CrewIds = append(schedule.CrewIds, 999)
	_, err = flightOperation.ScheduleFlight(schedule)
	var reference *operation.InvalidReferenceError
	require.True(t, errors.As(err, &reference))
	assert.Equal(t, "crew", reference.Field)
	assert.Equal(t, uint(999), reference.Id)

	schedule = f.schedule(f.airplane, 0, 2, f.pilot, f.stewardess)
	schedule.AirplaneId = 999
	_, err = flightOperation.ScheduleFlight(schedule)
	assert.ErrorIs(t, err, operation.ErrInvalidReference)

	schedule = f.schedule(f.airplane, 0, 2, f.pilot, f.stewardess)
	schedule.RouteId = 999
	_, err = flightOperation.ScheduleFlight(schedule)
	assert.ErrorIs(t, err, operation.ErrInvalidReference)

	schedule = f.schedule(f.airplane, 0, 2, f.pilot, f.stewardess)
	schedule.FlightId = 999
	_, err = flightOperation.ScheduleFlight(schedule)
	assert.ErrorIs(t, err, operation.ErrFlightNotFound)

	total, err := countFlights(f)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func countFlights(f *fixture) (int64, error) {
	_, total, err := f.ops.FlightOperation().GetFlights(&operation.FlightFilter{})
	return total, err
}

func TestRescheduleFlightExcludesItself(t *testing.T) {
	_, f := newFixture(t)
	flightOperation := f.ops.FlightOperation()
	flight := f.flight(t)

	schedule := f.schedule(f.airplane, 1, 3, f.pilot, f.stewardess2)
	schedule.FlightId = flight.ID
	updated, err := flightOperation.ScheduleFlight(schedule)
	require.NoError(t, err)
	assert.Equal(t, flight.ID, updated.ID)
	assert.True(t, updated.DepartureTime.Equal(f.at(1)))
	require.Len(t, updated.Crew, 2)
	assert.Equal(t, f.stewardess2.ID, updated.Crew[1].ID)

	other, err := flightOperation.ScheduleFlight(f.schedule(f.airplane, 4, 6, f.pilot2, f.stewardess))
	require.NoError(t, err)

	schedule = f.schedule(f.airplane, 3, 5, f.pilot, f.stewardess2)
	schedule.FlightId = flight.ID
	_, err = flightOperation.ScheduleFlight(schedule)
	var conflict *operation.SchedulingConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, other.ID, conflict.FlightId)
}

func TestScheduleFlightInactive(t *testing.T) {
	_, f := newFixture(t)
	flightOperation := f.ops.FlightOperation()
	inactive := false

	schedule := f.schedule(f.airplane, 0, 2, f.pilot, f.stewardess)
	schedule.IsActive = &inactive
	flight, err := flightOperation.ScheduleFlight(schedule)
	require.NoError(t, err)
	assert.False(t, flight.IsActive)

	past := f.schedule(f.airplane2, 0, 2, f.pilot2, f.stewardess2)
	past.Departure = time.Now().UTC().Add(-3 * time.Hour)
	past.Arrival = time.Now().UTC().Add(-time.Hour)
	flight, err = flightOperation.ScheduleFlight(past)
	require.NoError(t, err)
	assert.False(t, flight.IsActive)
}

func TestScheduleFlightNeverReactivates(t *testing.T) {
	_, f := newFixture(t)
	flightOperation := f.ops.FlightOperation()
	active, inactive := true, false

	flight := f.flight(t)
	deactivate := f.schedule(f.airplane, 0, 2, f.pilot, f.stewardess)
	deactivate.FlightId = flight.ID
	deactivate.IsActive = &inactive
	updated, err := flightOperation.ScheduleFlight(deactivate)
	require.NoError(t, err)
	require.False(t, updated.IsActive)

	reactivate := f.schedule(f.airplane, 4, 6, f.pilot, f.stewardess)
	reactivate.FlightId = flight.ID
	reactivate.IsActive = &active
	updated, err = flightOperation.ScheduleFlight(reactivate)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.True(t, f.departure.Add(4*time.Hour).Equal(updated.DepartureTime))
}

func TestDeactivateDepartedFlights(t *testing.T) {
	_, f := newFixture(t)
	flightOperation := f.ops.FlightOperation()
	early := f.flight(t)
	late, err := flightOperation.ScheduleFlight(f.schedule(f.airplane2, 10, 12, f.pilot2, f.stewardess2))
	require.NoError(t, err)

	ids, err := flightOperation.DeactivateDepartedFlights(f.at(1))
	require.NoError(t, err)
	assert.Equal(t, []uint{early.ID}, ids)

	ids, err = flightOperation.DeactivateDepartedFlights(f.at(1))
	require.NoError(t, err)
	assert.Empty(t, ids)

	reloaded, err := flightOperation.GetFlight(early.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)
	reloaded, err = flightOperation.GetFlight(late.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsActive)

	active := false
	flights, total, err := flightOperation.GetFlights(&operation.FlightFilter{IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, early.ID, flights[0].ID)
}

func TestGetFlightsFilters(t *testing.T) {
	_, f := newFixture(t)
	flightOperation := f.ops.FlightOperation()
	first := f.flight(t)
	second, err := flightOperation.ScheduleFlight(f.schedule(f.airplane2, 5, 7, f.pilot2, f.stewardess2))
	require.NoError(t, err)

	flights, total, err := flightOperation.GetFlights(&operation.FlightFilter{AirplaneId: f.airplane2.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, second.ID, flights[0].ID)

	after := f.at(3)
	flights, _, err = flightOperation.GetFlights(&operation.FlightFilter{DepartureAfter: &after})
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, second.ID, flights[0].ID)

	before := f.at(3)
	flights, _, err = flightOperation.GetFlights(&operation.FlightFilter{ArrivalBefore: &before})
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, first.ID, flights[0].ID)

	_, total, err = flightOperation.GetFlights(&operation.FlightFilter{Search: "Zhul"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	flights, total, err = flightOperation.GetFlights(&operation.FlightFilter{
		Pagination: operation.Pagination{Page: 2, PageSize: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, flights, 1)
	assert.Equal(t, second.ID, flights[0].ID)
}

func TestDeleteFlightCascadesTickets(t *testing.T) {
	db, f := newFixture(t)
	flight := f.flight(t)
	_, err := f.ops.OrderOperation().CreateOrder(f.user.ID, []*operation.TicketRequest{{FlightId: flight.ID, Row: 1, Seat: 1}})
	require.NoError(t, err)

	require.NoError(t, f.ops.FlightOperation().DeleteFlight(flight.ID))
	assert.Zero(t, count(t, db, "tickets"))
	assert.Zero(t, count(t, db, "flight_crew"))
	assert.Equal(t, int64(4), count(t, db, "crews"))
	assert.ErrorIs(t, f.ops.FlightOperation().DeleteFlight(flight.ID), operation.ErrFlightNotFound)
}

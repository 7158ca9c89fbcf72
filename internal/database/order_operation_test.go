// Package database
package database

import (
	"errors"
	"sync"
	"testing"

	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	db, f := newFixture(t)
	flight := f.flight(t)

	order, err := f.ops.OrderOperation().CreateOrder(f.user.ID, []*operation.TicketRequest{
		{FlightId: flight.ID, Row: 1, Seat: 1},
		{FlightId: flight.ID, Row: 2, Seat: 2},
	})
	require.NoError(t, err)
	require.Len(t, order.Tickets, 2)
	assert.Equal(t, f.user.ID, order.UserId)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, flight.ID, order.Tickets[0].Flight.ID)
	assert.True(t, order.BelongsTo(f.user.ID))
	assert.Equal(t, int64(2), count(t, db, "tickets"))

	seats, err := f.ops.FlightOperation().GetTakenSeats(flight.ID)
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.Equal(t, 2, seats[1].Row)

	counts, err := f.ops.FlightOperation().CountTickets([]uint{flight.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[flight.ID])
	assert.Zero(t, counts[999])
}

func TestCreateOrderRejections(t *testing.T) {
	db, f := newFixture(t)
	flight := f.flight(t)
	orderOperation := f.ops.OrderOperation()

	_, err := orderOperation.CreateOrder(f.user.ID, nil)
	assert.ErrorIs(t, err, operation.ErrEmptyOrder)

	_, err = orderOperation.CreateOrder(f.user.ID, []*operation.TicketRequest{{FlightId: flight.ID, Row: 31, Seat: 1}})
	var rangeErr *operation.SeatOutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, "row", rangeErr.Dimension)
	assert.EqualError(t, err, "row must be in range 1:30")

	_, err = orderOperation.CreateOrder(f.user.ID, []*operation.TicketRequest{{FlightId: flight.ID, Row: 3, Seat: 7}})
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, "seat", rangeErr.Dimension)

	_, err = orderOperation.CreateOrder(f.user.ID, []*operation.TicketRequest{{FlightId: 999, Row: 1, Seat: 1}})
	assert.ErrorIs(t, err, operation.ErrInvalidReference)

	_, err = orderOperation.CreateOrder(f.user.ID, []*operation.TicketRequest{
		{FlightId: flight.ID, Row: 4, Seat: 4},
		{FlightId: flight.ID, Row: 4, Seat: 4},
	})
	assert.ErrorIs(t, err, operation.ErrSeatTaken)

	_, err = orderOperation.CreateOrder(f.user.ID, []*operation.TicketRequest{{FlightId: flight.ID, Row: 5, Seat: 5}})
	require.NoError(t, err)
	_, err = orderOperation.CreateOrder(f.otherUser.ID, []*operation.TicketRequest{{FlightId: flight.ID, Row: 5, Seat: 5}})
	var takenErr *operation.SeatTakenError
	require.True(t, errors.As(err, &takenErr))
	assert.Equal(t, 5, takenErr.Row)

	assert.Equal(t, int64(1), count(t, db, "orders"))
	assert.Equal(t, int64(1), count(t, db, "tickets"))
}

func TestCreateOrderIsAtomic(t *testing.T) {
	db, f := newFixture(t)
	flight := f.flight(t)

	_, err := f.ops.OrderOperation().CreateOrder(f.user.ID, []*operation.TicketRequest{
		{FlightId: flight.ID, Row: 1, Seat: 1},
		{FlightId: flight.ID, Row: 2, Seat: 2},
		{FlightId: flight.ID, Row: 40, Seat: 1},
	})
	assert.ErrorIs(t, err, operation.ErrSeatOutOfRange)
	assert.Zero(t, count(t, db, "orders"))
	assert.Zero(t, count(t, db, "tickets"))
}

func TestCreateOrderOnInactiveFlight(t *testing.T) {
	_, f := newFixture(t)
	flight := f.flight(t)
	_, err := f.ops.FlightOperation().DeactivateDepartedFlights(f.at(1))
	require.NoError(t, err)

	_, err = f.ops.OrderOperation().CreateOrder(f.user.ID, []*operation.TicketRequest{{FlightId: flight.ID, Row: 1, Seat: 1}})
	assert.ErrorIs(t, err, operation.ErrFlightInactive)
}

func TestCreateOrderConcurrentSameSeat(t *testing.T) {
	db, f := newFixture(t)
	flight := f.flight(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, user := range []*operation.User{f.user, f.otherUser} {
		wg.Add(1)
		go func(i int, userId uint) {
			defer wg.Done()
			_, errs[i] = f.ops.OrderOperation().CreateOrder(userId, []*operation.TicketRequest{{FlightId: flight.ID, Row: 5, Seat: 5}})
		}(i, user.ID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, operation.ErrSeatTaken)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int64(1), count(t, db, "tickets"))
}

func TestGetOrdersScoping(t *testing.T) {
	db, f := newFixture(t)
	flight := f.flight(t)
	orderOperation := f.ops.OrderOperation()

	mine, err := orderOperation.CreateOrder(f.user.ID, []*operation.TicketRequest{{FlightId: flight.ID, Row: 1, Seat: 1}})
	require.NoError(t, err)
	_, err = orderOperation.CreateOrder(f.otherUser.ID, []*operation.TicketRequest{{FlightId: flight.ID, Row: 1, Seat: 2}})
	require.NoError(t, err)

	orders, total, err := orderOperation.GetOrders(&operation.OrderFilter{UserId: f.user.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, mine.ID, orders[0].ID)
	assert.Len(t, orders[0].Tickets, 1)

	_, total, err = orderOperation.GetOrders(&operation.OrderFilter{AllUsers: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = orderOperation.GetOrders(&operation.OrderFilter{AllUsers: true, FlightId: 999})
	require.NoError(t, err)
	assert.Zero(t, total)

	require.NoError(t, orderOperation.DeleteOrder(mine.ID))
	assert.Equal(t, int64(1), count(t, db, "tickets"))
	_, err = orderOperation.GetOrder(mine.ID)
	assert.ErrorIs(t, err, operation.ErrOrderNotFound)
}

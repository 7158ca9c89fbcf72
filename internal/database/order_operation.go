// Package database
package database

import (
	"context"
	"errors"
	"time"

	. "github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
	now          func() time.Time
}

func NewOrderOperation(db *gorm.DB, queryTimeout time.Duration) *OrderOperation {
	return &OrderOperation{db: db, queryTimeout: queryTimeout, now: utcNow}
}

// CreateOrder validates and inserts the order with all its tickets in one transaction. The first
// failing ticket rolls everything back. Flights are locked so concurrent bookings on one flight
// queue up, and the unique seat index is the final guard when the store cannot lock.
func (orderOperation *OrderOperation) CreateOrder(userId uint, requests []*TicketRequest) (order *Order, err error) {
	if len(requests) == 0 {
		return nil, ErrEmptyOrder
	}
	ctx, cancel := context.WithTimeout(context.Background(), orderOperation.queryTimeout)
	defer cancel()
	order = &Order{UserId: userId, Tickets: make([]*Ticket, 0, len(requests))}
	err = orderOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireReference(tx, &User{}, "user", userId); err != nil {
			return err
		}

		flights := make(map[uint]*Flight)
		for _, request := range requests {
			if _, ok := flights[request.FlightId]; ok {
				continue
			}
			flight := &Flight{}
			err := tx.Clauses(lockForUpdate).Preload("Airplane").First(flight, request.FlightId).Error
			if err != nil {
				return translate(err, &InvalidReferenceError{Field: "flight", Id: request.FlightId}, nil)
			}
			if !flight.IsActive || !flight.DepartureTime.After(orderOperation.now()) {
				return ErrFlightInactive
			}
			flights[request.FlightId] = flight
		}

		for _, request := range requests {
			if err := flights[request.FlightId].Airplane.CheckSeat(request.Row, request.Seat); err != nil {
				return err
			}
		}

		requested := make(map[SeatCoordinate]bool, len(requests))
		for _, request := range requests {
			coordinate := request.Coordinate()
			if requested[coordinate] {
				return seatTaken(request)
			}
			requested[coordinate] = true
			found, err := taken(tx, &Ticket{}, 0, map[string]interface{}{
				"flight_id": request.FlightId,
				"row":       request.Row,
				"seat":      request.Seat,
			})
			if err != nil {
				return err
			}
			if found {
				return seatTaken(request)
			}
			order.Tickets = append(order.Tickets, &Ticket{FlightId: request.FlightId, Row: request.Row, Seat: request.Seat})
		}

		// tickets are inserted on their own: an association upsert would turn a seat collision on
		// mysql into a silent reassignment instead of an error
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		for _, ticket := range order.Tickets {
			ticket.OrderId = order.ID
		}
		if err := tx.Omit(clause.Associations).Create(&order.Tickets).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSeatTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orderOperation.GetOrder(order.ID)
}

func seatTaken(request *TicketRequest) error {
	return &SeatTakenError{FlightId: request.FlightId, Row: request.Row, Seat: request.Seat}
}

func (orderOperation *OrderOperation) GetOrder(id uint) (order *Order, err error) {
	order = &Order{}
	ctx, cancel := context.WithTimeout(context.Background(), orderOperation.queryTimeout)
	defer cancel()
	err = orderOperation.db.WithContext(ctx).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB { return db.Order("tickets.id") }).
		Preload("Tickets.Flight.Route.Source").
		Preload("Tickets.Flight.Route.Destination").
		First(order, id).Error
	err = translate(err, ErrOrderNotFound, nil)
	return
}

func (orderOperation *OrderOperation) GetOrders(filter *OrderFilter) (orders []*Order, total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), orderOperation.queryTimeout)
	defer cancel()
	owner := func(db *gorm.DB) *gorm.DB {
		if filter.AllUsers {
			return db
		}
		return db.Where("user_id = ?", filter.UserId)
	}
	onFlight := func(db *gorm.DB) *gorm.DB {
		if filter.FlightId == 0 {
			return db
		}
		tickets := db.Session(&gorm.Session{NewDB: true}).Model(&Ticket{}).Select("order_id").
			Where("flight_id = ?", filter.FlightId)
		return db.Where("id IN (?)", tickets)
	}
	return listOf[Order](orderOperation.db.WithContext(ctx), filter.Pagination,
		[]string{"Tickets", "Tickets.Flight.Route.Source", "Tickets.Flight.Route.Destination"}, owner, onFlight)
}

// DeleteOrder removes the order and releases its seats
func (orderOperation *OrderOperation) DeleteOrder(id uint) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), orderOperation.queryTimeout)
	defer cancel()
	return orderOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if found, err := exists(tx, &Order{}, id); err != nil {
			return err
		} else if !found {
			return ErrOrderNotFound
		}
		return deleteOrders(tx, []uint{id})
	})
}

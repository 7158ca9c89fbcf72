// Package service
package service

import (
	"time"

	"github.com/half-nothing/airport-booking/internal/interfaces/global"
)

const (
	EventFlightScheduled   = "flight.scheduled"
	EventFlightDeactivated = "flight.deactivated"
	EventOrderCreated      = "order.created"
)

// EventPublisherInterface 领域事件发布, 在事务提交之后调用, 发布失败只记录日志
type EventPublisherInterface interface {
	Publish(event string, key string, payload interface{})
	ShutdownCallback() global.Callable
}

type FlightScheduledEvent struct {
	FlightId    uint      `json:"flight_id"`
	RouteId     uint      `json:"route_id"`
	AirplaneId  uint      `json:"airplane_id"`
	Departure   time.Time `json:"departure_time"`
	Arrival     time.Time `json:"arrival_time"`
	CrewIds     []uint    `json:"crew"`
	IsActive    bool      `json:"is_active"`
	Rescheduled bool      `json:"rescheduled"`
}

type FlightsDeactivatedEvent struct {
	FlightIds []uint    `json:"flight_ids"`
	SweptAt   time.Time `json:"swept_at"`
}

type OrderCreatedEvent struct {
	OrderId   uint           `json:"order_id"`
	UserId    uint           `json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	Tickets   []*TicketModel `json:"tickets"`
}

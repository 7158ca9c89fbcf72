// Package controller
package controller

import (
	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type FlightControllerInterface interface {
	GetFlights(ctx echo.Context) error
	GetFlight(ctx echo.Context) error
	AddFlight(ctx echo.Context) error
	EditFlight(ctx echo.Context) error
	DeleteFlight(ctx echo.Context) error
}

type FlightController struct {
	logger  log.LoggerInterface
	service FlightServiceInterface
}

func NewFlightController(logger log.LoggerInterface, service FlightServiceInterface) *FlightController {
	return &FlightController{logger: logger, service: service}
}

func (controller *FlightController) GetFlights(ctx echo.Context) error {
	data := &RequestGetFlights{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return controller.service.GetFlights(data).Response(ctx)
}

func (controller *FlightController) GetFlight(ctx echo.Context) error {
	data, ok, err := retrieveRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.GetFlight(data).Response(ctx)
}

func (controller *FlightController) AddFlight(ctx echo.Context) error {
	data := &RequestSaveFlight{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.AddFlight(data).Response(ctx)
}

func (controller *FlightController) EditFlight(ctx echo.Context) error {
	data := &RequestSaveFlight{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.Partial = isPartial(ctx)
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.EditFlight(data).Response(ctx)
}

func (controller *FlightController) DeleteFlight(ctx echo.Context) error {
	data, ok, err := deleteRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.DeleteFlight(data).Response(ctx)
}

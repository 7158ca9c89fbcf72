// Package controller
package controller

import (
	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AirportControllerInterface interface {
	GetAirports(ctx echo.Context) error
	GetAirport(ctx echo.Context) error
	AddAirport(ctx echo.Context) error
	EditAirport(ctx echo.Context) error
	DeleteAirport(ctx echo.Context) error
}

type AirportController struct {
	logger  log.LoggerInterface
	service AirportServiceInterface
}

func NewAirportController(logger log.LoggerInterface, service AirportServiceInterface) *AirportController {
	return &AirportController{logger: logger, service: service}
}

func (controller *AirportController) GetAirports(ctx echo.Context) error {
	data := &RequestGetAirports{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return controller.service.GetAirports(data).Response(ctx)
}

func (controller *AirportController) GetAirport(ctx echo.Context) error {
	data, ok, err := retrieveRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.GetAirport(data).Response(ctx)
}

func (controller *AirportController) AddAirport(ctx echo.Context) error {
	data := &RequestSaveAirport{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.AddAirport(data).Response(ctx)
}

func (controller *AirportController) EditAirport(ctx echo.Context) error {
	data := &RequestSaveAirport{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.Partial = isPartial(ctx)
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.EditAirport(data).Response(ctx)
}

func (controller *AirportController) DeleteAirport(ctx echo.Context) error {
	data, ok, err := deleteRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.DeleteAirport(data).Response(ctx)
}

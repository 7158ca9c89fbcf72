// Package controller
package controller

import (
	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AirplaneTypeControllerInterface interface {
	GetAirplaneTypes(ctx echo.Context) error
	GetAirplaneType(ctx echo.Context) error
	AddAirplaneType(ctx echo.Context) error
	EditAirplaneType(ctx echo.Context) error
	DeleteAirplaneType(ctx echo.Context) error
}

type AirplaneTypeController struct {
	logger  log.LoggerInterface
	service AirplaneTypeServiceInterface
}

func NewAirplaneTypeController(logger log.LoggerInterface, service AirplaneTypeServiceInterface) *AirplaneTypeController {
	return &AirplaneTypeController{logger: logger, service: service}
}

func (controller *AirplaneTypeController) GetAirplaneTypes(ctx echo.Context) error {
	data := &RequestGetAirplaneTypes{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return controller.service.GetAirplaneTypes(data).Response(ctx)
}

func (controller *AirplaneTypeController) GetAirplaneType(ctx echo.Context) error {
	data, ok, err := retrieveRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.GetAirplaneType(data).Response(ctx)
}

func (controller *AirplaneTypeController) AddAirplaneType(ctx echo.Context) error {
	data := &RequestSaveAirplaneType{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.AddAirplaneType(data).Response(ctx)
}

func (controller *AirplaneTypeController) EditAirplaneType(ctx echo.Context) error {
	data := &RequestSaveAirplaneType{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.Partial = isPartial(ctx)
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.EditAirplaneType(data).Response(ctx)
}

func (controller *AirplaneTypeController) DeleteAirplaneType(ctx echo.Context) error {
	data, ok, err := deleteRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.DeleteAirplaneType(data).Response(ctx)
}

// Package controller
package controller

import (
	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type CityControllerInterface interface {
	GetCities(ctx echo.Context) error
	GetCity(ctx echo.Context) error
	AddCity(ctx echo.Context) error
	EditCity(ctx echo.Context) error
	DeleteCity(ctx echo.Context) error
}

type CityController struct {
	logger  log.LoggerInterface
	service CityServiceInterface
}

func NewCityController(logger log.LoggerInterface, service CityServiceInterface) *CityController {
	return &CityController{logger: logger, service: service}
}

func (controller *CityController) GetCities(ctx echo.Context) error {
	data := &RequestGetCities{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return controller.service.GetCities(data).Response(ctx)
}

func (controller *CityController) GetCity(ctx echo.Context) error {
	data, ok, err := retrieveRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.GetCity(data).Response(ctx)
}

func (controller *CityController) AddCity(ctx echo.Context) error {
	data := &RequestSaveCity{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.AddCity(data).Response(ctx)
}

func (controller *CityController) EditCity(ctx echo.Context) error {
	data := &RequestSaveCity{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.Partial = isPartial(ctx)
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.EditCity(data).Response(ctx)
}

func (controller *CityController) DeleteCity(ctx echo.Context) error {
	data, ok, err := deleteRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.DeleteCity(data).Response(ctx)
}

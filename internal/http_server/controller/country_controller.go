// Package controller
package controller

import (
	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type CountryControllerInterface interface {
	GetCountries(ctx echo.Context) error
	GetCountry(ctx echo.Context) error
	AddCountry(ctx echo.Context) error
	EditCountry(ctx echo.Context) error
	DeleteCountry(ctx echo.Context) error
}

type CountryController struct {
	logger  log.LoggerInterface
	service CountryServiceInterface
}

func NewCountryController(logger log.LoggerInterface, service CountryServiceInterface) *CountryController {
	return &CountryController{logger: logger, service: service}
}

func (controller *CountryController) GetCountries(ctx echo.Context) error {
	data := &RequestGetCountries{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return controller.service.GetCountries(data).Response(ctx)
}

func (controller *CountryController) GetCountry(ctx echo.Context) error {
	data, ok, err := retrieveRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.GetCountry(data).Response(ctx)
}

func (controller *CountryController) AddCountry(ctx echo.Context) error {
	data := &RequestSaveCountry{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.AddCountry(data).Response(ctx)
}

func (controller *CountryController) EditCountry(ctx echo.Context) error {
	data := &RequestSaveCountry{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.Partial = isPartial(ctx)
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.EditCountry(data).Response(ctx)
}

func (controller *CountryController) DeleteCountry(ctx echo.Context) error {
	data, ok, err := deleteRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.DeleteCountry(data).Response(ctx)
}

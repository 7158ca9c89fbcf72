// Package controller
package controller

import (
	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type CrewControllerInterface interface {
	GetCrews(ctx echo.Context) error
	GetCrew(ctx echo.Context) error
	AddCrew(ctx echo.Context) error
	EditCrew(ctx echo.Context) error
	DeleteCrew(ctx echo.Context) error
}

type CrewController struct {
	logger  log.LoggerInterface
	service CrewServiceInterface
}

func NewCrewController(logger log.LoggerInterface, service CrewServiceInterface) *CrewController {
	return &CrewController{logger: logger, service: service}
}

func (controller *CrewController) GetCrews(ctx echo.Context) error {
	data := &RequestGetCrews{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return controller.service.GetCrews(data).Response(ctx)
}

func (controller *CrewController) GetCrew(ctx echo.Context) error {
	data, ok, err := retrieveRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.GetCrew(data).Response(ctx)
}

func (controller *CrewController) AddCrew(ctx echo.Context) error {
	data := &RequestSaveCrew{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.AddCrew(data).Response(ctx)
}

func (controller *CrewController) EditCrew(ctx echo.Context) error {
	data := &RequestSaveCrew{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.Partial = isPartial(ctx)
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.EditCrew(data).Response(ctx)
}

func (controller *CrewController) DeleteCrew(ctx echo.Context) error {
	data, ok, err := deleteRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.DeleteCrew(data).Response(ctx)
}

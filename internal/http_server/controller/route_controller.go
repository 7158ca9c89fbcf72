// Package controller
package controller

import (
	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type RouteControllerInterface interface {
	GetRoutes(ctx echo.Context) error
	GetRoute(ctx echo.Context) error
	AddRoute(ctx echo.Context) error
	EditRoute(ctx echo.Context) error
	DeleteRoute(ctx echo.Context) error
}

type RouteController struct {
	logger  log.LoggerInterface
	service RouteServiceInterface
}

func NewRouteController(logger log.LoggerInterface, service RouteServiceInterface) *RouteController {
	return &RouteController{logger: logger, service: service}
}

func (controller *RouteController) GetRoutes(ctx echo.Context) error {
	data := &RequestGetRoutes{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return controller.service.GetRoutes(data).Response(ctx)
}

func (controller *RouteController) GetRoute(ctx echo.Context) error {
	data, ok, err := retrieveRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.GetRoute(data).Response(ctx)
}

func (controller *RouteController) AddRoute(ctx echo.Context) error {
	data := &RequestSaveRoute{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.AddRoute(data).Response(ctx)
}

func (controller *RouteController) EditRoute(ctx echo.Context) error {
	data := &RequestSaveRoute{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.Partial = isPartial(ctx)
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.EditRoute(data).Response(ctx)
}

func (controller *RouteController) DeleteRoute(ctx echo.Context) error {
	data, ok, err := deleteRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.DeleteRoute(data).Response(ctx)
}

// Package controller
package controller

import (
	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type OrderControllerInterface interface {
	GetOrders(ctx echo.Context) error
	GetOrder(ctx echo.Context) error
	CreateOrder(ctx echo.Context) error
	DeleteOrder(ctx echo.Context) error
}

type OrderController struct {
	logger  log.LoggerInterface
	service OrderServiceInterface
}

func NewOrderController(logger log.LoggerInterface, service OrderServiceInterface) *OrderController {
	return &OrderController{logger: logger, service: service}
}

func (controller *OrderController) GetOrders(ctx echo.Context) error {
	data := &RequestGetOrders{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return controller.service.GetOrders(data).Response(ctx)
}

func (controller *OrderController) GetOrder(ctx echo.Context) error {
	data, ok, err := retrieveRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.GetOrder(data).Response(ctx)
}

func (controller *OrderController) CreateOrder(ctx echo.Context) error {
	data := &RequestCreateOrder{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return controller.service.CreateOrder(data).Response(ctx)
}

func (controller *OrderController) DeleteOrder(ctx echo.Context) error {
	data, ok, err := deleteRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.DeleteOrder(data).Response(ctx)
}

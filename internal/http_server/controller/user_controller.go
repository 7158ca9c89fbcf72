// Package controller
package controller

import (
	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type UserControllerInterface interface {
	UserRegister(ctx echo.Context) error
	UserLogin(ctx echo.Context) error
	RefreshToken(ctx echo.Context) error
	VerifyToken(ctx echo.Context) error
	GetCurrentUser(ctx echo.Context) error
	EditCurrentUser(ctx echo.Context) error
}

type UserController struct {
	logger  log.LoggerInterface
	service UserServiceInterface
}

func NewUserController(logger log.LoggerInterface, service UserServiceInterface) *UserController {
	return &UserController{logger: logger, service: service}
}

func (controller *UserController) UserRegister(ctx echo.Context) error {
	data := &RequestUserRegister{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	return controller.service.UserRegister(data).Response(ctx)
}

func (controller *UserController) UserLogin(ctx echo.Context) error {
	data := &RequestUserLogin{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	return controller.service.UserLogin(data).Response(ctx)
}

func (controller *UserController) RefreshToken(ctx echo.Context) error {
	data := &RequestRefreshToken{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	return controller.service.RefreshToken(data).Response(ctx)
}

func (controller *UserController) VerifyToken(ctx echo.Context) error {
	data := &RequestVerifyToken{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	return controller.service.VerifyToken(data).Response(ctx)
}

func (controller *UserController) GetCurrentUser(ctx echo.Context) error {
	data := &RequestCurrentUser{JwtHeader: mid.JwtHeaderOf(ctx)}
	return controller.service.GetCurrentUser(data).Response(ctx)
}

func (controller *UserController) EditCurrentUser(ctx echo.Context) error {
	data := &RequestEditCurrentUser{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return controller.service.EditCurrentUser(data).Response(ctx)
}

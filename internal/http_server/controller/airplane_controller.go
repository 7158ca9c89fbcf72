// Package controller
package controller

import (
	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/half-nothing/airport-booking/internal/utils"
	"github.com/labstack/echo/v4"
)

type AirplaneControllerInterface interface {
	GetAirplanes(ctx echo.Context) error
	GetAirplane(ctx echo.Context) error
	AddAirplane(ctx echo.Context) error
	EditAirplane(ctx echo.Context) error
	UploadImage(ctx echo.Context) error
	DeleteAirplane(ctx echo.Context) error
}

type AirplaneController struct {
	logger  log.LoggerInterface
	service AirplaneServiceInterface
}

func NewAirplaneController(logger log.LoggerInterface, service AirplaneServiceInterface) *AirplaneController {
	return &AirplaneController{logger: logger, service: service}
}

func (controller *AirplaneController) GetAirplanes(ctx echo.Context) error {
	data := &RequestGetAirplanes{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return controller.service.GetAirplanes(data).Response(ctx)
}

func (controller *AirplaneController) GetAirplane(ctx echo.Context) error {
	data, ok, err := retrieveRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.GetAirplane(data).Response(ctx)
}

func (controller *AirplaneController) AddAirplane(ctx echo.Context) error {
	data := &RequestSaveAirplane{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.AddAirplane(data).Response(ctx)
}

func (controller *AirplaneController) EditAirplane(ctx echo.Context) error {
	data := &RequestSaveAirplane{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.Partial = isPartial(ctx)
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.EditAirplane(data).Response(ctx)
}

// UploadImage reads the multipart field "image"
func (controller *AirplaneController) UploadImage(ctx echo.Context) error {
	id := utils.StrToUint(ctx.Param("id"), 0)
	if id == 0 {
		controller.logger.ErrorF("error binding data: invalid airplane id %q", ctx.Param("id"))
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data := &RequestUploadAirplaneImage{Id: id}
	if file, err := ctx.FormFile("image"); err == nil {
		data.File = file
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return controller.service.UploadImage(data).Response(ctx)
}

func (controller *AirplaneController) DeleteAirplane(ctx echo.Context) error {
	data, ok, err := deleteRequest(controller.logger, ctx)
	if !ok {
		return err
	}
	return controller.service.DeleteAirplane(data).Response(ctx)
}

// Package controller
package controller

import (
	"net/http"

	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

// bindRequest binds path, query and body into data, on failure the error response is already written
func bindRequest(logger log.LoggerInterface, ctx echo.Context, data interface{}) (bool, error) {
	if err := ctx.Bind(data); err != nil {
		logger.ErrorF("error binding data: %v", err)
		return false, NewErrorResponse(ctx, &ErrLackParam)
	}
	return true, nil
}

// isPartial tells PATCH apart from PUT, PATCH leaves absent fields unchanged
func isPartial(ctx echo.Context) bool {
	return ctx.Request().Method == http.MethodPatch
}

func retrieveRequest(logger log.LoggerInterface, ctx echo.Context) (*RequestRetrieve, bool, error) {
	data := &RequestRetrieve{}
	if ok, err := bindRequest(logger, ctx, data); !ok {
		return nil, false, err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return data, true, nil
}

func deleteRequest(logger log.LoggerInterface, ctx echo.Context) (*RequestDelete, bool, error) {
	data := &RequestDelete{}
	if ok, err := bindRequest(logger, ctx, data); !ok {
		return nil, false, err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	data.ClientInfo = mid.ClientInfoOf(ctx)
	return data, true, nil
}

// Package controller
package controller

import (
	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AuditLogController struct {
	logger       log.LoggerInterface
	auditService AuditServiceInterface
}

func NewAuditLogController(logger log.LoggerInterface, auditService AuditServiceInterface) *AuditLogController {
	return &AuditLogController{logger: logger, auditService: auditService}
}

func (controller *AuditLogController) GetAuditLogs(ctx echo.Context) error {
	data := &RequestGetAuditLog{}
	if ok, err := bindRequest(controller.logger, ctx, data); !ok {
		return err
	}
	data.JwtHeader = mid.JwtHeaderOf(ctx)
	return controller.auditService.GetAuditLogPage(data).Response(ctx)
}

type MaintenanceController struct {
	maintenanceService MaintenanceServiceInterface
}

func NewMaintenanceController(maintenanceService MaintenanceServiceInterface) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService}
}

func (controller *MaintenanceController) DeactivateFlights(ctx echo.Context) error {
	data := &RequestDeactivateFlights{JwtHeader: mid.JwtHeaderOf(ctx), ClientInfo: mid.ClientInfoOf(ctx)}
	return controller.maintenanceService.DeactivateFlights(data).Response(ctx)
}

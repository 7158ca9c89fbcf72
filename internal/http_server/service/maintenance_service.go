// Package service
package service

import (
	"fmt"

	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
)

type MaintenanceService struct {
	logger         log.LoggerInterface
	sweeper        FlightSweeperInterface
	auditOperation operation.AuditLogOperationInterface
}

func NewMaintenanceService(
	logger log.LoggerInterface,
	sweeper FlightSweeperInterface,
	auditLogOperation operation.AuditLogOperationInterface,
) *MaintenanceService {
	return &MaintenanceService{
		logger:         logger,
		sweeper:        sweeper,
		auditOperation: auditLogOperation,
	}
}

var SuccessDeactivateFlights = ApiStatus{StatusName: "DEACTIVATE_FLIGHTS", Description: "departed flights deactivated", HttpCode: Ok}

// DeactivateFlights runs the sweep now; the sweeper itself invalidates the flight cache and
// publishes the event
func (maintenanceService *MaintenanceService) DeactivateFlights(req *RequestDeactivateFlights) *ApiResponse[ResponseDeactivateFlights] {
	if res := CheckPolicy[ResponseDeactivateFlights](operation.MaintenanceResource, CreateAction, req.JwtHeader); res != nil {
		return res
	}
	flightIds, sweptAt, err := maintenanceService.sweeper.Sweep()
	if res := CheckError[ResponseDeactivateFlights](maintenanceService.logger, err); res != nil {
		return res
	}
	if flightIds == nil {
		flightIds = []uint{}
	}
	auditLog := maintenanceService.auditOperation.NewAuditLog(operation.FlightsDeactivated, req.Uid,
		fmt.Sprintf("%d flights", len(flightIds)), req.Ip, req.UserAgent, nil)
	if err := maintenanceService.auditOperation.SaveAuditLog(auditLog); err != nil {
		maintenanceService.logger.ErrorF("Fail to create audit log for %s, error: %v", operation.FlightsDeactivated, err)
	}
	return NewApiResponse(&SuccessDeactivateFlights, Unsatisfied, &ResponseDeactivateFlights{
		Deactivated: flightIds,
		SweptAt:     sweptAt,
	})
}

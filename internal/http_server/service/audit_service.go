// Package service
package service

import (
	"encoding/json"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
)

type AuditLogService struct {
	logger         log.LoggerInterface
	limits         *c.HttpServerLimit
	auditOperation operation.AuditLogOperationInterface
}

func NewAuditService(
	logger log.LoggerInterface,
	limits *c.HttpServerLimit,
	auditOperation operation.AuditLogOperationInterface,
) *AuditLogService {
	return &AuditLogService{
		logger:         logger,
		limits:         limits,
		auditOperation: auditOperation,
	}
}

var SuccessGetAuditLog = ApiStatus{StatusName: "GET_AUDIT_LOG", Description: "audit logs fetched", HttpCode: Ok}

func (auditLogService *AuditLogService) GetAuditLogPage(req *RequestGetAuditLog) *ApiResponse[PageResponse[operation.AuditLog]] {
	if res := CheckPolicy[PageResponse[operation.AuditLog]](operation.AuditResource, ListAction, req.JwtHeader); res != nil {
		return res
	}
	filter := &operation.AuditLogFilter{Pagination: req.Pagination(auditLogService.limits), EventType: operation.EventType(req.EventType)}
	auditLogs, total, err := auditLogService.auditOperation.GetAuditLogs(filter)
	if res := CheckError[PageResponse[operation.AuditLog]](auditLogService.logger, err); res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAuditLog, Unsatisfied, NewPageResponse(auditLogs, total, filter.Pagination,
		func(auditLog *operation.AuditLog) *operation.AuditLog { return auditLog }))
}

// changeRecorder runs after every successful administrator write: it stores the audit
// record and drops cached flight pages, whose labels may embed the changed record
type changeRecorder struct {
	logger         log.LoggerInterface
	auditOperation operation.AuditLogOperationInterface
	flightCache    FlightCacheInterface
}

func newChangeRecorder(logger log.LoggerInterface, auditOperation operation.AuditLogOperationInterface, flightCache FlightCacheInterface) *changeRecorder {
	return &changeRecorder{logger: logger, auditOperation: auditOperation, flightCache: flightCache}
}

func (recorder *changeRecorder) record(eventType operation.EventType, header JwtHeader, client ClientInfo, object string, detail *operation.ChangeDetail) {
	recorder.flightCache.Invalidate()
	auditLog := recorder.auditOperation.NewAuditLog(eventType, header.Uid, object, client.Ip, client.UserAgent, detail)
	if err := recorder.auditOperation.SaveAuditLog(auditLog); err != nil {
		recorder.logger.ErrorF("Fail to create audit log for %s, error: %v", eventType, err)
	}
}

// changeOf snapshots the before and after shapes of an edited record
func changeOf(before, after interface{}) *operation.ChangeDetail {
	oldValue, _ := json.Marshal(before)
	newValue, _ := json.Marshal(after)
	return &operation.ChangeDetail{OldValue: string(oldValue), NewValue: string(newValue)}
}

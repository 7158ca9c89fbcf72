// Package service
package service

import "github.com/half-nothing/airport-booking/internal/interfaces/operation"

type AuditServiceInterface interface {
	GetAuditLogPage(req *RequestGetAuditLog) *ApiResponse[PageResponse[operation.AuditLog]]
}

type RequestGetAuditLog struct {
	JwtHeader
	PageRequest
	EventType string `query:"event_type"`
}

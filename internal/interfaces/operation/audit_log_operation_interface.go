// Package operation
package operation

type EventType string

const (
	CountryCreated      EventType = "CountryCreated"
	CountryUpdated      EventType = "CountryUpdated"
	CountryDeleted      EventType = "CountryDeleted"
	CityCreated         EventType = "CityCreated"
	CityUpdated         EventType = "CityUpdated"
	CityDeleted         EventType = "CityDeleted"
	AirportCreated      EventType = "AirportCreated"
	AirportUpdated      EventType = "AirportUpdated"
	AirportDeleted      EventType = "AirportDeleted"
	RouteCreated        EventType = "RouteCreated"
	RouteUpdated        EventType = "RouteUpdated"
	RouteDeleted        EventType = "RouteDeleted"
	AirplaneTypeCreated EventType = "AirplaneTypeCreated"
	AirplaneTypeUpdated EventType = "AirplaneTypeUpdated"
	AirplaneTypeDeleted EventType = "AirplaneTypeDeleted"
	AirplaneCreated     EventType = "AirplaneCreated"
	AirplaneUpdated     EventType = "AirplaneUpdated"
	AirplaneDeleted     EventType = "AirplaneDeleted"
	AirplaneImageUpload EventType = "AirplaneImageUpload"
	CrewCreated         EventType = "CrewCreated"
	CrewUpdated         EventType = "CrewUpdated"
	CrewDeleted         EventType = "CrewDeleted"
	FlightScheduled     EventType = "FlightScheduled"
	FlightRescheduled   EventType = "FlightRescheduled"
	FlightDeleted       EventType = "FlightDeleted"
	FlightsDeactivated  EventType = "FlightsDeactivated"
	OrderDeleted        EventType = "OrderDeleted"
)

type AuditLogOperationInterface interface {
	NewAuditLog(eventType EventType, subject uint, object, ip, userAgent string, changeDetails *ChangeDetail) (auditLog *AuditLog)
	SaveAuditLog(auditLog *AuditLog) (err error)
	GetAuditLogs(filter *AuditLogFilter) (auditLogs []*AuditLog, total int64, err error)
}

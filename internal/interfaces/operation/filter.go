// Package operation
package operation

import "time"

type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Normalize clamps page to >= 1 and page size to [1, maxSize], using defaultSize when unset
func (p Pagination) Normalize(defaultSize, maxSize int) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultSize
	}
	if p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}

type CountryFilter struct {
	Pagination
	Search string
}

type CityFilter struct {
	Pagination
	Search    string
	CountryId uint
}

type AirportFilter struct {
	Pagination
	Search    string
	CityId    uint
	CountryId uint
}

type RouteFilter struct {
	Pagination
	Search        string
	SourceId      uint
	DestinationId uint
}

type AirplaneTypeFilter struct {
	Pagination
	Search string
}

type AirplaneFilter struct {
	Pagination
	Search         string
	AirplaneTypeId uint
}

type CrewFilter struct {
	Pagination
	Search   string
	Position CrewPosition
}

type FlightFilter struct {
	Pagination
	Search         string
	RouteId        uint
	AirplaneId     uint
	IsActive       *bool
	DepartureAfter *time.Time
	ArrivalBefore  *time.Time
}

// OrderFilter lists the orders of UserId, or every order when AllUsers is set
type OrderFilter struct {
	Pagination
	UserId   uint
	AllUsers bool
	FlightId uint
}

type AuditLogFilter struct {
	Pagination
	EventType EventType
}

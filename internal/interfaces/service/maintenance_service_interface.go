// Package service
package service

import "time"

// MaintenanceServiceInterface 维护接口, 仅管理员可用
type MaintenanceServiceInterface interface {
	// DeactivateFlights 立即执行一次已起飞航班清扫
	DeactivateFlights(req *RequestDeactivateFlights) *ApiResponse[ResponseDeactivateFlights]
}

type RequestDeactivateFlights struct {
	JwtHeader
	ClientInfo
}

type ResponseDeactivateFlights struct {
	Deactivated []uint    `json:"deactivated"`
	SweptAt     time.Time `json:"swept_at"`
}

// FlightSweeperInterface runs the departed flight sweep on demand
type FlightSweeperInterface interface {
	Sweep() (flightIds []uint, sweptAt time.Time, err error)
}

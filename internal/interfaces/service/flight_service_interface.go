// Package service
package service

import "time"

// FlightServiceInterface 航班接口, 任何人都可以浏览, 只有管理员可以排班
type FlightServiceInterface interface {
	GetFlights(req *RequestGetFlights) *ApiResponse[PageResponse[FlightListItem]]
	// GetFlight 返回航班详情与已被占用的座位
	GetFlight(req *RequestRetrieve) *ApiResponse[FlightDetail]
	AddFlight(req *RequestSaveFlight) *ApiResponse[FlightDetail]
	// EditFlight 重新排班, 与 AddFlight 走相同的检查, 冲突检查排除该航班自身
	EditFlight(req *RequestSaveFlight) *ApiResponse[FlightDetail]
	// DeleteFlight 级联删除机票, 订单保留
	DeleteFlight(req *RequestDelete) *ApiResponse[ResponseDelete]
}

// RequestGetFlights keeps the raw query values, they are parsed by the service so that a
// malformed value is reported as a field error
type RequestGetFlights struct {
	JwtHeader
	PageRequest
	Search        string `query:"search"`
	Route         uint   `query:"route"`
	Airplane      uint   `query:"airplane"`
	IsActive      string `query:"is_active"`
	DepartureTime string `query:"departure_time"`
	ArrivalTime   string `query:"arrival_time"`
}

type RequestSaveFlight struct {
	JwtHeader
	ClientInfo
	Id            uint       `param:"id" json:"-"`
	Partial       bool       `json:"-"`
	Route         *uint      `json:"route"`
	Airplane      *uint      `json:"airplane"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	Crew          []uint     `json:"crew"`
	IsActive      *bool      `json:"is_active"`
}

// FlightCacheInterface 航班列表缓存, 任意航班写入、下单或清扫后整体失效
type FlightCacheInterface interface {
	// GetFlightPage 未命中时 ok 为 false, generation 是读取时的缓存代数, 须在查询数据库之前取得
	GetFlightPage(key string) (page *PageResponse[FlightListItem], generation int64, ok bool)
	// SetFlightPage 把页面写入 generation 代; 查询期间发生过 Invalidate 时该代已失效, 页面不会再被读到
	SetFlightPage(key string, generation int64, page *PageResponse[FlightListItem])
	Invalidate()
}

// UnknownGeneration 表示缓存代数读取失败, 此时 SetFlightPage 不写入
const UnknownGeneration int64 = -1

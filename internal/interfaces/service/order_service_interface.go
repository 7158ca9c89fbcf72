// Package service
package service

import "github.com/half-nothing/airport-booking/internal/interfaces/operation"

// OrderServiceInterface 订单接口, 需要登录, 非管理员只能看到自己的订单
type OrderServiceInterface interface {
	GetOrders(req *RequestGetOrders) *ApiResponse[PageResponse[OrderModel]]
	// GetOrder 非本人且非管理员时返回未找到
	GetOrder(req *RequestRetrieve) *ApiResponse[OrderModel]
	// CreateOrder 整单原子提交, 任意一张机票失败则整单失败
	CreateOrder(req *RequestCreateOrder) *ApiResponse[OrderModel]
	// DeleteOrder 仅管理员, 级联删除机票并释放座位
	DeleteOrder(req *RequestDelete) *ApiResponse[ResponseDelete]
}

type RequestGetOrders struct {
	JwtHeader
	PageRequest
	Flight uint `query:"flight"`
}

type RequestCreateOrder struct {
	JwtHeader
	Tickets []*operation.TicketRequest `json:"tickets"`
}

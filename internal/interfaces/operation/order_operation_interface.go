// Package operation
package operation

// OrderOperationInterface 订单操作
type OrderOperationInterface interface {
	// CreateOrder 在同一事务中校验并写入订单与全部机票, 任意一张机票失败则整体回滚
	CreateOrder(userId uint, requests []*TicketRequest) (order *Order, err error)
	// GetOrder 获取订单, 预加载机票及其航班
	GetOrder(id uint) (order *Order, err error)
	// GetOrders 按 filter 获取订单, filter.AllUsers 为 false 时仅返回 filter.UserId 的订单
	GetOrders(filter *OrderFilter) (orders []*Order, total int64, err error)
	// DeleteOrder 级联删除机票
	DeleteOrder(id uint) (err error)
}

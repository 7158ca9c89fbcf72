// Package operation
package operation

import "time"

// FlightOperationInterface 航班操作, ScheduleFlight 是创建与修改航班的唯一入口
type FlightOperationInterface interface {
	// ScheduleFlight 依次检查时间窗口、机组组成、飞机与每位机组成员的时间冲突, 通过后写入航班与机组关联.
	// schedule.FlightId 不为0时表示修改该航班, 冲突检查会排除它
	ScheduleFlight(schedule *FlightSchedule) (flight *Flight, err error)
	// GetFlight 获取航班, 预加载航线、飞机与机组
	GetFlight(id uint) (flight *Flight, err error)
	GetFlights(filter *FlightFilter) (flights []*Flight, total int64, err error)
	// CountTickets 统计每个航班已售出的机票数
	CountTickets(flightIds []uint) (counts map[uint]int64, err error)
	// GetTakenSeats 获取航班已被占用的座位
	GetTakenSeats(flightId uint) (seats []*Ticket, err error)
	// DeleteFlight 级联删除机票, 不可恢复
	DeleteFlight(id uint) (err error)
	// DeactivateDepartedFlights 将所有已起飞且仍为激活状态的航班置为未激活, 幂等, 返回受影响的航班ID
	DeactivateDepartedFlights(now time.Time) (flightIds []uint, err error)
}

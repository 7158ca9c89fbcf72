// Package operation
package operation

// RouteOperationInterface 航线操作, 航线是有向的, A->B 与 B->A 是两条不同的航线
type RouteOperationInterface interface {
	NewRoute(sourceId, destinationId uint, distance int) (route *Route)
	// AddRoute 起点终点相同或距离不为正时返回 ErrInvalidRoute, 有序对重复时返回 *DuplicateEntityError
	AddRoute(route *Route) (err error)
	GetRoute(id uint) (route *Route, err error)
	GetRoutes(filter *RouteFilter) (routes []*Route, total int64, err error)
	// UpdateRoute 与 AddRoute 相同的检查, 排除自身
	UpdateRoute(route *Route) (err error)
	// DeleteRoute 级联删除航班与机票
	DeleteRoute(id uint) (err error)
}

// CheckRoute validates the fields of a route that do not need the store
func CheckRoute(route *Route) error {
	if route.SourceId == route.DestinationId || route.Distance <= 0 {
		return ErrInvalidRoute
	}
	return nil
}

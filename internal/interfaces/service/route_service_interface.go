// Package service
package service

// RouteServiceInterface 航线接口, 航线是有向的
type RouteServiceInterface interface {
	GetRoutes(req *RequestGetRoutes) *ApiResponse[PageResponse[RouteListItem]]
	GetRoute(req *RequestRetrieve) *ApiResponse[RouteDetail]
	AddRoute(req *RequestSaveRoute) *ApiResponse[RouteDetail]
	EditRoute(req *RequestSaveRoute) *ApiResponse[RouteDetail]
	// DeleteRoute 级联删除航班与机票
	DeleteRoute(req *RequestDelete) *ApiResponse[ResponseDelete]
}

type RequestGetRoutes struct {
	JwtHeader
	PageRequest
	Search      string `query:"search"`
	Source      uint   `query:"source"`
	Destination uint   `query:"destination"`
}

type RequestSaveRoute struct {
	JwtHeader
	ClientInfo
	Id          uint  `param:"id" json:"-"`
	Partial     bool  `json:"-"`
	Source      *uint `json:"source"`
	Destination *uint `json:"destination"`
	Distance    *int  `json:"distance"`
}

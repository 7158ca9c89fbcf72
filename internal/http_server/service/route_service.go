// Package service
package service

import (
	"fmt"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
)

type RouteService struct {
	logger         log.LoggerInterface
	limits         *c.HttpServerLimit
	routeOperation operation.RouteOperationInterface
	recorder       *changeRecorder
}

func NewRouteService(
	logger log.LoggerInterface,
	limits *c.HttpServerLimit,
	routeOperation operation.RouteOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
	flightCache FlightCacheInterface,
) *RouteService {
	return &RouteService{
		logger:         logger,
		limits:         limits,
		routeOperation: routeOperation,
		recorder:       newChangeRecorder(logger, auditLogOperation, flightCache),
	}
}

var (
	SuccessGetRoutes   = ApiStatus{StatusName: "GET_ROUTES", Description: "routes fetched", HttpCode: Ok}
	SuccessGetRoute    = ApiStatus{StatusName: "GET_ROUTE", Description: "route fetched", HttpCode: Ok}
	SuccessAddRoute    = ApiStatus{StatusName: "ADD_ROUTE", Description: "route created", HttpCode: Created}
	SuccessEditRoute   = ApiStatus{StatusName: "EDIT_ROUTE", Description: "route updated", HttpCode: Ok}
	SuccessDeleteRoute = ApiStatus{StatusName: "DELETE_ROUTE", Description: "route deleted", HttpCode: Ok}
)

func (routeService *RouteService) GetRoutes(req *RequestGetRoutes) *ApiResponse[PageResponse[RouteListItem]] {
	if res := CheckPolicy[PageResponse[RouteListItem]](operation.RouteResource, ListAction, req.JwtHeader); res != nil {
		return res
	}
	filter := &operation.RouteFilter{
		Pagination:    req.Pagination(routeService.limits),
		Search:        req.Search,
		SourceId:      req.Source,
		DestinationId: req.Destination,
	}
	routes, total, err := routeService.routeOperation.GetRoutes(filter)
	if res := CheckError[PageResponse[RouteListItem]](routeService.logger, err); res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetRoutes, Unsatisfied, NewPageResponse(routes, total, filter.Pagination, BuildRouteListItem))
}

func (routeService *RouteService) getRoute(id uint) (*operation.Route, *ApiResponse[RouteDetail]) {
	return CallDBFuncAndCheckError[operation.Route, RouteDetail](routeService.logger, func() (*operation.Route, error) {
		return routeService.routeOperation.GetRoute(id)
	})
}

func (routeService *RouteService) GetRoute(req *RequestRetrieve) *ApiResponse[RouteDetail] {
	if res := CheckPolicy[RouteDetail](operation.RouteResource, RetrieveAction, req.JwtHeader); res != nil {
		return res
	}
	route, res := routeService.getRoute(req.Id)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetRoute, Unsatisfied, BuildRouteDetail(route))
}

func (routeService *RouteService) AddRoute(req *RequestSaveRoute) *ApiResponse[RouteDetail] {
	if res := CheckPolicy[RouteDetail](operation.RouteResource, CreateAction, req.JwtHeader); res != nil {
		return res
	}
	if err := requireFields(
		field{"source", req.Source != nil},
		field{"destination", req.Destination != nil},
		field{"distance", req.Distance != nil},
	); err != nil {
		return CheckError[RouteDetail](routeService.logger, err)
	}
	route := routeService.routeOperation.NewRoute(*req.Source, *req.Destination, *req.Distance)
	if res := CheckError[RouteDetail](routeService.logger, routeService.routeOperation.AddRoute(route)); res != nil {
		return res
	}
	routeService.recorder.record(operation.RouteCreated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("route %d", route.ID), nil)
	route, res := routeService.getRoute(route.ID)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessAddRoute, Unsatisfied, BuildRouteDetail(route))
}

func (routeService *RouteService) EditRoute(req *RequestSaveRoute) *ApiResponse[RouteDetail] {
	if res := CheckPolicy[RouteDetail](operation.RouteResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if !req.Partial {
		if err := requireFields(
			field{"source", req.Source != nil},
			field{"destination", req.Destination != nil},
			field{"distance", req.Distance != nil},
		); err != nil {
			return CheckError[RouteDetail](routeService.logger, err)
		}
	}
	route, res := routeService.getRoute(req.Id)
	if res != nil {
		return res
	}
	before := BuildRouteListItem(route)
	sourceId, destinationId, distance := route.SourceId, route.DestinationId, route.Distance
	if req.Source != nil {
		sourceId = *req.Source
	}
	if req.Destination != nil {
		destinationId = *req.Destination
	}
	if req.Distance != nil {
		distance = *req.Distance
	}
	edited := routeService.routeOperation.NewRoute(sourceId, destinationId, distance)
	edited.ID = route.ID
	if res := CheckError[RouteDetail](routeService.logger, routeService.routeOperation.UpdateRoute(edited)); res != nil {
		return res
	}
	if route, res = routeService.getRoute(edited.ID); res != nil {
		return res
	}
	routeService.recorder.record(operation.RouteUpdated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("route %d", route.ID),
		changeOf(before, BuildRouteListItem(route)))
	return NewApiResponse(&SuccessEditRoute, Unsatisfied, BuildRouteDetail(route))
}

func (routeService *RouteService) DeleteRoute(req *RequestDelete) *ApiResponse[ResponseDelete] {
	if res := CheckPolicy[ResponseDelete](operation.RouteResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if res := CheckError[ResponseDelete](routeService.logger, routeService.routeOperation.DeleteRoute(req.Id)); res != nil {
		return res
	}
	routeService.recorder.record(operation.RouteDeleted, req.JwtHeader, req.ClientInfo, fmt.Sprintf("route %d", req.Id), nil)
	data := ResponseDelete(true)
	return NewApiResponse(&SuccessDeleteRoute, Unsatisfied, &data)
}

// Package service
package service

import (
	"fmt"
	"strconv"
	"time"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/half-nothing/airport-booking/internal/utils"
)

type FlightService struct {
	logger          log.LoggerInterface
	limits          *c.HttpServerLimit
	flightOperation operation.FlightOperationInterface
	flightCache     FlightCacheInterface
	publisher       EventPublisherInterface
	recorder        *changeRecorder
}

func NewFlightService(
	logger log.LoggerInterface,
	limits *c.HttpServerLimit,
	flightOperation operation.FlightOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
	flightCache FlightCacheInterface,
	publisher EventPublisherInterface,
) *FlightService {
	return &FlightService{
		logger:          logger,
		limits:          limits,
		flightOperation: flightOperation,
		flightCache:     flightCache,
		publisher:       publisher,
		recorder:        newChangeRecorder(logger, auditLogOperation, flightCache),
	}
}

var (
	SuccessGetFlights   = ApiStatus{StatusName: "GET_FLIGHTS", Description: "flights fetched", HttpCode: Ok}
	SuccessGetFlight    = ApiStatus{StatusName: "GET_FLIGHT", Description: "flight fetched", HttpCode: Ok}
	SuccessAddFlight    = ApiStatus{StatusName: "ADD_FLIGHT", Description: "flight scheduled", HttpCode: Created}
	SuccessEditFlight   = ApiStatus{StatusName: "EDIT_FLIGHT", Description: "flight rescheduled", HttpCode: Ok}
	SuccessDeleteFlight = ApiStatus{StatusName: "DELETE_FLIGHT", Description: "flight deleted", HttpCode: Ok}
)

func formatOptionalTime(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(time.RFC3339)
}

func formatOptionalBool(value *bool) string {
	if value == nil {
		return ""
	}
	return strconv.FormatBool(*value)
}

// flightPageKey identifies a list page by its normalized filter
func flightPageKey(filter *operation.FlightFilter) string {
	return fmt.Sprintf("page=%d&size=%d&search=%s&route=%d&airplane=%d&active=%s&departure=%s&arrival=%s",
		filter.Page, filter.PageSize, filter.Search, filter.RouteId, filter.AirplaneId,
		formatOptionalBool(filter.IsActive), formatOptionalTime(filter.DepartureAfter), formatOptionalTime(filter.ArrivalBefore))
}

func (flightService *FlightService) parseFilter(req *RequestGetFlights) (*operation.FlightFilter, error) {
	isActive, err := parseOptionalBool("is_active", req.IsActive)
	if err != nil {
		return nil, err
	}
	departure, err := parseOptionalTime("departure_time", req.DepartureTime)
	if err != nil {
		return nil, err
	}
	arrival, err := parseOptionalTime("arrival_time", req.ArrivalTime)
	if err != nil {
		return nil, err
	}
	return &operation.FlightFilter{
		Pagination:     req.Pagination(flightService.limits),
		Search:         req.Search,
		RouteId:        req.Route,
		AirplaneId:     req.Airplane,
		IsActive:       isActive,
		DepartureAfter: departure,
		ArrivalBefore:  arrival,
	}, nil
}

func (flightService *FlightService) GetFlights(req *RequestGetFlights) *ApiResponse[PageResponse[FlightListItem]] {
	if res := CheckPolicy[PageResponse[FlightListItem]](operation.FlightResource, ListAction, req.JwtHeader); res != nil {
		return res
	}
	filter, err := flightService.parseFilter(req)
	if err != nil {
		return CheckError[PageResponse[FlightListItem]](flightService.logger, err)
	}
	key := flightPageKey(filter)
	page, generation, ok := flightService.flightCache.GetFlightPage(key)
	if ok {
		return NewApiResponse(&SuccessGetFlights, Unsatisfied, page)
	}
	flights, total, err := flightService.flightOperation.GetFlights(filter)
	if res := CheckError[PageResponse[FlightListItem]](flightService.logger, err); res != nil {
		return res
	}
	sold, err := flightService.flightOperation.CountTickets(utils.Map(flights, func(flight *operation.Flight) uint { return flight.ID }))
	if res := CheckError[PageResponse[FlightListItem]](flightService.logger, err); res != nil {
		return res
	}
	page = NewPageResponse(flights, total, filter.Pagination, func(flight *operation.Flight) *FlightListItem {
		return BuildFlightListItem(flight, sold[flight.ID])
	})
	flightService.flightCache.SetFlightPage(key, generation, page)
	return NewApiResponse(&SuccessGetFlights, Unsatisfied, page)
}

func (flightService *FlightService) flightDetail(id uint) (*FlightDetail, *ApiResponse[FlightDetail]) {
	flight, res := CallDBFuncAndCheckError[operation.Flight, FlightDetail](flightService.logger, func() (*operation.Flight, error) {
		return flightService.flightOperation.GetFlight(id)
	})
	if res != nil {
		return nil, res
	}
	taken, err := flightService.flightOperation.GetTakenSeats(id)
	if res := CheckError[FlightDetail](flightService.logger, err); res != nil {
		return nil, res
	}
	return BuildFlightDetail(flight, taken), nil
}

func (flightService *FlightService) GetFlight(req *RequestRetrieve) *ApiResponse[FlightDetail] {
	if res := CheckPolicy[FlightDetail](operation.FlightResource, RetrieveAction, req.JwtHeader); res != nil {
		return res
	}
	detail, res := flightService.flightDetail(req.Id)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetFlight, Unsatisfied, detail)
}

func requireSchedule(req *RequestSaveFlight) error {
	return requireFields(
		field{"route", req.Route != nil},
		field{"airplane", req.Airplane != nil},
		field{"departure_time", req.DepartureTime != nil},
		field{"arrival_time", req.ArrivalTime != nil},
		field{"crew", req.Crew != nil},
	)
}

// scheduleOf builds the schedule from the request, taking absent fields from current when
// the request is partial
func scheduleOf(req *RequestSaveFlight, current *operation.Flight) *operation.FlightSchedule {
	schedule := &operation.FlightSchedule{FlightId: req.Id, IsActive: req.IsActive}
	if current != nil {
		schedule.RouteId = current.RouteId
		schedule.AirplaneId = current.AirplaneId
		schedule.Departure = current.DepartureTime
		schedule.Arrival = current.ArrivalTime
		schedule.CrewIds = utils.Map(current.Crew, func(member *operation.Crew) uint { return member.ID })
	}
	if req.Route != nil {
		schedule.RouteId = *req.Route
	}
	if req.Airplane != nil {
		schedule.AirplaneId = *req.Airplane
	}
	if req.DepartureTime != nil {
		schedule.Departure = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		schedule.Arrival = *req.ArrivalTime
	}
	if req.Crew != nil {
		schedule.CrewIds = utils.Unique(req.Crew)
	}
	return schedule
}

func (flightService *FlightService) schedule(req *RequestSaveFlight, current *operation.Flight) (*FlightDetail, *ApiResponse[FlightDetail]) {
	flight, res := CallDBFuncAndCheckError[operation.Flight, FlightDetail](flightService.logger, func() (*operation.Flight, error) {
		return flightService.flightOperation.ScheduleFlight(scheduleOf(req, current))
	})
	if res != nil {
		return nil, res
	}
	eventType := operation.FlightScheduled
	var detail *operation.ChangeDetail
	if current != nil {
		eventType = operation.FlightRescheduled
		detail = changeOf(BuildFlightListItem(current, 0), BuildFlightListItem(flight, 0))
	}
	flightService.recorder.record(eventType, req.JwtHeader, req.ClientInfo, fmt.Sprintf("flight %d", flight.ID), detail)
	flightService.publisher.Publish(EventFlightScheduled, strconv.FormatUint(uint64(flight.ID), 10), &FlightScheduledEvent{
		FlightId:    flight.ID,
		RouteId:     flight.RouteId,
		AirplaneId:  flight.AirplaneId,
		Departure:   flight.DepartureTime,
		Arrival:     flight.ArrivalTime,
		CrewIds:     utils.Map(flight.Crew, func(member *operation.Crew) uint { return member.ID }),
		IsActive:    flight.IsActive,
		Rescheduled: current != nil,
	})
	return flightService.flightDetail(flight.ID)
}

func (flightService *FlightService) AddFlight(req *RequestSaveFlight) *ApiResponse[FlightDetail] {
	if res := CheckPolicy[FlightDetail](operation.FlightResource, CreateAction, req.JwtHeader); res != nil {
		return res
	}
	if err := requireSchedule(req); err != nil {
		return CheckError[FlightDetail](flightService.logger, err)
	}
	req.Id = 0
	detail, res := flightService.schedule(req, nil)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessAddFlight, Unsatisfied, detail)
}

func (flightService *FlightService) EditFlight(req *RequestSaveFlight) *ApiResponse[FlightDetail] {
	if res := CheckPolicy[FlightDetail](operation.FlightResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if !req.Partial {
		if err := requireSchedule(req); err != nil {
			return CheckError[FlightDetail](flightService.logger, err)
		}
	}
	current, res := CallDBFuncAndCheckError[operation.Flight, FlightDetail](flightService.logger, func() (*operation.Flight, error) {
		return flightService.flightOperation.GetFlight(req.Id)
	})
	if res != nil {
		return res
	}
	detail, res := flightService.schedule(req, current)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessEditFlight, Unsatisfied, detail)
}

func (flightService *FlightService) DeleteFlight(req *RequestDelete) *ApiResponse[ResponseDelete] {
	if res := CheckPolicy[ResponseDelete](operation.FlightResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if res := CheckError[ResponseDelete](flightService.logger, flightService.flightOperation.DeleteFlight(req.Id)); res != nil {
		return res
	}
	flightService.recorder.record(operation.FlightDeleted, req.JwtHeader, req.ClientInfo, fmt.Sprintf("flight %d", req.Id), nil)
	data := ResponseDelete(true)
	return NewApiResponse(&SuccessDeleteFlight, Unsatisfied, &data)
}

// Package service
package service

import (
	"fmt"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
)

type AirportService struct {
	logger           log.LoggerInterface
	limits           *c.HttpServerLimit
	airportOperation operation.AirportOperationInterface
	recorder         *changeRecorder
}

func NewAirportService(
	logger log.LoggerInterface,
	limits *c.HttpServerLimit,
	airportOperation operation.AirportOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
	flightCache FlightCacheInterface,
) *AirportService {
	return &AirportService{
		logger:           logger,
		limits:           limits,
		airportOperation: airportOperation,
		recorder:         newChangeRecorder(logger, auditLogOperation, flightCache),
	}
}

var (
	SuccessGetAirports   = ApiStatus{StatusName: "GET_AIRPORTS", Description: "airports fetched", HttpCode: Ok}
	SuccessGetAirport    = ApiStatus{StatusName: "GET_AIRPORT", Description: "airport fetched", HttpCode: Ok}
	SuccessAddAirport    = ApiStatus{StatusName: "ADD_AIRPORT", Description: "airport created", HttpCode: Created}
	SuccessEditAirport   = ApiStatus{StatusName: "EDIT_AIRPORT", Description: "airport updated", HttpCode: Ok}
	SuccessDeleteAirport = ApiStatus{StatusName: "DELETE_AIRPORT", Description: "airport deleted", HttpCode: Ok}
)

func (airportService *AirportService) GetAirports(req *RequestGetAirports) *ApiResponse[PageResponse[AirportListItem]] {
	if res := CheckPolicy[PageResponse[AirportListItem]](operation.AirportResource, ListAction, req.JwtHeader); res != nil {
		return res
	}
	filter := &operation.AirportFilter{
		Pagination: req.Pagination(airportService.limits),
		Search:     req.Search,
		CityId:     req.City,
		CountryId:  req.Country,
	}
	airports, total, err := airportService.airportOperation.GetAirports(filter)
	if res := CheckError[PageResponse[AirportListItem]](airportService.logger, err); res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAirports, Unsatisfied, NewPageResponse(airports, total, filter.Pagination, BuildAirportListItem))
}

func (airportService *AirportService) getAirport(id uint) (*operation.Airport, *ApiResponse[AirportDetail]) {
	return CallDBFuncAndCheckError[operation.Airport, AirportDetail](airportService.logger, func() (*operation.Airport, error) {
		return airportService.airportOperation.GetAirport(id)
	})
}

func (airportService *AirportService) GetAirport(req *RequestRetrieve) *ApiResponse[AirportDetail] {
	if res := CheckPolicy[AirportDetail](operation.AirportResource, RetrieveAction, req.JwtHeader); res != nil {
		return res
	}
	airport, res := airportService.getAirport(req.Id)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAirport, Unsatisfied, BuildAirportDetail(airport))
}

func (airportService *AirportService) AddAirport(req *RequestSaveAirport) *ApiResponse[AirportDetail] {
	if res := CheckPolicy[AirportDetail](operation.AirportResource, CreateAction, req.JwtHeader); res != nil {
		return res
	}
	if err := requireFields(field{"name", req.Name != nil}, field{"city", req.City != nil}); err != nil {
		return CheckError[AirportDetail](airportService.logger, err)
	}
	airport := airportService.airportOperation.NewAirport(*req.Name, *req.City)
	if res := CheckError[AirportDetail](airportService.logger, airportService.airportOperation.AddAirport(airport)); res != nil {
		return res
	}
	airportService.recorder.record(operation.AirportCreated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("airport %d", airport.ID), nil)
	airport, res := airportService.getAirport(airport.ID)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessAddAirport, Unsatisfied, BuildAirportDetail(airport))
}

func (airportService *AirportService) EditAirport(req *RequestSaveAirport) *ApiResponse[AirportDetail] {
	if res := CheckPolicy[AirportDetail](operation.AirportResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if !req.Partial {
		if err := requireFields(field{"name", req.Name != nil}, field{"city", req.City != nil}); err != nil {
			return CheckError[AirportDetail](airportService.logger, err)
		}
	}
	airport, res := airportService.getAirport(req.Id)
	if res != nil {
		return res
	}
	before := BuildAirportListItem(airport)
	name, cityId := airport.Name, airport.CityId
	if req.Name != nil {
		name = *req.Name
	}
	if req.City != nil {
		cityId = *req.City
	}
	edited := airportService.airportOperation.NewAirport(name, cityId)
	edited.ID = airport.ID
	if res := CheckError[AirportDetail](airportService.logger, airportService.airportOperation.UpdateAirport(edited)); res != nil {
		return res
	}
	if airport, res = airportService.getAirport(edited.ID); res != nil {
		return res
	}
	airportService.recorder.record(operation.AirportUpdated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("airport %d", airport.ID),
		changeOf(before, BuildAirportListItem(airport)))
	return NewApiResponse(&SuccessEditAirport, Unsatisfied, BuildAirportDetail(airport))
}

func (airportService *AirportService) DeleteAirport(req *RequestDelete) *ApiResponse[ResponseDelete] {
	if res := CheckPolicy[ResponseDelete](operation.AirportResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if res := CheckError[ResponseDelete](airportService.logger, airportService.airportOperation.DeleteAirport(req.Id)); res != nil {
		return res
	}
	airportService.recorder.record(operation.AirportDeleted, req.JwtHeader, req.ClientInfo, fmt.Sprintf("airport %d", req.Id), nil)
	data := ResponseDelete(true)
	return NewApiResponse(&SuccessDeleteAirport, Unsatisfied, &data)
}

// Package service
package service

import (
	"fmt"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
)

type CityService struct {
	logger        log.LoggerInterface
	limits        *c.HttpServerLimit
	cityOperation operation.CityOperationInterface
	recorder      *changeRecorder
}

func NewCityService(
	logger log.LoggerInterface,
	limits *c.HttpServerLimit,
	cityOperation operation.CityOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
	flightCache FlightCacheInterface,
) *CityService {
	return &CityService{
		logger:        logger,
		limits:        limits,
		cityOperation: cityOperation,
		recorder:      newChangeRecorder(logger, auditLogOperation, flightCache),
	}
}

var (
	SuccessGetCities  = ApiStatus{StatusName: "GET_CITIES", Description: "cities fetched", HttpCode: Ok}
	SuccessGetCity    = ApiStatus{StatusName: "GET_CITY", Description: "city fetched", HttpCode: Ok}
	SuccessAddCity    = ApiStatus{StatusName: "ADD_CITY", Description: "city created", HttpCode: Created}
	SuccessEditCity   = ApiStatus{StatusName: "EDIT_CITY", Description: "city updated", HttpCode: Ok}
	SuccessDeleteCity = ApiStatus{StatusName: "DELETE_CITY", Description: "city deleted", HttpCode: Ok}
)

func (cityService *CityService) GetCities(req *RequestGetCities) *ApiResponse[PageResponse[CityListItem]] {
	if res := CheckPolicy[PageResponse[CityListItem]](operation.CityResource, ListAction, req.JwtHeader); res != nil {
		return res
	}
	filter := &operation.CityFilter{Pagination: req.Pagination(cityService.limits), Search: req.Search, CountryId: req.Country}
	cities, total, err := cityService.cityOperation.GetCities(filter)
	if res := CheckError[PageResponse[CityListItem]](cityService.logger, err); res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetCities, Unsatisfied, NewPageResponse(cities, total, filter.Pagination, BuildCityListItem))
}

func (cityService *CityService) getCity(id uint) (*operation.City, *ApiResponse[CityDetail]) {
	return CallDBFuncAndCheckError[operation.City, CityDetail](cityService.logger, func() (*operation.City, error) {
		return cityService.cityOperation.GetCity(id)
	})
}

func (cityService *CityService) GetCity(req *RequestRetrieve) *ApiResponse[CityDetail] {
	if res := CheckPolicy[CityDetail](operation.CityResource, RetrieveAction, req.JwtHeader); res != nil {
		return res
	}
	city, res := cityService.getCity(req.Id)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetCity, Unsatisfied, BuildCityDetail(city))
}

func (cityService *CityService) AddCity(req *RequestSaveCity) *ApiResponse[CityDetail] {
	if res := CheckPolicy[CityDetail](operation.CityResource, CreateAction, req.JwtHeader); res != nil {
		return res
	}
	if err := requireFields(field{"name", req.Name != nil}, field{"country", req.Country != nil}); err != nil {
		return CheckError[CityDetail](cityService.logger, err)
	}
	city := cityService.cityOperation.NewCity(*req.Name, *req.Country)
	if res := CheckError[CityDetail](cityService.logger, cityService.cityOperation.AddCity(city)); res != nil {
		return res
	}
	cityService.recorder.record(operation.CityCreated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("city %d", city.ID), nil)
	city, res := cityService.getCity(city.ID)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessAddCity, Unsatisfied, BuildCityDetail(city))
}

func (cityService *CityService) EditCity(req *RequestSaveCity) *ApiResponse[CityDetail] {
	if res := CheckPolicy[CityDetail](operation.CityResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if !req.Partial {
		if err := requireFields(field{"name", req.Name != nil}, field{"country", req.Country != nil}); err != nil {
			return CheckError[CityDetail](cityService.logger, err)
		}
	}
	city, res := cityService.getCity(req.Id)
	if res != nil {
		return res
	}
	before := BuildCityListItem(city)
	name, countryId := city.Name, city.CountryId
	if req.Name != nil {
		name = *req.Name
	}
	if req.Country != nil {
		countryId = *req.Country
	}
	edited := cityService.cityOperation.NewCity(name, countryId)
	edited.ID = city.ID
	if res := CheckError[CityDetail](cityService.logger, cityService.cityOperation.UpdateCity(edited)); res != nil {
		return res
	}
	if city, res = cityService.getCity(edited.ID); res != nil {
		return res
	}
	cityService.recorder.record(operation.CityUpdated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("city %d", city.ID),
		changeOf(before, BuildCityListItem(city)))
	return NewApiResponse(&SuccessEditCity, Unsatisfied, BuildCityDetail(city))
}

func (cityService *CityService) DeleteCity(req *RequestDelete) *ApiResponse[ResponseDelete] {
	if res := CheckPolicy[ResponseDelete](operation.CityResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if res := CheckError[ResponseDelete](cityService.logger, cityService.cityOperation.DeleteCity(req.Id)); res != nil {
		return res
	}
	cityService.recorder.record(operation.CityDeleted, req.JwtHeader, req.ClientInfo, fmt.Sprintf("city %d", req.Id), nil)
	data := ResponseDelete(true)
	return NewApiResponse(&SuccessDeleteCity, Unsatisfied, &data)
}

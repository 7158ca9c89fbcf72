// Package service
package service

import (
	"fmt"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
)

type CountryService struct {
	logger           log.LoggerInterface
	limits           *c.HttpServerLimit
	countryOperation operation.CountryOperationInterface
	recorder         *changeRecorder
}

func NewCountryService(
	logger log.LoggerInterface,
	limits *c.HttpServerLimit,
	countryOperation operation.CountryOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
	flightCache FlightCacheInterface,
) *CountryService {
	return &CountryService{
		logger:           logger,
		limits:           limits,
		countryOperation: countryOperation,
		recorder:         newChangeRecorder(logger, auditLogOperation, flightCache),
	}
}

var (
	SuccessGetCountries  = ApiStatus{StatusName: "GET_COUNTRIES", Description: "countries fetched", HttpCode: Ok}
	SuccessGetCountry    = ApiStatus{StatusName: "GET_COUNTRY", Description: "country fetched", HttpCode: Ok}
	SuccessAddCountry    = ApiStatus{StatusName: "ADD_COUNTRY", Description: "country created", HttpCode: Created}
	SuccessEditCountry   = ApiStatus{StatusName: "EDIT_COUNTRY", Description: "country updated", HttpCode: Ok}
	SuccessDeleteCountry = ApiStatus{StatusName: "DELETE_COUNTRY", Description: "country deleted", HttpCode: Ok}
)

func (countryService *CountryService) GetCountries(req *RequestGetCountries) *ApiResponse[PageResponse[CountryModel]] {
	if res := CheckPolicy[PageResponse[CountryModel]](operation.CountryResource, ListAction, req.JwtHeader); res != nil {
		return res
	}
	filter := &operation.CountryFilter{Pagination: req.Pagination(countryService.limits), Search: req.Search}
	countries, total, err := countryService.countryOperation.GetCountries(filter)
	if res := CheckError[PageResponse[CountryModel]](countryService.logger, err); res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetCountries, Unsatisfied, NewPageResponse(countries, total, filter.Pagination, BuildCountry))
}

func (countryService *CountryService) GetCountry(req *RequestRetrieve) *ApiResponse[CountryModel] {
	if res := CheckPolicy[CountryModel](operation.CountryResource, RetrieveAction, req.JwtHeader); res != nil {
		return res
	}
	country, res := CallDBFuncAndCheckError[operation.Country, CountryModel](countryService.logger, func() (*operation.Country, error) {
		return countryService.countryOperation.GetCountry(req.Id)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetCountry, Unsatisfied, BuildCountry(country))
}

func (countryService *CountryService) AddCountry(req *RequestSaveCountry) *ApiResponse[CountryModel] {
	if res := CheckPolicy[CountryModel](operation.CountryResource, CreateAction, req.JwtHeader); res != nil {
		return res
	}
	if err := requireFields(field{"name", req.Name != nil}, field{"code", req.Code != nil}); err != nil {
		return CheckError[CountryModel](countryService.logger, err)
	}
	country := countryService.countryOperation.NewCountry(*req.Name, *req.Code)
	if res := CheckError[CountryModel](countryService.logger, countryService.countryOperation.AddCountry(country)); res != nil {
		return res
	}
	countryService.recorder.record(operation.CountryCreated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("country %d", country.ID), nil)
	return NewApiResponse(&SuccessAddCountry, Unsatisfied, BuildCountry(country))
}

func (countryService *CountryService) EditCountry(req *RequestSaveCountry) *ApiResponse[CountryModel] {
	if res := CheckPolicy[CountryModel](operation.CountryResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if !req.Partial {
		if err := requireFields(field{"name", req.Name != nil}, field{"code", req.Code != nil}); err != nil {
			return CheckError[CountryModel](countryService.logger, err)
		}
	}
	country, res := CallDBFuncAndCheckError[operation.Country, CountryModel](countryService.logger, func() (*operation.Country, error) {
		return countryService.countryOperation.GetCountry(req.Id)
	})
	if res != nil {
		return res
	}
	before := BuildCountry(country)
	name, code := country.Name, country.Code
	if req.Name != nil {
		name = *req.Name
	}
	if req.Code != nil {
		code = *req.Code
	}
	edited := countryService.countryOperation.NewCountry(name, code)
	edited.ID = country.ID
	country = edited
	if res := CheckError[CountryModel](countryService.logger, countryService.countryOperation.UpdateCountry(country)); res != nil {
		return res
	}
	after := BuildCountry(country)
	countryService.recorder.record(operation.CountryUpdated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("country %d", country.ID), changeOf(before, after))
	return NewApiResponse(&SuccessEditCountry, Unsatisfied, after)
}

func (countryService *CountryService) DeleteCountry(req *RequestDelete) *ApiResponse[ResponseDelete] {
	if res := CheckPolicy[ResponseDelete](operation.CountryResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if res := CheckError[ResponseDelete](countryService.logger, countryService.countryOperation.DeleteCountry(req.Id)); res != nil {
		return res
	}
	countryService.recorder.record(operation.CountryDeleted, req.JwtHeader, req.ClientInfo, fmt.Sprintf("country %d", req.Id), nil)
	data := ResponseDelete(true)
	return NewApiResponse(&SuccessDeleteCountry, Unsatisfied, &data)
}

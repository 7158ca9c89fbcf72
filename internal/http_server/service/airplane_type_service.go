// Package service
package service

import (
	"fmt"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
)

type AirplaneTypeService struct {
	logger                log.LoggerInterface
	limits                *c.HttpServerLimit
	airplaneTypeOperation operation.AirplaneTypeOperationInterface
	recorder              *changeRecorder
}

func NewAirplaneTypeService(
	logger log.LoggerInterface,
	limits *c.HttpServerLimit,
	airplaneTypeOperation operation.AirplaneTypeOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
	flightCache FlightCacheInterface,
) *AirplaneTypeService {
	return &AirplaneTypeService{
		logger:                logger,
		limits:                limits,
		airplaneTypeOperation: airplaneTypeOperation,
		recorder:              newChangeRecorder(logger, auditLogOperation, flightCache),
	}
}

var (
	SuccessGetAirplaneTypes   = ApiStatus{StatusName: "GET_AIRPLANE_TYPES", Description: "airplane types fetched", HttpCode: Ok}
	SuccessGetAirplaneType    = ApiStatus{StatusName: "GET_AIRPLANE_TYPE", Description: "airplane type fetched", HttpCode: Ok}
	SuccessAddAirplaneType    = ApiStatus{StatusName: "ADD_AIRPLANE_TYPE", Description: "airplane type created", HttpCode: Created}
	SuccessEditAirplaneType   = ApiStatus{StatusName: "EDIT_AIRPLANE_TYPE", Description: "airplane type updated", HttpCode: Ok}
	SuccessDeleteAirplaneType = ApiStatus{StatusName: "DELETE_AIRPLANE_TYPE", Description: "airplane type deleted", HttpCode: Ok}
)

func (typeService *AirplaneTypeService) GetAirplaneTypes(req *RequestGetAirplaneTypes) *ApiResponse[PageResponse[AirplaneTypeModel]] {
	if res := CheckPolicy[PageResponse[AirplaneTypeModel]](operation.AirplaneTypeResource, ListAction, req.JwtHeader); res != nil {
		return res
	}
	filter := &operation.AirplaneTypeFilter{Pagination: req.Pagination(typeService.limits), Search: req.Search}
	airplaneTypes, total, err := typeService.airplaneTypeOperation.GetAirplaneTypes(filter)
	if res := CheckError[PageResponse[AirplaneTypeModel]](typeService.logger, err); res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAirplaneTypes, Unsatisfied, NewPageResponse(airplaneTypes, total, filter.Pagination, BuildAirplaneType))
}

func (typeService *AirplaneTypeService) GetAirplaneType(req *RequestRetrieve) *ApiResponse[AirplaneTypeModel] {
	if res := CheckPolicy[AirplaneTypeModel](operation.AirplaneTypeResource, RetrieveAction, req.JwtHeader); res != nil {
		return res
	}
	airplaneType, res := CallDBFuncAndCheckError[operation.AirplaneType, AirplaneTypeModel](typeService.logger, func() (*operation.AirplaneType, error) {
		return typeService.airplaneTypeOperation.GetAirplaneType(req.Id)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAirplaneType, Unsatisfied, BuildAirplaneType(airplaneType))
}

func (typeService *AirplaneTypeService) AddAirplaneType(req *RequestSaveAirplaneType) *ApiResponse[AirplaneTypeModel] {
	if res := CheckPolicy[AirplaneTypeModel](operation.AirplaneTypeResource, CreateAction, req.JwtHeader); res != nil {
		return res
	}
	if err := requireFields(field{"name", req.Name != nil}); err != nil {
		return CheckError[AirplaneTypeModel](typeService.logger, err)
	}
	airplaneType := typeService.airplaneTypeOperation.NewAirplaneType(*req.Name)
	if res := CheckError[AirplaneTypeModel](typeService.logger, typeService.airplaneTypeOperation.AddAirplaneType(airplaneType)); res != nil {
		return res
	}
	typeService.recorder.record(operation.AirplaneTypeCreated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("airplane type %d", airplaneType.ID), nil)
	return NewApiResponse(&SuccessAddAirplaneType, Unsatisfied, BuildAirplaneType(airplaneType))
}

// EditAirplaneType has a single field, so PUT and PATCH only differ when the body is empty
func (typeService *AirplaneTypeService) EditAirplaneType(req *RequestSaveAirplaneType) *ApiResponse[AirplaneTypeModel] {
	if res := CheckPolicy[AirplaneTypeModel](operation.AirplaneTypeResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if !req.Partial {
		if err := requireFields(field{"name", req.Name != nil}); err != nil {
			return CheckError[AirplaneTypeModel](typeService.logger, err)
		}
	}
	airplaneType, res := CallDBFuncAndCheckError[operation.AirplaneType, AirplaneTypeModel](typeService.logger, func() (*operation.AirplaneType, error) {
		return typeService.airplaneTypeOperation.GetAirplaneType(req.Id)
	})
	if res != nil {
		return res
	}
	before := BuildAirplaneType(airplaneType)
	if req.Name != nil {
		edited := typeService.airplaneTypeOperation.NewAirplaneType(*req.Name)
		edited.ID = airplaneType.ID
		airplaneType = edited
	}
	if res := CheckError[AirplaneTypeModel](typeService.logger, typeService.airplaneTypeOperation.UpdateAirplaneType(airplaneType)); res != nil {
		return res
	}
	after := BuildAirplaneType(airplaneType)
	typeService.recorder.record(operation.AirplaneTypeUpdated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("airplane type %d", airplaneType.ID), changeOf(before, after))
	return NewApiResponse(&SuccessEditAirplaneType, Unsatisfied, after)
}

func (typeService *AirplaneTypeService) DeleteAirplaneType(req *RequestDelete) *ApiResponse[ResponseDelete] {
	if res := CheckPolicy[ResponseDelete](operation.AirplaneTypeResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if res := CheckError[ResponseDelete](typeService.logger, typeService.airplaneTypeOperation.DeleteAirplaneType(req.Id)); res != nil {
		return res
	}
	typeService.recorder.record(operation.AirplaneTypeDeleted, req.JwtHeader, req.ClientInfo, fmt.Sprintf("airplane type %d", req.Id), nil)
	data := ResponseDelete(true)
	return NewApiResponse(&SuccessDeleteAirplaneType, Unsatisfied, &data)
}

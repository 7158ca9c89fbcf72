// Package service
package service

import (
	"fmt"

	"github.com/google/uuid"
	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/half-nothing/airport-booking/internal/utils"
)

type AirplaneService struct {
	logger            log.LoggerInterface
	limits            *c.HttpServerLimit
	storeService      StoreServiceInterface
	airplaneOperation operation.AirplaneOperationInterface
	recorder          *changeRecorder
}

func NewAirplaneService(
	logger log.LoggerInterface,
	limits *c.HttpServerLimit,
	storeService StoreServiceInterface,
	airplaneOperation operation.AirplaneOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
	flightCache FlightCacheInterface,
) *AirplaneService {
	return &AirplaneService{
		logger:            logger,
		limits:            limits,
		storeService:      storeService,
		airplaneOperation: airplaneOperation,
		recorder:          newChangeRecorder(logger, auditLogOperation, flightCache),
	}
}

var (
	SuccessGetAirplanes   = ApiStatus{StatusName: "GET_AIRPLANES", Description: "airplanes fetched", HttpCode: Ok}
	SuccessGetAirplane    = ApiStatus{StatusName: "GET_AIRPLANE", Description: "airplane fetched", HttpCode: Ok}
	SuccessAddAirplane    = ApiStatus{StatusName: "ADD_AIRPLANE", Description: "airplane created", HttpCode: Created}
	SuccessEditAirplane   = ApiStatus{StatusName: "EDIT_AIRPLANE", Description: "airplane updated", HttpCode: Ok}
	SuccessUploadImage    = ApiStatus{StatusName: "UPLOAD_AIRPLANE_IMAGE", Description: "airplane image uploaded", HttpCode: Ok}
	SuccessDeleteAirplane = ApiStatus{StatusName: "DELETE_AIRPLANE", Description: "airplane deleted", HttpCode: Ok}
)

func (airplaneService *AirplaneService) GetAirplanes(req *RequestGetAirplanes) *ApiResponse[PageResponse[AirplaneListItem]] {
	if res := CheckPolicy[PageResponse[AirplaneListItem]](operation.AirplaneResource, ListAction, req.JwtHeader); res != nil {
		return res
	}
	filter := &operation.AirplaneFilter{
		Pagination:     req.Pagination(airplaneService.limits),
		Search:         req.Search,
		AirplaneTypeId: req.AirplaneType,
	}
	airplanes, total, err := airplaneService.airplaneOperation.GetAirplanes(filter)
	if res := CheckError[PageResponse[AirplaneListItem]](airplaneService.logger, err); res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAirplanes, Unsatisfied, NewPageResponse(airplanes, total, filter.Pagination, BuildAirplaneListItem))
}

func (airplaneService *AirplaneService) getAirplane(id uint) (*operation.Airplane, *ApiResponse[AirplaneDetail]) {
	return CallDBFuncAndCheckError[operation.Airplane, AirplaneDetail](airplaneService.logger, func() (*operation.Airplane, error) {
		return airplaneService.airplaneOperation.GetAirplane(id)
	})
}

func (airplaneService *AirplaneService) GetAirplane(req *RequestRetrieve) *ApiResponse[AirplaneDetail] {
	if res := CheckPolicy[AirplaneDetail](operation.AirplaneResource, RetrieveAction, req.JwtHeader); res != nil {
		return res
	}
	airplane, res := airplaneService.getAirplane(req.Id)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetAirplane, Unsatisfied, BuildAirplaneDetail(airplane))
}

func (airplaneService *AirplaneService) requireAll(req *RequestSaveAirplane) error {
	return requireFields(
		field{"name", req.Name != nil},
		field{"rows", req.Rows != nil},
		field{"seats_in_row", req.SeatsInRow != nil},
		field{"airplane_type", req.AirplaneType != nil},
	)
}

func (airplaneService *AirplaneService) AddAirplane(req *RequestSaveAirplane) *ApiResponse[AirplaneDetail] {
	if res := CheckPolicy[AirplaneDetail](operation.AirplaneResource, CreateAction, req.JwtHeader); res != nil {
		return res
	}
	if err := airplaneService.requireAll(req); err != nil {
		return CheckError[AirplaneDetail](airplaneService.logger, err)
	}
	airplane := airplaneService.airplaneOperation.NewAirplane(*req.Name, *req.Rows, *req.SeatsInRow, *req.AirplaneType)
	if res := CheckError[AirplaneDetail](airplaneService.logger, airplaneService.airplaneOperation.AddAirplane(airplane)); res != nil {
		return res
	}
	airplaneService.recorder.record(operation.AirplaneCreated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("airplane %d", airplane.ID), nil)
	airplane, res := airplaneService.getAirplane(airplane.ID)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessAddAirplane, Unsatisfied, BuildAirplaneDetail(airplane))
}

// EditAirplane resizing an airplane does not touch tickets already sold outside the new bounds
func (airplaneService *AirplaneService) EditAirplane(req *RequestSaveAirplane) *ApiResponse[AirplaneDetail] {
	if res := CheckPolicy[AirplaneDetail](operation.AirplaneResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if !req.Partial {
		if err := airplaneService.requireAll(req); err != nil {
			return CheckError[AirplaneDetail](airplaneService.logger, err)
		}
	}
	airplane, res := airplaneService.getAirplane(req.Id)
	if res != nil {
		return res
	}
	before := BuildAirplaneListItem(airplane)
	name, rows, seatsInRow, airplaneTypeId := airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneTypeId
	if req.Name != nil {
		name = *req.Name
	}
	if req.Rows != nil {
		rows = *req.Rows
	}
	if req.SeatsInRow != nil {
		seatsInRow = *req.SeatsInRow
	}
	if req.AirplaneType != nil {
		airplaneTypeId = *req.AirplaneType
	}
	edited := airplaneService.airplaneOperation.NewAirplane(name, rows, seatsInRow, airplaneTypeId)
	edited.ID = airplane.ID
	if res := CheckError[AirplaneDetail](airplaneService.logger, airplaneService.airplaneOperation.UpdateAirplane(edited)); res != nil {
		return res
	}
	if airplane, res = airplaneService.getAirplane(edited.ID); res != nil {
		return res
	}
	airplaneService.recorder.record(operation.AirplaneUpdated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("airplane %d", airplane.ID),
		changeOf(before, BuildAirplaneListItem(airplane)))
	return NewApiResponse(&SuccessEditAirplane, Unsatisfied, BuildAirplaneDetail(airplane))
}

// UploadImage stores the file as <slug of airplane name>-<uuid>.<ext> and removes the previous image
func (airplaneService *AirplaneService) UploadImage(req *RequestUploadAirplaneImage) *ApiResponse[AirplaneDetail] {
	if res := CheckPolicy[AirplaneDetail](operation.AirplaneResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if req.File == nil {
		return CheckError[AirplaneDetail](airplaneService.logger, &operation.FieldError{Field: "image", Reason: "is required"})
	}
	airplane, res := airplaneService.getAirplane(req.Id)
	if res != nil {
		return res
	}
	baseName := fmt.Sprintf("%s-%s", utils.Slugify(airplane.Name), uuid.New().String())
	storeInfo, status := airplaneService.storeService.SaveImageFile(req.File, baseName)
	if status != nil {
		return NewApiResponse[AirplaneDetail](status, Unsatisfied, nil)
	}
	oldImage := airplane.ImagePath
	if err := airplaneService.airplaneOperation.UpdateAirplaneImage(airplane, storeInfo.RemotePath); err != nil {
		if _, err := airplaneService.storeService.DeleteImageFile(storeInfo.RemotePath); err != nil {
			airplaneService.logger.WarnF("Fail to remove orphan airplane image %s, %v", storeInfo.RemotePath, err)
		}
		return CheckError[AirplaneDetail](airplaneService.logger, err)
	}
	if oldImage != "" {
		if _, err := airplaneService.storeService.DeleteImageFile(oldImage); err != nil {
			airplaneService.logger.WarnF("Fail to remove previous image of airplane %d, %v", airplane.ID, err)
		}
	}
	airplaneService.recorder.record(operation.AirplaneImageUpload, req.JwtHeader, req.ClientInfo, fmt.Sprintf("airplane %d", airplane.ID),
		&operation.ChangeDetail{OldValue: oldImage, NewValue: storeInfo.RemotePath})
	return NewApiResponse(&SuccessUploadImage, Unsatisfied, BuildAirplaneDetail(airplane))
}

func (airplaneService *AirplaneService) DeleteAirplane(req *RequestDelete) *ApiResponse[ResponseDelete] {
	if res := CheckPolicy[ResponseDelete](operation.AirplaneResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	airplane, res := CallDBFuncAndCheckError[operation.Airplane, ResponseDelete](airplaneService.logger, func() (*operation.Airplane, error) {
		return airplaneService.airplaneOperation.GetAirplane(req.Id)
	})
	if res != nil {
		return res
	}
	if res := CheckError[ResponseDelete](airplaneService.logger, airplaneService.airplaneOperation.DeleteAirplane(req.Id)); res != nil {
		return res
	}
	if airplane.ImagePath != "" {
		if _, err := airplaneService.storeService.DeleteImageFile(airplane.ImagePath); err != nil {
			airplaneService.logger.WarnF("Fail to remove image of deleted airplane %d, %v", airplane.ID, err)
		}
	}
	airplaneService.recorder.record(operation.AirplaneDeleted, req.JwtHeader, req.ClientInfo, fmt.Sprintf("airplane %d", req.Id), nil)
	data := ResponseDelete(true)
	return NewApiResponse(&SuccessDeleteAirplane, Unsatisfied, &data)
}

// Package service
package service

import (
	"fmt"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
)

type CrewService struct {
	logger        log.LoggerInterface
	limits        *c.HttpServerLimit
	crewOperation operation.CrewOperationInterface
	recorder      *changeRecorder
}

func NewCrewService(
	logger log.LoggerInterface,
	limits *c.HttpServerLimit,
	crewOperation operation.CrewOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
	flightCache FlightCacheInterface,
) *CrewService {
	return &CrewService{
		logger:        logger,
		limits:        limits,
		crewOperation: crewOperation,
		recorder:      newChangeRecorder(logger, auditLogOperation, flightCache),
	}
}

var (
	SuccessGetCrews   = ApiStatus{StatusName: "GET_CREWS", Description: "crew fetched", HttpCode: Ok}
	SuccessGetCrew    = ApiStatus{StatusName: "GET_CREW", Description: "crew member fetched", HttpCode: Ok}
	SuccessAddCrew    = ApiStatus{StatusName: "ADD_CREW", Description: "crew member created", HttpCode: Created}
	SuccessEditCrew   = ApiStatus{StatusName: "EDIT_CREW", Description: "crew member updated", HttpCode: Ok}
	SuccessDeleteCrew = ApiStatus{StatusName: "DELETE_CREW", Description: "crew member deleted", HttpCode: Ok}
)

func (crewService *CrewService) GetCrews(req *RequestGetCrews) *ApiResponse[PageResponse[CrewModel]] {
	if res := CheckPolicy[PageResponse[CrewModel]](operation.CrewResource, ListAction, req.JwtHeader); res != nil {
		return res
	}
	filter := &operation.CrewFilter{Pagination: req.Pagination(crewService.limits), Search: req.Search}
	if req.Position != "" {
		position, err := operation.ParseCrewPosition(req.Position)
		if err != nil {
			return CheckError[PageResponse[CrewModel]](crewService.logger, err)
		}
		filter.Position = position
	}
	crews, total, err := crewService.crewOperation.GetCrews(filter)
	if res := CheckError[PageResponse[CrewModel]](crewService.logger, err); res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetCrews, Unsatisfied, NewPageResponse(crews, total, filter.Pagination, BuildCrew))
}

func (crewService *CrewService) getCrew(id uint) (*operation.Crew, *ApiResponse[CrewModel]) {
	return CallDBFuncAndCheckError[operation.Crew, CrewModel](crewService.logger, func() (*operation.Crew, error) {
		return crewService.crewOperation.GetCrew(id)
	})
}

func (crewService *CrewService) GetCrew(req *RequestRetrieve) *ApiResponse[CrewModel] {
	if res := CheckPolicy[CrewModel](operation.CrewResource, RetrieveAction, req.JwtHeader); res != nil {
		return res
	}
	crew, res := crewService.getCrew(req.Id)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetCrew, Unsatisfied, BuildCrew(crew))
}

func (crewService *CrewService) AddCrew(req *RequestSaveCrew) *ApiResponse[CrewModel] {
	if res := CheckPolicy[CrewModel](operation.CrewResource, CreateAction, req.JwtHeader); res != nil {
		return res
	}
	if err := requireFields(
		field{"first_name", req.FirstName != nil},
		field{"last_name", req.LastName != nil},
		field{"position", req.Position != nil},
	); err != nil {
		return CheckError[CrewModel](crewService.logger, err)
	}
	position, err := operation.ParseCrewPosition(*req.Position)
	if err != nil {
		return CheckError[CrewModel](crewService.logger, err)
	}
	crew := crewService.crewOperation.NewCrew(*req.FirstName, *req.LastName, position)
	if res := CheckError[CrewModel](crewService.logger, crewService.crewOperation.AddCrew(crew)); res != nil {
		return res
	}
	crewService.recorder.record(operation.CrewCreated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("crew %d", crew.ID), nil)
	return NewApiResponse(&SuccessAddCrew, Unsatisfied, BuildCrew(crew))
}

func (crewService *CrewService) EditCrew(req *RequestSaveCrew) *ApiResponse[CrewModel] {
	if res := CheckPolicy[CrewModel](operation.CrewResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if !req.Partial {
		if err := requireFields(
			field{"first_name", req.FirstName != nil},
			field{"last_name", req.LastName != nil},
			field{"position", req.Position != nil},
		); err != nil {
			return CheckError[CrewModel](crewService.logger, err)
		}
	}
	crew, res := crewService.getCrew(req.Id)
	if res != nil {
		return res
	}
	before := BuildCrew(crew)
	firstName, lastName, position := crew.FirstName, crew.LastName, crew.Position
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	if req.LastName != nil {
		lastName = *req.LastName
	}
	if req.Position != nil {
		var err error
		if position, err = operation.ParseCrewPosition(*req.Position); err != nil {
			return CheckError[CrewModel](crewService.logger, err)
		}
	}
	edited := crewService.crewOperation.NewCrew(firstName, lastName, position)
	edited.ID = crew.ID
	edited.CreatedAt = crew.CreatedAt
	if res := CheckError[CrewModel](crewService.logger, crewService.crewOperation.UpdateCrew(edited)); res != nil {
		return res
	}
	after := BuildCrew(edited)
	crewService.recorder.record(operation.CrewUpdated, req.JwtHeader, req.ClientInfo, fmt.Sprintf("crew %d", edited.ID), changeOf(before, after))
	return NewApiResponse(&SuccessEditCrew, Unsatisfied, after)
}

// DeleteCrew keeps the flights the member was assigned to
func (crewService *CrewService) DeleteCrew(req *RequestDelete) *ApiResponse[ResponseDelete] {
	if res := CheckPolicy[ResponseDelete](operation.CrewResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if res := CheckError[ResponseDelete](crewService.logger, crewService.crewOperation.DeleteCrew(req.Id)); res != nil {
		return res
	}
	crewService.recorder.record(operation.CrewDeleted, req.JwtHeader, req.ClientInfo, fmt.Sprintf("crew %d", req.Id), nil)
	data := ResponseDelete(true)
	return NewApiResponse(&SuccessDeleteCrew, Unsatisfied, &data)
}

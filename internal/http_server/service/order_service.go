// Package service
package service

import (
	"fmt"
	"strconv"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
)

type OrderService struct {
	logger         log.LoggerInterface
	limits         *c.HttpServerLimit
	orderOperation operation.OrderOperationInterface
	userOperation  operation.UserOperationInterface
	emailService   EmailServiceInterface
	flightCache    FlightCacheInterface
	publisher      EventPublisherInterface
	recorder       *changeRecorder
}

func NewOrderService(
	logger log.LoggerInterface,
	limits *c.HttpServerLimit,
	orderOperation operation.OrderOperationInterface,
	userOperation operation.UserOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
	emailService EmailServiceInterface,
	flightCache FlightCacheInterface,
	publisher EventPublisherInterface,
) *OrderService {
	return &OrderService{
		logger:         logger,
		limits:         limits,
		orderOperation: orderOperation,
		userOperation:  userOperation,
		emailService:   emailService,
		flightCache:    flightCache,
		publisher:      publisher,
		recorder:       newChangeRecorder(logger, auditLogOperation, flightCache),
	}
}

var (
	SuccessGetOrders   = ApiStatus{StatusName: "GET_ORDERS", Description: "orders fetched", HttpCode: Ok}
	SuccessGetOrder    = ApiStatus{StatusName: "GET_ORDER", Description: "order fetched", HttpCode: Ok}
	SuccessCreateOrder = ApiStatus{StatusName: "CREATE_ORDER", Description: "order created", HttpCode: Created}
	SuccessDeleteOrder = ApiStatus{StatusName: "DELETE_ORDER", Description: "order deleted", HttpCode: Ok}
)

// GetOrders lists the caller's own orders, administrators see every order
func (orderService *OrderService) GetOrders(req *RequestGetOrders) *ApiResponse[PageResponse[OrderModel]] {
	if res := CheckPolicy[PageResponse[OrderModel]](operation.OrderResource, ListAction, req.JwtHeader); res != nil {
		return res
	}
	filter := &operation.OrderFilter{
		Pagination: req.Pagination(orderService.limits),
		UserId:     req.Uid,
		AllUsers:   req.Role() == operation.Administrator,
		FlightId:   req.Flight,
	}
	orders, total, err := orderService.orderOperation.GetOrders(filter)
	if res := CheckError[PageResponse[OrderModel]](orderService.logger, err); res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetOrders, Unsatisfied, NewPageResponse(orders, total, filter.Pagination, BuildOrder))
}

func (orderService *OrderService) GetOrder(req *RequestRetrieve) *ApiResponse[OrderModel] {
	// ownership is unknown until the order is loaded, reject anonymous callers before that
	if res := CheckPolicy[OrderModel](operation.OrderResource, ListAction, req.JwtHeader); res != nil {
		return res
	}
	order, res := CallDBFuncAndCheckError[operation.Order, OrderModel](orderService.logger, func() (*operation.Order, error) {
		return orderService.orderOperation.GetOrder(req.Id)
	})
	if res != nil {
		return res
	}
	if res := CheckRetrieve[OrderModel](operation.OrderResource, req.JwtHeader, order.BelongsTo(req.Uid), operation.ErrOrderNotFound); res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetOrder, Unsatisfied, BuildOrder(order))
}

// CreateOrder commits the whole order first; cache invalidation, the event and the
// confirmation email follow and never fail the order
func (orderService *OrderService) CreateOrder(req *RequestCreateOrder) *ApiResponse[OrderModel] {
	if res := CheckPolicy[OrderModel](operation.OrderResource, CreateAction, req.JwtHeader); res != nil {
		return res
	}
	order, res := CallDBFuncAndCheckError[operation.Order, OrderModel](orderService.logger, func() (*operation.Order, error) {
		return orderService.orderOperation.CreateOrder(req.Uid, req.Tickets)
	})
	if res != nil {
		return res
	}
	orderService.flightCache.Invalidate()
	model := BuildOrder(order)
	orderService.publisher.Publish(EventOrderCreated, strconv.FormatUint(uint64(order.ID), 10), &OrderCreatedEvent{
		OrderId:   order.ID,
		UserId:    order.UserId,
		CreatedAt: order.CreatedAt,
		Tickets:   model.Tickets,
	})
	orderService.sendConfirmation(order)
	return NewApiResponse(&SuccessCreateOrder, Unsatisfied, model)
}

func (orderService *OrderService) sendConfirmation(order *operation.Order) {
	user, err := orderService.userOperation.GetUserById(order.UserId)
	if err != nil {
		orderService.logger.ErrorF("Fail to load user %d for order %d confirmation, %v", order.UserId, order.ID, err)
		return
	}
	if err := orderService.emailService.SendOrderConfirmation(user, order); err != nil {
		orderService.logger.ErrorF("Fail to send confirmation of order %d to %s, %v", order.ID, user.Email, err)
	}
}

// DeleteOrder releases the seats of the order
func (orderService *OrderService) DeleteOrder(req *RequestDelete) *ApiResponse[ResponseDelete] {
	if res := CheckPolicy[ResponseDelete](operation.OrderResource, ModifyAction, req.JwtHeader); res != nil {
		return res
	}
	if res := CheckError[ResponseDelete](orderService.logger, orderService.orderOperation.DeleteOrder(req.Id)); res != nil {
		return res
	}
	orderService.recorder.record(operation.OrderDeleted, req.JwtHeader, req.ClientInfo, fmt.Sprintf("order %d", req.Id), nil)
	data := ResponseDelete(true)
	return NewApiResponse(&SuccessDeleteOrder, Unsatisfied, &data)
}

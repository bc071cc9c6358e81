package controllers

import (
	"errors"

	"orderdesk/entity"
	"orderdesk/pkg/resp"
	"orderdesk/services"
	"orderdesk/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=cash transfer card"`
}

// OrderEntryRequest is an admin-entered order for a selected customer or a
// walk-in (customerId omitted or 0).
type OrderEntryRequest struct {
	CustomerID    uint                   `json:"customerId"`
	Items         []services.EntryItemIn `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string                 `json:"paymentMethod" binding:"omitempty,oneof=cash transfer card"`
}

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders/checkout is self-service: the cart becomes an order and is
// cleared.
func (o *OrderController) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := o.Orders.CheckoutFromCart(utils.CurrentUserID(c), req.PaymentMethod)
	if errors.Is(err, services.ErrCartEmpty) || errors.Is(err, services.ErrEmptyOrder) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /profile/orders
func (o *OrderController) ListMine(c *gin.Context) {
	orders, err := o.Orders.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /partner/orders enters an order on behalf of a customer or walk-in.
// The till flow defaults to cash.
func (o *OrderController) CreateOnBehalf(c *gin.Context) {
	var req OrderEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payment := req.PaymentMethod
	if payment == "" {
		payment = entity.PaymentCash
	}

	order, err := o.Orders.PlaceFromCatalog(utils.CurrentRestaurantID(c), req.CustomerID, req.Items, payment)
	switch {
	case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrBadQuantity):
		resp.BadRequest(c, err.Error())
		return
	case errors.Is(err, services.ErrMenuItemNotFound), errors.Is(err, services.ErrUnknownCustomer):
		resp.NotFound(c, err.Error())
		return
	case err != nil:
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /partner/orders
func (o *OrderController) ListForRestaurant(c *gin.Context) {
	orders, err := o.Orders.ListForRestaurant(utils.CurrentRestaurantID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

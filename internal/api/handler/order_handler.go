package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary list orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.OrderResponse
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Invalid token"
// @Failure 500 {object} response.ErrorResponse "Error retrieving orders"
// @Router /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		response.ErrorJSON(w, err, "Error retrieving orders")
		return
	}
	response.SuccessJSON(w, dto.NewOrderResponses(orders))
}

// @Summary get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "order id"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} response.ErrorResponse "invalid id"
// @Failure 404 {object} response.ErrorResponse "Order not found"
// @Failure 500 {object} response.ErrorResponse "Error retrieving order"
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.ErrorJSON(w, err, "")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		response.ErrorJSON(w, err, "Error retrieving order")
		return
	}
	response.SuccessJSON(w, dto.NewOrderResponse(order))
}

// @Summary create order
// @Description status defaults to pending; userId must reference an existing user
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body dto.CreateOrderDTO true "order"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} response.ErrorResponse "validation failed"
// @Failure 500 {object} response.ErrorResponse "Error creating order"
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateOrderDTO
	if err := decodeAndValidate(r, &createDTO); err != nil {
		response.ErrorJSON(w, err, "")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), createDTO.ToModel())
	if err != nil {
		response.ErrorJSON(w, err, "Error creating order")
		return
	}
	response.CreatedJSON(w, dto.NewOrderResponse(order))
}

// @Summary update order
// @Description totalPrice and status only, userId cannot be changed
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "order id"
// @Param order body dto.UpdateOrderDTO true "fields to update"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} response.ErrorResponse "validation failed"
// @Failure 404 {object} response.ErrorResponse "Order not found"
// @Failure 500 {object} response.ErrorResponse "Error updating order"
// @Router /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.ErrorJSON(w, err, "")
		return
	}

	var updateDTO dto.UpdateOrderDTO
	if err := decodeAndValidate(r, &updateDTO); err != nil {
		response.ErrorJSON(w, err, "")
		return
	}

	order, err := h.orderService.UpdateOrder(r.Context(), id, updateDTO.ToModel())
	if err != nil {
		response.ErrorJSON(w, err, "Error updating order")
		return
	}
	response.SuccessJSON(w, dto.NewOrderResponse(order))
}

// @Summary delete order
// @Tags orders
// @Security BearerAuth
// @Param id path int true "order id"
// @Success 204 "no content"
// @Failure 400 {object} response.ErrorResponse "invalid id"
// @Failure 404 {object} response.ErrorResponse "Order not found"
// @Failure 500 {object} response.ErrorResponse "Error deleting order"
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.ErrorJSON(w, err, "")
		return
	}

	if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
		response.ErrorJSON(w, err, "Error deleting order")
		return
	}
	response.NoContent(w)
}

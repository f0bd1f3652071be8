package dto

import (
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/shopspring/decimal"
)

type CreateOrderDTO struct {
	TotalPrice *decimal.Decimal `json:"totalPrice" validate:"required" swaggertype:"number" example:"99.5"`
	UserID     int64            `json:"userId" validate:"required,gt=0" example:"1"`
	Status     *string          `json:"status,omitempty" validate:"omitempty,oneof=pending completed canceled" example:"pending"`
}

func (d CreateOrderDTO) ToModel() model.CreateOrderModel {
	m := model.CreateOrderModel{UserID: d.UserID}
	if d.TotalPrice != nil {
		m.TotalPrice = *d.TotalPrice
	}
	if d.Status != nil {
		m.Status = model.OrderStatus(*d.Status)
	}
	return m
}

// UpdateOrderDTO userId 不可修改
type UpdateOrderDTO struct {
	TotalPrice *decimal.Decimal `json:"totalPrice,omitempty" swaggertype:"number" example:"120"`
	Status     *string          `json:"status,omitempty" validate:"omitempty,oneof=pending completed canceled" example:"completed"`
}

func (d UpdateOrderDTO) ToModel() model.UpdateOrderModel {
	m := model.UpdateOrderModel{TotalPrice: d.TotalPrice}
	if d.Status != nil {
		status := model.OrderStatus(*d.Status)
		m.Status = &status
	}
	return m
}

type OrderResponse struct {
	ID         int64           `json:"id" example:"1"`
	TotalPrice decimal.Decimal `json:"totalPrice" swaggertype:"number" example:"99.5"`
	Status     string          `json:"status" example:"pending"`
	UserID     int64           `json:"userId" example:"1"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func NewOrderResponse(o *model.OrderModel) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		TotalPrice: o.TotalPrice,
		Status:     string(o.Status),
		UserID:     o.UserID,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func NewOrderResponses(orders []model.OrderModel) []OrderResponse {
	res := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		res = append(res, NewOrderResponse(&orders[i]))
	}
	return res
}

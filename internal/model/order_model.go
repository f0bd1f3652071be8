package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled:
		return true
	default:
		return false
	}
}

type OrderModel struct {
	ID         int64
	TotalPrice decimal.Decimal
	Status     OrderStatus
	UserID     int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateOrderModel struct {
	TotalPrice decimal.Decimal
	UserID     int64
	Status     OrderStatus
}

// UpdateOrderModel 部分更新, nil 代表沿用原值
type UpdateOrderModel struct {
	TotalPrice *decimal.Decimal
	Status     *OrderStatus
}

func (m UpdateOrderModel) IsEmpty() bool {
	return m.TotalPrice == nil && m.Status == nil
}

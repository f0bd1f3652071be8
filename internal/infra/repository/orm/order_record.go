package orm

import (
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/shopspring/decimal"
)

// OrderRecord 對應 orders 表, 僅供後台使用
type OrderRecord struct {
	ID         int64           `gorm:"primaryKey"`
	TotalPrice decimal.Decimal `gorm:"not null;type:numeric(12,2)"`
	Status     string          `gorm:"not null"`
	UserID     int64           `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (OrderRecord) TableName() string {
	return "orders"
}

func (r OrderRecord) toModel() model.OrderModel {
	return model.OrderModel{
		ID:         r.ID,
		TotalPrice: r.TotalPrice,
		Status:     model.OrderStatus(r.Status),
		UserID:     r.UserID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

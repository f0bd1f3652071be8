package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductModel struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateProductModel struct {
	Name        string
	Price       decimal.Decimal
	Description *string
}

// UpdateProductModel 部分更新, nil 代表沿用原值
type UpdateProductModel struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
}

func (m UpdateProductModel) IsEmpty() bool {
	return m.Name == nil && m.Price == nil && m.Description == nil
}

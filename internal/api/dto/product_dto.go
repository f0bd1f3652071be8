package dto

import (
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/shopspring/decimal"
)

type CreateProductDTO struct {
	Name        string           `json:"name" validate:"required" example:"Keyboard"`
	Price       *decimal.Decimal `json:"price" validate:"required" swaggertype:"number" example:"49.99"`
	Description *string          `json:"description,omitempty" example:"mechanical keyboard"`
}

func (d CreateProductDTO) ToModel() model.CreateProductModel {
	m := model.CreateProductModel{
		Name:        d.Name,
		Description: d.Description,
	}
	if d.Price != nil {
		m.Price = *d.Price
	}
	return m
}

// UpdateProductDTO 未帶或 null 的欄位沿用原值
type UpdateProductDTO struct {
	Name        *string          `json:"name,omitempty" example:"Keyboard"`
	Price       *decimal.Decimal `json:"price,omitempty" swaggertype:"number" example:"39.99"`
	Description *string          `json:"description,omitempty" example:"mechanical keyboard"`
}

func (d UpdateProductDTO) ToModel() model.UpdateProductModel {
	return model.UpdateProductModel{
		Name:        d.Name,
		Price:       d.Price,
		Description: d.Description,
	}
}

type ProductResponse struct {
	ID          int64           `json:"id" example:"1"`
	Name        string          `json:"name" example:"Keyboard"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"49.99"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func NewProductResponse(p *model.ProductModel) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProductResponses(products []model.ProductModel) []ProductResponse {
	res := make([]ProductResponse, 0, len(products))
	for i := range products {
		res = append(res, NewProductResponse(&products[i]))
	}
	return res
}

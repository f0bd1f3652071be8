package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	pgutil "github.com/RoyceAzure/lab/shopcenter/internal/util/pg_util"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/shopspring/decimal"
)

const productNotFoundMsg = "Product not found"

type IProductService interface {
	ListProducts(ctx context.Context) ([]model.ProductModel, error)
	// GetProduct
	//
	// 錯誤:
	//   - er.NotFoundCode 404: 商品不存在
	GetProduct(ctx context.Context, id int64) (*model.ProductModel, error)
	// CreateProduct
	//
	// 錯誤:
	//   - er.ValidationCode 460: name 為空或 price 為負
	CreateProduct(ctx context.Context, arg model.CreateProductModel) (*model.ProductModel, error)
	// UpdateProduct 部分更新, 只套用非 nil 欄位, 0 與空字串也會寫入
	//
	// 錯誤:
	//   - er.ValidationCode 460: name 為空或 price 為負
	//   - er.NotFoundCode 404: 商品不存在
	UpdateProduct(ctx context.Context, id int64, arg model.UpdateProductModel) (*model.ProductModel, error)
	DeleteProduct(ctx context.Context, id int64) error
	// SeedProducts 商品表為空時才寫入, 回傳寫入筆數
	SeedProducts(ctx context.Context, products []model.CreateProductModel) (int, error)
}

type ProductService struct {
	dbDao db.IStore
}

func NewProductService(dbDao db.IStore) *ProductService {
	return &ProductService{dbDao: dbDao}
}

func (p *ProductService) ListProducts(ctx context.Context) ([]model.ProductModel, error) {
	entities, err := p.dbDao.ListProducts(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	res := make([]model.ProductModel, 0, len(entities))
	for i := range entities {
		res = append(res, *convertRepoProductToModel(&entities[i]))
	}
	return res, nil
}

func (p *ProductService) GetProduct(ctx context.Context, id int64) (*model.ProductModel, error) {
	entity, err := p.dbDao.GetProduct(ctx, id)
	if err != nil {
		return nil, convertStoreError(err, productNotFoundMsg)
	}
	return convertRepoProductToModel(&entity), nil
}

func (p *ProductService) CreateProduct(ctx context.Context, arg model.CreateProductModel) (*model.ProductModel, error) {
	if err := validateProductName(&arg.Name); err != nil {
		return nil, err
	}
	if err := validatePrice("price", &arg.Price); err != nil {
		return nil, err
	}

	entity, err := p.dbDao.CreateProduct(ctx, sqlc.CreateProductParams{
		Name:        arg.Name,
		Price:       arg.Price,
		Description: pgutil.StringToPgTextV5(arg.Description),
	})
	if err != nil {
		return nil, convertStoreError(err, productNotFoundMsg)
	}
	return convertRepoProductToModel(&entity), nil
}

func (p *ProductService) UpdateProduct(ctx context.Context, id int64, arg model.UpdateProductModel) (*model.ProductModel, error) {
	if arg.Name != nil {
		if err := validateProductName(arg.Name); err != nil {
			return nil, err
		}
	}
	if err := validatePrice("price", arg.Price); err != nil {
		return nil, err
	}

	if arg.IsEmpty() {
		return p.GetProduct(ctx, id)
	}

	entity, err := p.dbDao.UpdateProduct(ctx, sqlc.UpdateProductParams{
		Name:           pgutil.StringToPgTextV5(arg.Name),
		Price:          pgutil.DecimalToNullDecimal(arg.Price),
		SetDescription: arg.Description != nil,
		Description:    pgutil.StringToPgTextV5(arg.Description),
		ID:             id,
	})
	if err != nil {
		return nil, convertStoreError(err, productNotFoundMsg)
	}
	return convertRepoProductToModel(&entity), nil
}

func (p *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	n, err := p.dbDao.DeleteProduct(ctx, id)
	if err != nil {
		return convertStoreError(err, productNotFoundMsg)
	}
	if n == 0 {
		return er.New(er.NotFoundCode, productNotFoundMsg)
	}
	return nil
}

func (p *ProductService) SeedProducts(ctx context.Context, products []model.CreateProductModel) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	count, err := p.dbDao.CountProducts(ctx)
	if err != nil {
		return 0, er.New(er.InternalErrorCode, err.Error())
	}
	if count > 0 {
		return 0, nil
	}

	for i := range products {
		if err := validateProductName(&products[i].Name); err != nil {
			return 0, err
		}
		if err := validatePrice("price", &products[i].Price); err != nil {
			return 0, err
		}
	}

	err = p.dbDao.ExecTx(ctx, func(q *sqlc.Queries) error {
		for _, product := range products {
			_, err := q.CreateProduct(ctx, sqlc.CreateProductParams{
				Name:        product.Name,
				Price:       product.Price,
				Description: pgutil.StringToPgTextV5(product.Description),
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, convertStoreError(err, productNotFoundMsg)
	}
	return len(products), nil
}

func validateProductName(name *string) error {
	if strings.TrimSpace(*name) == "" {
		return er.New(er.ValidationCode, "name is required")
	}
	return nil
}

// 價格欄位為 NUMERIC(12,2)
var (
	maxPriceExclusive = decimal.New(1, 10)
	priceScale        = int32(2)
)

// validatePrice nil 表示未提供, 不檢查
// 超過兩位小數會被資料庫四捨五入, 直接拒絕
func validatePrice(field string, price *decimal.Decimal) error {
	if price == nil {
		return nil
	}
	if price.IsNegative() {
		return er.Newf(er.ValidationCode, "%s must not be negative", field)
	}
	if price.GreaterThanOrEqual(maxPriceExclusive) {
		return er.Newf(er.ValidationCode, "%s must be less than %s", field, maxPriceExclusive.String())
	}
	if !price.Equal(price.Truncate(priceScale)) {
		return er.Newf(er.ValidationCode, "%s must have at most %d decimal places", field, priceScale)
	}
	return nil
}

func convertRepoProductToModel(p *sqlc.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: pgutil.PgTextToStringV5(p.Description),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

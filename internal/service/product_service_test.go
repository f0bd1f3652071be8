package service

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_db "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/mock"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func testProductEntity() sqlc.Product {
	now := time.Now()
	return sqlc.Product{
		ID:          1,
		Name:        "Widget",
		Price:       decimal.RequireFromString("19.99"),
		Description: pgtype.Text{String: "a widget", Valid: true},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entity := testProductEntity()
	store := mock_db.NewMockIStore(ctrl)
	store.EXPECT().ListProducts(gomock.Any()).Return([]sqlc.Product{entity, {ID: 2, Name: "Gadget", Price: decimal.Zero}}, nil)

	products, err := NewProductService(store).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "a widget", *products[0].Description)
	require.Nil(t, products[1].Description)
}

func TestGetProductNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_db.NewMockIStore(ctrl)
	store.EXPECT().GetProduct(gomock.Any(), int64(99)).Return(sqlc.Product{}, pgx.ErrNoRows)

	_, err := NewProductService(store).GetProduct(context.Background(), 99)
	requireErrCode(t, err, er.NotFoundCode)
}

func TestCreateProduct(t *testing.T) {
	testCases := []struct {
		name      string
		arg       model.CreateProductModel
		setUpMock func(store *mock_db.MockIStore)
		check     func(t *testing.T, product *model.ProductModel, err error)
	}{
		{
			name: "ok",
			arg:  model.CreateProductModel{Name: "Widget", Price: decimal.RequireFromString("19.99"), Description: ptr("a widget")},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, arg sqlc.CreateProductParams) (sqlc.Product, error) {
						require.Equal(t, "Widget", arg.Name)
						require.Equal(t, pgtype.Text{String: "a widget", Valid: true}, arg.Description)
						return testProductEntity(), nil
					})
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(1), product.ID)
			},
		},
		{
			name: "free product",
			arg:  model.CreateProductModel{Name: "Sticker", Price: decimal.Zero},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().CreateProduct(gomock.Any(), sqlc.CreateProductParams{Name: "Sticker", Price: decimal.Zero}).
					Return(sqlc.Product{ID: 3, Name: "Sticker"}, nil)
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				require.NoError(t, err)
				require.True(t, product.Price.IsZero())
			},
		},
		{
			name: "blank name",
			arg:  model.CreateProductModel{Name: "  ", Price: decimal.NewFromInt(1)},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				requireErrCode(t, err, er.ValidationCode)
			},
		},
		{
			name: "negative price",
			arg:  model.CreateProductModel{Name: "Widget", Price: decimal.NewFromInt(-1)},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				requireErrCode(t, err, er.ValidationCode)
			},
		},
		{
			name: "more than two decimal places",
			arg:  model.CreateProductModel{Name: "Widget", Price: decimal.RequireFromString("9.999")},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				requireErrCode(t, err, er.ValidationCode)
				require.Contains(t, err.Error(), "decimal places")
			},
		},
		{
			name: "trailing zeros keep scale",
			arg:  model.CreateProductModel{Name: "Widget", Price: decimal.RequireFromString("9.990")},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(testProductEntity(), nil)
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "price out of range",
			arg:  model.CreateProductModel{Name: "Widget", Price: decimal.New(1, 10)},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				requireErrCode(t, err, er.ValidationCode)
			},
		},
		{
			name: "largest price",
			arg:  model.CreateProductModel{Name: "Widget", Price: decimal.RequireFromString("9999999999.99")},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(testProductEntity(), nil)
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "numeric overflow from store",
			arg:  model.CreateProductModel{Name: "Widget", Price: decimal.NewFromInt(1)},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(sqlc.Product{}, &pgconn.PgError{Code: "22003"})
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				requireErrCode(t, err, er.ValidationCode)
			},
		},
		{
			name: "store failure",
			arg:  model.CreateProductModel{Name: "Widget", Price: decimal.NewFromInt(1)},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(sqlc.Product{}, errors.New("conn closed"))
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				requireErrCode(t, err, er.InternalErrorCode)
				require.Contains(t, err.Error(), "conn closed")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_db.NewMockIStore(ctrl)
			tc.setUpMock(store)

			product, err := NewProductService(store).CreateProduct(context.Background(), tc.arg)
			tc.check(t, product, err)
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	testCases := []struct {
		name      string
		arg       model.UpdateProductModel
		setUpMock func(store *mock_db.MockIStore)
		check     func(t *testing.T, product *model.ProductModel, err error)
	}{
		{
			name: "price only keeps other fields",
			arg:  model.UpdateProductModel{Price: ptr(decimal.RequireFromString("24.50"))},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, arg sqlc.UpdateProductParams) (sqlc.Product, error) {
						require.False(t, arg.Name.Valid)
						require.True(t, arg.Price.Valid)
						require.False(t, arg.SetDescription)
						entity := testProductEntity()
						entity.Price = arg.Price.Decimal
						return entity, nil
					})
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				require.NoError(t, err)
				require.Equal(t, "Widget", product.Name)
				require.True(t, decimal.RequireFromString("24.50").Equal(product.Price))
			},
		},
		{
			name: "zero price is applied",
			arg:  model.UpdateProductModel{Price: ptr(decimal.Zero)},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, arg sqlc.UpdateProductParams) (sqlc.Product, error) {
						require.True(t, arg.Price.Valid)
						require.True(t, arg.Price.Decimal.IsZero())
						entity := testProductEntity()
						entity.Price = decimal.Zero
						return entity, nil
					})
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				require.NoError(t, err)
				require.True(t, product.Price.IsZero())
			},
		},
		{
			name: "empty description clears it",
			arg:  model.UpdateProductModel{Description: ptr("")},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, arg sqlc.UpdateProductParams) (sqlc.Product, error) {
						require.True(t, arg.SetDescription)
						require.Equal(t, pgtype.Text{String: "", Valid: true}, arg.Description)
						entity := testProductEntity()
						entity.Description = arg.Description
						return entity, nil
					})
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				require.NoError(t, err)
				require.Equal(t, "", *product.Description)
			},
		},
		{
			name: "empty update returns current",
			arg:  model.UpdateProductModel{},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).Times(0)
				store.EXPECT().GetProduct(gomock.Any(), int64(1)).Return(testProductEntity(), nil)
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				require.NoError(t, err)
				require.Equal(t, "Widget", product.Name)
			},
		},
		{
			name: "empty name rejected",
			arg:  model.UpdateProductModel{Name: ptr("")},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				requireErrCode(t, err, er.ValidationCode)
			},
		},
		{
			name: "not found",
			arg:  model.UpdateProductModel{Name: ptr("New")},
			setUpMock: func(store *mock_db.MockIStore) {
				store.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).Return(sqlc.Product{}, pgx.ErrNoRows)
			},
			check: func(t *testing.T, product *model.ProductModel, err error) {
				requireErrCode(t, err, er.NotFoundCode)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_db.NewMockIStore(ctrl)
			tc.setUpMock(store)

			product, err := NewProductService(store).UpdateProduct(context.Background(), 1, tc.arg)
			tc.check(t, product, err)
		})
	}
}

func TestDeleteProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_db.NewMockIStore(ctrl)
	store.EXPECT().DeleteProduct(gomock.Any(), int64(1)).Return(int64(1), nil)
	store.EXPECT().DeleteProduct(gomock.Any(), int64(2)).Return(int64(0), nil)

	productService := NewProductService(store)
	require.NoError(t, productService.DeleteProduct(context.Background(), 1))
	requireErrCode(t, productService.DeleteProduct(context.Background(), 2), er.NotFoundCode)
}

func TestSeedProducts(t *testing.T) {
	seed := []model.CreateProductModel{
		{Name: "Widget", Price: decimal.NewFromInt(10)},
		{Name: "Gadget", Price: decimal.NewFromInt(20), Description: ptr("shiny")},
	}

	t.Run("empty table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_db.NewMockIStore(ctrl)
		store.EXPECT().CountProducts(gomock.Any()).Return(int64(0), nil)
		store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).Return(nil)

		n, err := NewProductService(store).SeedProducts(context.Background(), seed)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})

	t.Run("already seeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_db.NewMockIStore(ctrl)
		store.EXPECT().CountProducts(gomock.Any()).Return(int64(5), nil)
		store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).Times(0)

		n, err := NewProductService(store).SeedProducts(context.Background(), seed)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("tx failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_db.NewMockIStore(ctrl)
		store.EXPECT().CountProducts(gomock.Any()).Return(int64(0), nil)
		store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).Return(errors.New("tx aborted"))

		_, err := NewProductService(store).SeedProducts(context.Background(), seed)
		requireErrCode(t, err, er.InternalErrorCode)
	})
}

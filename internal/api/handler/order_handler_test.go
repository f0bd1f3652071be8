package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	mock_service "github.com/RoyceAzure/lab/shopcenter/internal/service/mock"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testOrder() *model.OrderModel {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	return &model.OrderModel{
		ID:         3,
		TotalPrice: decimal.RequireFromString("99.5"),
		Status:     model.OrderStatusPending,
		UserID:     7,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orderService := mock_service.NewMockIOrderService(ctrl)
	orderService.EXPECT().ListOrders(gomock.Any()).Return([]model.OrderModel{*testOrder()}, nil)

	rec := httptest.NewRecorder()
	NewOrderHandler(orderService).ListOrders(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"id":3,"totalPrice":99.5,"status":"pending","userId":7,
		"createdAt":"2024-03-01T08:00:00Z","updatedAt":"2024-03-01T08:00:00Z"}]`, rec.Body.String())
}

func TestCreateOrder(t *testing.T) {
	testCases := []struct {
		name          string
		body          string
		setUpMock     func(orderService *mock_service.MockIOrderService)
		checkResponse func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "default status",
			body: `{"totalPrice":99.5,"userId":7}`,
			setUpMock: func(orderService *mock_service.MockIOrderService) {
				orderService.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, arg model.CreateOrderModel) (*model.OrderModel, error) {
						require.Equal(t, int64(7), arg.UserID)
						require.Equal(t, model.OrderStatus(""), arg.Status)
						return testOrder(), nil
					})
			},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, rec.Code)
				var res dto.OrderResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				require.Equal(t, "pending", res.Status)
			},
		},
		{
			name: "invalid status",
			body: `{"totalPrice":1,"userId":7,"status":"shipped"}`,
			setUpMock: func(orderService *mock_service.MockIOrderService) {
				orderService.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name: "missing user",
			body: `{"totalPrice":1}`,
			setUpMock: func(orderService *mock_service.MockIOrderService) {
				orderService.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, rec.Code)
				require.Equal(t, "userId is required", decodeErrorBody(t, rec).Message)
			},
		},
		{
			name: "user does not exist",
			body: `{"totalPrice":1,"userId":404}`,
			setUpMock: func(orderService *mock_service.MockIOrderService) {
				orderService.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, er.New(er.ValidationCode, "user does not exist"))
			},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, rec.Code)
				require.Equal(t, "user does not exist", decodeErrorBody(t, rec).Message)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			orderService := mock_service.NewMockIOrderService(ctrl)
			tc.setUpMock(orderService)

			rec := httptest.NewRecorder()
			NewOrderHandler(orderService).CreateOrder(rec, newJSONRequest(t, http.MethodPost, "/orders", tc.body))
			tc.checkResponse(t, rec)
		})
	}
}

func TestUpdateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orderService := mock_service.NewMockIOrderService(ctrl)

	updated := testOrder()
	updated.Status = model.OrderStatusCompleted
	orderService.EXPECT().UpdateOrder(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ any, _ int64, arg model.UpdateOrderModel) (*model.OrderModel, error) {
			require.Nil(t, arg.TotalPrice)
			require.Equal(t, model.OrderStatusCompleted, *arg.Status)
			return updated, nil
		})

	rec := httptest.NewRecorder()
	req := withURLParam(newJSONRequest(t, http.MethodPut, "/orders/3", `{"status":"completed"}`), "id", "3")
	NewOrderHandler(orderService).UpdateOrder(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestGetOrderNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orderService := mock_service.NewMockIOrderService(ctrl)
	orderService.EXPECT().GetOrder(gomock.Any(), int64(8)).Return(nil, er.New(er.NotFoundCode, "Order not found"))

	rec := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/orders/8", nil), "id", "8")
	NewOrderHandler(orderService).GetOrder(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Order not found", decodeErrorBody(t, rec).Message)
}

func TestDeleteOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orderService := mock_service.NewMockIOrderService(ctrl)
	orderService.EXPECT().DeleteOrder(gomock.Any(), int64(3)).Return(nil)

	rec := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/orders/3", nil), "id", "3")
	NewOrderHandler(orderService).DeleteOrder(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Zero(t, rec.Body.Len())
}

func TestDeleteOrderInvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orderService := mock_service.NewMockIOrderService(ctrl)

	rec := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/orders/x", nil), "id", "x")
	NewOrderHandler(orderService).DeleteOrder(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

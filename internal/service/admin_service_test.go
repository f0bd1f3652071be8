package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	mock_orm "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/orm/mock"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/session"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type AdminServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	orderRepo *mock_orm.MockIOrderAdminRepo
	service   *AdminService
	since     time.Time
}

func (suite *AdminServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.orderRepo = mock_orm.NewMockIOrderAdminRepo(suite.ctrl)
	sessions, err := session.NewManager(constants.AdminSessionCookieName, "0123456789abcdef0123456789abcdef", constants.AdminSessionDuration)
	require.NoError(suite.T(), err)

	suite.since = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.service = NewAdminService(suite.orderRepo, sessions, "admin@example.com", "admin-pass", suite.since)
	suite.service.reportLoc = time.UTC
}

func (suite *AdminServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AdminServiceTestSuite) TestLoginAndValidateSession() {
	value, s, err := suite.service.Login(context.Background(), "admin@example.com", "admin-pass")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "admin@example.com", s.Email)

	decoded, err := suite.service.ValidateSession(value)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "admin@example.com", decoded.Email)
}

func (suite *AdminServiceTestSuite) TestLoginWrongCredential() {
	for _, c := range [][2]string{
		{"admin@example.com", "wrong"},
		{"other@example.com", "admin-pass"},
		{"", ""},
	} {
		_, _, err := suite.service.Login(context.Background(), c[0], c[1])
		requireErrCode(suite.T(), err, er.UnauthenticatedCode)
	}
}

func (suite *AdminServiceTestSuite) TestValidateSessionRejectsGarbage() {
	_, err := suite.service.ValidateSession("not-a-cookie")
	requireErrCode(suite.T(), err, er.UnauthenticatedCode)
}

func (suite *AdminServiceTestSuite) TestExportOrderReport() {
	created := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)
	suite.orderRepo.EXPECT().ListSince(gomock.Any(), suite.since).Return([]model.OrderModel{
		{ID: 1, TotalPrice: decimal.RequireFromString("10.5"), Status: model.OrderStatusPending, UserID: 2, CreatedAt: created},
	}, nil)

	var buf bytes.Buffer
	require.NoError(suite.T(), suite.service.ExportOrderReport(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(suite.T(), err)
	defer f.Close()

	rows, err := f.GetRows(constants.ReportSheetName)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 2)
	require.Equal(suite.T(), "2/1/2024, 9:30:00 AM", rows[1][4])
}

func (suite *AdminServiceTestSuite) TestExportOrderReportQueryFails() {
	suite.orderRepo.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	var buf bytes.Buffer
	err := suite.service.ExportOrderReport(context.Background(), &buf)
	requireErrCode(suite.T(), err, er.InternalErrorCode)
	require.Zero(suite.T(), buf.Len())
}

func (suite *AdminServiceTestSuite) TestUpdateOrder() {
	status := model.OrderStatusCanceled
	suite.orderRepo.EXPECT().Update(gomock.Any(), int64(3), model.UpdateOrderModel{Status: &status}).
		Return(&model.OrderModel{ID: 3, Status: status}, nil)

	order, err := suite.service.UpdateOrder(context.Background(), 3, model.UpdateOrderModel{Status: &status})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), status, order.Status)

	bad := model.OrderStatus("lost")
	_, err = suite.service.UpdateOrder(context.Background(), 3, model.UpdateOrderModel{Status: &bad})
	requireErrCode(suite.T(), err, er.ValidationCode)
}

func (suite *AdminServiceTestSuite) TestCreateOrder() {
	suite.orderRepo.EXPECT().Create(gomock.Any(), model.CreateOrderModel{
		TotalPrice: decimal.RequireFromString("15.50"),
		Status:     model.OrderStatusPending,
		UserID:     2,
	}).Return(&model.OrderModel{ID: 11, Status: model.OrderStatusPending, UserID: 2}, nil)

	order, err := suite.service.CreateOrder(context.Background(), model.CreateOrderModel{
		TotalPrice: decimal.RequireFromString("15.50"),
		UserID:     2,
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(11), order.ID)
}

func (suite *AdminServiceTestSuite) TestCreateOrderRejectsInvalidFields() {
	suite.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	for _, arg := range []model.CreateOrderModel{
		{TotalPrice: decimal.NewFromInt(1), UserID: 1, Status: "shipped"},
		{TotalPrice: decimal.NewFromInt(-1), UserID: 1},
		{TotalPrice: decimal.RequireFromString("1.001"), UserID: 1},
		{TotalPrice: decimal.NewFromInt(1)},
	} {
		_, err := suite.service.CreateOrder(context.Background(), arg)
		requireErrCode(suite.T(), err, er.ValidationCode)
	}
}

func (suite *AdminServiceTestSuite) TestCreateOrderUnknownUser() {
	suite.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, &pgconn.PgError{Code: "23503", ConstraintName: "orders_user_id_fkey"})

	_, err := suite.service.CreateOrder(context.Background(), model.CreateOrderModel{TotalPrice: decimal.NewFromInt(1), UserID: 999})
	requireErrCode(suite.T(), err, er.ValidationCode)
	require.Equal(suite.T(), "user does not exist", err.Error())
}

func (suite *AdminServiceTestSuite) TestRepoErrorMapping() {
	suite.orderRepo.EXPECT().Get(gomock.Any(), int64(4)).Return(nil, gorm.ErrRecordNotFound)
	suite.orderRepo.EXPECT().Delete(gomock.Any(), int64(4)).Return(gorm.ErrRecordNotFound)
	price := decimal.NewFromInt(1)
	suite.orderRepo.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).Return(nil, &pgconn.PgError{Code: "23514"})

	_, err := suite.service.GetOrder(context.Background(), 4)
	requireErrCode(suite.T(), err, er.NotFoundCode)

	requireErrCode(suite.T(), suite.service.DeleteOrder(context.Background(), 4), er.NotFoundCode)

	_, err = suite.service.UpdateOrder(context.Background(), 5, model.UpdateOrderModel{TotalPrice: &price})
	requireErrCode(suite.T(), err, er.ValidationCode)
}

func TestAdminServiceSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/report"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/orm"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/session"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"gorm.io/gorm"
)

type IAdminService interface {
	// Login 比對後台帳密, 成功回傳簽章過的 session cookie value
	//
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 帳密錯誤
	Login(ctx context.Context, email string, password string) (string, *model.AdminSessionModel, error)
	// ValidateSession
	//
	// 錯誤:
	//   - er.UnauthenticatedCode 401: cookie 不合法或已過期
	ValidateSession(cookieValue string) (*model.AdminSessionModel, error)
	ListOrders(ctx context.Context) ([]model.OrderModel, error)
	GetOrder(ctx context.Context, id int64) (*model.OrderModel, error)
	// CreateOrder 後台新增訂單, 狀態空白時為 pending
	//
	// 錯誤:
	//   - er.ValidationCode 460: 欄位不合法或 user 不存在
	CreateOrder(ctx context.Context, arg model.CreateOrderModel) (*model.OrderModel, error)
	UpdateOrder(ctx context.Context, id int64, arg model.UpdateOrderModel) (*model.OrderModel, error)
	DeleteOrder(ctx context.Context, id int64) error
	// ExportOrderReport 將 created_at >= 報表起始日的訂單寫成 xlsx
	//
	// 錯誤:
	//   - er.InternalErrorCode 500: 查詢或產生檔案失敗
	ExportOrderReport(ctx context.Context, w io.Writer) error
}

type AdminService struct {
	orderRepo     orm.IOrderAdminRepo
	sessions      *session.Manager
	adminEmail    string
	adminPassword string
	reportSince   time.Time
	reportLoc     *time.Location
}

func NewAdminService(orderRepo orm.IOrderAdminRepo, sessions *session.Manager, adminEmail, adminPassword string, reportSince time.Time) *AdminService {
	return &AdminService{
		orderRepo:     orderRepo,
		sessions:      sessions,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		reportSince:   reportSince,
		reportLoc:     time.Local,
	}
}

func (a *AdminService) Login(ctx context.Context, email string, password string) (string, *model.AdminSessionModel, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.adminEmail))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.adminPassword))
	if emailOK&passwordOK != 1 {
		return "", nil, er.New(er.UnauthenticatedCode, "invalid email or password")
	}

	value, s, err := a.sessions.Encode(email)
	if err != nil {
		return "", nil, er.New(er.InternalErrorCode, err.Error())
	}
	return value, s, nil
}

func (a *AdminService) ValidateSession(cookieValue string) (*model.AdminSessionModel, error) {
	s, err := a.sessions.Decode(cookieValue)
	if err != nil {
		return nil, er.New(er.UnauthenticatedCode, err.Error())
	}
	return s, nil
}

func (a *AdminService) ListOrders(ctx context.Context) ([]model.OrderModel, error) {
	orders, err := a.orderRepo.List(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return orders, nil
}

func (a *AdminService) GetOrder(ctx context.Context, id int64) (*model.OrderModel, error) {
	order, err := a.orderRepo.Get(ctx, id)
	if err != nil {
		return nil, convertAdminRepoError(err)
	}
	return order, nil
}

func (a *AdminService) CreateOrder(ctx context.Context, arg model.CreateOrderModel) (*model.OrderModel, error) {
	if err := prepareCreateOrder(&arg); err != nil {
		return nil, err
	}

	order, err := a.orderRepo.Create(ctx, arg)
	if err != nil {
		if db.ErrorCode(err) == db.ForeignKeyViolation {
			return nil, errOrderUserNotExist
		}
		return nil, convertAdminRepoError(err)
	}
	return order, nil
}

func (a *AdminService) UpdateOrder(ctx context.Context, id int64, arg model.UpdateOrderModel) (*model.OrderModel, error) {
	if err := validateOrderStatus(arg.Status); err != nil {
		return nil, err
	}
	if err := validatePrice("totalPrice", arg.TotalPrice); err != nil {
		return nil, err
	}

	order, err := a.orderRepo.Update(ctx, id, arg)
	if err != nil {
		return nil, convertAdminRepoError(err)
	}
	return order, nil
}

func (a *AdminService) DeleteOrder(ctx context.Context, id int64) error {
	if err := a.orderRepo.Delete(ctx, id); err != nil {
		return convertAdminRepoError(err)
	}
	return nil
}

func (a *AdminService) ExportOrderReport(ctx context.Context, w io.Writer) error {
	orders, err := a.orderRepo.ListSince(ctx, a.reportSince)
	if err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}

	if err := report.WriteOrderReport(w, orders, a.reportLoc); err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

// gorm 回傳的 pg 錯誤與 pgx 相同, 沿用 convertStoreError
func convertAdminRepoError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return er.New(er.NotFoundCode, orderNotFoundMsg)
	}
	if db.ErrorCode(err) != "" {
		return convertStoreError(err, orderNotFoundMsg)
	}
	return er.New(er.InternalErrorCode, err.Error())
}

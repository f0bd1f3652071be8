package service

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	pgutil "github.com/RoyceAzure/lab/shopcenter/internal/util/pg_util"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderNotFoundMsg = "Order not found"

type IOrderService interface {
	ListOrders(ctx context.Context) ([]model.OrderModel, error)
	GetOrder(ctx context.Context, id int64) (*model.OrderModel, error)
	// CreateOrder status 為空時預設 pending
	//
	// 錯誤:
	//   - er.ValidationCode 460: totalPrice 為負, userId 不合法, status 不合法, 或 user 不存在
	CreateOrder(ctx context.Context, arg model.CreateOrderModel) (*model.OrderModel, error)
	// UpdateOrder 部分更新 totalPrice / status, userId 不可修改
	//
	// 錯誤:
	//   - er.ValidationCode 460: 欄位值不合法
	//   - er.NotFoundCode 404: 訂單不存在
	UpdateOrder(ctx context.Context, id int64, arg model.UpdateOrderModel) (*model.OrderModel, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type OrderService struct {
	dbDao db.IStore
}

func NewOrderService(dbDao db.IStore) *OrderService {
	return &OrderService{dbDao: dbDao}
}

func (o *OrderService) ListOrders(ctx context.Context) ([]model.OrderModel, error) {
	entities, err := o.dbDao.ListOrders(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	res := make([]model.OrderModel, 0, len(entities))
	for i := range entities {
		res = append(res, *convertRepoOrderToModel(&entities[i]))
	}
	return res, nil
}

func (o *OrderService) GetOrder(ctx context.Context, id int64) (*model.OrderModel, error) {
	entity, err := o.dbDao.GetOrder(ctx, id)
	if err != nil {
		return nil, convertStoreError(err, orderNotFoundMsg)
	}
	return convertRepoOrderToModel(&entity), nil
}

func (o *OrderService) CreateOrder(ctx context.Context, arg model.CreateOrderModel) (*model.OrderModel, error) {
	if err := prepareCreateOrder(&arg); err != nil {
		return nil, err
	}

	entity, err := o.dbDao.CreateOrder(ctx, sqlc.CreateOrderParams{
		TotalPrice: arg.TotalPrice,
		Status:     string(arg.Status),
		UserID:     arg.UserID,
	})
	if err != nil {
		if db.ErrorCode(err) == db.ForeignKeyViolation {
			return nil, errOrderUserNotExist
		}
		return nil, convertStoreError(err, orderNotFoundMsg)
	}
	return convertRepoOrderToModel(&entity), nil
}

func (o *OrderService) UpdateOrder(ctx context.Context, id int64, arg model.UpdateOrderModel) (*model.OrderModel, error) {
	if err := validateOrderStatus(arg.Status); err != nil {
		return nil, err
	}
	if err := validatePrice("totalPrice", arg.TotalPrice); err != nil {
		return nil, err
	}

	if arg.IsEmpty() {
		return o.GetOrder(ctx, id)
	}

	var status pgtype.Text
	if arg.Status != nil {
		status = pgtype.Text{String: string(*arg.Status), Valid: true}
	}

	entity, err := o.dbDao.UpdateOrder(ctx, sqlc.UpdateOrderParams{
		TotalPrice: pgutil.DecimalToNullDecimal(arg.TotalPrice),
		Status:     status,
		ID:         id,
	})
	if err != nil {
		return nil, convertStoreError(err, orderNotFoundMsg)
	}
	return convertRepoOrderToModel(&entity), nil
}

func (o *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	n, err := o.dbDao.DeleteOrder(ctx, id)
	if err != nil {
		return convertStoreError(err, orderNotFoundMsg)
	}
	if n == 0 {
		return er.New(er.NotFoundCode, orderNotFoundMsg)
	}
	return nil
}

var errOrderUserNotExist = er.New(er.ValidationCode, "user does not exist")

// prepareCreateOrder 補上預設狀態並檢查欄位, api 與後台新增共用
func prepareCreateOrder(arg *model.CreateOrderModel) error {
	if arg.Status == "" {
		arg.Status = model.OrderStatusPending
	}
	if err := validateOrderStatus(&arg.Status); err != nil {
		return err
	}
	if err := validatePrice("totalPrice", &arg.TotalPrice); err != nil {
		return err
	}
	if arg.UserID <= 0 {
		return er.New(er.ValidationCode, "userId is required")
	}
	return nil
}

func validateOrderStatus(status *model.OrderStatus) error {
	if status != nil && !status.IsValid() {
		return er.Newf(er.ValidationCode, "status must be one of %s, %s, %s",
			model.OrderStatusPending, model.OrderStatusCompleted, model.OrderStatusCanceled)
	}
	return nil
}

func convertRepoOrderToModel(o *sqlc.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:         o.ID,
		TotalPrice: o.TotalPrice,
		Status:     model.OrderStatus(o.Status),
		UserID:     o.UserID,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

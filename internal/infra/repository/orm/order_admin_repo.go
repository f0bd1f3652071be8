package orm

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"gorm.io/gorm"
)

type IOrderAdminRepo interface {
	List(ctx context.Context) ([]model.OrderModel, error)
	ListSince(ctx context.Context, since time.Time) ([]model.OrderModel, error)
	Get(ctx context.Context, id int64) (*model.OrderModel, error)
	Create(ctx context.Context, data model.CreateOrderModel) (*model.OrderModel, error)
	Update(ctx context.Context, id int64, data model.UpdateOrderModel) (*model.OrderModel, error)
	Delete(ctx context.Context, id int64) error
}

type OrderAdminRepo struct {
	db *gorm.DB
}

func NewOrderAdminRepo(db *gorm.DB) *OrderAdminRepo {
	return &OrderAdminRepo{db: db}
}

func (r *OrderAdminRepo) List(ctx context.Context) ([]model.OrderModel, error) {
	var records []OrderRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toModels(records), nil
}

// ListSince 取得 created_at >= since 的訂單
func (r *OrderAdminRepo) ListSince(ctx context.Context, since time.Time) ([]model.OrderModel, error) {
	var records []OrderRecord
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toModels(records), nil
}

// Get 找不到時回傳 gorm.ErrRecordNotFound
func (r *OrderAdminRepo) Get(ctx context.Context, id int64) (*model.OrderModel, error) {
	var record OrderRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	m := record.toModel()
	return &m, nil
}

// Create 欄位需已驗證, user 不存在時回傳 pg 23503
func (r *OrderAdminRepo) Create(ctx context.Context, data model.CreateOrderModel) (*model.OrderModel, error) {
	record := OrderRecord{
		TotalPrice: data.TotalPrice,
		Status:     string(data.Status),
		UserID:     data.UserID,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	m := record.toModel()
	return &m, nil
}

func (r *OrderAdminRepo) Update(ctx context.Context, id int64, data model.UpdateOrderModel) (*model.OrderModel, error) {
	updates := map[string]any{}
	if data.TotalPrice != nil {
		updates["total_price"] = *data.TotalPrice
	}
	if data.Status != nil {
		updates["status"] = string(*data.Status)
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&OrderRecord{ID: id}).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}

	return r.Get(ctx, id)
}

func (r *OrderAdminRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func toModels(records []OrderRecord) []model.OrderModel {
	res := make([]model.OrderModel, 0, len(records))
	for _, r := range records {
		res = append(res, r.toModel())
	}
	return res
}

package service

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
)

type IUserService interface {
	// CreateUser 新增使用者, HashPassword 需已雜湊
	//
	// 錯誤:
	//   - er.ConflictCode 470: username 已存在
	//   - er.InternalErrorCode 500: 資料庫錯誤
	CreateUser(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error)
	// GetUserByUsername
	//
	// 錯誤:
	//   - er.NotFoundCode 404: 使用者不存在
	//   - er.InternalErrorCode 500: 資料庫錯誤
	GetUserByUsername(ctx context.Context, username string) (*model.UserModel, error)
}

type UserService struct {
	dbDao db.IStore
}

func NewUserService(dbDao db.IStore) *UserService {
	return &UserService{
		dbDao: dbDao,
	}
}

func (u *UserService) CreateUser(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error) {
	userEntity, err := u.dbDao.CreateUser(ctx, sqlc.CreateUserParams{
		Username: arg.Username,
		Password: arg.HashPassword,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			return nil, er.New(er.ConflictCode, "username already exists")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertRepoUserToModel(&userEntity), nil
}

func (u *UserService) GetUserByUsername(ctx context.Context, username string) (*model.UserModel, error) {
	userEntity, err := u.dbDao.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, convertStoreError(err, "user not found")
	}

	return convertRepoUserToModel(&userEntity), nil
}

// 將 repository 模型轉換為服務層模型
func convertRepoUserToModel(u *sqlc.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Username:     u.Username,
		HashPassword: u.Password,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

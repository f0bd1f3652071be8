package service

import (
	"context"
	"errors"
	"testing"

	mock_db "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/mock"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_db.NewMockIStore(ctrl)
	store.EXPECT().CreateUser(gomock.Any(), sqlc.CreateUserParams{Username: "bob", Password: "hash"}).
		Return(sqlc.User{ID: 2, Username: "bob", Password: "hash"}, nil)
	store.EXPECT().CreateUser(gomock.Any(), sqlc.CreateUserParams{Username: "dup", Password: "hash"}).
		Return(sqlc.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
	store.EXPECT().CreateUser(gomock.Any(), sqlc.CreateUserParams{Username: "down", Password: "hash"}).
		Return(sqlc.User{}, errors.New("connection reset"))

	userService := NewUserService(store)

	user, err := userService.CreateUser(context.Background(), &model.CreateUserModel{Username: "bob", HashPassword: "hash"})
	require.NoError(t, err)
	require.Equal(t, int64(2), user.ID)

	_, err = userService.CreateUser(context.Background(), &model.CreateUserModel{Username: "dup", HashPassword: "hash"})
	requireErrCode(t, err, er.ConflictCode)

	_, err = userService.CreateUser(context.Background(), &model.CreateUserModel{Username: "down", HashPassword: "hash"})
	requireErrCode(t, err, er.InternalErrorCode)
}

func TestGetUserByUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_db.NewMockIStore(ctrl)
	store.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(sqlc.User{ID: 2, Username: "bob", Password: "hash"}, nil)
	store.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(sqlc.User{}, pgx.ErrNoRows)

	userService := NewUserService(store)

	user, err := userService.GetUserByUsername(context.Background(), "bob")
	require.NoError(t, err)
	require.Equal(t, "hash", user.HashPassword)

	_, err = userService.GetUserByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, er.NotFoundError)
}

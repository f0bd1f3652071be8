package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	mock_token "github.com/RoyceAzure/lab/shopcenter/internal/infra/token/mock"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	mock_service "github.com/RoyceAzure/lab/shopcenter/internal/service/mock"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func requireErrCode(t *testing.T, err error, code er.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	var anaErr *er.AnaError
	require.True(t, errors.As(err, &anaErr), "expected AnaError, got %T", err)
	require.Equal(t, code, anaErr.Code)
}

func TestRegister(t *testing.T) {
	testCases := []struct {
		name      string
		username  string
		password  string
		setUpMock func(userService *mock_service.MockIUserService)
		check     func(t *testing.T, user *model.UserModel, err error)
	}{
		{
			name:     "ok",
			username: "alice",
			password: "s3cret!",
			setUpMock: func(userService *mock_service.MockIUserService) {
				userService.EXPECT().GetUserByUsername(gomock.Any(), "alice").
					Return(nil, er.New(er.NotFoundCode, "user not found"))
				userService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, arg *model.CreateUserModel) (*model.UserModel, error) {
						require.Equal(t, "alice", arg.Username)
						require.NotEqual(t, "s3cret!", arg.HashPassword)
						cost, err := bcrypt.Cost([]byte(arg.HashPassword))
						require.NoError(t, err)
						require.Equal(t, constants.PasswordHashCost, cost)
						require.NoError(t, bcrypt.CompareHashAndPassword([]byte(arg.HashPassword), []byte("s3cret!")))
						return &model.UserModel{ID: 1, Username: arg.Username, HashPassword: arg.HashPassword}, nil
					})
			},
			check: func(t *testing.T, user *model.UserModel, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(1), user.ID)
				require.Equal(t, "alice", user.Username)
			},
		},
		{
			name:     "username exists",
			username: "alice",
			password: "s3cret!",
			setUpMock: func(userService *mock_service.MockIUserService) {
				userService.EXPECT().GetUserByUsername(gomock.Any(), "alice").
					Return(&model.UserModel{ID: 1, Username: "alice"}, nil)
				userService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, user *model.UserModel, err error) {
				requireErrCode(t, err, er.ConflictCode)
				require.Nil(t, user)
			},
		},
		{
			name:     "concurrent insert conflict",
			username: "alice",
			password: "s3cret!",
			setUpMock: func(userService *mock_service.MockIUserService) {
				userService.EXPECT().GetUserByUsername(gomock.Any(), "alice").
					Return(nil, er.New(er.NotFoundCode, "user not found"))
				userService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(nil, er.New(er.ConflictCode, "username already exists"))
			},
			check: func(t *testing.T, user *model.UserModel, err error) {
				requireErrCode(t, err, er.ConflictCode)
			},
		},
		{
			name:     "short username",
			username: "al",
			password: "s3cret!",
			setUpMock: func(userService *mock_service.MockIUserService) {
				userService.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, user *model.UserModel, err error) {
				requireErrCode(t, err, er.ValidationCode)
			},
		},
		{
			name:     "password too long for bcrypt",
			username: "alice",
			password: strings.Repeat("x", 73),
			setUpMock: func(userService *mock_service.MockIUserService) {
				userService.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, user *model.UserModel, err error) {
				requireErrCode(t, err, er.ValidationCode)
			},
		},
		{
			name:     "lookup fails",
			username: "alice",
			password: "s3cret!",
			setUpMock: func(userService *mock_service.MockIUserService) {
				userService.EXPECT().GetUserByUsername(gomock.Any(), "alice").
					Return(nil, er.New(er.InternalErrorCode, "connection refused"))
			},
			check: func(t *testing.T, user *model.UserModel, err error) {
				requireErrCode(t, err, er.InternalErrorCode)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userService := mock_service.NewMockIUserService(ctrl)
			tc.setUpMock(userService)

			authService := NewAuthService(userService, mock_token.NewMockMaker(ctrl))
			user, err := authService.Register(context.Background(), tc.username, tc.password)
			tc.check(t, user, err)
		})
	}
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &model.UserModel{ID: 7, Username: "alice", HashPassword: string(hashed)}
	expiredAt := time.Now().Add(time.Hour)

	testCases := []struct {
		name      string
		password  string
		setUpMock func(userService *mock_service.MockIUserService, maker *mock_token.MockMaker)
		check     func(t *testing.T, res *model.LoginResponseModel, err error)
	}{
		{
			name:     "ok",
			password: "s3cret!",
			setUpMock: func(userService *mock_service.MockIUserService, maker *mock_token.MockMaker) {
				userService.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(stored, nil)
				maker.EXPECT().CreateToken(int64(7), constants.AccessTokenDuration).
					Return("signed.jwt.token", &token.Payload{UserId: 7, ExpiredAt: expiredAt}, nil)
			},
			check: func(t *testing.T, res *model.LoginResponseModel, err error) {
				require.NoError(t, err)
				require.Equal(t, "signed.jwt.token", res.AccessToken)
				require.Equal(t, expiredAt, res.ExpiresAt)
				require.Equal(t, int64(7), res.User.ID)
			},
		},
		{
			name:     "wrong password",
			password: "wrong-password",
			setUpMock: func(userService *mock_service.MockIUserService, maker *mock_token.MockMaker) {
				userService.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(stored, nil)
				maker.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, res *model.LoginResponseModel, err error) {
				requireErrCode(t, err, er.UnauthenticatedCode)
				require.Nil(t, res)
			},
		},
		{
			name:     "unknown user",
			password: "s3cret!",
			setUpMock: func(userService *mock_service.MockIUserService, maker *mock_token.MockMaker) {
				userService.EXPECT().GetUserByUsername(gomock.Any(), "alice").
					Return(nil, er.New(er.NotFoundCode, "user not found"))
			},
			check: func(t *testing.T, res *model.LoginResponseModel, err error) {
				requireErrCode(t, err, er.UnauthenticatedCode)
			},
		},
		{
			name:     "store failure",
			password: "s3cret!",
			setUpMock: func(userService *mock_service.MockIUserService, maker *mock_token.MockMaker) {
				userService.EXPECT().GetUserByUsername(gomock.Any(), "alice").
					Return(nil, er.New(er.InternalErrorCode, "timeout"))
			},
			check: func(t *testing.T, res *model.LoginResponseModel, err error) {
				requireErrCode(t, err, er.InternalErrorCode)
			},
		},
		{
			name:     "token signing failure",
			password: "s3cret!",
			setUpMock: func(userService *mock_service.MockIUserService, maker *mock_token.MockMaker) {
				userService.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(stored, nil)
				maker.EXPECT().CreateToken(int64(7), gomock.Any()).Return("", nil, errors.New("sign failed"))
			},
			check: func(t *testing.T, res *model.LoginResponseModel, err error) {
				requireErrCode(t, err, er.InternalErrorCode)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userService := mock_service.NewMockIUserService(ctrl)
			maker := mock_token.NewMockMaker(ctrl)
			tc.setUpMock(userService, maker)

			authService := NewAuthService(userService, maker)
			res, err := authService.Login(context.Background(), "alice", tc.password)
			tc.check(t, res, err)
		})
	}
}

func TestVerifyAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	maker := mock_token.NewMockMaker(ctrl)
	maker.EXPECT().VertifyToken("expired").Return(nil, token.ErrExpiredToken)
	maker.EXPECT().VertifyToken("good").Return(&token.Payload{UserId: 3}, nil)

	authService := NewAuthService(mock_service.NewMockIUserService(ctrl), maker)

	_, err := authService.VerifyAccessToken("expired")
	requireErrCode(t, err, er.UnauthorizedCode)

	payload, err := authService.VerifyAccessToken("good")
	require.NoError(t, err)
	require.Equal(t, int64(3), payload.UserId)
}

func TestNewAuthServicePanicsOnNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	require.Panics(t, func() { NewAuthService(nil, mock_token.NewMockMaker(ctrl)) })
	require.Panics(t, func() { NewAuthService(mock_service.NewMockIUserService(ctrl), nil) })
}

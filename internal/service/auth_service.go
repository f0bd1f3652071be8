package service

import (
	"context"
	"errors"
	"reflect"
	"unicode/utf8"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 64
	minPasswordLen = 6
	// bcrypt 只接受 72 bytes 以內
	maxPasswordBytes = 72
)

var errInvalidCredential = er.New(er.UnauthenticatedCode, "invalid username or password")

type IAuthService interface {
	// Register 註冊新使用者, 回傳不含密碼雜湊的使用者資料
	//
	// 錯誤:
	//   - er.ValidationCode 460: username 或 password 長度不符
	//   - er.ConflictCode 470: username 已存在
	//   - er.InternalErrorCode 500: 雜湊或資料庫錯誤
	Register(ctx context.Context, username string, password string) (*model.UserModel, error)
	// Login 驗證帳密並簽發 access token
	//
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 使用者不存在或密碼錯誤
	//   - er.InternalErrorCode 500: 資料庫或簽發 token 錯誤
	Login(ctx context.Context, username string, password string) (*model.LoginResponseModel, error)
	// VerifyAccessToken 解析 bearer token
	//
	// 錯誤:
	//   - er.UnauthorizedCode 403: token 格式錯誤, 過期或簽章不符
	VerifyAccessToken(accessToken string) (*token.Payload, error)
}

type AuthService struct {
	userService IUserService
	tokenMaker  token.Maker
}

func NewAuthService(userService IUserService, tokenMaker token.Maker) *AuthService {
	if userService == nil || reflect.ValueOf(userService).IsNil() {
		panic("auth service initialization failed: userService cannot be nil")
	}
	if tokenMaker == nil || reflect.ValueOf(tokenMaker).IsNil() {
		panic("auth service initialization failed: tokenMaker cannot be nil")
	}

	return &AuthService{
		userService: userService,
		tokenMaker:  tokenMaker,
	}
}

func (a *AuthService) Register(ctx context.Context, username string, password string) (*model.UserModel, error) {
	if err := validateCredential(username, password); err != nil {
		return nil, err
	}

	existing, err := a.userService.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, er.NotFoundError) {
		return nil, err
	}
	if existing != nil {
		return nil, er.New(er.ConflictCode, "username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), constants.PasswordHashCost)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	// 併發註冊同名時由 unique constraint 擋下, user service 會轉成 Conflict
	return a.userService.CreateUser(ctx, &model.CreateUserModel{
		Username:     username,
		HashPassword: string(hashed),
	})
}

func (a *AuthService) Login(ctx context.Context, username string, password string) (*model.LoginResponseModel, error) {
	userModel, err := a.userService.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, er.NotFoundError) {
			return nil, errInvalidCredential
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userModel.HashPassword), []byte(password)); err != nil {
		return nil, errInvalidCredential
	}

	accessToken, payload, err := a.tokenMaker.CreateToken(userModel.ID, constants.AccessTokenDuration)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return &model.LoginResponseModel{
		AccessToken: accessToken,
		ExpiresAt:   payload.ExpiredAt,
		User:        *userModel,
	}, nil
}

func (a *AuthService) VerifyAccessToken(accessToken string) (*token.Payload, error) {
	payload, err := a.tokenMaker.VertifyToken(accessToken)
	if err != nil {
		return nil, er.New(er.UnauthorizedCode, err.Error())
	}
	return payload, nil
}

func validateCredential(username string, password string) error {
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return er.Newf(er.ValidationCode, "username must be between %d and %d characters", minUsernameLen, maxUsernameLen)
	}
	if utf8.RuneCountInString(password) < minPasswordLen || len(password) > maxPasswordBytes {
		return er.Newf(er.ValidationCode, "password must be at least %d characters and at most %d bytes", minPasswordLen, maxPasswordBytes)
	}
	return nil
}

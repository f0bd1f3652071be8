package util

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

// GetTokenPayloadFromContext 取得 Access Gate 放入的 token payload, 不存在回傳 nil
func GetTokenPayloadFromContext(ctx context.Context) *token.Payload {
	if v, ok := ctx.Value(constants.AuthorizationPayloadKey).(*token.Payload); ok {
		return v
	}
	return nil
}

func GetAdminSessionFromContext(ctx context.Context) *model.AdminSessionModel {
	if v, ok := ctx.Value(constants.AdminSessionKey).(*model.AdminSessionModel); ok {
		return v
	}
	return nil
}

func GetRequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(constants.RequestIDKey).(string); ok {
		return v
	}
	return ""
}

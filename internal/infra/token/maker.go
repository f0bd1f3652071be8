package token

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// Maker 簽發與驗證 bearer token
type Maker interface {
	CreateToken(userID int64, duration time.Duration) (string, *Payload, error)
	VertifyToken(token string) (*Payload, error)
}

// Payload token 解析後的身分資訊
type Payload struct {
	UserId    int64     `json:"id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
}

package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const minSecretKeySize = 8

type claims struct {
	ID int64 `json:"id"`
	jwt.RegisteredClaims
}

// JWTMaker HS256 簽章的 JWT
type JWTMaker struct {
	secretKey []byte
	now       func() time.Time
}

func NewJWTMaker(secretKey string) (*JWTMaker, error) {
	if len(secretKey) < minSecretKeySize {
		return nil, fmt.Errorf("invalid key size: must be at least %d characters", minSecretKeySize)
	}
	return &JWTMaker{
		secretKey: []byte(secretKey),
		now:       time.Now,
	}, nil
}

func (maker *JWTMaker) CreateToken(userID int64, duration time.Duration) (string, *Payload, error) {
	issuedAt := maker.now()
	expiredAt := issuedAt.Add(duration)
	c := &claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiredAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(maker.secretKey)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, &Payload{
		UserId:    userID,
		IssuedAt:  c.IssuedAt.Time,
		ExpiredAt: c.ExpiresAt.Time,
	}, nil
}

// VertifyToken 驗證簽章、演算法與過期時間
func (maker *JWTMaker) VertifyToken(tokenStr string) (*Payload, error) {
	c := &claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return maker.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(maker.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !tkn.Valid || c.ID <= 0 {
		return nil, ErrInvalidToken
	}

	payload := &Payload{UserId: c.ID}
	if c.IssuedAt != nil {
		payload.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		payload.ExpiredAt = c.ExpiresAt.Time
	}
	return payload, nil
}

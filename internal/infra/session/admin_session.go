package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/gorilla/securecookie"
)

var (
	ErrInvalidSession = errors.New("admin session is invalid")
	ErrExpiredSession = errors.New("admin session has expired")
)

// Manager 以 HMAC 簽章 cookie 保存後台 session, server 端不留狀態
type Manager struct {
	name     string
	codec    *securecookie.SecureCookie
	duration time.Duration
	now      func() time.Time
}

func NewManager(cookieName string, hashKey string, duration time.Duration) (*Manager, error) {
	if len(hashKey) < 32 {
		return nil, fmt.Errorf("invalid key size: must be at least 32 characters")
	}
	codec := securecookie.New([]byte(hashKey), nil)
	codec.MaxAge(int(duration.Seconds()))
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &Manager{
		name:     cookieName,
		codec:    codec,
		duration: duration,
		now:      time.Now,
	}, nil
}

func (m *Manager) CookieName() string {
	return m.name
}

func (m *Manager) Duration() time.Duration {
	return m.duration
}

// Encode 建立新的 session 並回傳 cookie value
func (m *Manager) Encode(email string) (string, *model.AdminSessionModel, error) {
	s := &model.AdminSessionModel{
		Email:     email,
		ExpiresAt: m.now().Add(m.duration),
	}
	value, err := m.codec.Encode(m.name, s)
	if err != nil {
		return "", nil, err
	}
	return value, s, nil
}

func (m *Manager) Decode(value string) (*model.AdminSessionModel, error) {
	var s model.AdminSessionModel
	if err := m.codec.Decode(m.name, value, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if s.Expired(m.now()) {
		return nil, ErrExpiredSession
	}
	return &s, nil
}

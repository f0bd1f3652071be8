package model

import "time"

// AdminSessionModel 後台 session cookie 內容
type AdminSessionModel struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s AdminSessionModel) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

package model

import "time"

type LoginResponseModel struct {
	AccessToken string
	ExpiresAt   time.Time
	User        UserModel
}

type RegisterModel struct {
	Username string
	Password string
}

package model

import (
	"time"
)

type UserModel struct {
	ID           int64
	Username     string
	HashPassword string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserModel struct {
	Username     string
	HashPassword string
}

package dto

type RegisterDTO struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

type RegisterResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Message  string `json:"message" example:"User registered successfully"`
}

type LoginDTO struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

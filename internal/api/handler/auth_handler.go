package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

// @Summary register
// @Description create a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterDTO true "username and password"
// @Success 201 {object} dto.RegisterResponse "User registered successfully"
// @Failure 400 {object} response.ErrorResponse "invalid payload or username already exists"
// @Failure 500 {object} response.ErrorResponse "Error registering user"
// @Router /auth/register [post]
func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterDTO
	if err := decodeAndValidate(r, &registerDTO); err != nil {
		response.ErrorJSON(w, err, "")
		return
	}

	user, err := a.authService.Register(r.Context(), registerDTO.Username, registerDTO.Password)
	if err != nil {
		response.ErrorJSON(w, err, "Error registering user")
		return
	}

	response.CreatedJSON(w, dto.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Message:  "User registered successfully",
	})
}

// @Summary login
// @Description exchange username and password for a bearer token (valid 1 hour)
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.LoginDTO true "username and password"
// @Success 200 {object} dto.LoginResponse "token"
// @Failure 400 {object} response.ErrorResponse "invalid payload"
// @Failure 401 {object} response.ErrorResponse "invalid username or password"
// @Failure 429 {object} response.ErrorResponse "Too Many Requests"
// @Failure 500 {object} response.ErrorResponse "Error logging in"
// @Router /auth/login [post]
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := decodeAndValidate(r, &loginDTO); err != nil {
		response.ErrorJSON(w, err, "")
		return
	}

	loginRes, err := a.authService.Login(r.Context(), loginDTO.Username, loginDTO.Password)
	if err != nil {
		response.ErrorJSON(w, err, "Error logging in")
		return
	}

	response.SuccessJSON(w, dto.LoginResponse{Token: loginRes.AccessToken})
}

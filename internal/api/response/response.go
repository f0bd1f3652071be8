package response

import (
	"encoding/json"
	"net/http"

	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
)

// ErrorResponse 錯誤回應, error 只在 500 時帶出底層錯誤
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func SuccessJSON(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func CreatedJSON(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, data)
}

// NoContent 204 不帶 body
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ErrorJSON 依 AnaError 的錯誤碼決定 status
// internalMsg 為 500 時對外顯示的訊息, 空字串則使用預設
func ErrorJSON(w http.ResponseWriter, err error, internalMsg string) {
	anaErr := er.As(err)
	status := anaErr.HTTPStatus()

	body := ErrorResponse{Message: anaErr.Error()}
	if status >= http.StatusInternalServerError {
		body.Message = internalMsg
		if body.Message == "" {
			body.Message = anaErr.UserMessage()
		}
		body.Error = anaErr.Error()
	}
	WriteJSON(w, status, body)
}

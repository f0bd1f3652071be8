package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/RoyceAzure/lab/shopcenter/internal/util/validation"
	"github.com/go-chi/chi/v5"
)

// decodeAndValidate 解析 body 並依 validate tag 檢查
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return er.New(er.BadRequestCode, er.ErrStrMap[er.BadRequestCode])
	}
	return validation.ValidateStruct(dst)
}

// parseID 讀取路徑上的 {id}, 非正整數回傳 400
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, er.New(er.BadRequestCode, "invalid id")
	}
	return id, nil
}

package service

import (
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
)

// convertStoreError 將資料庫錯誤轉為 AnaError
//
// 對應:
//   - pgx.ErrNoRows: er.NotFoundCode 404
//   - 23505 unique: er.ConflictCode 470
//   - 23503/23514/23502/22003: er.ValidationCode 460
//   - 其他: er.InternalErrorCode 500
func convertStoreError(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if db.IsNoRows(err) {
		return er.New(er.NotFoundCode, notFoundMsg)
	}

	switch db.ErrorCode(err) {
	case db.UniqueViolation:
		return er.New(er.ConflictCode, "")
	case db.ForeignKeyViolation:
		return er.New(er.ValidationCode, "referenced record does not exist")
	case db.CheckViolation, db.NotNullViolation:
		return er.New(er.ValidationCode, "invalid field value")
	case db.NumericOutOfRange:
		return er.New(er.ValidationCode, "numeric value out of range")
	}
	return er.New(er.InternalErrorCode, err.Error())
}

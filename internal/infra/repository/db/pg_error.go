package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
	NotNullViolation    = "23502"
	NumericOutOfRange   = "22003"
)

// ErrorCode 取出 postgres 錯誤碼, 非 PgError 回傳空字串
func ErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

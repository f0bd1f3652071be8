package db

import (
	"context"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IStore interface {
	sqlc.Querier
	ExecTx(ctx context.Context, fn func(*sqlc.Queries) error) error
	Ping(ctx context.Context) error
}

// Store 包裝 sqlc.Queries 與連線池, 提供交易
type Store struct {
	*sqlc.Queries
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db:      db,
		Queries: sqlc.New(db),
	}
}

// ExecTx 在單一交易內執行 fn, fn 回傳錯誤則 rollback
func (s *Store) ExecTx(ctx context.Context, fn func(*sqlc.Queries) error) error {
	opts := pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	}

	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	if err = fn(s.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %w, rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

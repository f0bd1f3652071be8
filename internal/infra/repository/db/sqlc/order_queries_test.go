package sqlc

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createRandomOrder(t *testing.T, userID int64) Order {
	t.Helper()

	arg := CreateOrderParams{
		TotalPrice: decimal.RequireFromString("59.97"),
		Status:     "pending",
		UserID:     userID,
	}
	order, err := testQueries.CreateOrder(context.Background(), arg)
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	require.Equal(t, arg.Status, order.Status)
	require.Equal(t, userID, order.UserID)

	t.Cleanup(func() {
		_, _ = testQueries.DeleteOrder(context.Background(), order.ID)
	})
	return order
}

func TestCreateOrderUnknownUser(t *testing.T) {
	skipIfNoDB(t)
	_, err := testQueries.CreateOrder(context.Background(), CreateOrderParams{
		TotalPrice: decimal.NewFromInt(1),
		Status:     "pending",
		UserID:     -1,
	})
	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	require.Equal(t, "23503", pgErr.Code)
}

func TestCreateOrderInvalidStatus(t *testing.T) {
	skipIfNoDB(t)
	user := createRandomUser(t)
	_, err := testQueries.CreateOrder(context.Background(), CreateOrderParams{
		TotalPrice: decimal.NewFromInt(1),
		Status:     "shipped",
		UserID:     user.ID,
	})
	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	require.Equal(t, "23514", pgErr.Code)
}

func TestUpdateOrderStatusOnly(t *testing.T) {
	skipIfNoDB(t)
	user := createRandomUser(t)
	created := createRandomOrder(t, user.ID)

	updated, err := testQueries.UpdateOrder(context.Background(), UpdateOrderParams{
		Status: pgtype.Text{String: "completed", Valid: true},
		ID:     created.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "completed", updated.Status)
	require.True(t, created.TotalPrice.Equal(updated.TotalPrice))
	require.Equal(t, created.UserID, updated.UserID)
}

func TestDeleteOrder(t *testing.T) {
	skipIfNoDB(t)
	user := createRandomUser(t)
	created := createRandomOrder(t, user.ID)

	n, err := testQueries.DeleteOrder(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	got, err := testQueries.ListOrders(context.Background())
	require.NoError(t, err)
	for _, o := range got {
		require.NotEqual(t, created.ID, o.ID)
	}
}

package sqlc

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// 需要已跑過 migration 的資料庫, 未設定 TEST_DATABASE_URL 時全部略過
var testQueries *Queries
var testDBPool *pgxpool.Pool

func TestMain(m *testing.M) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		os.Exit(m.Run())
	}

	var err error
	testDBPool, err = pgxpool.New(context.Background(), dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	testQueries = New(testDBPool)

	code := m.Run()
	testDBPool.Close()
	os.Exit(code)
}

func skipIfNoDB(t *testing.T) {
	t.Helper()
	if testQueries == nil {
		t.Skip("TEST_DATABASE_URL not set, skipping")
	}
}

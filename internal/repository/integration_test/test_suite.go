package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"service/internal/pkg/config"
	"service/internal/pkg/postgres"
	"service/migrations"
	"service/pkg/logger/zap_adapter"
	"service/pkg/querier"
	"service/pkg/tx"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	txInstance      *tx.Manager
	suiteOnce       sync.Once
)

func initSuite() {
	suiteOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("order-service-integration")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		poolInstance, err = postgres.NewConnPool(ctx, zapLogger, &cfg.Database)
		if err != nil {
			panic(err)
		}

		err = migrations.Up(ctx, poolInstance)
		if err != nil {
			panic(err)
		}

		querierInstance = querier.New(poolInstance, pgxv5.DefaultCtxGetter)
		txInstance = tx.New(poolInstance)
	})
}

func GetQuerier() *querier.Querier {
	initSuite()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	initSuite()
	return txInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_items, orders CASCADE;
	`)
	require.NoError(t, err)
}

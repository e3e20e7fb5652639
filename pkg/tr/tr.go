package tr

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Executor возвращает транзакцию из контекста, если она была открыта менеджером,
// иначе сам пул соединений.
func Executor(ctx context.Context, pool *pgxpool.Pool) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, pool)
}

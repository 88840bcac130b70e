package policy

import (
	"context"
	"database/sql"

	"github.com/m04kA/MPC-PolicyService/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces for database access so the repository works
// with *sql.DB, the metrics wrapper, and transactions alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner is implemented by handles that can open transactions
// (*sql.DB and *dbmetrics.DB).
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}

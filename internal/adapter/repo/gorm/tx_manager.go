package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// TxManager runs a function inside a database transaction. The open
// transaction rides the context so every repo call within the function
// lands on the same connection.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// sessionDB resolves the transaction from the context, falling back to
// the repo's own handle for calls made outside RunInTx.
func sessionDB(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return base
}

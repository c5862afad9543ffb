package ports

import "context"

// TxManager brackets one logical operation. The gorm adapter maps this
// to a database transaction; the memory adapter holds the store lock for
// the duration of fn.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

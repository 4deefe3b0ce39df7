package ports

import "context"

// TxManager runs fn atomically. Implementations scope every repository call
// made through the returned context to the same transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

package domain

import "context"

// TxManager runs a function inside one atomic unit of work. The transaction
// travels in the context, so every repository call made through the given ctx
// joins the same transaction. fn returning an error rolls everything back.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

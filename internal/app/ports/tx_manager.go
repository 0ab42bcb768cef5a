package ports

import "context"

// TxManager runs fn atomically. Repository calls made with the context passed
// to fn commit or roll back as one unit; the load, optimistic save, and event
// append of every action share a single transaction through it.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	"moodroom/internal/platform/store"
)

// Queryer is the minimal read and write surface for SQL repos
type Queryer = store.RowQuerier

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)


// InTx binds a repo inside one transaction and returns fn's value
func InTx[R, T any](ctx context.Context, tx TxRunner, b Binder[R], fn func(R) (T, error)) (T, error) {
	var out T
	err := tx.Tx(ctx, func(q Queryer) error {
		var e error
		out, e = fn(b.Bind(q))
		return e
	})
	return out, err
}

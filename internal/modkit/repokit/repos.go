// Package repokit holds the transaction plumbing repositories are built on
package repokit

import (
	"context"

	"huddle/internal/platform/store"
)

type (
	// Queryer is what a bound repo runs SQL through
	Queryer = store.RowQuerier
	// TxRunner opens transactions
	TxRunner = store.TxRunner
	// Rows is a result set
	Rows = store.Rows
	// Row is one scannable row
	Row = store.Row
	// CommandTag reports what a statement changed
	CommandTag = store.CommandTag
)

// WithTx runs fn in one transaction on db
func WithTx(ctx context.Context, db TxRunner, fn func(q Queryer) error) error {
	return db.Tx(ctx, fn)
}

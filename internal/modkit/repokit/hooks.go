package repokit

import "context"

// BeginHook runs first inside every transaction, a failure rolls it back
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks returns db with hooks run at the start of each Tx
// statements outside Tx go straight to db
func WithBeginHooks(db TxRunner, hooks ...BeginHook) TxRunner {
	return hooked{TxRunner: db, hooks: hooks}
}

type hooked struct {
	TxRunner
	hooks []BeginHook
}

func (h hooked) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hook := range h.hooks {
			if err := hook(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

package repokit

// Binder builds a repo over a Queryer, usually the one of an open transaction
type Binder[T any] interface {
	Bind(Queryer) T
}

// RequireQueryer panics on a nil q so a miswired repo fails at bind time
func RequireQueryer(q Queryer) Queryer {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return q
}

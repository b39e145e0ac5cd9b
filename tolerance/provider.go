package tolerance

import (
	"context"
	"sync"
)

// Provider serves a run's tolerance Set, invoking its Predictor at most
// once. All callers observe the same Set or the same failure for the
// lifetime of the Provider; a Provider is scoped to one run.
type Provider struct {
	pred Predictor

	once sync.Once
	set  Set
	err  error
}

// NewProvider wraps pred with run-scoped caching.
func NewProvider(pred Predictor) *Provider {
	return &Provider{pred: pred}
}

// Tolerances returns the run's Set, estimating it on first call. The
// request is only consulted on that first call; later calls return the
// cached outcome unchanged.
func (p *Provider) Tolerances(ctx context.Context, req Request) (Set, error) {
	p.once.Do(func() {
		p.set, p.err = p.pred.Estimate(ctx, req)
	})
	return p.set, p.err
}

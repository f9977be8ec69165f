package generators

import (
	"context"
	"math/big"
	"runtime"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// MaxSearchModulus bounds the primes FindGenerators accepts: every
// candidate of the field is tested, so larger fields are out of reach.
var MaxSearchModulus = big.NewInt(1 << 40)

// ctxCheckInterval is how many candidates a worker tests between two
// looks at the context.
const ctxCheckInterval = 1024

// Option configures FindGenerators.
type Option func(*config)

type config struct {
	logger  *zap.Logger
	workers int
}

// WithLogger sets the logger used to report the factorization and the
// outcome of the search.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithWorkers sets the number of goroutines testing candidates.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// IsGenerator reports whether e generates the multiplicative group of its
// field, given the factorization of the group order p-1: e is a generator
// iff e^((p-1)/f) != 1 for every prime factor f of p-1.
func IsGenerator(e field.Element, factors []Factor) bool {
	if e.IsZero() {
		return false
	}
	order := new(big.Int).Sub(e.Order(), big.NewInt(1))
	cofactor := new(big.Int)
	for _, f := range factors {
		cofactor.Quo(order, f.Prime)
		r, err := e.Exp(cofactor)
		if err != nil || r.IsOne() {
			return false
		}
	}
	return true
}

// FindGenerators returns, in increasing order, every generator of the
// multiplicative group of GF(p). As a consistency check it fails with
// ErrGeneratorCount unless exactly phi(p-1) generators were found.
func FindGenerators(ctx context.Context, p *big.Int, opts ...Option) ([]*big.Int, error) {
	cfg := config{logger: zap.NewNop(), workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	log := cfg.logger.With(zap.Stringer("p", p))

	f, err := field.New(p)
	if err != nil {
		return nil, err
	}
	if p.Cmp(MaxSearchModulus) > 0 {
		return nil, errors.Wrapf(ecarith.ErrInvalidParameters, "exhaustive generator search over GF(%s) is too large", p)
	}

	order := new(big.Int).Sub(p, big.NewInt(1))
	factors := Factorize(order)
	phi := EulerPhi(factors)
	log.Debug("factored group order",
		zap.Stringer("order", order),
		zap.String("factors", FormatFactors(factors)),
		zap.Stringer("phi", phi),
	)

	n := p.Int64()
	workers := int64(cfg.workers)
	found := make([][]*big.Int, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := int64(0); w < workers; w++ {
		w := w
		g.Go(func() error {
			tested := 0
			for c := 1 + w; c < n; c += workers {
				if tested++; tested%ctxCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if IsGenerator(f.Int64(c), factors) {
					found[w] = append(found[w], big.NewInt(c))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "generator search")
	}

	var gens []*big.Int
	for _, part := range found {
		gens = append(gens, part...)
	}
	slices.SortFunc(gens, func(a, b *big.Int) int { return a.Cmp(b) })

	if int64(len(gens)) != phi.Int64() {
		return nil, errors.Wrapf(ecarith.ErrGeneratorCount, "found %d generators of GF(%s)*, phi(%s) = %s", len(gens), p, order, phi)
	}
	log.Debug("found generators", zap.Int("count", len(gens)))
	return gens, nil
}

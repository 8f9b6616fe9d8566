package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/jmarek/space-voyages/backend/internal/domain"
	"github.com/jmarek/space-voyages/backend/internal/repo"
)

// Repricer implements the scheduled price-randomization job. Each run draws a
// new price uniformly from every repriceable package's configured band and
// persists it. The job is idempotent and repeated every cycle, so partial
// failures are tolerated: a failed write is logged and retried wholesale on
// the next run.
type Repricer struct {
	repo repo.PackageRepo
	log  *slog.Logger
}

// NewRepricer constructs a Repricer backed by the provided PackageRepo.
func NewRepricer(r repo.PackageRepo, log *slog.Logger) *Repricer {
	return &Repricer{repo: r, log: log}
}

// RunOnce performs a single repricing pass over the whole catalog.
//
// Packages without a valid band (either bound zero, or max <= min) are
// skipped untouched. Eligible packages get an integer price drawn uniformly
// from the inclusive band [minPrice, maxPrice]. Each write is an independent
// single-row update issued concurrently with the others; an error on one
// never prevents attempts on the rest. Nothing is returned — the scheduler
// has no caller awaiting a result — so all outcomes are logged instead.
func (r *Repricer) RunOnce(ctx context.Context) {
	pkgs, err := r.repo.List(ctx)
	if err != nil {
		r.log.Error("repricing: catalog fetch failed", "error", err)
		return
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		updated int
		failed  int
		skipped int
	)

	for _, pkg := range pkgs {
		lo, hi, ok := pkg.RepriceBand()
		if !ok {
			skipped++
			continue
		}

		// Uniform over [lo, hi] inclusive. rand/v2 is auto-seeded; the
		// jitter is cosmetic, so no stronger randomness is needed.
		newPrice := lo + rand.Int64N(hi-lo+1)

		wg.Add(1)
		go func(p domain.Package, price int64) {
			defer wg.Done()
			if err := r.repo.UpdatePrice(ctx, p.ID, price); err != nil {
				r.log.Error("repricing: update failed", "package_id", p.ID, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			mu.Lock()
			updated++
			mu.Unlock()
		}(pkg, newPrice)
	}

	wg.Wait()
	r.log.Info("prices updated", "updated", updated, "skipped", skipped, "failed", failed)
}

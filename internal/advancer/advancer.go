package advancer

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/matchday/internal/league"
	"github.com/mauv0809/matchday/internal/metrics"
)

// Store is the subset of the league store the advancer reads from.
type Store interface {
	OverdueFixtures(now time.Time) ([]league.Fixture, error)
}

// FixtureResolver resolves a single fixture to a final score.
type FixtureResolver interface {
	ResolveFixture(fixtureID string, dryRun bool) (*league.Result, error)
}

// Advancer periodically sweeps for fixtures whose kickoff time has passed
// and resolves them, moving every league's clock forward without manual
// intervention.
type Advancer struct {
	store    Store
	resolver FixtureResolver
	metrics  metrics.Metrics
	interval time.Duration
	pause    time.Duration
	now      func() time.Time

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a new Advancer. pause is the delay inserted between
// consecutive resolutions within one sweep.
func New(store Store, resolver FixtureResolver, metrics metrics.Metrics, interval, pause time.Duration) *Advancer {
	return &Advancer{
		store:    store,
		resolver: resolver,
		metrics:  metrics,
		interval: interval,
		pause:    pause,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

// Start begins the sweep loop. It blocks until the context is cancelled
// or Stop is called, so run it in its own goroutine.
func (a *Advancer) Start(ctx context.Context) {
	log.Info("Starting season advancer", "interval", a.interval)

	a.wg.Add(1)
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	// Initial sweep so a restart catches up immediately.
	a.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("Season advancer stopped (context cancelled)")
			return
		case <-a.stopChan:
			log.Info("Season advancer stopped")
			return
		case <-ticker.C:
			a.RunOnce(ctx)
		}
	}
}

// Stop signals the advancer to stop and waits for the current sweep to finish.
func (a *Advancer) Stop() {
	close(a.stopChan)
	a.wg.Wait()
}

// RunOnce performs a single sweep: every fixture scheduled at or before now
// that is still unplayed gets resolved, in kickoff order. A fixture that
// fails to resolve is logged and skipped so the rest of the sweep proceeds.
func (a *Advancer) RunOnce(ctx context.Context) {
	a.metrics.IncAdvancerRuns()

	overdue, err := a.store.OverdueFixtures(a.now())
	if err != nil {
		log.Error("Failed to list overdue fixtures", "error", err)
		return
	}
	if len(overdue) == 0 {
		log.Debug("No overdue fixtures")
		return
	}

	log.Info("Resolving overdue fixtures", "count", len(overdue))
	for i, f := range overdue {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, err := a.resolver.ResolveFixture(f.ID, false); err != nil {
			log.Error("Failed to resolve overdue fixture, continuing sweep", "fixtureID", f.ID, "error", err)
		}

		if a.pause > 0 && i < len(overdue)-1 {
			time.Sleep(a.pause)
		}
	}
}

package resolver

import (
	"time"

	"github.com/mauv0809/matchday/internal/engine"
	"github.com/mauv0809/matchday/internal/metrics"
	"github.com/mauv0809/matchday/internal/pubsub"
	"github.com/mauv0809/matchday/internal/team"
)

// Resolver handles the business logic of resolving fixtures into final scores.
type Resolver struct {
	store    Store
	teams    team.TeamStore
	strength *engine.Estimator
	scores   *engine.Generator
	notifier Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
	now      func() time.Time
}

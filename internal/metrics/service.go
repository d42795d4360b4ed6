package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		AdvancerRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_advancer_runs_total",
			Help: "The total number of times the season advancer has run.",
		}),
		FixturesResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_fixtures_resolved_total",
			Help: "The total number of fixtures resolved into a final score.",
		}),
		ResolutionsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_resolutions_failed_total",
			Help: "The total number of fixture resolutions that failed.",
		}),
		ResolutionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "league_resolution_duration_seconds",
			Help:    "The duration of individual fixture resolutions.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "league_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.AdvancerRuns,
		s.FixturesResolved,
		s.ResolutionsFailed,
		s.ResolutionDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncAdvancerRuns() {
	s.AdvancerRuns.Inc()
}

func (s *Service) IncFixturesResolved() {
	s.FixturesResolved.Inc()
}

func (s *Service) IncResolutionsFailed() {
	s.ResolutionsFailed.Inc()
}

func (s *Service) ObserveResolutionDuration(duration float64) {
	s.ResolutionDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}

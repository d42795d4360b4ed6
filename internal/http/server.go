package http

import (
	"net/http"

	"github.com/mauv0809/matchday/internal/config"
	"github.com/mauv0809/matchday/internal/league"
	"github.com/mauv0809/matchday/internal/metrics"
	"github.com/mauv0809/matchday/internal/notifier"
	"github.com/mauv0809/matchday/internal/resolver"
	"github.com/mauv0809/matchday/internal/scheduler"
	"github.com/mauv0809/matchday/internal/standings"
	"github.com/mauv0809/matchday/internal/team"
)

func NewServer(store league.LeagueStore, teams team.TeamStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, sched *scheduler.Scheduler, res *resolver.Resolver, tables *standings.Calculator, notifier notifier.Notifier) *Server {
	server := &Server{
		Store:          store,
		Teams:          teams,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Scheduler:      sched,
		Resolver:       res,
		Standings:      tables,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/leagues", Chain(s.ListLeaguesHandler(), paramsMiddleware))
	s.Router.Handle("/fixtures", Chain(s.ListFixturesHandler(), paramsMiddleware))
	s.Router.Handle("/standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("/schedule", Chain(s.ScheduleHandler(), paramsMiddleware))
	s.Router.Handle("/resolve", Chain(s.ResolveFixtureHandler(), paramsMiddleware))
	s.Router.Handle("/simulate-matchday", Chain(s.SimulateMatchdayHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

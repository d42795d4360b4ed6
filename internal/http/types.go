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

type Server struct {
	Store          league.LeagueStore
	Teams          team.TeamStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Scheduler      *scheduler.Scheduler
	Resolver       *resolver.Resolver
	Standings      *standings.Calculator
	Notifier       notifier.Notifier
	Router         *http.ServeMux
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/matchday/internal/league"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListLeaguesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := s.Store.ListLeagues()
		if err != nil {
			http.Error(w, "Failed to get leagues", http.StatusInternalServerError)
			log.Error("Failed to get leagues from store", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(leagues); err != nil {
			log.Error("Failed to encode leagues to JSON", "error", err)
		}
	}
}

// fixturesResponse wraps a fixture listing together with the lowest matchday
// that still has unplayed fixtures, if the season is not over yet.
type fixturesResponse struct {
	NextMatchday *int             `json:"nextMatchday,omitempty"`
	Fixtures     []league.Fixture `json:"fixtures"`
}

func (s *Server) ListFixturesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := r.URL.Query().Get("leagueID")
		if leagueID == "" {
			http.Error(w, "leagueID is required", http.StatusBadRequest)
			return
		}
		season := s.seasonFromRequest(r)

		query := league.FixtureQuery{LeagueID: leagueID, Season: season}
		if mdStr := r.URL.Query().Get("matchday"); mdStr != "" {
			md, err := strconv.Atoi(mdStr)
			if err != nil {
				http.Error(w, "Invalid 'matchday' parameter", http.StatusBadRequest)
				return
			}
			query.Matchday = &md
		}
		if playedStr := r.URL.Query().Get("played"); playedStr != "" {
			played, err := strconv.ParseBool(playedStr)
			if err != nil {
				http.Error(w, "Invalid 'played' parameter", http.StatusBadRequest)
				return
			}
			query.Played = &played
		}

		fixtures, err := s.Store.ListFixtures(query)
		if err != nil {
			http.Error(w, "Failed to get fixtures", http.StatusInternalServerError)
			log.Error("Failed to get fixtures from store", "error", err)
			return
		}

		resp := fixturesResponse{Fixtures: fixtures}
		if next, ok, err := s.Store.NextUnplayedMatchday(leagueID, season); err != nil {
			log.Error("Failed to look up next unplayed matchday", "leagueID", leagueID, "error", err)
		} else if ok {
			resp.NextMatchday = &next
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error("Failed to encode fixtures to JSON", "error", err)
		}
	}
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := r.URL.Query().Get("leagueID")
		if leagueID == "" {
			http.Error(w, "leagueID is required", http.StatusBadRequest)
			return
		}
		season := s.seasonFromRequest(r)

		table, err := s.Standings.Table(leagueID, season)
		if err != nil {
			if errors.Is(err, league.ErrLeagueNotFound) {
				http.Error(w, "League not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to compute standings", http.StatusInternalServerError)
			log.Error("Failed to compute standings", "leagueID", leagueID, "error", err)
			return
		}

		if r.URL.Query().Get("notify") == "true" {
			l, err := s.Store.GetLeague(leagueID)
			if err != nil {
				http.Error(w, "League not found", http.StatusNotFound)
				return
			}
			if err := s.Notifier.SendStandings(l.Name, table, isDryRunFromContext(r)); err != nil {
				log.Error("Failed to send standings notification", "leagueID", leagueID, "error", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(table); err != nil {
			log.Error("Failed to encode standings to JSON", "error", err)
		}
	}
}

func (s *Server) ScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := r.URL.Query().Get("leagueID")

		if leagueID == "" {
			log.Info("Scheduling all leagues...")
			if err := s.Scheduler.ScheduleAll(); err != nil {
				http.Error(w, "Failed to schedule leagues", http.StatusInternalServerError)
				log.Error("Failed to schedule leagues", "error", err)
				return
			}
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, "Scheduling completed.")
			return
		}

		err := s.Scheduler.ScheduleLeague(leagueID)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Scheduled league %s.\n", leagueID)
		case errors.Is(err, league.ErrLeagueNotFound):
			http.Error(w, "League not found", http.StatusNotFound)
		case errors.Is(err, league.ErrScheduleExists):
			http.Error(w, "League already has a schedule for this season", http.StatusConflict)
		case errors.Is(err, league.ErrTooFewTeams), errors.Is(err, league.ErrWrongLeagueSize):
			http.Error(w, err.Error(), http.StatusPreconditionFailed)
		default:
			http.Error(w, "Failed to schedule league", http.StatusInternalServerError)
			log.Error("Failed to schedule league", "leagueID", leagueID, "error", err)
		}
	}
}

func (s *Server) ResolveFixtureHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fixtureID := r.URL.Query().Get("fixtureID")
		if fixtureID == "" {
			http.Error(w, "fixtureID is required", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		result, err := s.Resolver.ResolveFixture(fixtureID, isDryRun)
		switch {
		case err == nil:
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(result); err != nil {
				log.Error("Failed to encode result to JSON", "error", err)
			}
		case errors.Is(err, league.ErrFixtureNotFound):
			http.Error(w, "Fixture not found", http.StatusNotFound)
		case errors.Is(err, league.ErrAlreadyPlayed):
			http.Error(w, "Fixture has already been played", http.StatusConflict)
		default:
			http.Error(w, "Failed to resolve fixture", http.StatusInternalServerError)
			log.Error("Failed to resolve fixture", "fixtureID", fixtureID, "error", err)
		}
	}
}

func (s *Server) SimulateMatchdayHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := r.URL.Query().Get("leagueID")
		if leagueID == "" {
			http.Error(w, "leagueID is required", http.StatusBadRequest)
			return
		}
		season := s.seasonFromRequest(r)
		isDryRun := isDryRunFromContext(r)

		// An absent matchday means "the lowest one that still has unplayed fixtures".
		matchday := 0
		if mdStr := r.URL.Query().Get("matchday"); mdStr != "" {
			md, err := strconv.Atoi(mdStr)
			if err != nil || md <= 0 {
				http.Error(w, "Invalid 'matchday' parameter", http.StatusBadRequest)
				return
			}
			matchday = md
		}

		results, err := s.Resolver.ResolveMatchday(leagueID, season, matchday, isDryRun)
		if err != nil {
			http.Error(w, "Failed to simulate matchday", http.StatusInternalServerError)
			log.Error("Failed to simulate matchday", "leagueID", leagueID, "error", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(results); err != nil {
			log.Error("Failed to encode results to JSON", "error", err)
		}
	}
}

// seasonFromRequest resolves the season query parameter, falling back to the
// configured current season.
func (s *Server) seasonFromRequest(r *http.Request) league.Season {
	if season := r.URL.Query().Get("season"); season != "" {
		return league.Season(season)
	}
	return league.Season(s.Cfg.League.Season)
}

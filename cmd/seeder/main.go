package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mauv0809/matchday/internal/database"
	"github.com/mauv0809/matchday/internal/league"
	"github.com/mauv0809/matchday/internal/team"
)

const teamsPerLeague = 12

// Squad shape for every seeded team.
var squadPlan = []struct {
	position string
	count    int
}{
	{team.PositionGoalkeeper, 2},
	{team.PositionDefender, 5},
	{team.PositionMidfielder, 5},
	{team.PositionForward, 3},
}

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":        "league.db",
		"MIGRATIONS_DIR": "migrations",
		"SEASON":         "2024-25",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], "", "", cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()
	defer db.Close()

	store := league.New(db)
	season := league.Season(cfg["SEASON"])

	divisions := []struct {
		name  string
		level int
	}{
		{"Premier Division", 1},
		{"Second Division", 2},
	}

	for _, div := range divisions {
		leagueID := uuid.NewString()
		if err := store.CreateLeague(league.League{
			ID:            leagueID,
			Name:          div.name,
			DivisionLevel: div.level,
			Season:        season,
			MaxTeams:      teamsPerLeague,
		}); err != nil {
			log.Fatalf("Failed to create league %s: %s", div.name, err)
		}

		teamIDs := make([]string, 0, teamsPerLeague)
		for i := 1; i <= teamsPerLeague; i++ {
			teamID := uuid.NewString()
			teamName := fmt.Sprintf("%s FC %02d", divisionPrefix(div.level), i)
			if _, err := db.Exec(`INSERT INTO teams (id, name) VALUES (?, ?)`, teamID, teamName); err != nil {
				log.Fatalf("Failed to insert team %s: %s", teamName, err)
			}
			seedSquad(db, teamID, teamName, div.level)
			teamIDs = append(teamIDs, teamID)
		}

		if err := store.AddMembers(leagueID, season, teamIDs); err != nil {
			log.Fatalf("Failed to register teams in %s: %s", div.name, err)
		}
		log.Info("Seeded league", "league", div.name, "teams", len(teamIDs))
	}

	log.Info("Seeding complete.")
}

func divisionPrefix(level int) string {
	if level == 1 {
		return "Premier"
	}
	return "Second"
}

// seedSquad inserts a full squad for the team. Lower divisions get a
// slightly weaker rating band so seeded standings have some texture.
func seedSquad(db *sql.DB, teamID, teamName string, divisionLevel int) {
	base := 65 - (divisionLevel-1)*10
	shirt := 1
	for _, plan := range squadPlan {
		for i := 0; i < plan.count; i++ {
			rating := base + rand.Intn(16)
			name := fmt.Sprintf("%s #%d", teamName, shirt)
			if _, err := db.Exec(`INSERT INTO players (id, team_id, name, position, overall_rating) VALUES (?, ?, ?, ?, ?)`,
				uuid.NewString(), teamID, name, plan.position, rating); err != nil {
				log.Fatalf("Failed to insert player for team %s: %s", teamName, err)
			}
			shirt++
		}
	}
}

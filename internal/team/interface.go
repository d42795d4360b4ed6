package team

// TeamStore defines read access to team and player records. The league
// core never writes these tables; they belong to the roster subsystem.
type TeamStore interface {
	GetTeam(id string) (Team, error)
	GetTeams(ids []string) ([]Team, error)
	GetPlayers(teamID string) ([]PlayerInfo, error)
}

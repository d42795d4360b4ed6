package team

import "sync"

// MockStore is a mock implementation of the TeamStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetTeamFunc    func(id string) (Team, error)
	GetTeamsFunc   func(ids []string) ([]Team, error)
	GetPlayersFunc func(teamID string) ([]PlayerInfo, error)

	// Call records
	GetPlayersCalls []string
	GetTeamCalls    []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayersCalls = nil
	m.GetTeamCalls = nil
}

func (m *MockStore) GetTeam(id string) (Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetTeamCalls = append(m.GetTeamCalls, id)
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(id)
	}
	return Team{ID: id, Name: id}, nil
}

func (m *MockStore) GetTeams(ids []string) ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamsFunc != nil {
		return m.GetTeamsFunc(ids)
	}
	teams := make([]Team, 0, len(ids))
	for _, id := range ids {
		teams = append(teams, Team{ID: id, Name: id})
	}
	return teams, nil
}

func (m *MockStore) GetPlayers(teamID string) ([]PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayersCalls = append(m.GetPlayersCalls, teamID)
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(teamID)
	}
	return []PlayerInfo{}, nil
}

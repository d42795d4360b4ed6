package league

import (
	"sync"
	"time"
)

// MockStore is a mock implementation of the LeagueStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateLeagueFunc         func(l League) error
	GetLeagueFunc            func(id string) (League, error)
	ListLeaguesFunc          func() ([]League, error)
	AddMembersFunc           func(leagueID string, season Season, teamIDs []string) error
	MemberTeamIDsFunc        func(leagueID string, season Season) ([]string, error)
	InsertFixturesFunc       func(fixtures []Fixture) error
	GetFixtureFunc           func(id string) (Fixture, error)
	ListFixturesFunc         func(q FixtureQuery) ([]Fixture, error)
	NextUnplayedMatchdayFunc func(leagueID string, season Season) (int, bool, error)
	OverdueFixturesFunc      func(now time.Time) ([]Fixture, error)
	MarkPlayedIfUnplayedFunc func(fixtureID string, homeScore, awayScore int, playedAt time.Time) (bool, error)
	HasFixturesFunc          func(leagueID string, season Season) (bool, error)

	// Call records
	CreateLeagueCalls   []League
	InsertFixturesCalls [][]Fixture
	AddMembersCalls     []struct {
		LeagueID string
		Season   Season
		TeamIDs  []string
	}
	GetFixtureCalls           []string
	MarkPlayedIfUnplayedCalls []MarkPlayedCall
}

// MarkPlayedCall holds the arguments for a call to MarkPlayedIfUnplayed.
type MarkPlayedCall struct {
	FixtureID string
	HomeScore int
	AwayScore int
	PlayedAt  time.Time
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateLeagueCalls = nil
	m.InsertFixturesCalls = nil
	m.AddMembersCalls = nil
	m.GetFixtureCalls = nil
	m.MarkPlayedIfUnplayedCalls = nil
}

func (m *MockStore) CreateLeague(l League) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateLeagueCalls = append(m.CreateLeagueCalls, l)
	if m.CreateLeagueFunc != nil {
		return m.CreateLeagueFunc(l)
	}
	return nil
}

func (m *MockStore) GetLeague(id string) (League, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetLeagueFunc != nil {
		return m.GetLeagueFunc(id)
	}
	return League{}, ErrLeagueNotFound
}

func (m *MockStore) ListLeagues() ([]League, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListLeaguesFunc != nil {
		return m.ListLeaguesFunc()
	}
	return nil, nil
}

func (m *MockStore) AddMembers(leagueID string, season Season, teamIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddMembersCalls = append(m.AddMembersCalls, struct {
		LeagueID string
		Season   Season
		TeamIDs  []string
	}{leagueID, season, teamIDs})
	if m.AddMembersFunc != nil {
		return m.AddMembersFunc(leagueID, season, teamIDs)
	}
	return nil
}

func (m *MockStore) MemberTeamIDs(leagueID string, season Season) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MemberTeamIDsFunc != nil {
		return m.MemberTeamIDsFunc(leagueID, season)
	}
	return nil, nil
}

func (m *MockStore) InsertFixtures(fixtures []Fixture) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertFixturesCalls = append(m.InsertFixturesCalls, fixtures)
	if m.InsertFixturesFunc != nil {
		return m.InsertFixturesFunc(fixtures)
	}
	return nil
}

func (m *MockStore) GetFixture(id string) (Fixture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetFixtureCalls = append(m.GetFixtureCalls, id)
	if m.GetFixtureFunc != nil {
		return m.GetFixtureFunc(id)
	}
	return Fixture{}, ErrFixtureNotFound
}

func (m *MockStore) ListFixtures(q FixtureQuery) ([]Fixture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFixturesFunc != nil {
		return m.ListFixturesFunc(q)
	}
	return nil, nil
}

func (m *MockStore) NextUnplayedMatchday(leagueID string, season Season) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.NextUnplayedMatchdayFunc != nil {
		return m.NextUnplayedMatchdayFunc(leagueID, season)
	}
	return 0, false, nil
}

func (m *MockStore) OverdueFixtures(now time.Time) ([]Fixture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.OverdueFixturesFunc != nil {
		return m.OverdueFixturesFunc(now)
	}
	return nil, nil
}

func (m *MockStore) MarkPlayedIfUnplayed(fixtureID string, homeScore, awayScore int, playedAt time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MarkPlayedIfUnplayedCalls = append(m.MarkPlayedIfUnplayedCalls, MarkPlayedCall{fixtureID, homeScore, awayScore, playedAt})
	if m.MarkPlayedIfUnplayedFunc != nil {
		return m.MarkPlayedIfUnplayedFunc(fixtureID, homeScore, awayScore, playedAt)
	}
	return true, nil
}

func (m *MockStore) HasFixtures(leagueID string, season Season) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.HasFixturesFunc != nil {
		return m.HasFixturesFunc(leagueID, season)
	}
	return false, nil
}

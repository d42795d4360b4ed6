package notifier

import (
	"sync"

	"github.com/mauv0809/matchday/internal/league"
	"github.com/mauv0809/matchday/internal/standings"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendResultNotificationFunc func(result *league.Result, dryRun bool) error
	SendStandingsFunc          func(leagueName string, table []standings.Row, dryRun bool) error

	// Call records
	SendResultNotificationCalls []struct{ Result *league.Result }
	SendStandingsCalls          []struct {
		LeagueName string
		Table      []standings.Row
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendStandingsCalls = nil
}

func (m *Mock) SendResultNotification(result *league.Result, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, struct{ Result *league.Result }{result})
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(result, dryRun)
	}
	return nil
}

func (m *Mock) SendStandings(leagueName string, table []standings.Row, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, struct {
		LeagueName string
		Table      []standings.Row
	}{leagueName, table})
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(leagueName, table, dryRun)
	}
	return nil
}

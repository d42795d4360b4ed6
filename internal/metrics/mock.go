package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	advancerRuns        int
	fixturesResolved    int
	resolutionsFailed   int
	resolutionDurations []float64
	slackNotifSent      int
	slackNotifFailed    int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		resolutionDurations: make([]float64, 0),
	}
}

func (m *Mock) IncAdvancerRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advancerRuns++
}

func (m *Mock) IncFixturesResolved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixturesResolved++
}

func (m *Mock) IncResolutionsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolutionsFailed++
}

func (m *Mock) ObserveResolutionDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolutionDurations = append(m.resolutionDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// SlackNotifSent returns the recorded sent count.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the recorded failure count.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// AdvancerRuns returns the recorded sweep count.
func (m *Mock) AdvancerRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.advancerRuns
}

// FixturesResolved returns the recorded resolution count.
func (m *Mock) FixturesResolved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fixturesResolved
}

// ResolutionsFailed returns the recorded failure count.
func (m *Mock) ResolutionsFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolutionsFailed
}

package notifier

import (
	"github.com/mauv0809/matchday/internal/league"
	"github.com/mauv0809/matchday/internal/standings"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For resolved fixtures
	SendResultNotification(result *league.Result, dryRun bool) error
	// For posting the current table
	SendStandings(leagueName string, table []standings.Row, dryRun bool) error
}

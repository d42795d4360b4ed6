package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	// EventMatchResult carries a resolved fixture's score to interested
	// listeners (scoreboard, team owners). Emitted once per resolution.
	EventMatchResult EventType = "match-result"
)

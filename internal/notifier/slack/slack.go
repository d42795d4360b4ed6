package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/matchday/internal/league"
	"github.com/mauv0809/matchday/internal/metrics"
	"github.com/mauv0809/matchday/internal/notifier"
	"github.com/mauv0809/matchday/internal/standings"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendResultNotification posts a resolved fixture's scoreline.
func (s *Notifier) SendResultNotification(result *league.Result, dryRun bool) error {
	msg := s.formatResultNotification(result)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendStandings posts the current league table.
func (s *Notifier) SendStandings(leagueName string, table []standings.Row, dryRun bool) error {
	msg := s.formatStandings(leagueName, table)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) formatResultNotification(result *league.Result) slack.Message {
	headerText := slack.NewTextBlockObject(slack.PlainTextType, ":stadium: Full Time", false, false)
	header := slack.NewHeaderBlock(headerText)

	scoreline := fmt.Sprintf("*%s %d - %d %s*", result.HomeTeam, result.HomeScore, result.AwayScore, result.AwayTeam)
	detail := fmt.Sprintf("Matchday %d", result.Matchday)

	body := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, scoreline+"\n"+detail, false, false),
		nil, nil,
	)

	return slack.NewBlockMessage(header, body)
}

func (s *Notifier) formatStandings(leagueName string, table []standings.Row) slack.Message {
	headerText := slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf(":trophy: %s", leagueName), false, false)
	header := slack.NewHeaderBlock(headerText)

	var sb strings.Builder
	sb.WriteString("```")
	sb.WriteString(fmt.Sprintf("%-3s %-20s %3s %3s %3s %3s %4s %4s\n", "#", "Team", "P", "W", "D", "L", "GD", "Pts"))
	for _, row := range table {
		sb.WriteString(fmt.Sprintf("%-3d %-20s %3d %3d %3d %3d %+4d %4d\n",
			row.Rank, row.TeamName, row.Played, row.Won, row.Drawn, row.Lost, row.GoalDifference, row.Points))
	}
	sb.WriteString("```")

	body := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, sb.String(), false, false),
		nil, nil,
	)

	return slack.NewBlockMessage(header, body)
}

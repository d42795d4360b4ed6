package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	leagueID string
	matchday int
	dryRun   bool
)

func init() {
	scheduleCmd.Flags().StringVar(&leagueID, "league", "", "League to schedule (all leagues when omitted)")
	simulateCmd.Flags().StringVar(&leagueID, "league", "", "League to simulate")
	simulateCmd.Flags().IntVar(&matchday, "matchday", 0, "Matchday to resolve (next unplayed when omitted)")
	simulateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate scores without persisting them")
	standingsCmd.Flags().StringVar(&leagueID, "league", "", "League to show standings for")
	fixturesCmd.Flags().StringVar(&leagueID, "league", "", "League to list fixtures for")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(leaguesCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(fixturesCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var leaguesCmd = &cobra.Command{
	Use:   "leagues",
	Short: "List all leagues",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leagues")
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate the season schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if leagueID != "" {
			params.Set("leagueID", leagueID)
		}
		return performPostRequest("/schedule", params)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Resolve a matchday for a league",
	RunE: func(cmd *cobra.Command, args []string) error {
		if leagueID == "" {
			return fmt.Errorf("--league is required")
		}
		params := url.Values{}
		params.Set("leagueID", leagueID)
		if matchday > 0 {
			params.Set("matchday", fmt.Sprint(matchday))
		}
		if dryRun {
			params.Set("dry_run", "true")
		}
		return performPostRequest("/simulate-matchday", params)
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the standings table for a league",
	RunE: func(cmd *cobra.Command, args []string) error {
		if leagueID == "" {
			return fmt.Errorf("--league is required")
		}
		params := url.Values{}
		params.Set("leagueID", leagueID)
		return performGetRequest("/standings?" + params.Encode())
	},
}

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List the fixtures for a league",
	RunE: func(cmd *cobra.Command, args []string) error {
		if leagueID == "" {
			return fmt.Errorf("--league is required")
		}
		params := url.Values{}
		params.Set("leagueID", leagueID)
		return performGetRequest("/fixtures?" + params.Encode())
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, params url.Values) error {
	target := host + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	fmt.Printf("Making request to %s\n", target)

	resp, err := http.Post(target, "application/json", nil)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}

// ABOUTME: CLI commands for the Google Calendar connection: status, upcoming events and disconnect.
// ABOUTME: Connecting happens in the browser through 'lifedash serve' and /api/calendar/auth.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/calendar"
)

var calendarDays int

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Google Calendar connection",
	Long: `Inspect the Google Calendar connection.

To connect, set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET, run 'lifedash serve'
and open /settings in a browser.`,
}

var calendarStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a calendar token is on file",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := calendar.New(cfg.Calendar()).Status(cmd.Context())
		if st.Connected {
			color.Green("✓ %s", st.Message)
		} else {
			color.Yellow("%s", st.Message)
		}
		return nil
	},
}

var calendarEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List upcoming events",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := calendar.New(cfg.Calendar()).ListEvents(cmd.Context(), calendarDays)
		if errors.Is(err, calendar.ErrUnauthenticated) || errors.Is(err, calendar.ErrNotConfigured) {
			color.Yellow("%v", err)
			return nil
		}
		if err != nil {
			return err
		}
		if list.Count == 0 {
			fmt.Printf("No events in the next %d days.\n", calendarDays)
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range list.Events {
			fmt.Printf("%s %s\n", padRight(e.Start, 26), e.Summary)
			if e.Location != nil && *e.Location != "" {
				faint.Printf("%s @ %s\n", padRight("", 26), *e.Location)
			}
		}
		return nil
	},
}

var calendarDisconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Forget the stored calendar token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := calendar.New(cfg.Calendar()).Disconnect(); err != nil {
			return fmt.Errorf("failed to disconnect: %w", err)
		}
		color.Green("✓ Disconnected Google Calendar")
		return nil
	},
}

func init() {
	calendarEventsCmd.Flags().IntVar(&calendarDays, "days", calendar.DefaultDays, "how many days ahead")

	calendarCmd.AddCommand(calendarStatusCmd, calendarEventsCmd, calendarDisconnectCmd)
	rootCmd.AddCommand(calendarCmd)
}

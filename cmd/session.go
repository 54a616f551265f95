package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/study-time-planner/internal/planner"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

var (
	sessionDate  string
	sessionStart string
	sessionEnd   string
	sessionNotes string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage study sessions",
}

var sessionAddCmd = &cobra.Command{
	Use:   "add <subject>",
	Short: "Add a study session manually",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionAdd,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions grouped by date",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a session (ID or unique prefix)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionDelete,
}

var sessionCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a session as done and credit its hours",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionComplete,
}

func init() {
	sessionAddCmd.Flags().StringVar(&sessionDate, "date", "", "Session date (YYYY-MM-DD)")
	sessionAddCmd.Flags().StringVar(&sessionStart, "start", "", "Start time (HH:MM)")
	sessionAddCmd.Flags().StringVar(&sessionEnd, "end", "", "End time (HH:MM)")
	sessionAddCmd.Flags().StringVar(&sessionNotes, "notes", "", "Optional notes")
	_ = sessionAddCmd.MarkFlagRequired("date")
	_ = sessionAddCmd.MarkFlagRequired("start")
	_ = sessionAddCmd.MarkFlagRequired("end")

	sessionCmd.AddCommand(sessionAddCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	sessionCmd.AddCommand(sessionCompleteCmd)
}

func runSessionAdd(cmd *cobra.Command, args []string) error {
	s, overlaps, err := plan.AddSession(planner.SessionInput{
		Subject: args[0],
		Date:    sessionDate,
		Start:   sessionStart,
		End:     sessionEnd,
		Notes:   sessionNotes,
	})
	handle(err)

	for _, o := range overlaps {
		fmt.Printf("Warning: overlaps %s %s–%s [%s]\n", o.Subject, o.Start, o.End, shortID(o.ID))
	}
	fmt.Printf("Added session [%s] %s %s–%s for %q (%s).\n",
		shortID(s.ID), s.Date, s.Start, s.End, s.Subject, timecalc.FormatHours(s.Hours()))
	return nil
}

func runSessionList(cmd *cobra.Command, args []string) error {
	printSessions(plan.SessionsByDate())
	return nil
}

func runSessionDelete(cmd *cobra.Command, args []string) error {
	s, err := plan.FindSession(args[0])
	handle(err)
	handle(plan.DeleteSession(s.ID))

	fmt.Printf("Deleted session [%s] %s %s–%s (%s).\n", shortID(s.ID), s.Date, s.Start, s.End, s.Subject)
	return nil
}

func runSessionComplete(cmd *cobra.Command, args []string) error {
	s, err := plan.FindSession(args[0])
	handle(err)
	hours, subject, err := plan.CompleteSession(s.ID)
	handle(err)

	fmt.Printf("Completed session [%s]: +%s for %q.\n", shortID(s.ID), timecalc.FormatHours(hours), subject)
	return nil
}

// printSessions prints each date as a heading followed by its sessions.
func printSessions(groups []planner.DayGroup) {
	if len(groups) == 0 {
		fmt.Println("No sessions found.")
		return
	}
	for _, g := range groups {
		fmt.Println(g.Date.Display())
		for _, s := range g.Sessions {
			done := " "
			if s.Completed {
				done = "x"
			}
			notes := ""
			if s.Notes != "" {
				notes = "  " + s.Notes
			}
			fmt.Printf("  [%s] %s  %s–%s  %s (%s)%s\n",
				done, shortID(s.ID), s.Start, s.End, s.Subject, timecalc.FormatHours(s.Hours()), notes)
		}
	}
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var remindLead int

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Print reminders for sessions that start soon",
	Long: `remind checks once for today's open sessions that start in about
--lead minutes and prints a reminder for each. A session is only
reminded once; run it from cron or a similar scheduler.`,
	Args: cobra.NoArgs,
	RunE: runRemind,
}

func init() {
	remindCmd.Flags().IntVar(&remindLead, "lead", 0, "Minutes before the start to remind (default from config)")
}

func runRemind(cmd *cobra.Command, args []string) error {
	lead := cfg.Reminder.LeadMinutes
	if cmd.Flags().Changed("lead") {
		lead = remindLead
	}

	due := plan.DueReminders(time.Now(), time.Duration(lead)*time.Minute)
	for _, s := range due {
		fmt.Printf("Reminder: %s starts at %s (in %d minutes).\n", s.Subject, s.Start, lead)
		handle(plan.MarkReminded(s.ID))
	}
	return nil
}

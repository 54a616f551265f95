package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/study-time-planner/internal/planner"
)

var (
	scheduleStart    string
	scheduleEnd      string
	scheduleDuration float64
	scheduleBreak    float64
	scheduleYes      bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate a study schedule, replacing all existing sessions",
	Args:  cobra.NoArgs,
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleStart, "start", "", "Daily window start (HH:MM, default from config)")
	scheduleCmd.Flags().StringVar(&scheduleEnd, "end", "", "Daily window end (HH:MM, default from config)")
	scheduleCmd.Flags().Float64Var(&scheduleDuration, "duration", 0, "Session length in hours (default from config)")
	scheduleCmd.Flags().Float64Var(&scheduleBreak, "break", 0, "Break between sessions in hours (default from config)")
	scheduleCmd.Flags().BoolVarP(&scheduleYes, "yes", "y", false, "Replace existing sessions without asking")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	in := planner.ScheduleInput{
		WindowStart:  cfg.Schedule.WindowStart,
		WindowEnd:    cfg.Schedule.WindowEnd,
		SessionHours: cfg.Schedule.SessionHours,
		BreakHours:   cfg.Schedule.BreakHours,
	}
	flags := cmd.Flags()
	if flags.Changed("start") {
		in.WindowStart = scheduleStart
	}
	if flags.Changed("end") {
		in.WindowEnd = scheduleEnd
	}
	if flags.Changed("duration") {
		in.SessionHours = scheduleDuration
	}
	if flags.Changed("break") {
		in.BreakHours = scheduleBreak
	}

	if existing := len(plan.Sessions()); existing > 0 && !scheduleYes {
		question := fmt.Sprintf("This replaces all %d existing session(s), including manual ones. Continue?", existing)
		if !confirm(os.Stdin, os.Stdout, question) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	res, err := plan.AutoSchedule(in)
	handle(err)

	fmt.Printf("Scheduled %d session(s) between %s and %s.\n", res.ScheduledCount, in.WindowStart, in.WindowEnd)
	if len(res.Incomplete) > 0 {
		fmt.Println("Warning: not enough time before the exam for:")
		for _, s := range res.Incomplete {
			fmt.Printf("  %s\n", s)
		}
	}
	return nil
}

// confirm asks a yes/no question; anything but y/yes is a no.
func confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [y/N] ", question)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

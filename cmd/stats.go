package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/study-time-planner/internal/planner"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study progress totals",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	st := plan.Statistics()
	label := timecalc.ISOWeekLabel(timecalc.DateOf(time.Now()))

	fmt.Println("Study statistics")
	fmt.Println("--------------------------------")
	fmt.Printf("%-20s%d\n", "Subjects", st.TotalSubjects)
	fmt.Printf("%-20s%dh\n", "Hours needed", st.TotalHoursNeeded)
	fmt.Printf("%-20s%s\n", "Hours completed", timecalc.FormatHours(st.TotalHoursCompleted))
	fmt.Printf("%-20s%d/%d\n", "Sessions done", st.CompletedSessions, st.TotalSessions)
	fmt.Printf("%-20s%s\n", "Planned "+label, timecalc.FormatHours(st.WeekPlannedHours))
	fmt.Println("--------------------------------")
	for _, s := range plan.Subjects() {
		fmt.Printf("%-20s%5.1f%%\n", s.Name, planner.Progress(s))
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/study-time-planner/internal/scheduler"
)

var conflictsResolve bool

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Show overlapping sessions and shared exam dates",
	Args:  cobra.NoArgs,
	RunE:  runConflicts,
}

func init() {
	conflictsCmd.Flags().BoolVar(&conflictsResolve, "resolve", false, "Move the later session of each overlap to the next day")
}

func runConflicts(cmd *cobra.Command, args []string) error {
	conflicts := plan.DetectConflicts()
	if len(conflicts) == 0 {
		fmt.Println("No conflicts found.")
		return nil
	}
	for _, line := range plan.FormatConflicts(conflicts) {
		fmt.Println(line)
	}
	if !conflictsResolve {
		return nil
	}

	moved := 0
	for _, c := range conflicts {
		if c.Kind != scheduler.KindOverlap {
			continue
		}
		ok, err := plan.ResolveConflict(c)
		handle(err)
		if ok {
			moved++
		}
	}
	fmt.Printf("Moved %d session(s) to the following day.\n", moved)

	if remaining := plan.ConflictMessages(); len(remaining) > 0 {
		fmt.Println("Still conflicting:")
		for _, line := range remaining {
			fmt.Printf("  %s\n", line)
		}
	}
	return nil
}

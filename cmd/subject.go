package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/planner"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

var (
	subjectExam       string
	subjectDifficulty int
	subjectScore      int
	subjectDaily      float64
)

var subjectCmd = &cobra.Command{
	Use:   "subject",
	Short: "Manage subjects",
}

var subjectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a subject with its exam date",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubjectAdd,
}

var subjectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects with their progress",
	Args:  cobra.NoArgs,
	RunE:  runSubjectList,
}

var subjectDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a subject and all of its sessions",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubjectDelete,
}

func init() {
	subjectAddCmd.Flags().StringVar(&subjectExam, "exam", "", "Exam date (YYYY-MM-DD)")
	subjectAddCmd.Flags().IntVar(&subjectDifficulty, "difficulty", 3, "Difficulty from 1 (easy) to 5 (hard)")
	subjectAddCmd.Flags().IntVar(&subjectScore, "score", 50, "Past score, 0-100")
	subjectAddCmd.Flags().Float64Var(&subjectDaily, "daily-hours", 0, "Maximum study hours per day (default from config)")
	_ = subjectAddCmd.MarkFlagRequired("exam")

	subjectCmd.AddCommand(subjectAddCmd)
	subjectCmd.AddCommand(subjectListCmd)
	subjectCmd.AddCommand(subjectDeleteCmd)
}

func runSubjectAdd(cmd *cobra.Command, args []string) error {
	s, err := plan.AddSubject(planner.SubjectInput{
		Name:            args[0],
		ExamDate:        subjectExam,
		Difficulty:      subjectDifficulty,
		PastScore:       subjectScore,
		DailyStudyHours: subjectDaily,
	})
	handle(err)

	fmt.Printf("Added %q: exam %s, %dh recommended, up to %gh per day.\n",
		s.Name, s.ExamDate, s.RecommendedHours, s.DailyLimit())
	return nil
}

func runSubjectList(cmd *cobra.Command, args []string) error {
	printSubjects(plan.Subjects(), timecalc.DateOf(time.Now()))
	return nil
}

func runSubjectDelete(cmd *cobra.Command, args []string) error {
	removed, err := plan.DeleteSubject(args[0])
	handle(err)

	fmt.Printf("Deleted %q and %d session(s).\n", args[0], removed)
	return nil
}

func printSubjects(subjects []model.Subject, today timecalc.Date) {
	if len(subjects) == 0 {
		fmt.Println("No subjects yet.")
		return
	}
	for _, s := range subjects {
		fmt.Printf("%-20s exam %s (%s)  difficulty %d  score %d\n",
			s.Name, s.ExamDate, examCountdown(today.DaysUntil(s.ExamDate)), s.Difficulty, s.PastScore)
		fmt.Printf("%-20s %s %s of %dh (%.0f%%)  %gh/day\n",
			"", progressBar(planner.Progress(s), 20), timecalc.FormatHours(s.HoursCompleted),
			s.RecommendedHours, planner.Progress(s), s.DailyLimit())
	}
}

func examCountdown(days int) string {
	switch {
	case days < 0:
		return "passed"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

// progressBar renders pct (0-100) as a fixed-width bar.
func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(filled, width))
	bar := make([]byte, 0, width+2)
	bar = append(bar, '[')
	for i := 0; i < width; i++ {
		if i < filled {
			bar = append(bar, '#')
		} else {
			bar = append(bar, '.')
		}
	}
	return string(append(bar, ']'))
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyflow/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats <roll-no>",
	Short: "Show a learner's scores and performance summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rollNo := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		st, err := s.Students().Get(ctx, rollNo)
		if err != nil {
			return fmt.Errorf("load student: %w", err)
		}
		if st == nil {
			return fmt.Errorf("no student with roll number %s", rollNo)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("Roll No:    %s\n", st.RollNo)
		fmt.Printf("Name:       %s\n", st.Name)
		fmt.Printf("Course:     %s\n", st.Domain)
		fmt.Printf("Plan:       %d h/day over %d weeks (week %d, step %d)\n",
			st.HoursPerDay, st.Weeks, st.CurrentWeekNo, st.CurrentStep)
		fmt.Println(sep)
		fmt.Printf("Cognitive:  %d%% (IQ %d)\n", st.CognitiveScore, st.CognitiveIQ)
		fmt.Printf("Domain:     %d%% (IQ %d)\n", st.DomainScore, st.DomainIQ)
		fmt.Printf("Viva:       %d%%\n", st.VivaScore)
		avg := float64(st.CognitiveScore+st.DomainScore+st.VivaScore) / 3
		fmt.Printf("Average:    %.1f%%\n", avg)

		quizzes, err := s.Quizzes().ByStudent(ctx, rollNo)
		if err != nil {
			return fmt.Errorf("load quizzes: %w", err)
		}
		if len(quizzes) > 0 {
			fmt.Println(sep)
			fmt.Printf("%-6s  %-6s  %-5s  %s\n", "Week", "Score", "IQ", "Analysis")
			for _, q := range quizzes {
				fmt.Printf("%-6d  %-6d  %-5d  %s\n", q.WeekNo, q.Score, q.IQ, q.Analysis)
			}
		}

		perf, err := s.Performance().Get(ctx, rollNo)
		if err != nil {
			return fmt.Errorf("load performance: %w", err)
		}
		if perf != nil {
			fmt.Println(sep)
			fmt.Printf("Mastered:   %s\n", perf.TopicsExcellented)
			fmt.Printf("Outcome:    %s\n", perf.OutcomeOfCourse)
			fmt.Printf("Progress:   %s\n", perf.StudentProgress)
		}
		return nil
	},
}

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyflow/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <roll-no>",
	Short: "Delete a learner's record and all their progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rollNo := args[0]
		force, _ := cmd.Flags().GetBool("force")

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

		if !force {
			fmt.Printf("Delete %s (%s) and all quizzes, content, and performance data? [y/N] ", st.RollNo, st.Name)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := s.Students().Delete(ctx, rollNo); err != nil {
			return fmt.Errorf("delete student: %w", err)
		}
		fmt.Printf("Deleted %s.\n", rollNo)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Delete without confirmation")
}

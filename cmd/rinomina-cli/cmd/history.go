package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rinomina/internal/adapters/sqlite"
	"rinomina/internal/application/commands"
	"rinomina/internal/config"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent rename and reverse runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		journal := sqlite.NewJournal()
		if err := journal.Open(config.JournalPath(config.BackupRoot())); err != nil {
			return err
		}
		defer journal.Close()

		history := commands.NewHistoryCommand(journal, historyLimit)
		res, err := history.Execute(context.Background())
		if err != nil {
			return err
		}

		if len(res.Runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		for _, run := range res.Runs {
			folder := run.Folder
			if folder == "" {
				folder = "-"
			}
			fmt.Printf("%s  %-7s  %4d files  %s\n", run.RanAt.Format("2006-01-02 15:04:05"), run.Mode, run.FileCount, folder)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

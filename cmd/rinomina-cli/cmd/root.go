package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"rinomina/internal/adapters/backup"
	"rinomina/internal/adapters/filesystem"
	"rinomina/internal/adapters/sqlite"
	"rinomina/internal/adapters/tui/styles"
	"rinomina/internal/application"
	"rinomina/internal/application/commands"
	"rinomina/internal/config"
	"rinomina/internal/domain"
	"rinomina/internal/ports"
)

var (
	orderFlag     string
	prefixFlag    string
	separatorFlag string
	startFlag     int
	paddingFlag   int
	caseFlag      string
	keepFlag      bool
	noNumberFlag  bool
	dryRunFlag    bool
	reverseFlag   bool
	copyFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "rinomina-cli <folder>",
	Short: "Bulk file renamer with ordering, prefixes, casing and a reversible backup plan",
	Long: `rinomina-cli renames every file in a folder according to a deterministic
plan: files are ordered (by name, timestamp or embedded number), then given
new names built from a prefix, the original stem, a padded sequence number
and a case transform.

Every applied plan is recorded, so a later --reverse-run restores the
original names. --dry-run shows the plan without touching anything.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := args[0]

		if err := validateFlags(); err != nil {
			return err
		}

		cfg, err := namingConfig()
		if err != nil {
			return err
		}

		scanner := filesystem.NewScanner()
		executor := filesystem.NewExecutor()
		root := config.BackupRoot()
		backups := backup.NewStore(root)

		ctx := context.Background()

		switch {
		case reverseFlag:
			journal := openJournal(root)
			defer closeJournal(journal)

			reverse := commands.NewReverseCommand(executor, backups, journal)
			res, err := reverse.Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(styles.Success.Render(res.Message))

		case dryRunFlag:
			dry := commands.NewDryRunCommand(scanner, folder, cfg)
			res, err := dry.Execute(ctx)
			if err != nil {
				return err
			}
			printPlan(res.Plan)
			if copyFlag {
				if err := clipboard.WriteAll(res.Listing()); err != nil {
					return fmt.Errorf("failed to copy plan to clipboard: %w", err)
				}
				fmt.Println(styles.HelpDesc.Render("plan copied to clipboard"))
			}

		default:
			journal := openJournal(root)
			defer closeJournal(journal)

			rename := commands.NewRenameCommand(scanner, executor, backups, journal, folder, cfg)
			res, err := rename.Execute(ctx)
			if err != nil {
				return err
			}
			printPlan(res.Plan)
			fmt.Println(styles.Success.Render(res.Message))
			fmt.Println(styles.HelpDesc.Render("backup record: " + res.BackupPath))
		}

		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&orderFlag, "order", "", "ordering criterion: by-name, by-mtime, by-ctime, by-embedded-number")
	rootCmd.Flags().StringVar(&prefixFlag, "prefix", "", "text prepended to each new name")
	rootCmd.Flags().StringVar(&separatorFlag, "separator", "_", "component separator: _, - or .")
	rootCmd.Flags().IntVar(&startFlag, "start", 1, "first numbering index")
	rootCmd.Flags().IntVar(&paddingFlag, "padding", 0, "zero-padding width for the index")
	rootCmd.Flags().StringVar(&caseFlag, "case", "lower", "case transform: lower, upper or title")
	rootCmd.Flags().BoolVar(&keepFlag, "keep", false, "keep the original stem in the new name")
	rootCmd.Flags().BoolVar(&noNumberFlag, "no-number", false, "suppress numbering (requires --keep)")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "show the plan without renaming anything")
	rootCmd.Flags().BoolVar(&reverseFlag, "reverse-run", false, "restore the names recorded by the last run")
	rootCmd.Flags().BoolVar(&copyFlag, "copy", false, "with --dry-run, copy the plan to the clipboard")

	rootCmd.MarkFlagRequired("order")
}

// validateFlags enforces the mutual-exclusion rules before any filesystem
// access
func validateFlags() error {
	if err := application.ValidateKeepNoNumber(keepFlag, noNumberFlag); err != nil {
		return err
	}

	othersSet := prefixFlag != "" ||
		separatorFlag != "_" ||
		startFlag != 1 ||
		paddingFlag != 0 ||
		caseFlag != "lower" ||
		keepFlag || noNumberFlag || dryRunFlag
	if err := application.ValidateReverseExclusive(reverseFlag, othersSet); err != nil {
		return err
	}

	return application.ValidateDryReverse(dryRunFlag, reverseFlag)
}

// namingConfig assembles the domain config from the parsed flags
func namingConfig() (domain.NamingConfig, error) {
	var cfg domain.NamingConfig

	order, err := domain.ParseOrderCriterion(orderFlag)
	if err != nil {
		return cfg, err
	}
	caseTransform, err := domain.ParseCaseTransform(caseFlag)
	if err != nil {
		return cfg, err
	}

	return domain.NamingConfig{
		Order:     order,
		Prefix:    prefixFlag,
		Separator: separatorFlag,
		Start:     startFlag,
		Padding:   paddingFlag,
		Case:      caseTransform,
		KeepStem:  keepFlag,
		NoNumber:  noNumberFlag,
	}, nil
}

// openJournal opens the run journal, degrading to no journal on failure
func openJournal(root string) ports.RunJournal {
	j := sqlite.NewJournal()
	if err := j.Open(config.JournalPath(root)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: run journal unavailable: %v\n", err)
		return nil
	}
	return j
}

func closeJournal(j ports.RunJournal) {
	if j != nil {
		j.Close()
	}
}

func printPlan(plan *domain.RenamePlan) {
	for _, pr := range plan.Pairs() {
		fmt.Println(styles.RenderPair(filepath.Base(pr.Source), filepath.Base(pr.Target)))
	}
}

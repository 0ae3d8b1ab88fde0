package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rinomina/internal/adapters/backup"
	"rinomina/internal/adapters/filesystem"
	"rinomina/internal/adapters/sqlite"
	"rinomina/internal/adapters/tui"
	"rinomina/internal/config"
	"rinomina/internal/domain"
	"rinomina/internal/ports"
)

func main() {
	orderFlag := flag.String("order", "by-name", "ordering criterion: by-name, by-mtime, by-ctime, by-embedded-number")
	prefixFlag := flag.String("prefix", "", "text prepended to each new name")
	separatorFlag := flag.String("separator", "_", "component separator: _, - or .")
	startFlag := flag.Int("start", 1, "first numbering index")
	paddingFlag := flag.Int("padding", 0, "zero-padding width for the index")
	caseFlag := flag.String("case", "lower", "case transform: lower, upper or title")
	keepFlag := flag.Bool("keep", false, "keep the original stem in the new name")
	noNumberFlag := flag.Bool("no-number", false, "suppress numbering (requires -keep)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rinomina [flags] <folder>")
		os.Exit(1)
	}
	folder := flag.Arg(0)

	order, err := domain.ParseOrderCriterion(*orderFlag)
	if err != nil {
		fatal(err)
	}
	caseTransform, err := domain.ParseCaseTransform(*caseFlag)
	if err != nil {
		fatal(err)
	}

	cfg := domain.NamingConfig{
		Order:     order,
		Prefix:    *prefixFlag,
		Separator: *separatorFlag,
		Start:     *startFlag,
		Padding:   *paddingFlag,
		Case:      caseTransform,
		KeepStem:  *keepFlag,
		NoNumber:  *noNumberFlag,
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	root := config.BackupRoot()
	backups := backup.NewStore(root)

	var journal ports.RunJournal
	j := sqlite.NewJournal()
	if err := j.Open(config.JournalPath(root)); err == nil {
		journal = j
		defer j.Close()
	}

	app := tui.NewApp(filesystem.NewScanner(), filesystem.NewExecutor(), backups, journal, folder, cfg)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
	os.Exit(1)
}

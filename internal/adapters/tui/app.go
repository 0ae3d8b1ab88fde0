package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rinomina/internal/adapters/tui/styles"
	"rinomina/internal/application/commands"
	"rinomina/internal/domain"
	"rinomina/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPreview ViewState = iota
	ViewDone
	ViewError
)

// KeyMap defines the preview key bindings
type KeyMap struct {
	Confirm key.Binding
	Quit    key.Binding
}

// DefaultKeys returns the default key bindings
var DefaultKeys = KeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "apply"),
	),
	Quit: key.NewBinding(
		key.WithKeys("n", "q", "esc", "ctrl+c"),
		key.WithHelp("n/q/esc", "quit"),
	),
}

// App previews a rename plan and applies it on confirm
type App struct {
	scanner  ports.FolderScanner
	executor ports.PlanExecutor
	backups  ports.BackupStore
	journal  ports.RunJournal

	folder string
	config domain.NamingConfig

	state   ViewState
	plan    *domain.RenamePlan
	message string
	keys    KeyMap
}

// NewApp creates the preview application. The plan shown is the one applied.
func NewApp(scanner ports.FolderScanner, executor ports.PlanExecutor, backups ports.BackupStore, journal ports.RunJournal, folder string, cfg domain.NamingConfig) *App {
	return &App{
		scanner:  scanner,
		executor: executor,
		backups:  backups,
		journal:  journal,
		folder:   folder,
		config:   cfg,
		state:    ViewPreview,
		keys:     DefaultKeys,
	}
}

type planReadyMsg struct {
	plan *domain.RenamePlan
}

type applyDoneMsg struct {
	result *commands.RenameResult
	err    error
}

type planErrMsg struct {
	err error
}

// Init computes the plan
func (a *App) Init() tea.Cmd {
	return func() tea.Msg {
		dry := commands.NewDryRunCommand(a.scanner, a.folder, a.config)
		res, err := dry.Execute(context.Background())
		if err != nil {
			return planErrMsg{err: err}
		}
		return planReadyMsg{plan: res.Plan}
	}
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planReadyMsg:
		a.plan = msg.plan
		return a, nil

	case planErrMsg:
		a.state = ViewError
		a.message = msg.err.Error()
		return a, nil

	case applyDoneMsg:
		if msg.err != nil {
			a.state = ViewError
			a.message = msg.err.Error()
		} else {
			a.state = ViewDone
			a.message = msg.result.Message
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Confirm):
			if a.state != ViewPreview || a.plan == nil {
				return a, tea.Quit
			}
			return a, a.apply()
		}
	}

	return a, nil
}

func (a *App) apply() tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewRenameCommand(a.scanner, a.executor, a.backups, a.journal, a.folder, a.config)
		res, err := cmd.Execute(context.Background())
		return applyDoneMsg{result: res, err: err}
	}
}

// View renders the current state
func (a *App) View() string {
	var b strings.Builder

	switch a.state {
	case ViewDone:
		b.WriteString(styles.Success.Render(a.message))
		b.WriteString("\n")
		b.WriteString(styles.HelpDesc.Render("press q to quit"))
		b.WriteString("\n")

	case ViewError:
		b.WriteString(styles.ErrorMsg.Render("Error: " + a.message))
		b.WriteString("\n")
		b.WriteString(styles.HelpDesc.Render("press q to quit"))
		b.WriteString("\n")

	default:
		b.WriteString(styles.Title.Render(fmt.Sprintf("Rename plan for %s", a.folder)))
		b.WriteString("\n")

		if a.plan == nil {
			b.WriteString(styles.HelpDesc.Render("computing plan..."))
			b.WriteString("\n")
			break
		}

		for _, pr := range a.plan.Pairs() {
			b.WriteString(styles.RenderPair(filepath.Base(pr.Source), filepath.Base(pr.Target)))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(styles.HelpKey.Render("y"))
		b.WriteString(styles.HelpDesc.Render(" apply  "))
		b.WriteString(styles.HelpKey.Render("n"))
		b.WriteString(styles.HelpDesc.Render(" quit"))
		b.WriteString("\n")
	}

	return b.String()
}

package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/jobslots/cli"
	"github.com/grovetools/jobslots/logging"
	"github.com/grovetools/jobslots/pkg/session"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/grovetools/jobslots/tui"
	"github.com/grovetools/jobslots/tui/keymap"
	"github.com/grovetools/jobslots/tui/panel"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewPanelCmd creates the interactive panel command.
func NewPanelCmd() *cobra.Command {
	var flags SourceFlagsWithWatch

	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Open the interactive job slots panel",
		Example: `  # Open the panel for the configured catalog and state
  jobslots panel

  # Follow a state file as it changes
  jobslots panel --state station.state.yml --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, &flags.SourceFlags)
			if err != nil {
				return err
			}
			state, err := ws.loadState()
			if err != nil {
				return err
			}
			return runPanel(cmd.Context(), ws, state, flags.Watch || ws.cfg.Watch.Enabled)
		},
	}
	flags.Register(cmd.Flags())
	cmd.Flags().BoolVarP(&flags.Watch, "watch", "w", false, "Reload the state snapshot when it changes")
	return cmd
}

// SourceFlagsWithWatch adds --watch to the shared source flags.
type SourceFlagsWithWatch struct {
	cli.SourceFlags
	Watch bool
}

func runPanel(ctx context.Context, ws *workspace, state *slots.ConsoleState, watch bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tui.InitializeTUI()

	// Log lines would tear the alternate screen.
	if isatty.IsTerminal(os.Stderr.Fd()) {
		logging.SetGlobalOutput(io.Discard)
		defer logging.SetGlobalOutput(os.Stderr)
	}

	sess := session.New(state).WithLogger(ws.logger.WithField("component", "session"))
	model := panel.New(ws.newViewModel(), panel.Options{
		Keys:      keymap.LoadOverrides(ws.cfg, "panel"),
		Apply:     sess.Apply,
		InitState: sess.State(),
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if watch && ws.cfg.State != "" {
		if err := startWatcher(ctx, ws, sess, program); err != nil {
			return err
		}
	}

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// startWatcher feeds reloaded snapshots into the session and the panel.
// Send is safe here because reloads run on the watcher's goroutine, never
// inside Update.
func startWatcher(ctx context.Context, ws *workspace, sess *session.Session, program *tea.Program) error {
	w, err := session.NewWatcher(ws.cfg.State, ws.cfg.Watch.DebounceMs, func(state *slots.ConsoleState) {
		state = ws.forceDebug(state)
		sess.Replace(state)
		program.Send(panel.StateMsg{State: sess.State()})
	})
	if err != nil {
		return err
	}
	w.WithLogger(ws.logger.WithField("component", "watcher"))
	go w.Start(ctx)
	ws.logger.WithField("path", ws.cfg.State).Info("Watching state snapshot")
	return nil
}

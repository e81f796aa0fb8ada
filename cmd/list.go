package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/jobslots/cli"
	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/grovetools/jobslots/pkg/jobslots"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/grovetools/jobslots/tui/components/table"
	"github.com/grovetools/jobslots/tui/theme"
	"github.com/spf13/cobra"
)

// NewListCmd creates the non-interactive listing command.
func NewListCmd() *cobra.Command {
	var (
		flags  cli.SourceFlags
		search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the grouped and sorted job slots",
		Example: `  # Show all departments
  jobslots list

  # Only jobs whose name contains "officer", as JSON
  jobslots list --search officer --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd, &flags)
			if err != nil {
				return err
			}
			state, err := ws.loadState()
			if err != nil {
				return err
			}

			span := ws.timer.Start("build")
			vm := ws.newViewModel()
			vm.ApplyState(state)
			vm.ApplySearch(search)
			span.Stop()

			if cli.GetOptions(cmd).JSONOutput {
				return writeListJSON(cmd.OutOrStdout(), vm)
			}
			writeListTable(cmd.OutOrStdout(), vm)
			return nil
		},
	}
	flags.Register(cmd.Flags())
	cmd.Flags().StringVarP(&search, "search", "q", "", "Only show jobs whose name contains this text")
	return cmd
}

type listJob struct {
	ID          catalog.JobID   `json:"id"`
	Name        string          `json:"name"`
	Slots       slots.SlotCount `json:"slots"`
	Blacklisted bool            `json:"blacklisted"`
}

type listSection struct {
	ID    catalog.DepartmentID `json:"id"`
	Title string               `json:"title"`
	Color string               `json:"color"`
	Jobs  []listJob            `json:"jobs"`
}

// listSections returns the visible sections with their visible rows.
func listSections(vm *jobslots.ViewModel) []listSection {
	out := []listSection{}
	for _, s := range vm.Sections() {
		if !s.Visible() {
			continue
		}
		sec := listSection{ID: s.ID(), Title: s.Title(), Color: s.Color().Hex()}
		for _, r := range s.VisibleRows() {
			sec.Jobs = append(sec.Jobs, listJob{
				ID:          r.ID(),
				Name:        r.Name(),
				Slots:       r.Slots(),
				Blacklisted: r.Blacklisted(),
			})
		}
		out = append(out, sec)
	}
	return out
}

func writeListJSON(w io.Writer, vm *jobslots.ViewModel) error {
	data, err := json.MarshalIndent(listSections(vm), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeListTable(w io.Writer, vm *jobslots.ViewModel) {
	t := theme.DefaultTheme
	sections := listSections(vm)
	if len(sections) == 0 {
		msg := "No jobs available"
		if vm.Search() != "" {
			msg = fmt.Sprintf("No jobs match %q", vm.Search())
		}
		fmt.Fprintln(w, t.Muted.Render(msg))
		return
	}

	var rows [][]string
	var rowColors []string
	for _, s := range sections {
		for i, j := range s.Jobs {
			dept := ""
			if i == 0 {
				dept = s.Title
			}
			count := j.Slots.String()
			if j.Slots.IsUnlimited() {
				count = theme.IconUnlimited
			}
			status := ""
			if j.Blacklisted {
				status = "blacklisted"
			}
			rows = append(rows, []string{dept, j.Name, count, status})
			rowColors = append(rowColors, s.Color)
		}
	}

	tbl := table.NewBuilder().
		WithHeaders("DEPARTMENT", "JOB", "SLOTS", "STATUS").
		WithRows(rows...).
		WithRowStyle(func(row, col int, base lipgloss.Style) lipgloss.Style {
			if row < 0 || row >= len(rowColors) {
				return base
			}
			switch col {
			case 0:
				return base.Inherit(t.SectionHeader(rowColors[row]))
			case 3:
				return base.Inherit(t.Error)
			}
			return base
		}).
		Build()
	fmt.Fprintln(w, tbl.String())
}
